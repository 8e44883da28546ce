// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The gemctl Authors

package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gemctl/gemctl/internal/output"
	"github.com/gemctl/gemctl/internal/resource"
	"github.com/gemctl/gemctl/internal/validators"
	"github.com/gemctl/gemctl/models"
)

// NewDataStoresCmd groups the data store subcommands.
func NewDataStoresCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "data-stores",
		Short: "Manage data stores",
	}

	cmd.AddCommand(
		newDataStoresListCmd(opts),
		newDataStoresDescribeCmd(opts),
		newDataStoresCreateFromGCSCmd(opts),
		newDataStoresListDocumentsCmd(opts),
		newDataStoresDeleteCmd(opts),
	)

	return cmd
}

func newDataStoresListCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List data stores in the resolved project and location",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rt, err := buildRuntime(cmd, opts)
			if err != nil {
				return err
			}

			stores, err := rt.api.ListDataStores(cmd.Context(), resource.Parent(rt.rc))
			if err != nil {
				return fmt.Errorf("list data stores: %w", err)
			}

			return rt.printer.DataStores(stores)
		},
	}
}

func newDataStoresDescribeCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "describe DATA_STORE",
		Short: "Show the details of a data store, including its schema",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := buildRuntime(cmd, opts)
			if err != nil {
				return err
			}

			name, err := resource.Normalize(args[0], resource.DataStore, rt.rc)
			if err != nil {
				return err
			}

			ds, err := rt.api.GetDataStore(cmd.Context(), name)
			if err != nil {
				return fmt.Errorf("get data store %s: %w", args[0], err)
			}

			// schema fetch is best effort; a store without one is normal
			if schema, err := rt.api.GetSchema(cmd.Context(), name); err == nil {
				ds.Schema = schema
			} else {
				rt.log.Warn().Err(err).Str("dataStore", name).Msg("schema fetch failed")
			}

			return rt.printer.DataStore(ds)
		},
	}
}

func newDataStoresCreateFromGCSCmd(opts *rootOptions) *cobra.Command {
	var (
		dataSchema         string
		reconciliationMode string
	)

	cmd := &cobra.Command{
		Use:   "create-from-gcs DATA_STORE_ID DISPLAY_NAME GCS_URI",
		Short: "Create a data store and import documents from Cloud Storage",
		Long: `Create a data store in the resolved collection, wait for it to become
ready, then start a document import from the given gs:// URI pattern
(e.g. gs://bucket/docs/*). The import runs as a long-running operation;
its name is printed so progress can be checked later.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			dataStoreID, displayName, gcsURI := args[0], args[1], args[2]
			if err := validators.ResourceID(dataStoreID); err != nil {
				return err
			}
			if err := validators.GCSURI(gcsURI); err != nil {
				return err
			}

			rt, err := buildRuntime(cmd, opts)
			if err != nil {
				return err
			}

			createReq := models.CreateDataStoreRequest{
				DisplayName:      displayName,
				IndustryVertical: "GENERIC",
				SolutionTypes:    []string{"SOLUTION_TYPE_SEARCH"},
				ContentConfig:    "CONTENT_REQUIRED",
			}

			op, err := rt.api.CreateDataStore(cmd.Context(), resource.Collection(rt.rc), dataStoreID, createReq)
			if err != nil {
				return fmt.Errorf("create data store %s: %w", dataStoreID, err)
			}

			name, err := waitForResource(cmd, rt, op, resource.DataStore, dataStoreID,
				func(ctx context.Context, name string) error {
					_, err := rt.api.GetDataStore(ctx, name)
					return err
				})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.ErrOrStderr(), "Data store created: %s\n", name)

			importReq := models.ImportDocumentsRequest{
				GCSSource: &models.GCSSource{
					InputURIs:  []string{gcsURI},
					DataSchema: dataSchema,
				},
				ReconciliationMode: reconciliationMode,
			}

			importOp, err := rt.api.ImportDocuments(cmd.Context(), resource.Branch(name, ""), importReq)
			if err != nil {
				return fmt.Errorf("import documents into %s: %w", dataStoreID, err)
			}

			if rt.printer.Format() != output.FormatTable {
				return rt.printer.Operation(name, importOp)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Data store created successfully: %s\n", name)
			fmt.Fprintf(cmd.OutOrStdout(), "Document import operation started: %s\n", importOp.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&dataSchema, "data-schema", "content",
		"import data schema: content, custom, csv, or document")
	cmd.Flags().StringVar(&reconciliationMode, "reconciliation-mode", "INCREMENTAL",
		"import mode: INCREMENTAL or FULL")

	return cmd
}

func newDataStoresListDocumentsCmd(opts *rootOptions) *cobra.Command {
	var branch string

	cmd := &cobra.Command{
		Use:   "list-documents DATA_STORE",
		Short: "List the documents in a data store branch",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := buildRuntime(cmd, opts)
			if err != nil {
				return err
			}

			name, err := resource.Normalize(args[0], resource.DataStore, rt.rc)
			if err != nil {
				return err
			}

			documents, err := rt.api.ListDocuments(cmd.Context(), resource.Branch(name, branch))
			if err != nil {
				return fmt.Errorf("list documents in %s: %w", args[0], err)
			}

			return rt.printer.Documents(documents)
		},
	}

	cmd.Flags().StringVar(&branch, "branch", "",
		`branch holding the documents (default "default_branch")`)

	return cmd
}

func newDataStoresDeleteCmd(opts *rootOptions) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete DATA_STORE",
		Short: "Delete a data store",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := buildRuntime(cmd, opts)
			if err != nil {
				return err
			}

			name, err := resource.Normalize(args[0], resource.DataStore, rt.rc)
			if err != nil {
				return err
			}

			if !force {
				ok, err := confirm(cmd, fmt.Sprintf("Are you sure you want to delete data store %s?", args[0]))
				if err != nil {
					return err
				}
				if !ok {
					fmt.Fprintln(cmd.OutOrStdout(), "Operation cancelled")
					return nil
				}
			}

			if err := rt.api.DeleteDataStore(cmd.Context(), name); err != nil {
				return fmt.Errorf("delete data store %s: %w", args[0], err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Data store %s deleted successfully\n", args[0])
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "skip the confirmation prompt")

	return cmd
}
