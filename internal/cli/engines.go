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

// NewEnginesCmd groups the engine subcommands.
func NewEnginesCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "engines",
		Short: "Manage search engines",
	}

	cmd.AddCommand(
		newEnginesListCmd(opts),
		newEnginesDescribeCmd(opts),
		newEnginesCreateCmd(opts),
		newEnginesDeleteCmd(opts),
	)

	return cmd
}

func newEnginesListCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List engines in the resolved collection",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rt, err := buildRuntime(cmd, opts)
			if err != nil {
				return err
			}

			engines, err := rt.api.ListEngines(cmd.Context(), resource.Collection(rt.rc))
			if err != nil {
				return fmt.Errorf("list engines: %w", err)
			}

			return rt.printer.Engines(engines)
		},
	}
}

func newEnginesDescribeCmd(opts *rootOptions) *cobra.Command {
	var full bool

	cmd := &cobra.Command{
		Use:   "describe ENGINE",
		Short: "Show the details of an engine",
		Long: `Show the details of an engine, addressed by short ID or full resource name.

With --full the output also includes every attached data store and its
schema, resolved from the engine's own collection.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := buildRuntime(cmd, opts)
			if err != nil {
				return err
			}

			name, err := resource.Normalize(args[0], resource.Engine, rt.rc)
			if err != nil {
				return err
			}

			engine, err := rt.api.GetEngine(cmd.Context(), name)
			if err != nil {
				return fmt.Errorf("get engine %s: %w", args[0], err)
			}

			if !full {
				return rt.printer.Engine(engine)
			}

			bundle := &models.EngineConfigBundle{Engine: *engine}
			for _, dsID := range engine.DataStoreIDs {
				dsName, err := resource.SiblingDataStore(name, dsID)
				if err != nil {
					return err
				}

				ds, err := rt.api.GetDataStore(cmd.Context(), dsName)
				if err != nil {
					rt.log.Warn().Err(err).Str("dataStore", dsName).Msg("skipping unreadable data store")
					continue
				}

				if schema, err := rt.api.GetSchema(cmd.Context(), dsName); err == nil {
					ds.Schema = schema
				}
				bundle.DataStores = append(bundle.DataStores, *ds)
			}

			return rt.printer.Bundle(bundle)
		},
	}

	cmd.Flags().BoolVar(&full, "full", false,
		"include the configuration of every attached data store")

	return cmd
}

func newEnginesCreateCmd(opts *rootOptions) *cobra.Command {
	var (
		searchTier  string
		companyName string
	)

	cmd := &cobra.Command{
		Use:   "create ENGINE_ID DISPLAY_NAME [DATA_STORE_ID...]",
		Short: "Create a search engine",
		Long: `Create a search engine in the resolved collection, optionally attached to
existing data stores, and wait for the creation operation to finish.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			engineID := args[0]
			if err := validators.ResourceID(engineID); err != nil {
				return err
			}

			rt, err := buildRuntime(cmd, opts)
			if err != nil {
				return err
			}

			req := models.CreateEngineRequest{
				DisplayName:      args[1],
				SolutionType:     "SOLUTION_TYPE_SEARCH",
				IndustryVertical: "GENERIC",
				AppType:          "APP_TYPE_INTRANET",
				DataStoreIDs:     args[2:],
				SearchEngineConfig: &models.SearchEngineConfig{
					SearchTier:   searchTier,
					SearchAddOns: []string{"SEARCH_ADD_ON_LLM"},
				},
			}
			if companyName != "" {
				req.CommonConfig = &models.CommonConfig{CompanyName: companyName}
			}

			op, err := rt.api.CreateEngine(cmd.Context(), resource.Collection(rt.rc), engineID, req)
			if err != nil {
				return fmt.Errorf("create engine %s: %w", engineID, err)
			}

			name, err := waitForResource(cmd, rt, op, resource.Engine, engineID,
				func(ctx context.Context, name string) error {
					_, err := rt.api.GetEngine(ctx, name)
					return err
				})
			if err != nil {
				return err
			}

			if rt.printer.Format() != output.FormatTable {
				return rt.printer.Operation(name, op)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Engine created successfully: %s\n", name)
			return nil
		},
	}

	cmd.Flags().StringVar(&searchTier, "search-tier", "SEARCH_TIER_STANDARD",
		"search tier: SEARCH_TIER_STANDARD or SEARCH_TIER_ENTERPRISE")
	cmd.Flags().StringVar(&companyName, "company-name", "",
		"company name embedded into LLM prompts")

	return cmd
}

func newEnginesDeleteCmd(opts *rootOptions) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete ENGINE",
		Short: "Delete an engine",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := buildRuntime(cmd, opts)
			if err != nil {
				return err
			}

			name, err := resource.Normalize(args[0], resource.Engine, rt.rc)
			if err != nil {
				return err
			}

			if !force {
				ok, err := confirm(cmd, fmt.Sprintf("Are you sure you want to delete engine %s?", args[0]))
				if err != nil {
					return err
				}
				if !ok {
					fmt.Fprintln(cmd.OutOrStdout(), "Operation cancelled")
					return nil
				}
			}

			if err := rt.api.DeleteEngine(cmd.Context(), name); err != nil {
				return fmt.Errorf("delete engine %s: %w", args[0], err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Engine %s deleted successfully\n", args[0])
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "skip the confirmation prompt")

	return cmd
}
