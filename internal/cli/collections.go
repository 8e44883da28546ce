// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The gemctl Authors

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gemctl/gemctl/internal/resource"
)

// NewCollectionsCmd groups the collection subcommands.
func NewCollectionsCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "collections",
		Short: "Inspect collections",
	}

	cmd.AddCommand(newCollectionsListCmd(opts))

	return cmd
}

func newCollectionsListCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List collections in the resolved project and location",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rt, err := buildRuntime(cmd, opts)
			if err != nil {
				return err
			}

			collections, err := rt.api.ListCollections(cmd.Context(), resource.Parent(rt.rc))
			if err != nil {
				return fmt.Errorf("list collections: %w", err)
			}

			return rt.printer.Collections(collections)
		},
	}
}
