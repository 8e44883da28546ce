// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The gemctl Authors

package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewVersionCmd prints the build identity injected at link time.
func NewVersionCmd(info BuildInfo) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "Build version: %s\n", orNA(info.Version))
			fmt.Fprintf(cmd.OutOrStdout(), "Build date: %s\n", orNA(info.Date))
			fmt.Fprintf(cmd.OutOrStdout(), "Build commit: %s\n", orNA(info.Commit))
		},
	}
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
