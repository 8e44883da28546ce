// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The gemctl Authors

// Package cli assembles the gemctl command tree.
//
// Commands are grouped by resource (engines, data-stores, collections), each
// constructed by a NewXxxCmd function. Persistent flags on the root command
// feed the config resolver; every subcommand builds its runtime (resolved
// context, credentials, API adapter, printer) lazily in RunE so that flag
// parsing errors and --help never touch gcloud or the network.
package cli

import (
	"github.com/spf13/cobra"
)

// BuildInfo carries the ldflags-injected build identity shown by
// "gemctl version".
type BuildInfo struct {
	Version string
	Date    string
	Commit  string
}

type rootOptions struct {
	projectID         string
	location          string
	collectionID      string
	useServiceAccount bool
	format            string
	verbosity         string
}

// NewRootCmd builds the gemctl root command with all subcommands attached.
func NewRootCmd(info BuildInfo) *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "gemctl",
		Short: "Manage Discovery Engine search applications and data stores",
		Long: `gemctl is a gcloud-style client for the Discovery Engine management API.

It resolves its operating context (project, location, collection) from
flags, environment variables, and the local gcloud configuration, in that
order, and talks to the regional API endpoint derived from the location.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&opts.projectID, "project-id", "",
		"Google Cloud project ID (defaults to $GOOGLE_CLOUD_PROJECT or the gcloud config)")
	pf.StringVar(&opts.location, "location", "",
		`resource location (defaults to $AGENTSPACE_LOCATION or "us")`)
	pf.StringVar(&opts.collectionID, "collection", "",
		`collection ID (default "default_collection")`)
	pf.BoolVar(&opts.useServiceAccount, "use-service-account", false,
		"authenticate with application default credentials instead of gcloud user credentials")
	pf.StringVar(&opts.format, "format", "table",
		"output format: table, json, or yaml")
	pf.StringVar(&opts.verbosity, "verbosity", "warn",
		"log level: debug, info, warn, or error")

	cmd.AddCommand(
		NewEnginesCmd(opts),
		NewDataStoresCmd(opts),
		NewCollectionsCmd(opts),
		NewVersionCmd(info),
	)

	return cmd
}
