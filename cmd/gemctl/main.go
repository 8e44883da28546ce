// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The gemctl Authors

package main

import (
	"fmt"
	"os"

	"github.com/gemctl/gemctl/internal/cli"
)

// injected via -ldflags at build time
var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	root := cli.NewRootCmd(cli.BuildInfo{
		Version: buildVersion,
		Date:    buildDate,
		Commit:  buildCommit,
	})

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
