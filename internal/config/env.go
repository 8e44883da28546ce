// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The gemctl Authors

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// envConfig mirrors the environment variables consulted during resolution.
// Both project and both location variables are parsed; precedence between
// them is applied in [parseEnv], not by the parser.
type envConfig struct {
	GoogleCloudProject string `env:"GOOGLE_CLOUD_PROJECT"`
	GcloudProject      string `env:"GCLOUD_PROJECT"`
	AgentspaceLocation string `env:"AGENTSPACE_LOCATION"`
	GcloudLocation     string `env:"GCLOUD_LOCATION"`
}

// parseEnv extracts the environment-sourced candidate from the injected
// snapshot using the caarlos0/env library. GOOGLE_CLOUD_PROJECT wins over
// GCLOUD_PROJECT, and AGENTSPACE_LOCATION over GCLOUD_LOCATION.
func parseEnv(view EnvironmentView) (candidate, error) {
	var cfg envConfig
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: view}); err != nil {
		return candidate{}, fmt.Errorf("error getting env configs: %w", err)
	}

	c := candidate{
		ProjectID: cfg.GoogleCloudProject,
		Location:  cfg.AgentspaceLocation,
	}
	if c.ProjectID == "" {
		c.ProjectID = cfg.GcloudProject
	}
	if c.Location == "" {
		c.Location = cfg.GcloudLocation
	}

	return c, nil
}
