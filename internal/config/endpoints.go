// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The gemctl Authors

package config

import (
	"fmt"
	"strings"
)

const (
	globalEndpoint = "https://discoveryengine.googleapis.com/v1"
	usEndpoint     = "https://us-discoveryengine.googleapis.com/v1"
	euEndpoint     = "https://eu-discoveryengine.googleapis.com/v1"
)

// EndpointFor maps a location to its regional API base URL. The mapping is a
// pure function: "global" is matched exactly, any us* or eu* value (including
// fine-grained regions like "us-central1") maps to its regional endpoint, and
// everything else fails with [ErrUnsupportedLocation].
func EndpointFor(location string) (string, error) {
	switch {
	case location == "global":
		return globalEndpoint, nil
	case strings.HasPrefix(location, "us"):
		return usEndpoint, nil
	case strings.HasPrefix(location, "eu"):
		return euEndpoint, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedLocation, location)
	}
}
