// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The gemctl Authors

package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve_ExplicitFlagsWinOverEverything(t *testing.T) {
	// Arrange
	env := EnvironmentView{
		EnvGoogleCloudProject: "env-project",
		EnvAgentspaceLocation: "eu",
	}
	lookup := func() (string, error) { return "gcloud-project", nil }

	// Act
	got, err := Resolve(Options{
		ProjectID:    "flag-project",
		Location:     "global",
		CollectionID: "my_collection",
	}, env, lookup)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "flag-project", got.ProjectID)
	assert.Equal(t, "global", got.Location)
	assert.Equal(t, "my_collection", got.CollectionID)
	assert.Equal(t, "https://discoveryengine.googleapis.com/v1", got.APIBaseURL)
	assert.Equal(t, UserCredentials, got.CredentialMode)
}

func TestResolve_EnvProjectPrecedence(t *testing.T) {
	tests := []struct {
		name string
		env  EnvironmentView
		want string
	}{
		{
			name: "GOOGLE_CLOUD_PROJECT wins over GCLOUD_PROJECT",
			env: EnvironmentView{
				EnvGoogleCloudProject: "primary",
				EnvGcloudProject:      "secondary",
			},
			want: "primary",
		},
		{
			name: "GCLOUD_PROJECT used when GOOGLE_CLOUD_PROJECT is absent",
			env:  EnvironmentView{EnvGcloudProject: "secondary"},
			want: "secondary",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Resolve(Options{}, tt.env, nil)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got.ProjectID)
		})
	}
}

func TestResolve_ProjectLookupConsultedLast(t *testing.T) {
	// Arrange
	calls := 0
	lookup := func() (string, error) {
		calls++
		return "active-project", nil
	}

	// Act
	got, err := Resolve(Options{}, EnvironmentView{}, lookup)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "active-project", got.ProjectID)
	assert.Equal(t, 1, calls)
}

func TestResolve_ProjectLookupSkippedWhenEnvSet(t *testing.T) {
	// Arrange
	calls := 0
	lookup := func() (string, error) {
		calls++
		return "active-project", nil
	}
	env := EnvironmentView{EnvGcloudProject: "env-project"}

	// Act
	got, err := Resolve(Options{}, env, lookup)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "env-project", got.ProjectID)
	assert.Zero(t, calls)
}

func TestResolve_MissingProjectID(t *testing.T) {
	tests := []struct {
		name   string
		lookup ProjectLookup
	}{
		{name: "no lookup capability", lookup: nil},
		{name: "lookup yields nothing", lookup: func() (string, error) { return "", nil }},
		{name: "lookup fails", lookup: func() (string, error) { return "", errors.New("gcloud not installed") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Resolve(Options{}, EnvironmentView{}, tt.lookup)

			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMissingProjectID)
		})
	}
}

func TestResolve_LocationDefaultsToUS(t *testing.T) {
	got, err := Resolve(Options{ProjectID: "p"}, EnvironmentView{}, nil)

	require.NoError(t, err)
	assert.Equal(t, "us", got.Location)
	assert.Equal(t, "https://us-discoveryengine.googleapis.com/v1", got.APIBaseURL)
}

func TestResolve_LocationEnvPrecedence(t *testing.T) {
	// Arrange
	env := EnvironmentView{
		EnvAgentspaceLocation: "eu",
		EnvGcloudLocation:     "us",
	}

	// Act
	got, err := Resolve(Options{ProjectID: "p"}, env, nil)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "eu", got.Location)
	assert.Equal(t, "https://eu-discoveryengine.googleapis.com/v1", got.APIBaseURL)
}

func TestResolve_CollectionDefault(t *testing.T) {
	got, err := Resolve(Options{ProjectID: "p"}, EnvironmentView{}, nil)

	require.NoError(t, err)
	assert.Equal(t, "default_collection", got.CollectionID)
}

func TestResolve_UnsupportedLocation(t *testing.T) {
	_, err := Resolve(Options{ProjectID: "p", Location: "asia-east1"}, EnvironmentView{}, nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnsupportedLocation)
}

func TestResolve_ServiceAccountMode(t *testing.T) {
	got, err := Resolve(Options{ProjectID: "p", UseServiceAccount: true}, EnvironmentView{}, nil)

	require.NoError(t, err)
	assert.Equal(t, ServiceAccount, got.CredentialMode)
}

func TestEndpointFor(t *testing.T) {
	tests := []struct {
		location string
		want     string
		wantErr  bool
	}{
		{location: "global", want: "https://discoveryengine.googleapis.com/v1"},
		{location: "us", want: "https://us-discoveryengine.googleapis.com/v1"},
		{location: "us-central1", want: "https://us-discoveryengine.googleapis.com/v1"},
		{location: "us-west1", want: "https://us-discoveryengine.googleapis.com/v1"},
		{location: "eu", want: "https://eu-discoveryengine.googleapis.com/v1"},
		{location: "eu-west3", want: "https://eu-discoveryengine.googleapis.com/v1"},
		{location: "asia-northeast1", wantErr: true},
		{location: "mars", wantErr: true},
		{location: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.location, func(t *testing.T) {
			got, err := EndpointFor(tt.location)

			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrUnsupportedLocation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEnviron_Snapshot(t *testing.T) {
	t.Setenv("GEMCTL_SNAPSHOT_PROBE", "probe-value")

	view := Environ()

	assert.Equal(t, "probe-value", view["GEMCTL_SNAPSHOT_PROBE"])
}
