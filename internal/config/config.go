// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The gemctl Authors

package config

import "os"

// Environment variable names consulted during resolution.
const (
	EnvGoogleCloudProject = "GOOGLE_CLOUD_PROJECT"
	EnvGcloudProject      = "GCLOUD_PROJECT"
	EnvAgentspaceLocation = "AGENTSPACE_LOCATION"
	EnvGcloudLocation     = "GCLOUD_LOCATION"
)

// Defaults applied when no source provides a value.
const (
	DefaultLocation   = "us"
	DefaultCollection = "default_collection"
)

// CredentialMode selects the credential supplier used for API calls.
type CredentialMode int

const (
	// UserCredentials uses the caller's gcloud user credentials.
	UserCredentials CredentialMode = iota

	// ServiceAccount uses Application Default Credentials.
	ServiceAccount
)

// String returns a human-readable mode name for logs and error messages.
func (m CredentialMode) String() string {
	switch m {
	case ServiceAccount:
		return "service-account"
	default:
		return "user-credentials"
	}
}

// Options carries the explicit flag values of the current invocation.
// Empty fields mean "not set"; resolution falls through to the next source.
type Options struct {
	// ProjectID is the value of --project-id.
	ProjectID string

	// Location is the value of --location.
	Location string

	// CollectionID is the value of --collection.
	CollectionID string

	// UseServiceAccount is the value of --use-service-account.
	UseServiceAccount bool
}

// EnvironmentView is a read-only snapshot of environment variables. Passing
// it explicitly keeps resolution a pure function over its inputs and lets
// tests supply arbitrary environments without mutating the process.
type EnvironmentView map[string]string

// Environ captures the current process environment as an [EnvironmentView].
func Environ() EnvironmentView {
	view := make(EnvironmentView)
	for _, kv := range os.Environ() {
		for i := 0; i < len(kv); i++ {
			if kv[i] == '=' {
				view[kv[:i]] = kv[i+1:]
				break
			}
		}
	}
	return view
}

// ProjectLookup queries an external source for the active project ID, such
// as the local gcloud configuration. It is consulted at most once per
// resolution, and only when neither flags nor environment provide a project.
// Implementations own their timeout; a failed lookup yields an empty result.
type ProjectLookup func() (string, error)

// ResolvedContext is the fully-resolved operating context of one invocation.
// It is never partially populated: [Resolve] either returns a complete value
// or an error.
type ResolvedContext struct {
	// ProjectID is the Google Cloud project. Always non-empty.
	ProjectID string

	// Location is the resource location, e.g. "global", "us", "eu",
	// "us-central1".
	Location string

	// CollectionID is the collection namespace, default "default_collection".
	CollectionID string

	// APIBaseURL is the regional API endpoint derived from Location.
	APIBaseURL string

	// CredentialMode selects the credential supplier for this invocation.
	CredentialMode CredentialMode
}

// Resolve builds the [ResolvedContext] for one invocation from explicit
// options, an environment snapshot, and an optional external project lookup.
//
// Returns [ErrMissingProjectID] if no source yields a project ID, or
// [ErrUnsupportedLocation] if the resolved location maps to no known
// endpoint. lookup may be nil.
func Resolve(opts Options, env EnvironmentView, lookup ProjectLookup) (*ResolvedContext, error) {
	return newContextBuilder().
		withFlags(opts).
		withEnv(env).
		withProjectLookup(lookup).
		withDefaults().
		build(opts.UseServiceAccount)
}
