// Package config resolves the operating context of a single gemctl
// invocation: project ID, location, collection, the regional API endpoint
// derived from the location, and the credential mode.
//
// Values are assembled from multiple sources in the following priority order
// (first non-empty wins, independently per field):
//  1. Explicit command-line flags
//  2. Environment variables (read from an injected [EnvironmentView] snapshot)
//  3. The active gcloud project, queried through an injected [ProjectLookup]
//     (project ID only, consulted at most once)
//  4. Hardcoded defaults ("us" location, "default_collection" collection)
//
// Resolution either fully succeeds or fails with one of the sentinel errors
// in errors.go before any network call is made. The main entry point is
// [Resolve].
package config
