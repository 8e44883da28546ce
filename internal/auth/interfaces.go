// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The gemctl Authors

// Package auth supplies bearer tokens for Discovery Engine API calls.
//
// Two suppliers exist, selected by the resolved credential mode: user
// credentials obtained by shelling out to gcloud (the default), and
// Application Default Credentials for service accounts. The package also
// hosts the external "active project" lookup consumed by the config
// resolver.
package auth

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/token_source_mock.go -package=mock

// TokenSource yields OAuth2 access tokens for outbound API requests.
// Implementations cache tokens internally; Token may be called per request.
type TokenSource interface {
	// Token returns a valid access token, refreshing it if necessary.
	Token(ctx context.Context) (string, error)

	// Principal returns a human-readable identity of the credential holder
	// (account email or service account email), or a mode label when the
	// identity cannot be determined. Used for the "Authenticated as" line.
	Principal() string
}
