// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The gemctl Authors

package auth

import (
	"context"
	"encoding/json"
	"fmt"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"github.com/gemctl/gemctl/internal/config"
)

const cloudPlatformScope = "https://www.googleapis.com/auth/cloud-platform"

// adcTokenSource wraps Application Default Credentials for service-account
// invocations.
type adcTokenSource struct {
	src       oauth2.TokenSource
	principal string
}

// NewADCTokenSource discovers Application Default Credentials with the
// cloud-platform scope and returns a supplier backed by them. The principal
// is read from the credentials JSON when available (service account key
// files carry client_email).
func NewADCTokenSource(ctx context.Context) (TokenSource, error) {
	creds, err := google.FindDefaultCredentials(ctx, cloudPlatformScope)
	if err != nil {
		return nil, fmt.Errorf("failed to find default credentials: %w", err)
	}

	return &adcTokenSource{
		src:       creds.TokenSource,
		principal: principalFromCredentials(creds.JSON),
	}, nil
}

func principalFromCredentials(raw []byte) string {
	var key struct {
		ClientEmail string `json:"client_email"`
	}
	if err := json.Unmarshal(raw, &key); err == nil && key.ClientEmail != "" {
		return key.ClientEmail
	}
	return config.ServiceAccount.String()
}

// Token implements [TokenSource].
func (s *adcTokenSource) Token(_ context.Context) (string, error) {
	token, err := s.src.Token()
	if err != nil {
		return "", fmt.Errorf("fetch adc token: %w", err)
	}
	return token.AccessToken, nil
}

// Principal implements [TokenSource].
func (s *adcTokenSource) Principal() string {
	return s.principal
}

// NewTokenSource returns the credential supplier matching the resolved
// credential mode.
func NewTokenSource(ctx context.Context, mode config.CredentialMode) (TokenSource, error) {
	if mode == config.ServiceAccount {
		return NewADCTokenSource(ctx)
	}
	return NewUserTokenSource(), nil
}
