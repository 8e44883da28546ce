// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The gemctl Authors

package auth

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"sync"
	"time"

	"github.com/gemctl/gemctl/internal/config"
)

var errEmptyGcloudOutput = errors.New("gcloud produced no output")

const (
	configLookupTimeout = 5 * time.Second
	tokenLookupTimeout  = 10 * time.Second

	// access tokens last an hour; refresh with a margin
	tokenCacheTTL = 50 * time.Minute
)

// commandRunner executes an external command and returns its stdout.
// Injected so tests can run without a gcloud installation.
type commandRunner func(ctx context.Context, name string, args ...string) ([]byte, error)

func runCommand(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).Output()
}

// ActiveProject returns a [config.ProjectLookup] that queries the local
// gcloud configuration for the active project
// (gcloud config get-value project).
func ActiveProject() config.ProjectLookup {
	return activeProject(runCommand)
}

func activeProject(run commandRunner) config.ProjectLookup {
	return func() (string, error) {
		ctx, cancel := context.WithTimeout(context.Background(), configLookupTimeout)
		defer cancel()

		out, err := run(ctx, "gcloud", "config", "get-value", "project")
		if err != nil {
			return "", fmt.Errorf("query active gcloud project: %w", err)
		}

		project := strings.TrimSpace(string(out))
		if project == "" || project == "(unset)" {
			return "", errEmptyGcloudOutput
		}
		return project, nil
	}
}

// userTokenSource obtains access tokens from the caller's gcloud session via
// `gcloud auth print-access-token` and caches them for [tokenCacheTTL].
type userTokenSource struct {
	run       commandRunner
	principal string

	mu      sync.Mutex
	token   string
	expires time.Time
}

// NewUserTokenSource builds the user-credential supplier. The principal is
// resolved once from `gcloud config get-value account`; a failure there is
// not fatal and falls back to a mode label.
func NewUserTokenSource() TokenSource {
	return newUserTokenSource(runCommand)
}

func newUserTokenSource(run commandRunner) *userTokenSource {
	return &userTokenSource{
		run:       run,
		principal: lookupAccount(run),
	}
}

func lookupAccount(run commandRunner) string {
	ctx, cancel := context.WithTimeout(context.Background(), configLookupTimeout)
	defer cancel()

	out, err := run(ctx, "gcloud", "config", "get-value", "account")
	if err != nil {
		return config.UserCredentials.String()
	}

	account := strings.TrimSpace(string(out))
	if account == "" || account == "(unset)" {
		return config.UserCredentials.String()
	}
	return account
}

// Token implements [TokenSource]. A cached token is reused until it is close
// to expiry; otherwise a fresh one is fetched from gcloud.
func (s *userTokenSource) Token(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.token != "" && time.Now().Before(s.expires) {
		return s.token, nil
	}

	ctx, cancel := context.WithTimeout(ctx, tokenLookupTimeout)
	defer cancel()

	out, err := s.run(ctx, "gcloud", "auth", "print-access-token")
	if err != nil {
		return "", fmt.Errorf("gcloud auth print-access-token: %w", err)
	}

	token := strings.TrimSpace(string(out))
	if token == "" {
		return "", errEmptyGcloudOutput
	}

	s.token = token
	s.expires = time.Now().Add(tokenCacheTTL)
	return token, nil
}

// Principal implements [TokenSource].
func (s *userTokenSource) Principal() string {
	return s.principal
}
