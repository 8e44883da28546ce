// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The gemctl Authors

package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedRunner replays canned outputs keyed by the gcloud subcommand.
type scriptedRunner struct {
	outputs map[string]string
	errs    map[string]error
	calls   map[string]int
}

func newScriptedRunner() *scriptedRunner {
	return &scriptedRunner{
		outputs: make(map[string]string),
		errs:    make(map[string]error),
		calls:   make(map[string]int),
	}
}

func (r *scriptedRunner) run(_ context.Context, _ string, args ...string) ([]byte, error) {
	key := args[len(args)-1]
	r.calls[key]++
	if err := r.errs[key]; err != nil {
		return nil, err
	}
	return []byte(r.outputs[key]), nil
}

func TestActiveProject(t *testing.T) {
	// Arrange
	runner := newScriptedRunner()
	runner.outputs["project"] = "my-project\n"

	// Act
	got, err := activeProject(runner.run)()

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "my-project", got)
}

func TestActiveProject_Unset(t *testing.T) {
	runner := newScriptedRunner()
	runner.outputs["project"] = "(unset)\n"

	_, err := activeProject(runner.run)()

	require.Error(t, err)
}

func TestActiveProject_GcloudMissing(t *testing.T) {
	runner := newScriptedRunner()
	runner.errs["project"] = errors.New("executable file not found")

	_, err := activeProject(runner.run)()

	require.Error(t, err)
}

func TestUserTokenSource_TokenCached(t *testing.T) {
	// Arrange
	runner := newScriptedRunner()
	runner.outputs["account"] = "alice@example.com\n"
	runner.outputs["print-access-token"] = "ya29.token\n"
	src := newUserTokenSource(runner.run)

	// Act
	first, err := src.Token(context.Background())
	require.NoError(t, err)
	second, err := src.Token(context.Background())
	require.NoError(t, err)

	// Assert
	assert.Equal(t, "ya29.token", first)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, runner.calls["print-access-token"])
}

func TestUserTokenSource_TokenRefreshedAfterExpiry(t *testing.T) {
	// Arrange
	runner := newScriptedRunner()
	runner.outputs["print-access-token"] = "ya29.fresh\n"
	src := newUserTokenSource(runner.run)
	src.token = "ya29.stale"
	src.expires = time.Now().Add(-time.Minute)

	// Act
	got, err := src.Token(context.Background())

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "ya29.fresh", got)
}

func TestUserTokenSource_TokenError(t *testing.T) {
	runner := newScriptedRunner()
	runner.errs["print-access-token"] = errors.New("not logged in")
	src := newUserTokenSource(runner.run)

	_, err := src.Token(context.Background())

	require.Error(t, err)
	assert.Empty(t, src.token)
}

func TestUserTokenSource_Principal(t *testing.T) {
	tests := []struct {
		name    string
		account string
		err     error
		want    string
	}{
		{name: "account configured", account: "alice@example.com\n", want: "alice@example.com"},
		{name: "account unset", account: "(unset)\n", want: "user-credentials"},
		{name: "gcloud missing", err: errors.New("not found"), want: "user-credentials"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := newScriptedRunner()
			runner.outputs["account"] = tt.account
			if tt.err != nil {
				runner.errs["account"] = tt.err
			}

			src := newUserTokenSource(runner.run)

			assert.Equal(t, tt.want, src.Principal())
		})
	}
}

func TestPrincipalFromCredentials(t *testing.T) {
	tests := []struct {
		name string
		raw  []byte
		want string
	}{
		{
			name: "service account key",
			raw:  []byte(`{"client_email":"svc@proj.iam.gserviceaccount.com"}`),
			want: "svc@proj.iam.gserviceaccount.com",
		},
		{name: "metadata credentials without json", raw: nil, want: "service-account"},
		{name: "json without email", raw: []byte(`{"type":"authorized_user"}`), want: "service-account"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, principalFromCredentials(tt.raw))
		})
	}
}
