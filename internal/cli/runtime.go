// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The gemctl Authors

package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gemctl/gemctl/internal/adapter"
	"github.com/gemctl/gemctl/internal/auth"
	"github.com/gemctl/gemctl/internal/config"
	"github.com/gemctl/gemctl/internal/logger"
	"github.com/gemctl/gemctl/internal/output"
	"github.com/gemctl/gemctl/internal/resource"
	"github.com/gemctl/gemctl/models"
)

// Construction seams, overridden in tests to avoid real credentials and
// network access.
var (
	environ        = config.Environ
	projectLookup  = auth.ActiveProject
	newTokenSource = auth.NewTokenSource
	newAdapter     = adapter.NewDiscoveryAdapter
)

// runtime bundles everything one command invocation needs after resolution.
type runtime struct {
	rc      *config.ResolvedContext
	api     adapter.DiscoveryAdapter
	tokens  auth.TokenSource
	printer *output.Printer
	log     *logger.Logger
}

// buildRuntime resolves the invocation context and wires credentials,
// adapter, and printer. Called from RunE, never earlier, so --help and flag
// errors stay offline.
func buildRuntime(cmd *cobra.Command, opts *rootOptions) (*runtime, error) {
	format, err := output.ParseFormat(opts.format)
	if err != nil {
		return nil, err
	}

	log := logger.NewCLILogger(opts.verbosity)

	rc, err := config.Resolve(config.Options{
		ProjectID:         opts.projectID,
		Location:          opts.location,
		CollectionID:      opts.collectionID,
		UseServiceAccount: opts.useServiceAccount,
	}, environ(), projectLookup())
	if err != nil {
		if errors.Is(err, config.ErrMissingProjectID) {
			return nil, fmt.Errorf("%w; set a project via:\n"+
				"  1. the --project-id flag\n"+
				"  2. the GOOGLE_CLOUD_PROJECT or GCLOUD_PROJECT environment variable\n"+
				"  3. gcloud config: gcloud config set project PROJECT_ID", err)
		}
		return nil, err
	}

	tokens, err := newTokenSource(cmd.Context(), rc.CredentialMode)
	if err != nil {
		return nil, fmt.Errorf("init %s credentials: %w", rc.CredentialMode, err)
	}

	cfg := adapter.Config{BaseURL: rc.APIBaseURL}
	if rc.CredentialMode == config.UserCredentials {
		// user-credential calls bill against the target project
		cfg.QuotaProject = rc.ProjectID
	}

	api, err := newAdapter(cfg, tokens, log)
	if err != nil {
		return nil, err
	}

	log.Debug().
		Str("project", rc.ProjectID).
		Str("location", rc.Location).
		Str("collection", rc.CollectionID).
		Str("endpoint", rc.APIBaseURL).
		Str("credentials", rc.CredentialMode.String()).
		Str("principal", tokens.Principal()).
		Msg("resolved invocation context")

	return &runtime{
		rc:      rc,
		api:     api,
		tokens:  tokens,
		printer: output.NewPrinter(cmd.OutOrStdout(), format),
		log:     log,
	}, nil
}

// confirm asks a y/N question on the command's streams. Anything but y/Y,
// including EOF, counts as no.
func confirm(cmd *cobra.Command, prompt string) (bool, error) {
	fmt.Fprintf(cmd.OutOrStdout(), "%s [y/N]: ", prompt)

	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("read confirmation: %w", err)
	}

	answer := strings.TrimSpace(line)
	return answer == "y" || answer == "Y", nil
}

// waitForResource waits out a create operation and returns the name of the
// resulting resource. Operations sometimes finish without carrying the
// resource name in their response; in that case the expected name is
// constructed from the resolved context and checked with verify before it is
// trusted.
func waitForResource(cmd *cobra.Command, rt *runtime, op *models.Operation,
	kind resource.Kind, id string, verify func(context.Context, string) error) (string, error) {

	if op != nil && op.Name != "" {
		fmt.Fprintf(cmd.ErrOrStderr(), "Operation started: %s\n", op.Name)
		fmt.Fprintln(cmd.ErrOrStderr(), "Waiting for completion...")

		done, err := rt.api.WaitOperation(cmd.Context(), op.Name)
		if err != nil {
			return "", err
		}
		if name := done.ResourceName(); name != "" {
			return name, nil
		}
	}

	name := fmt.Sprintf("%s/%s/%s", resource.Collection(rt.rc), kind, id)
	rt.log.Debug().Str("name", name).Msg("operation carried no resource name, verifying constructed name")

	if err := verify(cmd.Context(), name); err != nil {
		return "", fmt.Errorf("verify created %s %q: %w", kind, id, err)
	}
	return name, nil
}
