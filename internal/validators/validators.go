// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The gemctl Authors

// Package validators checks user-supplied inputs before any API call is
// made, so obviously bad values fail fast with a local error instead of a
// round trip and an opaque 400.
package validators

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

var (
	ErrInvalidResourceID = errors.New("invalid resource id")
	ErrInvalidGCSURI     = errors.New("invalid gcs uri")
)

// resource IDs follow the API's id pattern: lowercase letters, digits and
// hyphens, starting with a letter, at most 63 characters
var resourceIDPattern = regexp.MustCompile(`^[a-z][a-z0-9-]{0,62}$`)

// ResourceID validates a short engine or data store ID.
func ResourceID(id string) error {
	if !resourceIDPattern.MatchString(id) {
		return fmt.Errorf("%w: %q must start with a lowercase letter and contain only lowercase letters, digits, and hyphens (max 63 chars)", ErrInvalidResourceID, id)
	}
	return nil
}

// GCSURI validates a Cloud Storage source location, e.g. gs://bucket/docs/*.
func GCSURI(uri string) error {
	rest, ok := strings.CutPrefix(uri, "gs://")
	if !ok {
		return fmt.Errorf("%w: %q must start with gs://", ErrInvalidGCSURI, uri)
	}

	bucket, _, _ := strings.Cut(rest, "/")
	if bucket == "" {
		return fmt.Errorf("%w: %q names no bucket", ErrInvalidGCSURI, uri)
	}
	return nil
}
