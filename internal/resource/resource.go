// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The gemctl Authors

// Package resource normalizes user-supplied resource identifiers into
// canonical Discovery Engine resource paths.
//
// Callers may pass either a bare short ID ("my-engine") or a fully-qualified
// path ("projects/p/locations/us/collections/c/engines/my-engine").
// [Normalize] is idempotent: an already-qualified path is validated and
// returned unchanged, a bare ID is expanded from the resolved context.
package resource

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gemctl/gemctl/internal/config"
)

// ErrMalformedResourcePath indicates that a fully-qualified resource path is
// missing required segments for its kind.
var ErrMalformedResourcePath = errors.New("malformed resource path")

// Kind identifies a resource kind by its API path segment.
type Kind string

const (
	// Engine is a search application resource.
	Engine Kind = "engines"

	// DataStore is a document container resource.
	DataStore Kind = "dataStores"
)

// DefaultBranch is the branch that holds documents unless stated otherwise.
const DefaultBranch = "default_branch"

// qualified paths have exactly these segments:
// projects/{p}/locations/{l}/collections/{c}/{kind}/{id}
const qualifiedSegments = 8

// Normalize converts raw into a canonical resource path for kind.
//
// A value starting with "projects/" is treated as already qualified; it is
// checked for the expected segment count and keywords and returned
// unchanged, so Normalize(Normalize(x)) == Normalize(x). Any other value is
// treated as a bare ID and expanded using rc's project, location, and
// collection. Returns [ErrMalformedResourcePath] for bad qualified input.
func Normalize(raw string, kind Kind, rc *config.ResolvedContext) (string, error) {
	if strings.HasPrefix(raw, "projects/") {
		if err := validateQualified(raw, kind); err != nil {
			return "", err
		}
		return raw, nil
	}

	if raw == "" {
		return "", fmt.Errorf("%w: empty %s id", ErrMalformedResourcePath, kind)
	}

	return fmt.Sprintf("%s/%s/%s", Collection(rc), kind, raw), nil
}

func validateQualified(raw string, kind Kind) error {
	segments := strings.Split(raw, "/")
	if len(segments) != qualifiedSegments {
		return fmt.Errorf("%w: want %d segments, got %d in %q",
			ErrMalformedResourcePath, qualifiedSegments, len(segments), raw)
	}

	keywords := map[int]string{
		0: "projects",
		2: "locations",
		4: "collections",
		6: string(kind),
	}
	for idx, want := range keywords {
		if segments[idx] != want {
			return fmt.Errorf("%w: segment %d of %q must be %q",
				ErrMalformedResourcePath, idx, raw, want)
		}
	}

	// keyword segments are followed by their IDs
	for _, idx := range []int{1, 3, 5, 7} {
		if segments[idx] == "" {
			return fmt.Errorf("%w: empty segment %d in %q", ErrMalformedResourcePath, idx, raw)
		}
	}

	return nil
}

// Parent returns the project-level parent path, projects/{p}/locations/{l}.
func Parent(rc *config.ResolvedContext) string {
	return fmt.Sprintf("projects/%s/locations/%s", rc.ProjectID, rc.Location)
}

// Collection returns the collection parent path,
// projects/{p}/locations/{l}/collections/{c}.
func Collection(rc *config.ResolvedContext) string {
	return fmt.Sprintf("%s/collections/%s", Parent(rc), rc.CollectionID)
}

// Branch returns the branch path under a qualified data store name. An empty
// branch selects [DefaultBranch].
func Branch(dataStoreName, branch string) string {
	if branch == "" {
		branch = DefaultBranch
	}
	return fmt.Sprintf("%s/branches/%s", dataStoreName, branch)
}

// SiblingDataStore builds the qualified path of a data store that lives in
// the same collection as the given engine name. Used to resolve the
// dataStoreIds an engine reports into fetchable resource names.
func SiblingDataStore(engineName, dataStoreID string) (string, error) {
	if err := validateQualified(engineName, Engine); err != nil {
		return "", err
	}

	segments := strings.Split(engineName, "/")
	collection := strings.Join(segments[:6], "/")
	return fmt.Sprintf("%s/%s/%s", collection, DataStore, dataStoreID), nil
}
