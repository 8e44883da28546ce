package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

// candidate is a partially-resolved context contributed by one source.
// Empty fields are filled by lower-priority sources during the merge.
type candidate struct {
	ProjectID    string
	Location     string
	CollectionID string
}

type contextBuilder struct {
	candidates []candidate
	err        error
}

func newContextBuilder() *contextBuilder {
	return &contextBuilder{
		candidates: make([]candidate, 0, 4),
	}
}

func (b *contextBuilder) withFlags(opts Options) *contextBuilder {
	b.candidates = append(b.candidates, candidate{
		ProjectID:    opts.ProjectID,
		Location:     opts.Location,
		CollectionID: opts.CollectionID,
	})
	return b
}

func (b *contextBuilder) withEnv(env EnvironmentView) *contextBuilder {
	envCandidate, err := parseEnv(env)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.candidates = append(b.candidates, envCandidate)
	return b
}

// withProjectLookup consults the external source only when no
// higher-priority candidate has produced a project ID. A failed lookup is
// not fatal: resolution falls through to the missing-project error.
func (b *contextBuilder) withProjectLookup(lookup ProjectLookup) *contextBuilder {
	if lookup == nil {
		return b
	}

	for _, c := range b.candidates {
		if c.ProjectID != "" {
			return b
		}
	}

	projectID, err := lookup()
	if err != nil {
		return b
	}

	b.candidates = append(b.candidates, candidate{ProjectID: projectID})
	return b
}

func (b *contextBuilder) withDefaults() *contextBuilder {
	b.candidates = append(b.candidates, candidate{
		Location:     DefaultLocation,
		CollectionID: DefaultCollection,
	})
	return b
}

func (b *contextBuilder) build(useServiceAccount bool) (*ResolvedContext, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during context resolution: %w", b.err)
	}

	merged := candidate{}
	for _, c := range b.candidates {
		if err := mergo.Merge(&merged, c); err != nil {
			return nil, fmt.Errorf("error merging context sources: %w", err)
		}
	}

	if merged.ProjectID == "" {
		return nil, ErrMissingProjectID
	}

	baseURL, err := EndpointFor(merged.Location)
	if err != nil {
		return nil, err
	}

	mode := UserCredentials
	if useServiceAccount {
		mode = ServiceAccount
	}

	return &ResolvedContext{
		ProjectID:      merged.ProjectID,
		Location:       merged.Location,
		CollectionID:   merged.CollectionID,
		APIBaseURL:     baseURL,
		CredentialMode: mode,
	}, nil
}
