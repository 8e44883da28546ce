package config

import "errors"

// Resolution errors. All of them are fatal to the current invocation:
// configuration errors are not transient and are never retried.
var (
	// ErrMissingProjectID indicates that no project ID could be resolved
	// from flags, environment variables, or the external project lookup.
	ErrMissingProjectID = errors.New("missing project id")

	// ErrUnsupportedLocation indicates that the resolved location matches
	// no known regional endpoint prefix.
	ErrUnsupportedLocation = errors.New("unsupported location")
)
