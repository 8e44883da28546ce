package models

import "strings"

// Operation is a long-running operation returned by create and import calls.
// Callers poll it until Done is true, then inspect Error or Response.
type Operation struct {
	// Name is the operation resource name, e.g.
	// projects/p/locations/us/collections/c/operations/create-engine-123.
	Name string `json:"name,omitempty" yaml:"name,omitempty"`

	// Done reports whether the operation has finished.
	Done bool `json:"done,omitempty" yaml:"done,omitempty"`

	// Error is set when the operation finished unsuccessfully.
	Error *OperationError `json:"error,omitempty" yaml:"error,omitempty"`

	// Response is the operation result payload. For create operations it
	// carries the name of the created resource.
	Response map[string]any `json:"response,omitempty" yaml:"response,omitempty"`
}

// OperationError is the status carried by a failed operation.
type OperationError struct {
	Code    int    `json:"code,omitempty" yaml:"code,omitempty"`
	Message string `json:"message,omitempty" yaml:"message,omitempty"`
}

// ResourceName extracts the created resource name from the operation
// response, or returns an empty string if the response carries none.
func (o Operation) ResourceName() string {
	if o.Response == nil {
		return ""
	}
	name, _ := o.Response["name"].(string)
	return name
}

func lastSegment(name string) string {
	if idx := strings.LastIndex(name, "/"); idx >= 0 {
		return name[idx+1:]
	}
	return name
}
