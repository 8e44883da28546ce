package models

// DataStore represents a Discovery Engine data store: a named collection of
// ingested documents that one or more engines can search over.
type DataStore struct {
	// Name is the fully-qualified resource name, e.g.
	// projects/p/locations/us/collections/default_collection/dataStores/my-store.
	Name string `json:"name,omitempty" yaml:"name,omitempty"`

	// DisplayName is the human-readable name shown in the console.
	DisplayName string `json:"displayName,omitempty" yaml:"displayName,omitempty"`

	// IndustryVertical is the vertical the store serves, e.g. GENERIC.
	IndustryVertical string `json:"industryVertical,omitempty" yaml:"industryVertical,omitempty"`

	// SolutionTypes lists the solutions the store participates in.
	SolutionTypes []string `json:"solutionTypes,omitempty" yaml:"solutionTypes,omitempty"`

	// ContentConfig describes the kind of content held by the store,
	// e.g. CONTENT_REQUIRED for unstructured documents.
	ContentConfig string `json:"contentConfig,omitempty" yaml:"contentConfig,omitempty"`

	// ACLEnabled reports whether document-level access control is on.
	ACLEnabled bool `json:"aclEnabled,omitempty" yaml:"aclEnabled,omitempty"`

	// BillingEstimation carries the data size figures the API bills on.
	BillingEstimation *BillingEstimation `json:"billingEstimation,omitempty" yaml:"billingEstimation,omitempty"`

	// DocumentProcessingConfig describes parsing and chunking settings.
	DocumentProcessingConfig map[string]any `json:"documentProcessingConfig,omitempty" yaml:"documentProcessingConfig,omitempty"`

	// Schema is the default schema of the store. Not part of the dataStore
	// resource itself; populated by describe when the schema fetch succeeds.
	Schema *Schema `json:"schema,omitempty" yaml:"schema,omitempty"`

	// CreateTime is the RFC 3339 creation timestamp reported by the API.
	CreateTime string `json:"createTime,omitempty" yaml:"createTime,omitempty"`
}

// BillingEstimation holds the data sizes the API reports for billing.
type BillingEstimation struct {
	// UnstructuredDataSize is the size in bytes, serialized as a string.
	UnstructuredDataSize string `json:"unstructuredDataSize,omitempty" yaml:"unstructuredDataSize,omitempty"`

	// UnstructuredDataUpdateTime is when the size figure was last refreshed.
	UnstructuredDataUpdateTime string `json:"unstructuredDataUpdateTime,omitempty" yaml:"unstructuredDataUpdateTime,omitempty"`
}

// Schema is the document schema attached to a data store.
type Schema struct {
	// Name is the fully-qualified schema resource name.
	Name string `json:"name,omitempty" yaml:"name,omitempty"`

	// StructSchema is the raw JSON-schema definition.
	StructSchema map[string]any `json:"structSchema,omitempty" yaml:"structSchema,omitempty"`
}

// ID returns the short identifier, i.e. the last path segment of Name.
func (d DataStore) ID() string {
	return lastSegment(d.Name)
}
