package models

// Document is a single ingested document inside a data store branch.
type Document struct {
	// Name is the fully-qualified document resource name.
	Name string `json:"name,omitempty" yaml:"name,omitempty"`

	// ID is the short document identifier.
	ID string `json:"id,omitempty" yaml:"id,omitempty"`

	// Content describes where the raw document bytes live.
	Content *DocumentContent `json:"content,omitempty" yaml:"content,omitempty"`

	// IndexTime is when the document was last indexed, RFC 3339.
	IndexTime string `json:"indexTime,omitempty" yaml:"indexTime,omitempty"`
}

// DocumentContent points at the raw content of a document.
type DocumentContent struct {
	// URI is the source location, typically a gs:// object path.
	URI string `json:"uri,omitempty" yaml:"uri,omitempty"`

	// MimeType is the content type reported at ingestion.
	MimeType string `json:"mimeType,omitempty" yaml:"mimeType,omitempty"`
}

// Collection is a grouping namespace for engines and data stores.
type Collection struct {
	// Name is the fully-qualified collection resource name.
	Name string `json:"name,omitempty" yaml:"name,omitempty"`

	// DisplayName is the human-readable collection name.
	DisplayName string `json:"displayName,omitempty" yaml:"displayName,omitempty"`
}

// ID returns the short identifier, i.e. the last path segment of Name.
func (c Collection) ID() string {
	return lastSegment(c.Name)
}
