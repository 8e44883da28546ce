package models

// CreateEngineRequest is the body of the engines create call.
type CreateEngineRequest struct {
	DisplayName        string              `json:"displayName"`
	SolutionType       string              `json:"solutionType"`
	IndustryVertical   string              `json:"industryVertical"`
	AppType            string              `json:"appType,omitempty"`
	DataStoreIDs       []string            `json:"dataStoreIds,omitempty"`
	SearchEngineConfig *SearchEngineConfig `json:"searchEngineConfig,omitempty"`
	CommonConfig       *CommonConfig       `json:"commonConfig,omitempty"`
}

// CreateDataStoreRequest is the body of the dataStores create call.
type CreateDataStoreRequest struct {
	DisplayName      string   `json:"displayName"`
	IndustryVertical string   `json:"industryVertical"`
	SolutionTypes    []string `json:"solutionTypes,omitempty"`
	ContentConfig    string   `json:"contentConfig,omitempty"`
}

// ImportDocumentsRequest is the body of the documents:import call.
type ImportDocumentsRequest struct {
	GCSSource          *GCSSource `json:"gcsSource,omitempty"`
	ReconciliationMode string     `json:"reconciliationMode,omitempty"`
}

// GCSSource describes a Cloud Storage import source.
type GCSSource struct {
	// InputURIs are gs:// object patterns, e.g. gs://bucket/docs/*.
	InputURIs []string `json:"inputUris"`

	// DataSchema is one of content, custom, csv, document.
	DataSchema string `json:"dataSchema,omitempty"`
}
