package models

// Engine represents a Discovery Engine search application. The field set
// mirrors the REST resource; unknown fields returned by the API are ignored.
type Engine struct {
	// Name is the fully-qualified resource name, e.g.
	// projects/p/locations/us/collections/default_collection/engines/my-engine.
	Name string `json:"name,omitempty" yaml:"name,omitempty"`

	// DisplayName is the human-readable name shown in the console.
	DisplayName string `json:"displayName,omitempty" yaml:"displayName,omitempty"`

	// SolutionType identifies the engine solution, e.g. SOLUTION_TYPE_SEARCH.
	SolutionType string `json:"solutionType,omitempty" yaml:"solutionType,omitempty"`

	// IndustryVertical is the vertical the engine serves, e.g. GENERIC.
	IndustryVertical string `json:"industryVertical,omitempty" yaml:"industryVertical,omitempty"`

	// AppType distinguishes intranet search apps from other app flavours.
	AppType string `json:"appType,omitempty" yaml:"appType,omitempty"`

	// DataStoreIDs lists the short IDs of the data stores attached to the
	// engine. The IDs are relative to the engine's own collection.
	DataStoreIDs []string `json:"dataStoreIds,omitempty" yaml:"dataStoreIds,omitempty"`

	// SearchEngineConfig holds search-specific settings.
	SearchEngineConfig *SearchEngineConfig `json:"searchEngineConfig,omitempty" yaml:"searchEngineConfig,omitempty"`

	// CommonConfig holds settings shared by all engine types.
	CommonConfig *CommonConfig `json:"commonConfig,omitempty" yaml:"commonConfig,omitempty"`

	// Features maps feature names to their state (e.g. "FEATURE_STATE_ON").
	Features map[string]string `json:"features,omitempty" yaml:"features,omitempty"`

	// CreateTime is the RFC 3339 creation timestamp reported by the API.
	CreateTime string `json:"createTime,omitempty" yaml:"createTime,omitempty"`
}

// SearchEngineConfig holds the search tier and add-ons of a search engine.
type SearchEngineConfig struct {
	// SearchTier is SEARCH_TIER_STANDARD or SEARCH_TIER_ENTERPRISE.
	SearchTier string `json:"searchTier,omitempty" yaml:"searchTier,omitempty"`

	// SearchAddOns lists enabled add-ons, e.g. SEARCH_ADD_ON_LLM.
	SearchAddOns []string `json:"searchAddOns,omitempty" yaml:"searchAddOns,omitempty"`
}

// CommonConfig holds engine settings shared across solution types.
type CommonConfig struct {
	// CompanyName is embedded into LLM prompts by the API.
	CompanyName string `json:"companyName,omitempty" yaml:"companyName,omitempty"`
}

// ID returns the short identifier, i.e. the last path segment of Name.
func (e Engine) ID() string {
	return lastSegment(e.Name)
}
