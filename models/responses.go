package models

// ListEnginesResponse is the envelope of the engines list call.
type ListEnginesResponse struct {
	Engines       []Engine `json:"engines"`
	NextPageToken string   `json:"nextPageToken,omitempty"`
}

// ListDataStoresResponse is the envelope of the dataStores list call.
type ListDataStoresResponse struct {
	DataStores    []DataStore `json:"dataStores"`
	NextPageToken string      `json:"nextPageToken,omitempty"`
}

// ListCollectionsResponse is the envelope of the collections list call.
type ListCollectionsResponse struct {
	Collections   []Collection `json:"collections"`
	NextPageToken string       `json:"nextPageToken,omitempty"`
}

// ListDocumentsResponse is the envelope of the documents list call.
type ListDocumentsResponse struct {
	Documents     []Document `json:"documents"`
	NextPageToken string     `json:"nextPageToken,omitempty"`
}

// EngineConfigBundle is the result of a full engine describe: the engine
// together with the resolved configuration of every attached data store.
type EngineConfigBundle struct {
	Engine     Engine      `json:"engine" yaml:"engine"`
	DataStores []DataStore `json:"dataStores" yaml:"dataStores"`
}
