// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The gemctl Authors

package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/gemctl/gemctl/models"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{in: "table", want: FormatTable},
		{in: "json", want: FormatJSON},
		{in: "yaml", want: FormatYAML},
		{in: "xml", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)

			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEngines_Table(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, FormatTable)

	err := p.Engines([]models.Engine{
		{
			Name:         "projects/p/locations/us/collections/c/engines/search-app",
			DisplayName:  "Search App",
			SolutionType: "SOLUTION_TYPE_SEARCH",
		},
	})

	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "search-app")
	assert.Contains(t, out, "Search App")
	assert.Contains(t, out, "SEARCH")
	assert.NotContains(t, out, "SOLUTION_TYPE_SEARCH")
	assert.Contains(t, out, "Total: 1 engine(s)")
}

func TestEngines_TableEmpty(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, FormatTable)

	err := p.Engines(nil)

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "No engines found.")
}

func TestEngines_JSON(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, FormatJSON)
	engines := []models.Engine{{Name: "projects/p/locations/us/collections/c/engines/e"}}

	err := p.Engines(engines)

	require.NoError(t, err)

	var decoded []models.Engine
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, engines, decoded)
}

func TestDataStores_YAML(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, FormatYAML)
	stores := []models.DataStore{{
		Name:          "projects/p/locations/us/collections/c/dataStores/d",
		ContentConfig: "CONTENT_REQUIRED",
	}}

	err := p.DataStores(stores)

	require.NoError(t, err)

	var decoded []models.DataStore
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, stores, decoded)
}

func TestDocuments_Table(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, FormatTable)

	err := p.Documents([]models.Document{
		{
			ID:        "doc-1",
			Content:   &models.DocumentContent{URI: "gs://bucket/docs/annual-report-2025-final-revision-v3.pdf"},
			IndexTime: "2026-03-15T10:30:00Z",
		},
		{ID: "doc-2"},
	})

	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "doc-1")
	assert.Contains(t, out, "doc-2")
	assert.Contains(t, out, "03/15/2026")
	// long URIs are truncated with an ellipsis
	assert.Contains(t, out, "...")
	assert.NotContains(t, out, "v3.pdf")
	assert.Contains(t, out, "Total: 2 document(s)")
}

func TestEngine_DescribeView(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, FormatTable)

	err := p.Engine(&models.Engine{
		Name:             "projects/p/locations/us/collections/c/engines/e",
		DisplayName:      "My Engine",
		SolutionType:     "SOLUTION_TYPE_SEARCH",
		IndustryVertical: "GENERIC",
		DataStoreIDs:     []string{"ds-1", "ds-2"},
		SearchEngineConfig: &models.SearchEngineConfig{
			SearchTier:   "SEARCH_TIER_ENTERPRISE",
			SearchAddOns: []string{"SEARCH_ADD_ON_LLM"},
		},
		Features: map[string]string{
			"chat":   "FEATURE_STATE_ON",
			"upload": "FEATURE_STATE_OFF",
		},
	})

	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "Engine: My Engine")
	assert.Contains(t, out, "SEARCH_TIER_ENTERPRISE")
	assert.Contains(t, out, "- ds-1")
	assert.Contains(t, out, "- ds-2")
	assert.Contains(t, out, "Features (1/2 enabled)")
	assert.Contains(t, out, "chat")
}

func TestDataStore_DescribeView(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, FormatTable)

	err := p.DataStore(&models.DataStore{
		Name:          "projects/p/locations/us/collections/c/dataStores/d",
		DisplayName:   "My Store",
		ContentConfig: "CONTENT_REQUIRED",
		BillingEstimation: &models.BillingEstimation{
			UnstructuredDataSize: "5242880",
		},
		Schema: &models.Schema{Name: "projects/p/locations/us/collections/c/dataStores/d/schemas/default_schema"},
	})

	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "Data Store: My Store")
	assert.Contains(t, out, "5.00 MB")
	assert.Contains(t, out, "default_schema")
}

func TestBundle_Structured(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, FormatJSON)

	err := p.Bundle(&models.EngineConfigBundle{
		Engine:     models.Engine{Name: "projects/p/locations/us/collections/c/engines/e"},
		DataStores: []models.DataStore{{Name: "projects/p/locations/us/collections/c/dataStores/d"}},
	})

	require.NoError(t, err)

	var decoded models.EngineConfigBundle
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Len(t, decoded.DataStores, 1)
}

func TestOperation_View(t *testing.T) {
	op := &models.Operation{
		Name: "projects/p/locations/us/collections/c/operations/create-engine-1",
	}

	t.Run("table", func(t *testing.T) {
		var buf bytes.Buffer
		p := NewPrinter(&buf, FormatTable)

		require.NoError(t, p.Operation("projects/p/locations/us/collections/c/engines/e", op))

		assert.Contains(t, buf.String(), "engines/e")
		assert.Contains(t, buf.String(), "create-engine-1")
	})

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		p := NewPrinter(&buf, FormatJSON)

		require.NoError(t, p.Operation("projects/p/locations/us/collections/c/engines/e", op))

		var decoded map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
		assert.Equal(t, "projects/p/locations/us/collections/c/engines/e", decoded["resource"])
	})
}

func TestFormatDataSize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "", want: ""},
		{in: "1048576", want: "1.00 MB"},
		{in: "not-a-number", want: "not-a-number"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, formatDataSize(tt.in))
	}
}

func TestFormatTimestamp(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "", want: ""},
		{in: "2026-03-15T10:30:00Z", want: "03/15/2026, 10:30:00 AM"},
		{in: "garbage", want: "garbage"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, formatTimestamp(tt.in))
	}
}
