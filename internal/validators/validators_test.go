// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The gemctl Authors

package validators

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResourceID(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		wantErr bool
	}{
		{name: "simple id", id: "my-engine"},
		{name: "with digits", id: "docs2024"},
		{name: "single letter", id: "a"},
		{name: "empty", id: "", wantErr: true},
		{name: "leading digit", id: "1engine", wantErr: true},
		{name: "leading hyphen", id: "-engine", wantErr: true},
		{name: "uppercase", id: "MyEngine", wantErr: true},
		{name: "underscore", id: "my_engine", wantErr: true},
		{name: "qualified path", id: "projects/p/engines/e", wantErr: true},
		{name: "too long", id: "a" + strings.Repeat("b", 63), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ResourceID(tt.id)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidResourceID)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestGCSURI(t *testing.T) {
	tests := []struct {
		name    string
		uri     string
		wantErr bool
	}{
		{name: "bucket with pattern", uri: "gs://bucket/docs/*"},
		{name: "bare bucket", uri: "gs://bucket"},
		{name: "http url", uri: "https://bucket/docs", wantErr: true},
		{name: "missing bucket", uri: "gs://", wantErr: true},
		{name: "empty", uri: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := GCSURI(tt.uri)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidGCSURI)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
