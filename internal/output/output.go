// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The gemctl Authors

// Package output renders command results to the terminal in one of three
// formats: an aligned table (default), JSON, or YAML.
package output

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Format names an output format selected with --format.
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

// ParseFormat validates a --format value.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatTable, FormatJSON, FormatYAML:
		return Format(s), nil
	default:
		return "", fmt.Errorf("unknown output format %q (want table, json, or yaml)", s)
	}
}

// Printer renders values to a writer in a fixed format. One Printer serves
// one command invocation.
type Printer struct {
	w      io.Writer
	format Format
}

// NewPrinter builds a Printer writing to w in the given format.
func NewPrinter(w io.Writer, format Format) *Printer {
	return &Printer{w: w, format: format}
}

// Format reports the format this printer renders in.
func (p *Printer) Format() Format {
	return p.format
}

// Structured renders v as indented JSON or YAML. Table-format printers fall
// back to JSON, mirroring gcloud's behavior for values with no table shape.
func (p *Printer) Structured(v any) error {
	if p.format == FormatYAML {
		data, err := yaml.Marshal(v)
		if err != nil {
			return fmt.Errorf("marshal yaml output: %w", err)
		}
		_, err = p.w.Write(data)
		return err
	}

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json output: %w", err)
	}
	_, err = fmt.Fprintln(p.w, string(data))
	return err
}
