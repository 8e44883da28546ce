// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The gemctl Authors

package output

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/gemctl/gemctl/models"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	labelStyle = lipgloss.NewStyle().Faint(true)
)

func (p *Printer) title(text string) {
	fmt.Fprintln(p.w, titleStyle.Render(text))
}

func (p *Printer) field(label, value string) {
	if value == "" {
		return
	}
	fmt.Fprintf(p.w, "%s %s\n", labelStyle.Render(label+":"), value)
}

// Engine renders a single-engine describe view.
func (p *Printer) Engine(e *models.Engine) error {
	if p.format != FormatTable {
		return p.Structured(e)
	}

	p.title("Engine: " + e.DisplayName)
	p.field("Name", e.Name)
	p.field("Solution Type", e.SolutionType)
	p.field("Industry Vertical", e.IndustryVertical)
	p.field("App Type", e.AppType)
	p.field("Created", e.CreateTime)

	if sec := e.SearchEngineConfig; sec != nil {
		fmt.Fprintln(p.w)
		p.title("Search Config")
		p.field("Search Tier", sec.SearchTier)
		p.field("Search Add-ons", strings.Join(sec.SearchAddOns, ", "))
	}

	if cc := e.CommonConfig; cc != nil {
		p.field("Company", cc.CompanyName)
	}

	if len(e.DataStoreIDs) > 0 {
		fmt.Fprintln(p.w)
		p.title(fmt.Sprintf("Data Stores (%d)", len(e.DataStoreIDs)))
		for _, id := range e.DataStoreIDs {
			fmt.Fprintf(p.w, "  - %s\n", id)
		}
	}

	if len(e.Features) > 0 {
		enabled := make([]string, 0, len(e.Features))
		for name, state := range e.Features {
			if strings.Contains(state, "ON") {
				enabled = append(enabled, name)
			}
		}
		sort.Strings(enabled)

		fmt.Fprintln(p.w)
		p.title(fmt.Sprintf("Features (%d/%d enabled)", len(enabled), len(e.Features)))
		for _, name := range enabled {
			fmt.Fprintf(p.w, "  %s\n", name)
		}
	}

	return nil
}

// DataStore renders a single-data-store describe view.
func (p *Printer) DataStore(ds *models.DataStore) error {
	if p.format != FormatTable {
		return p.Structured(ds)
	}

	p.title("Data Store: " + ds.DisplayName)
	p.field("Name", ds.Name)
	p.field("Industry Vertical", ds.IndustryVertical)
	p.field("Content Config", ds.ContentConfig)
	p.field("Created", ds.CreateTime)
	p.field("Solution Types", strings.Join(ds.SolutionTypes, ", "))
	if ds.ACLEnabled {
		p.field("ACL Enabled", "true")
	}

	if be := ds.BillingEstimation; be != nil {
		fmt.Fprintln(p.w)
		p.title("Billing Estimation")
		p.field("Size", formatDataSize(be.UnstructuredDataSize))
		p.field("Updated", be.UnstructuredDataUpdateTime)
	}

	if ds.Schema != nil {
		fmt.Fprintln(p.w)
		p.field("Schema", ds.Schema.Name)
	}

	return nil
}

// Bundle renders a full engine configuration: the engine followed by every
// attached data store.
func (p *Printer) Bundle(b *models.EngineConfigBundle) error {
	if p.format != FormatTable {
		return p.Structured(b)
	}

	if err := p.Engine(&b.Engine); err != nil {
		return err
	}
	for i := range b.DataStores {
		fmt.Fprintln(p.w)
		if err := p.DataStore(&b.DataStores[i]); err != nil {
			return err
		}
	}
	return nil
}

// Operation renders the outcome of a create command.
func (p *Printer) Operation(resourceName string, op *models.Operation) error {
	if p.format != FormatTable {
		return p.Structured(map[string]any{
			"resource":  resourceName,
			"operation": op,
		})
	}

	p.field("Created", resourceName)
	if op != nil {
		p.field("Operation", op.Name)
	}
	return nil
}

// formatDataSize converts the API's string byte count into megabytes for
// display. Unparseable values pass through unchanged.
func formatDataSize(raw string) string {
	if raw == "" {
		return ""
	}
	bytes, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return raw
	}
	return fmt.Sprintf("%.2f MB", float64(bytes)/(1024*1024))
}
