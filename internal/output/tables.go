// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The gemctl Authors

package output

import (
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/gemctl/gemctl/models"
)

const maxURIColumnWidth = 50

// Engines renders an engine list. Table format shows short IDs; structured
// formats emit the full resources.
func (p *Printer) Engines(engines []models.Engine) error {
	if p.format != FormatTable {
		return p.Structured(engines)
	}

	if len(engines) == 0 {
		_, err := fmt.Fprintln(p.w, "No engines found.")
		return err
	}

	w := tabwriter.NewWriter(p.w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tDISPLAY NAME\tTYPE")
	for _, e := range engines {
		fmt.Fprintf(w, "%s\t%s\t%s\n",
			e.ID(),
			e.DisplayName,
			strings.TrimPrefix(e.SolutionType, "SOLUTION_TYPE_"))
	}
	if err := w.Flush(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(p.w, "\nTotal: %d engine(s)\n", len(engines))
	return err
}

// DataStores renders a data store list.
func (p *Printer) DataStores(stores []models.DataStore) error {
	if p.format != FormatTable {
		return p.Structured(stores)
	}

	if len(stores) == 0 {
		_, err := fmt.Fprintln(p.w, "No data stores found.")
		return err
	}

	w := tabwriter.NewWriter(p.w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tDISPLAY NAME\tCONTENT CONFIG")
	for _, ds := range stores {
		fmt.Fprintf(w, "%s\t%s\t%s\n", ds.ID(), ds.DisplayName, ds.ContentConfig)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(p.w, "\nTotal: %d data store(s)\n", len(stores))
	return err
}

// Collections renders a collection list.
func (p *Printer) Collections(collections []models.Collection) error {
	if p.format != FormatTable {
		return p.Structured(collections)
	}

	if len(collections) == 0 {
		_, err := fmt.Fprintln(p.w, "No collections found.")
		return err
	}

	w := tabwriter.NewWriter(p.w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tDISPLAY NAME")
	for _, c := range collections {
		fmt.Fprintf(w, "%s\t%s\n", c.ID(), c.DisplayName)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(p.w, "\nTotal: %d collection(s)\n", len(collections))
	return err
}

// Documents renders a document list.
func (p *Printer) Documents(documents []models.Document) error {
	if p.format != FormatTable {
		return p.Structured(documents)
	}

	if len(documents) == 0 {
		_, err := fmt.Fprintln(p.w, "No documents found in this data store.")
		return err
	}

	w := tabwriter.NewWriter(p.w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tURI\tINDEX TIME")
	for _, doc := range documents {
		uri := ""
		if doc.Content != nil {
			uri = truncate(doc.Content.URI, maxURIColumnWidth)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", doc.ID, uri, formatTimestamp(doc.IndexTime))
	}
	if err := w.Flush(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(p.w, "\nTotal: %d document(s)\n", len(documents))
	return err
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}

// formatTimestamp reformats an RFC 3339 API timestamp for table display.
// Unparseable values pass through unchanged.
func formatTimestamp(ts string) string {
	if ts == "" {
		return ""
	}
	parsed, err := time.Parse(time.RFC3339, ts)
	if err != nil {
		return ts
	}
	return parsed.Format("01/02/2006, 03:04:05 PM")
}
