// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extract locates article records embedded in issue-page HTML.
//
// Extraction is a two-stage strategy. The primary stage reads the
// window.__DATA__ blob the site embeds for its own client code; it carries
// full article metadata including URLs. When that yields nothing, the
// fallback stage scans JSON-LD structured-data blocks for the
// PublicationIssue entry, whose hasPart list names the issue's articles
// but carries no article URLs.
//
// Neither stage fails: malformed input degrades to an empty result, and
// the Report tells the caller which stage, if any, produced the records.
package extract

import (
	"fmt"
	"io"

	"github.com/pdiddy/issuefeed/pkg/types"
)

// Record is one raw article mapping plus its provenance. Fields is the
// source representation untouched; the normalizer flattens it.
type Record struct {
	Fields  map[string]any
	Stage   types.ExtractionStage
	Section string
}

// Report describes an extraction run so callers and tests can assert on
// which stage produced the articles without scraping log output.
type Report struct {
	// Stage is the stage that produced the records, or empty when both
	// stages came up empty.
	Stage types.ExtractionStage

	// SectionCounts holds per-section record counts for the primary stage.
	SectionCounts map[string]int

	// Notes records non-fatal extraction problems in occurrence order.
	Notes []string
}

func (r *Report) note(format string, args ...any) {
	r.Notes = append(r.Notes, fmt.Sprintf(format, args...))
}

// Extract runs the two-stage locator over raw page HTML. It never fails:
// the result is a possibly empty record list plus a report. Progress lines
// go to w.
func Extract(page string, w io.Writer) ([]Record, Report) {
	var report Report

	records := fromWindowData(page, &report)
	if len(records) > 0 {
		report.Stage = types.StageWindowData
		fmt.Fprintf(w, "extracted %d articles from window.__DATA__\n", len(records))
		return records, report
	}

	fmt.Fprintln(w, "window.__DATA__ extraction failed or empty; trying JSON-LD fallback")
	records = fromJSONLD(page, &report)
	if len(records) > 0 {
		report.Stage = types.StageJSONLD
		fmt.Fprintf(w, "extracted %d articles from JSON-LD (article URLs unavailable)\n", len(records))
		return records, report
	}

	fmt.Fprintln(w, "no articles found in page")
	return nil, report
}
