// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/pdiddy/issuefeed/pkg/types"
)

// The site embeds its page state in two known syntaxes: a JSON string
// inside a JS template literal handed to JSON.parse, and a bare object
// assignment. Both are tried in that order.
var (
	windowDataWrapped = regexp.MustCompile("window\\.__DATA__\\s*=\\s*JSON\\.parse\\(`((?s).*?)`\\)\\s*;")
	windowDataBare    = regexp.MustCompile(`window\.__DATA__\s*=\s*((?s)\{.*?\})\s*;`)
)

// previewSections lists the article_previews groupings in source
// declaration order. Records keep this order in the output.
var previewSections = []string{"advances", "departments", "features"}

// fromWindowData runs the primary extraction stage. A missing variable,
// undecodable JSON, or an unexpected nested structure yields nil with a
// note; none of these abort the run.
func fromWindowData(page string, report *Report) []Record {
	raw, ok := locateWindowData(page)
	if !ok {
		report.note("window.__DATA__ not found in HTML")
		return nil
	}

	// Template literals escape literal backticks as \`; JSON does not
	// know that sequence, so it must be unescaped before decoding.
	raw = strings.ReplaceAll(raw, "\\`", "`")

	var data map[string]any
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		report.note("window.__DATA__ is not valid JSON: %v", err)
		return nil
	}

	previews, ok := dig(data, "initialData", "issueData", "article_previews")
	if !ok {
		report.note("article_previews path missing in window.__DATA__")
		return nil
	}
	groups, ok := previews.(map[string]any)
	if !ok {
		report.note("article_previews is not an object")
		return nil
	}

	var records []Record
	for _, section := range previewSections {
		list, ok := groups[section].([]any)
		if !ok {
			continue
		}
		for _, item := range list {
			fields, ok := item.(map[string]any)
			if !ok {
				// Noise in the preview list; skip silently.
				continue
			}
			records = append(records, Record{
				Fields:  fields,
				Stage:   types.StageWindowData,
				Section: section,
			})
			if report.SectionCounts == nil {
				report.SectionCounts = make(map[string]int)
			}
			report.SectionCounts[section]++
		}
	}
	return records
}

// locateWindowData returns the raw JSON text of the window.__DATA__
// assignment, trying the JSON.parse-wrapped syntax first.
func locateWindowData(page string) (string, bool) {
	if m := windowDataWrapped.FindStringSubmatch(page); m != nil {
		return m[1], true
	}
	if m := windowDataBare.FindStringSubmatch(page); m != nil {
		return m[1], true
	}
	return "", false
}

// dig walks nested string-keyed objects along path.
func dig(m map[string]any, path ...string) (any, bool) {
	var cur any = m
	for _, key := range path {
		obj, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		cur, ok = obj[key]
		if !ok {
			return nil, false
		}
	}
	return cur, true
}
