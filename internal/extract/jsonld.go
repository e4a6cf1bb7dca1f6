// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/pdiddy/issuefeed/pkg/types"
)

const issueType = "PublicationIssue"

// Fixed repair rewrites for the malformed JSON-LD the site is known to
// emit: trailing commas before object and array closers.
var (
	trailingCommaObject = regexp.MustCompile(`,\s*}`)
	trailingCommaArray  = regexp.MustCompile(`,\s*\]`)
)

// fromJSONLD runs the fallback extraction stage: scan every JSON-LD
// script block for a PublicationIssue entry and return its hasPart list.
// The first block with a non-empty list wins. hasPart entries carry image
// URLs but no article URLs; that is how the site publishes them.
func fromJSONLD(page string, report *Report) []Record {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	if err != nil {
		report.note("parsing page HTML: %v", err)
		return nil
	}

	var records []Record
	doc.Find(`script[type="application/ld+json"]`).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		raw := strings.TrimSpace(s.Text())
		if raw == "" {
			return true
		}

		data, ok := parseTolerant(raw)
		if !ok {
			report.note("skipping undecodable JSON-LD block")
			return true
		}

		parts, found := issueParts(data)
		if !found {
			return true
		}

		for _, part := range parts {
			fields, ok := part.(map[string]any)
			if !ok {
				continue
			}
			records = append(records, Record{Fields: fields, Stage: types.StageJSONLD})
		}
		return false
	})
	return records
}

// parseTolerant is the two-attempt decode strategy: strict parse, then
// the fixed repair rewrites, then give up.
func parseTolerant(raw string) (any, bool) {
	var data any
	if err := json.Unmarshal([]byte(raw), &data); err == nil {
		return data, true
	}
	if err := json.Unmarshal([]byte(repairJSON(raw)), &data); err == nil {
		return data, true
	}
	return nil, false
}

func repairJSON(raw string) string {
	out := trailingCommaObject.ReplaceAllString(raw, "}")
	return trailingCommaArray.ReplaceAllString(out, "]")
}

// issueParts searches a decoded JSON-LD document for the issue container.
// The document may be the entry itself, an object with an @graph list, or
// a top-level list. Only the first PublicationIssue entry is considered;
// found reports whether it held a non-empty hasPart list.
func issueParts(data any) (parts []any, found bool) {
	switch t := data.(type) {
	case map[string]any:
		entries, ok := t["@graph"].([]any)
		if !ok {
			entries = []any{t}
		}
		return issuePartsFrom(entries)
	case []any:
		return issuePartsFrom(t)
	}
	return nil, false
}

func issuePartsFrom(entries []any) ([]any, bool) {
	for _, entry := range entries {
		m, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		if !isIssueType(m["@type"]) {
			continue
		}
		parts, _ := m["hasPart"].([]any)
		return parts, len(parts) > 0
	}
	return nil, false
}

// isIssueType matches a JSON-LD @type tag, which may be a string or a
// list of strings.
func isIssueType(t any) bool {
	switch v := t.(type) {
	case string:
		return v == issueType
	case []any:
		for _, item := range v {
			if s, ok := item.(string); ok && s == issueType {
				return true
			}
		}
	}
	return false
}
