// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package normalize

import (
	"net/url"

	"github.com/pdiddy/issuefeed/internal/extract"
	"github.com/pdiddy/issuefeed/pkg/types"
)

// DefaultHeadline is the placeholder used when a record carries no usable
// title in any known field.
const DefaultHeadline = "Untitled Article"

// Articles flattens raw records from either extraction stage into
// canonical articles, in source order. Records without a field mapping
// are skipped silently; heterogeneous input streams contain noise.
func Articles(records []extract.Record, baseURL string) []types.Article {
	articles := make([]types.Article, 0, len(records))
	for _, rec := range records {
		if rec.Fields == nil {
			continue
		}
		switch rec.Stage {
		case types.StageWindowData:
			articles = append(articles, fromPreview(rec, baseURL))
		case types.StageJSONLD:
			articles = append(articles, fromIssuePart(rec, baseURL))
		}
	}
	return articles
}

// fromPreview maps a window.__DATA__ article preview. The preview schema
// is the site's own: snake_case fields, authors as {name} records, and
// site-relative article URLs.
func fromPreview(rec extract.Record, base string) types.Article {
	f := rec.Fields
	return types.Article{
		Headline:    headlineOf(f, "title", "display_title"),
		Summary:     stripHTML(firstString(f, "summary")),
		PublishedAt: firstString(f, "date_published", "release_date"),
		URL:         resolveURL(base, firstString(f, "url")),
		ImageURL:    resolveURL(base, imageURL(f["image_url"])),
		Authors:     authorNames(f["authors"]),
		Source: types.SourceTags{
			Stage:    rec.Stage,
			Section:  rec.Section,
			Column:   firstString(f, "column"),
			Category: firstString(f, "category"),
		},
	}
}

// fromIssuePart maps a JSON-LD hasPart entry. The schema.org shapes are
// looser: author, image and description fields come in string, record,
// and list variants, and article URLs are usually absent entirely.
func fromIssuePart(rec extract.Record, base string) types.Article {
	f := rec.Fields

	var authors []string
	if name := firstAuthor(f["author"]); name != "" {
		authors = []string{name}
	}

	return types.Article{
		Headline:    headlineOf(f, "headline", "name"),
		Summary:     stripHTML(description(f)),
		PublishedAt: firstString(f, "datePublished", "dateCreated"),
		URL:         resolveURL(base, firstString(f, "url", "@id")),
		ImageURL:    resolveURL(base, imageURL(f["image"])),
		Authors:     authors,
		Source:      types.SourceTags{Stage: rec.Stage},
	}
}

// headlineOf picks the first usable title field, strips markup, and
// falls back to the fixed placeholder. Canonical articles never have an
// empty headline.
func headlineOf(f map[string]any, keys ...string) string {
	h := stripHTML(firstString(f, keys...))
	if h == "" {
		return DefaultHeadline
	}
	return h
}

// resolveURL anchors ref against the site base. Absolute refs pass
// through; empty or unparsable refs yield "".
func resolveURL(base, ref string) string {
	if ref == "" {
		return ""
	}
	b, err := url.Parse(base)
	if err != nil {
		return ""
	}
	r, err := url.Parse(ref)
	if err != nil {
		return ""
	}
	return b.ResolveReference(r).String()
}
