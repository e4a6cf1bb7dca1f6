// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the value types shared between pipeline stages.
package types

// ExtractionStage identifies which locator stage produced an article.
type ExtractionStage string

const (
	// StageWindowData is the primary stage: the window.__DATA__ blob
	// embedded in the issue page. Carries full metadata and article URLs.
	StageWindowData ExtractionStage = "window_data"

	// StageJSONLD is the fallback stage: JSON-LD PublicationIssue blocks.
	// Carries image URLs but no article URLs.
	StageJSONLD ExtractionStage = "jsonld"
)

// SourceTags holds provenance for a normalized article. Diagnostic only;
// the feed serializer does not read it.
type SourceTags struct {
	Stage    ExtractionStage `json:"stage" yaml:"stage"`
	Section  string          `json:"section,omitempty" yaml:"section,omitempty"`
	Column   string          `json:"column,omitempty" yaml:"column,omitempty"`
	Category string          `json:"category,omitempty" yaml:"category,omitempty"`
}

// Article is the canonical article record consumed by the feed serializer.
// Instances are built once per run by the normalizer and never persisted.
type Article struct {
	// Headline is the display title. Never empty: the normalizer falls
	// back to a placeholder when the source has no usable title.
	Headline string `json:"headline" yaml:"headline"`

	// Summary is plain text with HTML tags stripped. May be empty.
	Summary string `json:"summary,omitempty" yaml:"summary,omitempty"`

	// PublishedAt is the source ISO-8601 publication date, or empty when
	// the source had none or the value was unparseable.
	PublishedAt string `json:"published_at,omitempty" yaml:"published_at,omitempty"`

	// URL is the absolute article URL, or empty. Fallback-stage articles
	// always have an empty URL; the upstream JSON-LD carries none.
	URL string `json:"url,omitempty" yaml:"url,omitempty"`

	// ImageURL is the absolute lead-image URL, or empty.
	ImageURL string `json:"image_url,omitempty" yaml:"image_url,omitempty"`

	// Authors holds display names in source order. May be empty.
	Authors []string `json:"authors,omitempty" yaml:"authors,omitempty"`

	// Source records where the article came from.
	Source SourceTags `json:"source" yaml:"source"`
}

// FirstAuthor returns the first author display name, or "" when the
// article has no authors. The feed serializer emits a single creator.
func (a Article) FirstAuthor() string {
	if len(a.Authors) == 0 {
		return ""
	}
	return a.Authors[0]
}
