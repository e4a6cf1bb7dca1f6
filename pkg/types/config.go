// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings for stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout. It must exceed the solver's
	// own page timeout, otherwise the client gives up while the solver
	// is still rendering.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "issuefeed/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// FetchConfig holds settings for the FlareSolverr fetch stage.
type FetchConfig struct {
	HTTPConfig `yaml:",inline"`

	// SolverURL is the FlareSolverr endpoint (default
	// "http://localhost:8191/v1"; overridable via FLARESOLVERR_URL).
	SolverURL string `json:"solver_url" yaml:"solver_url"`

	// SolverTimeout is the maxTimeout passed to the solver for solving
	// the challenge and rendering the page (default 60s).
	SolverTimeout time.Duration `json:"solver_timeout" yaml:"solver_timeout"`

	// MaxRetries bounds retries on transient solver responses
	// (429/502/503/504). Zero means the default (3).
	MaxRetries int `json:"max_retries" yaml:"max_retries"`
}

// ScrapeConfig holds the target site settings for the extraction stage.
type ScrapeConfig struct {
	// PageURL is the latest-issue landing page to scrape.
	PageURL string `json:"page_url" yaml:"page_url"`

	// BaseURL anchors relative article and image URLs found in the page.
	BaseURL string `json:"base_url" yaml:"base_url"`
}

// FeedConfig holds the fixed channel metadata and output settings for the
// RSS serializer. None of these are derived from article data.
type FeedConfig struct {
	Title       string `json:"title" yaml:"title"`
	Link        string `json:"link" yaml:"link"`
	Description string `json:"description" yaml:"description"`
	Language    string `json:"language" yaml:"language"`

	// SelfLink is the published location of the feed document, emitted
	// as the channel's atom:link rel="self".
	SelfLink string `json:"self_link" yaml:"self_link"`

	// OutputFile is the path the feed document is written to. Each run
	// fully overwrites it.
	OutputFile string `json:"output_file" yaml:"output_file"`
}

// PipelineConfig groups all stage configurations.
type PipelineConfig struct {
	Fetch  FetchConfig  `json:"fetch" yaml:"fetch"`
	Scrape ScrapeConfig `json:"scrape" yaml:"scrape"`
	Feed   FeedConfig   `json:"feed" yaml:"feed"`
}
