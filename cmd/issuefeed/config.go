// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"time"

	"github.com/spf13/viper"

	"github.com/pdiddy/issuefeed/internal/fetch"
	"github.com/pdiddy/issuefeed/pkg/types"
)

const (
	defaultPageURL = "https://www.scientificamerican.com/latest-issue/"
	defaultBaseURL = "https://www.scientificamerican.com"

	defaultUserAgent     = "issuefeed/0.1"
	defaultTimeout       = 70 * time.Second
	defaultSolverTimeout = 60 * time.Second

	defaultFeedTitle       = "Scientific American - Latest Issue"
	defaultFeedDescription = "Latest articles from Scientific American magazine"
	defaultFeedLanguage    = "en-us"
	defaultOutputFile      = "feed.xml"
)

// loadConfig assembles the pipeline configuration from viper, which
// layers the optional config file, ISSUEFEED_* environment variables,
// and the FLARESOLVERR_URL binding over these defaults.
func loadConfig() types.PipelineConfig {
	viper.SetDefault("fetch.solver_url", fetch.DefaultSolverURL)
	viper.SetDefault("fetch.timeout", defaultTimeout)
	viper.SetDefault("fetch.solver_timeout", defaultSolverTimeout)
	viper.SetDefault("fetch.user_agent", defaultUserAgent)
	viper.SetDefault("fetch.max_retries", 0)

	viper.SetDefault("scrape.page_url", defaultPageURL)
	viper.SetDefault("scrape.base_url", defaultBaseURL)

	viper.SetDefault("feed.title", defaultFeedTitle)
	viper.SetDefault("feed.link", defaultPageURL)
	viper.SetDefault("feed.description", defaultFeedDescription)
	viper.SetDefault("feed.language", defaultFeedLanguage)
	viper.SetDefault("feed.self_link", "")
	viper.SetDefault("feed.output_file", defaultOutputFile)

	return types.PipelineConfig{
		Fetch: types.FetchConfig{
			HTTPConfig: types.HTTPConfig{
				Timeout:   viper.GetDuration("fetch.timeout"),
				UserAgent: viper.GetString("fetch.user_agent"),
			},
			SolverURL:     viper.GetString("fetch.solver_url"),
			SolverTimeout: viper.GetDuration("fetch.solver_timeout"),
			MaxRetries:    viper.GetInt("fetch.max_retries"),
		},
		Scrape: types.ScrapeConfig{
			PageURL: viper.GetString("scrape.page_url"),
			BaseURL: viper.GetString("scrape.base_url"),
		},
		Feed: types.FeedConfig{
			Title:       viper.GetString("feed.title"),
			Link:        viper.GetString("feed.link"),
			Description: viper.GetString("feed.description"),
			Language:    viper.GetString("feed.language"),
			SelfLink:    viper.GetString("feed.self_link"),
			OutputFile:  viper.GetString("feed.output_file"),
		},
	}
}
