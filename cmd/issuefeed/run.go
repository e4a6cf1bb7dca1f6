// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdiddy/issuefeed/internal/extract"
	"github.com/pdiddy/issuefeed/internal/feed"
	"github.com/pdiddy/issuefeed/internal/fetch"
	"github.com/pdiddy/issuefeed/internal/normalize"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Fetch the latest issue and write the RSS feed",
	Long: `Run performs the full pipeline: fetch the issue page through
FlareSolverr, extract and normalize the embedded article data, and write
the RSS document. The run fails when the fetch fails, when no articles
could be extracted, or when the output write fails.`,
	RunE: runRun,
}

func init() {
	runCmd.Flags().String("out", "", "output file (default from config)")

	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	if out, _ := cmd.Flags().GetString("out"); out != "" {
		cfg.Feed.OutputFile = out
	}
	w := cmd.OutOrStdout()

	client := fetch.NewClient(cfg.Fetch)
	page, err := client.FetchPage(cmd.Context(), cfg.Scrape.PageURL, w)
	if err != nil {
		return fmt.Errorf("fetching page: %w", err)
	}

	records, report := extract.Extract(page, w)
	articles := normalize.Articles(records, cfg.Scrape.BaseURL)
	if len(articles) == 0 {
		return fmt.Errorf("no articles found in page")
	}

	doc, err := feed.Render(articles, cfg.Feed, time.Now())
	if err != nil {
		return fmt.Errorf("rendering feed: %w", err)
	}
	if err := feed.WriteFile(cfg.Feed.OutputFile, doc); err != nil {
		return fmt.Errorf("writing feed: %w", err)
	}

	fmt.Fprintf(w, "wrote %d articles to %s (source: %s)\n", len(articles), cfg.Feed.OutputFile, report.Stage)
	return nil
}
