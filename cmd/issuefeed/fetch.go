// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/issuefeed/internal/fetch"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Fetch the issue page HTML through FlareSolverr",
	Long: `Fetch retrieves the latest-issue page through the configured
FlareSolverr endpoint and saves the raw HTML, for inspecting what the
solver actually returns or for feeding the extract subcommand offline.`,
	RunE: runFetch,
}

func init() {
	fetchCmd.Flags().String("url", "", "page URL to fetch (default from config)")
	fetchCmd.Flags().String("out", "page.html", "file to write the page HTML to")

	rootCmd.AddCommand(fetchCmd)
}

func runFetch(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	pageURL, _ := cmd.Flags().GetString("url")
	if pageURL == "" {
		pageURL = cfg.Scrape.PageURL
	}
	out, _ := cmd.Flags().GetString("out")
	w := cmd.OutOrStdout()

	client := fetch.NewClient(cfg.Fetch)
	page, err := client.FetchPage(cmd.Context(), pageURL, w)
	if err != nil {
		return fmt.Errorf("fetching page: %w", err)
	}

	if err := os.WriteFile(out, []byte(page), 0o644); err != nil {
		return fmt.Errorf("writing page HTML: %w", err)
	}
	fmt.Fprintf(w, "page HTML written to %s\n", out)
	return nil
}
