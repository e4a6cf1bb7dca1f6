// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/issuefeed/internal/extract"
	"github.com/pdiddy/issuefeed/internal/normalize"
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract articles from saved page HTML",
	Long: `Extract runs the embedded-data locator and the normalizer over a
saved HTML file and writes the canonical article list as a YAML snapshot.
Useful for debugging extraction against a captured page without touching
the network.`,
	RunE: runExtract,
}

func init() {
	extractCmd.Flags().String("in", "page.html", "HTML file to extract from")
	extractCmd.Flags().String("out", "articles.yaml", "article snapshot file to write")

	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	in, _ := cmd.Flags().GetString("in")
	out, _ := cmd.Flags().GetString("out")
	w := cmd.OutOrStdout()

	page, err := os.ReadFile(in)
	if err != nil {
		return fmt.Errorf("reading page HTML: %w", err)
	}

	records, report := extract.Extract(string(page), w)
	for _, note := range report.Notes {
		fmt.Fprintf(w, "note: %s\n", note)
	}

	articles := normalize.Articles(records, cfg.Scrape.BaseURL)
	if len(articles) == 0 {
		return fmt.Errorf("no articles found in %s", in)
	}

	if err := normalize.WriteArticleFile(out, articles, report); err != nil {
		return err
	}
	fmt.Fprintf(w, "%d articles written to %s\n", len(articles), out)
	return nil
}
