// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdiddy/issuefeed/internal/feed"
	"github.com/pdiddy/issuefeed/internal/normalize"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render an article snapshot into the RSS feed",
	Long: `Render reads a YAML article snapshot produced by the extract
subcommand and serializes it into the RSS document, bypassing the fetch
and extraction stages.`,
	RunE: runRender,
}

func init() {
	renderCmd.Flags().String("in", "articles.yaml", "article snapshot file to read")
	renderCmd.Flags().String("out", "", "output file (default from config)")

	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	in, _ := cmd.Flags().GetString("in")
	if out, _ := cmd.Flags().GetString("out"); out != "" {
		cfg.Feed.OutputFile = out
	}
	w := cmd.OutOrStdout()

	af, err := normalize.ReadArticleFile(in)
	if err != nil {
		return err
	}
	if len(af.Articles) == 0 {
		return fmt.Errorf("article snapshot %s holds no articles", in)
	}

	doc, err := feed.Render(af.Articles, cfg.Feed, time.Now())
	if err != nil {
		return fmt.Errorf("rendering feed: %w", err)
	}
	if err := feed.WriteFile(cfg.Feed.OutputFile, doc); err != nil {
		return fmt.Errorf("writing feed: %w", err)
	}

	fmt.Fprintf(w, "wrote %d articles to %s\n", len(af.Articles), cfg.Feed.OutputFile)
	return nil
}
