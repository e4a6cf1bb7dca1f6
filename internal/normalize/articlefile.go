// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package normalize

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/issuefeed/internal/extract"
	"github.com/pdiddy/issuefeed/pkg/types"
)

// ArticleFile is the on-disk YAML snapshot of a normalized article list.
// The extract subcommand writes one so the render subcommand can produce
// a feed offline; the normal run path never touches it.
type ArticleFile struct {
	Articles []types.Article    `yaml:"articles"`
	Summary  ArticleFileSummary `yaml:"summary"`
}

// ArticleFileSummary records how the articles were obtained.
type ArticleFileSummary struct {
	Stage     types.ExtractionStage `yaml:"stage,omitempty"`
	Total     int                   `yaml:"total"`
	Notes     []string              `yaml:"notes,omitempty"`
	Timestamp time.Time             `yaml:"timestamp"`
}

// WriteArticleFile saves articles and their extraction report to a YAML file.
func WriteArticleFile(path string, articles []types.Article, report extract.Report) error {
	af := ArticleFile{
		Articles: articles,
		Summary: ArticleFileSummary{
			Stage:     report.Stage,
			Total:     len(articles),
			Notes:     report.Notes,
			Timestamp: time.Now().UTC(),
		},
	}

	data, err := yaml.Marshal(af)
	if err != nil {
		return fmt.Errorf("marshaling article file: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing article file: %w", err)
	}
	return nil
}

// ReadArticleFile loads a previously written snapshot.
func ReadArticleFile(path string) (ArticleFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return ArticleFile{}, fmt.Errorf("reading article file: %w", err)
	}
	var af ArticleFile
	if err := yaml.Unmarshal(data, &af); err != nil {
		return ArticleFile{}, fmt.Errorf("parsing article file %s: %w", path, err)
	}
	return af, nil
}
