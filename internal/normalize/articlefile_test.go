// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package normalize

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/issuefeed/internal/extract"
	"github.com/pdiddy/issuefeed/pkg/types"
)

func TestArticleFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "articles.yaml")

	articles := []types.Article{
		{
			Headline:    "Round Trip",
			Summary:     "Survives serialization.",
			PublishedAt: "2026-02-01T12:00:00Z",
			URL:         "https://www.scientificamerican.com/article/round-trip/",
			ImageURL:    "https://www.scientificamerican.com/static/rt.jpg",
			Authors:     []string{"Ada Vale"},
			Source:      types.SourceTags{Stage: types.StageWindowData, Section: "features"},
		},
		{
			Headline: "Untitled Article",
			Source:   types.SourceTags{Stage: types.StageJSONLD},
		},
	}
	report := extract.Report{
		Stage: types.StageWindowData,
		Notes: []string{"one note"},
	}

	require.NoError(t, WriteArticleFile(path, articles, report))

	af, err := ReadArticleFile(path)
	require.NoError(t, err)

	assert.Equal(t, articles, af.Articles)
	assert.Equal(t, types.StageWindowData, af.Summary.Stage)
	assert.Equal(t, 2, af.Summary.Total)
	assert.Equal(t, []string{"one note"}, af.Summary.Notes)
	assert.False(t, af.Summary.Timestamp.IsZero())
}

func TestReadArticleFileErrors(t *testing.T) {
	_, err := ReadArticleFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("articles: [unclosed"), 0o644))
	_, err = ReadArticleFile(bad)
	assert.Error(t, err)
}
