// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/issuefeed/internal/httputil"
)

func init() {
	httputil.RetryBaseDelay = 1 * time.Millisecond
}

// solverServing returns an httptest server that answers every request
// with a successful solver envelope carrying page as the rendered HTML.
func solverServing(t *testing.T, page string) *httptest.Server {
	t.Helper()
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		envelope := map[string]any{
			"status": "ok",
			"solution": map[string]any{
				"status":   200,
				"response": page,
			},
		}
		writeJSON(w, envelope)
	}))
	t.Cleanup(ts.Close)
	return ts
}

func writeJSON(w http.ResponseWriter, v any) {
	data, _ := json.Marshal(v)
	w.Write(data)
}

// execRun invokes "issuefeed run --out outPath" against the given solver.
func execRun(t *testing.T, solverURL, outPath string) (string, error) {
	t.Helper()
	viper.Reset()
	viper.Set("fetch.solver_url", solverURL)
	viper.Set("fetch.timeout", 5*time.Second)
	viper.Set("scrape.page_url", "https://example.org/latest-issue/")

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs([]string{"run", "--out", outPath})
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestRunPrimarySource(t *testing.T) {
	// One preview article with no author field.
	page := "<html><script>window.__DATA__ = JSON.parse(`" +
		`{"initialData":{"issueData":{"article_previews":{` +
		`"advances":[{"title":"Solo Piece","url":"/article/solo/","summary":"No byline."}],` +
		`"departments":[],"features":[]}}}}` +
		"`);</script></html>"
	ts := solverServing(t, page)
	out := filepath.Join(t.TempDir(), "feed.xml")

	log, err := execRun(t, ts.URL, out)
	require.NoError(t, err, log)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	feed := string(data)

	assert.Equal(t, 1, strings.Count(feed, "<item>"))
	assert.Contains(t, feed, "<title>Solo Piece</title>")
	assert.Contains(t, feed, "https://www.scientificamerican.com/article/solo/")
	assert.NotContains(t, feed, "<dc:creator>")
	assert.NotContains(t, feed, "<author>")
	assert.Contains(t, log, "window.__DATA__")
}

func TestRunFallbackSource(t *testing.T) {
	page := `<html><head><script type="application/ld+json">` +
		`{"@type":"PublicationIssue","hasPart":[` +
		`{"@type":"Article","headline":"First Part","image":"https://img.example.org/1.jpg"},` +
		`{"@type":"Article","headline":"Second Part"}]}` +
		`</script></head></html>`
	ts := solverServing(t, page)
	out := filepath.Join(t.TempDir(), "feed.xml")

	log, err := execRun(t, ts.URL, out)
	require.NoError(t, err, log)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	feed := string(data)

	assert.Equal(t, 2, strings.Count(feed, "<item>"))
	// Fallback entries carry no article URLs: the only <link> is the
	// channel's own.
	assert.Equal(t, 1, strings.Count(feed, "<link>"))
	assert.Contains(t, feed, `<guid isPermaLink="false">First Part</guid>`)
	assert.Contains(t, feed, `url="https://img.example.org/1.jpg"`)
}

func TestRunFetchFailure(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		io.WriteString(w, `{"status":"error","message":"blocked"}`)
	}))
	t.Cleanup(ts.Close)
	out := filepath.Join(t.TempDir(), "feed.xml")

	_, err := execRun(t, ts.URL, out)
	require.Error(t, err)

	// A failed run must not produce an output file.
	_, statErr := os.Stat(out)
	assert.True(t, os.IsNotExist(statErr))
}

func TestRunNoArticles(t *testing.T) {
	ts := solverServing(t, "<html><body>a static page with no data</body></html>")
	out := filepath.Join(t.TempDir(), "feed.xml")

	_, err := execRun(t, ts.URL, out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no articles")

	_, statErr := os.Stat(out)
	assert.True(t, os.IsNotExist(statErr))
}
