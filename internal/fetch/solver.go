// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package fetch retrieves page HTML through a FlareSolverr instance.
//
// FlareSolverr fronts a headless browser that solves anti-bot challenges;
// the core pipeline only depends on its "text or nothing" contract. The
// solver protocol is a single POST with a command envelope and a JSON
// response carrying the rendered page.
package fetch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/pdiddy/issuefeed/internal/httputil"
	"github.com/pdiddy/issuefeed/pkg/types"
)

// DefaultSolverURL is the conventional local FlareSolverr endpoint.
const DefaultSolverURL = "http://localhost:8191/v1"

// solverRequest is the FlareSolverr command envelope.
type solverRequest struct {
	Cmd        string `json:"cmd"`
	URL        string `json:"url"`
	MaxTimeout int    `json:"maxTimeout"`
}

// solverResponse is the subset of the FlareSolverr reply the pipeline reads.
type solverResponse struct {
	Status   string `json:"status"`
	Message  string `json:"message"`
	Solution struct {
		Status   int    `json:"status"`
		Response string `json:"response"`
	} `json:"solution"`
}

// Client fetches pages via a FlareSolverr endpoint.
type Client struct {
	HTTP *http.Client
	Cfg  types.FetchConfig
}

// NewClient builds a solver client from config, applying defaults for
// unset fields.
func NewClient(cfg types.FetchConfig) *Client {
	if cfg.SolverURL == "" {
		cfg.SolverURL = DefaultSolverURL
	}
	if cfg.SolverTimeout <= 0 {
		cfg.SolverTimeout = 60 * time.Second
	}
	if cfg.Timeout <= 0 {
		// The client must outlive the solver's own page timeout.
		cfg.Timeout = cfg.SolverTimeout + 10*time.Second
	}
	return &Client{
		HTTP: &http.Client{Timeout: cfg.Timeout},
		Cfg:  cfg,
	}
}

// FetchPage retrieves the rendered HTML of pageURL through the solver.
// Any failure (network, non-2xx, malformed envelope, solver status other
// than "ok") is terminal for the run; the only retries are the transient
// 429/502/503/504 retries in httputil.
func (c *Client) FetchPage(ctx context.Context, pageURL string, w io.Writer) (string, error) {
	fmt.Fprintf(w, "fetching via solver: %s\n", pageURL)

	payload, err := json.Marshal(solverRequest{
		Cmd:        "request.get",
		URL:        pageURL,
		MaxTimeout: int(c.Cfg.SolverTimeout / time.Millisecond),
	})
	if err != nil {
		return "", fmt.Errorf("encoding solver request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Cfg.SolverURL, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("creating solver request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.Cfg.UserAgent != "" {
		req.Header.Set("User-Agent", c.Cfg.UserAgent)
	}

	resp, err := httputil.DoWithRetry(ctx, c.HTTP, req, c.Cfg.MaxRetries)
	if err != nil {
		return "", fmt.Errorf("solver request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("solver returned HTTP %d", resp.StatusCode)
	}

	var sr solverResponse
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		return "", fmt.Errorf("parsing solver response: %w", err)
	}

	if sr.Status != "ok" {
		return "", fmt.Errorf("solver status %q: %s", sr.Status, sr.Message)
	}
	if sr.Solution.Response == "" {
		return "", fmt.Errorf("solver returned an empty page")
	}

	fmt.Fprintf(w, "fetched %d bytes (page status %d)\n", len(sr.Solution.Response), sr.Solution.Status)
	return sr.Solution.Response, nil
}
