// Package retrieval fetches paper summaries for a disease query from a
// Europe PMC-style REST search endpoint.
package retrieval

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/evidenceml/blindspot/apimodels"
	"github.com/evidenceml/blindspot/internal/config"
)

type Client struct {
	endpoint   string
	httpClient *http.Client
}

func NewClient(cfg *config.RetrievalConfig) (*Client, error) {
	slog.Info("creating literature retrieval client", "endpoint", cfg.Endpoint)
	if cfg.Endpoint == "" {
		return nil, fmt.Errorf("retrieval endpoint cannot be empty")
	}

	return &Client{
		endpoint:   cfg.Endpoint,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}, nil
}

type searchResponse struct {
	ResultList struct {
		Result []struct {
			ID           string `json:"id"`
			Title        string `json:"title"`
			AbstractText string `json:"abstractText"`
			PubYear      string `json:"pubYear"`
		} `json:"result"`
	} `json:"resultList"`
}

// Search returns up to limit paper summaries matching the disease
// query. Results arrive quality-filtered by the upstream service; no
// relevance ranking happens here.
func (c *Client) Search(ctx context.Context, disease string, limit int) ([]apimodels.PaperSummary, error) {
	params := url.Values{}
	params.Set("query", disease)
	params.Set("format", "json")
	params.Set("resultType", "core")
	params.Set("pageSize", strconv.Itoa(limit))

	reqURL := c.endpoint + "?" + params.Encode()
	slog.Info("searching literature", "disease", disease, "limit", limit)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create search request: %w", err)
	}
	req.Header.Set("User-Agent", "blindspot/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("literature search failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("literature search returned %d: %s", resp.StatusCode, string(body))
	}

	var decoded searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("failed to decode search response: %w", err)
	}

	papers := make([]apimodels.PaperSummary, 0, len(decoded.ResultList.Result))
	for _, r := range decoded.ResultList.Result {
		year, _ := strconv.Atoi(r.PubYear)
		papers = append(papers, apimodels.PaperSummary{
			ID:       r.ID,
			Title:    r.Title,
			Abstract: r.AbstractText,
			Year:     year,
		})
	}

	slog.Info("literature search completed", "papers", len(papers))
	return papers, nil
}
