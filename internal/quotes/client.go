// Package quotes fetches the motivational tip shown on the dashboard. The
// fetch is best-effort glue: any failure degrades to the configured static
// fallback and is never surfaced to CRUD or auth flows.
package quotes

import (
	"context"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/spec-kit/portfolio-service/internal/config"
)

// Client performs the single anonymous GET against a quotable-style
// endpoint returning a JSON body with a content field.
type Client struct {
	httpClient *http.Client
	url        string
	fallback   string
	logger     *zap.Logger
}

// NewClient builds the client from configuration.
func NewClient(cfg config.QuotesConfig, logger *zap.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout()},
		url:        cfg.URL,
		fallback:   cfg.Fallback,
		logger:     logger,
	}
}

type quoteResponse struct {
	Content string `json:"content"`
}

// Random returns a quote, or the fallback string when the endpoint is
// unreachable, slow, or returns something unusable. No retry.
func (c *Client) Random(ctx context.Context) string {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return c.fallback
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug("quote fetch failed", zap.Error(err))
		return c.fallback
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Debug("quote fetch non-200", zap.Int("status", resp.StatusCode))
		return c.fallback
	}

	var body quoteResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil || body.Content == "" {
		return c.fallback
	}
	return body.Content
}
