package cms

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/rs/zerolog"

	"github.com/site-content-api/internal/config"
)

// APIError is a failed CMS request carrying the upstream status code
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("cms request failed (%d): %s", e.StatusCode, e.Message)
}

// queryResponse is the envelope the query API wraps every result in
type queryResponse struct {
	Result json.RawMessage `json:"result"`
	Error  *struct {
		Description string `json:"description"`
		Type        string `json:"type"`
	} `json:"error"`
}

// Client issues read-only structured queries against a fixed
// project/dataset identity. No caching, no retries: failures propagate
// to the caller.
type Client struct {
	queryURL string
	http     *http.Client
	log      zerolog.Logger
}

// NewClient creates a CMS client from configuration
func NewClient(cfg *config.CMSConfig, log zerolog.Logger) *Client {
	return &Client{
		queryURL: fmt.Sprintf("%s/data/query/%s", cfg.BaseURL(), cfg.Dataset),
		http:     &http.Client{Timeout: cfg.Timeout},
		log:      log.With().Str("component", "cms").Logger(),
	}
}

// Fetch runs a GROQ query with the given parameters and returns the raw
// result. A query that matches nothing yields the JSON literal null,
// which is a valid result, not an error.
func (c *Client) Fetch(ctx context.Context, query string, params map[string]string) (json.RawMessage, error) {
	values := url.Values{}
	values.Set("query", query)
	for key, value := range params {
		// Parameter values must be JSON literals
		encoded, err := json.Marshal(value)
		if err != nil {
			return nil, fmt.Errorf("failed to encode query param %s: %w", key, err)
		}
		values.Set("$"+key, string(encoded))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.queryURL+"?"+values.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build query request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	res, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("cms request failed: %w", err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read cms response: %w", err)
	}

	var envelope queryResponse
	if err := json.Unmarshal(body, &envelope); err != nil {
		if res.StatusCode >= 400 {
			return nil, &APIError{StatusCode: res.StatusCode, Message: http.StatusText(res.StatusCode)}
		}
		return nil, fmt.Errorf("failed to decode cms response: %w", err)
	}

	if res.StatusCode >= 400 {
		message := http.StatusText(res.StatusCode)
		if envelope.Error != nil && envelope.Error.Description != "" {
			message = envelope.Error.Description
		}
		c.log.Error().Int("status", res.StatusCode).Str("message", message).Msg("CMS query failed")
		return nil, &APIError{StatusCode: res.StatusCode, Message: message}
	}

	return envelope.Result, nil
}
