// Package client is a typed consumer of the site content API. Each
// content type gets a cached state slot: the first call fetches, later
// calls reuse the cache, and concurrent callers share a single request.
// A failed fetch records the error and leaves a safe typed default in
// the slot, so consumers never dereference missing data.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/site-content-api/internal/models"
)

// APIError is a non-2xx response from the content API
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("content api returned %d: %s", e.StatusCode, e.Message)
}

// errorEnvelope mirrors the server's error response shape
type errorEnvelope struct {
	StatusCode    int    `json:"statusCode"`
	StatusMessage string `json:"statusMessage"`
}

// Client fetches and caches site content. Safe for concurrent use.
type Client struct {
	baseURL string
	http    *http.Client
	group   singleflight.Group

	mainMenu     slot[*models.Menu]
	footerMenu   slot[*models.Menu]
	news         slot[[]models.NewsPost]
	team         slot[[]models.TeamMember]
	siteSettings slot[*models.SiteSettings]

	pagesMu sync.Mutex
	pages   map[string]*models.Page

	uiMu  sync.Mutex
	uiGen uint64
	ui    UIFlags
}

// Option configures the client
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.http = httpClient
	}
}

// New creates a client for the content API at baseURL
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 15 * time.Second},
		pages:   make(map[string]*models.Page),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// slot holds one piece of cached state plus its last error
type slot[T any] struct {
	mu     sync.Mutex
	loaded bool
	data   T
	err    error
}

// Err returns the last fetch error recorded for the slot
func (s *slot[T]) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// fetchSlot loads a slot at most once. Concurrent callers before the
// first resolution share one request; callers after a success are
// no-ops. A failure records the error, installs the fallback value and
// leaves the slot retryable.
func fetchSlot[T any](ctx context.Context, c *Client, s *slot[T], key string, fetch func(context.Context) (T, error), fallback func() T) (T, error) {
	s.mu.Lock()
	if s.loaded {
		data := s.data
		s.mu.Unlock()
		return data, nil
	}
	s.mu.Unlock()

	v, err, _ := c.group.Do(key, func() (interface{}, error) {
		return fetch(ctx)
	})

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.err = err
		if !s.loaded {
			s.data = fallback()
		}
		return s.data, err
	}

	s.data = v.(T)
	s.loaded = true
	s.err = nil
	return s.data, nil
}

// get performs one content API request and decodes the result into out.
// A null body leaves out untouched.
func (c *Client) get(ctx context.Context, params url.Values, out interface{}) error {
	endpoint := c.baseURL + "/api/sanity?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to build content request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	res, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("content request failed: %w", err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return fmt.Errorf("failed to read content response: %w", err)
	}

	if res.StatusCode >= 400 {
		var envelope errorEnvelope
		message := http.StatusText(res.StatusCode)
		if json.Unmarshal(body, &envelope) == nil && envelope.StatusMessage != "" {
			message = envelope.StatusMessage
		}
		return &APIError{StatusCode: res.StatusCode, Message: message}
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to decode content response: %w", err)
	}
	return nil
}
