package cms

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/site-content-api/internal/config"
)

func newTestClient(upstream *httptest.Server) *Client {
	return &Client{
		queryURL: upstream.URL + "/v2024-03-19/data/query/production",
		http:     upstream.Client(),
		log:      zerolog.Nop(),
	}
}

func TestFetchEncodesQueryAndParams(t *testing.T) {
	var gotQuery, gotParam string
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("query")
		gotParam = r.URL.Query().Get("$menuTitle")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"result": {"_id": "m1", "title": "Footer", "items": []}}`))
	}))
	defer upstream.Close()

	client := newTestClient(upstream)
	result, err := client.Fetch(context.Background(), QueryMenuByTitle, map[string]string{"menuTitle": "Footer"})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if gotQuery != QueryMenuByTitle {
		t.Errorf("Expected query transmitted verbatim, got %q", gotQuery)
	}
	if gotParam != `"Footer"` {
		t.Errorf("Expected JSON-encoded param, got %q", gotParam)
	}
	if !strings.Contains(string(result), `"title": "Footer"`) {
		t.Errorf("Expected unwrapped result, got %s", result)
	}
}

func TestFetchNullResultIsNotAnError(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"result": null}`))
	}))
	defer upstream.Close()

	client := newTestClient(upstream)
	result, err := client.Fetch(context.Background(), QuerySiteSettings, nil)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if strings.TrimSpace(string(result)) != "null" {
		t.Errorf("Expected null result, got %s", result)
	}
}

func TestFetchSurfacesQueryErrors(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error": {"description": "expected '}' following object body", "type": "queryParseError"}}`))
	}))
	defer upstream.Close()

	client := newTestClient(upstream)
	_, err := client.Fetch(context.Background(), "*[_type == ", nil)

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("Expected APIError, got %v", err)
	}
	if apiErr.StatusCode != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", apiErr.StatusCode)
	}
	if !strings.Contains(apiErr.Message, "expected '}'") {
		t.Errorf("Expected upstream description, got %q", apiErr.Message)
	}
}

func TestFetchNonJSONErrorBody(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte("upstream maintenance"))
	}))
	defer upstream.Close()

	client := newTestClient(upstream)
	_, err := client.Fetch(context.Background(), QueryTeam, nil)

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("Expected APIError, got %v", err)
	}
	if apiErr.StatusCode != http.StatusServiceUnavailable {
		t.Errorf("Expected status 503, got %d", apiErr.StatusCode)
	}
}

func TestNewClientBuildsCDNQueryURL(t *testing.T) {
	cfg := &config.CMSConfig{
		ProjectID:  "0hcfi5z2",
		Dataset:    "production",
		APIVersion: "2024-03-19",
		UseCDN:     true,
	}
	client := NewClient(cfg, zerolog.Nop())

	want := "https://0hcfi5z2.apicdn.sanity.io/v2024-03-19/data/query/production"
	if client.queryURL != want {
		t.Errorf("Expected %q, got %q", want, client.queryURL)
	}
}

func TestNewClientBuildsLiveQueryURL(t *testing.T) {
	cfg := &config.CMSConfig{
		ProjectID:  "0hcfi5z2",
		Dataset:    "production",
		APIVersion: "2024-03-19",
		UseCDN:     false,
	}
	client := NewClient(cfg, zerolog.Nop())

	want := "https://0hcfi5z2.api.sanity.io/v2024-03-19/data/query/production"
	if client.queryURL != want {
		t.Errorf("Expected %q, got %q", want, client.queryURL)
	}
}
