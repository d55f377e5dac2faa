package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/site-content-api/internal/models"
)

func TestMainMenuSharesConcurrentFetches(t *testing.T) {
	var requests int64
	release := make(chan struct{})
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&requests, 1)
		<-release
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"_id": "m1", "title": "Main Menu", "items": []}`))
	}))
	defer upstream.Close()

	c := New(upstream.URL)

	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := c.MainMenu(context.Background()); err != nil {
				t.Errorf("Unexpected error: %v", err)
			}
		}()
	}

	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	if got := atomic.LoadInt64(&requests); got != 1 {
		t.Errorf("Expected 1 upstream request for concurrent callers, got %d", got)
	}
}

func TestMainMenuCachedAcrossCalls(t *testing.T) {
	var requests int64
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&requests, 1)
		if got := r.URL.Query().Get("menuTitle"); got != "Main Menu" {
			t.Errorf("Expected menuTitle=Main Menu, got %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"_id": "m1", "title": "Main Menu", "items": null}`))
	}))
	defer upstream.Close()

	c := New(upstream.URL)

	first, err := c.MainMenu(context.Background())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if first.Items == nil {
		t.Errorf("Expected normalized menu items")
	}

	if _, err := c.MainMenu(context.Background()); err != nil {
		t.Fatalf("Unexpected error on cached call: %v", err)
	}

	if got := atomic.LoadInt64(&requests); got != 1 {
		t.Errorf("Expected 1 upstream request across calls, got %d", got)
	}
}

func TestMenuFailureYieldsEmptyMenuAndRetries(t *testing.T) {
	var requests int64
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&requests, 1)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte(`{"statusCode": 502, "statusMessage": "Error fetching data from CMS: upstream down"}`))
	}))
	defer upstream.Close()

	c := New(upstream.URL)

	menu, err := c.FooterMenu(context.Background())
	if err == nil {
		t.Fatalf("Expected error from failed fetch")
	}
	if menu == nil || menu.Items == nil {
		t.Fatalf("Expected usable empty menu despite error, got %v", menu)
	}
	apiErr, ok := err.(*APIError)
	if !ok {
		t.Fatalf("Expected APIError, got %T", err)
	}
	if apiErr.StatusCode != http.StatusBadGateway {
		t.Errorf("Expected status 502, got %d", apiErr.StatusCode)
	}

	// A failed slot stays retryable
	c.FooterMenu(context.Background())
	if got := atomic.LoadInt64(&requests); got != 2 {
		t.Errorf("Expected retry to reach upstream, got %d requests", got)
	}
}

func TestSiteSettingsDefaultsOnEmptyDataset(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`null`))
	}))
	defer upstream.Close()

	c := New(upstream.URL)

	view, err := c.SiteSettings(context.Background())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if view.Title() == "" {
		t.Errorf("Expected default title")
	}
	if view.BookingTitle() != "Book Your Appointment Now" {
		t.Errorf("Expected default booking title, got %q", view.BookingTitle())
	}
	if view.NewsletterPlaceholder() != "Enter your email" {
		t.Errorf("Expected default placeholder, got %q", view.NewsletterPlaceholder())
	}
	if view.MainNavigationMenu() == nil || view.MainNavigationMenu().Items == nil {
		t.Errorf("Expected non-nil main menu with items slice")
	}
	if string(view.CookiesMessage()) != "[]" {
		t.Errorf("Expected empty cookies message, got %s", view.CookiesMessage())
	}
}

func TestSiteSettingsViewPassesThroughValues(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"title": "Custom Site", "bookingTitle": "Reserve", "facebookUrl": "https://facebook.com/x"}`))
	}))
	defer upstream.Close()

	c := New(upstream.URL)

	view, err := c.SiteSettings(context.Background())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if view.Title() != "Custom Site" {
		t.Errorf("Expected configured title, got %q", view.Title())
	}
	if view.BookingTitle() != "Reserve" {
		t.Errorf("Expected configured booking title, got %q", view.BookingTitle())
	}
	if view.FacebookURL() != "https://facebook.com/x" {
		t.Errorf("Expected facebook url passed through, got %q", view.FacebookURL())
	}
}

func TestNewsFallbackIsEmptySlice(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer upstream.Close()

	c := New(upstream.URL)

	posts, err := c.News(context.Background())
	if err == nil {
		t.Fatalf("Expected error from failed fetch")
	}
	if posts == nil {
		t.Errorf("Expected empty slice fallback, got nil")
	}
}

func TestPageSettingsAppliesPageFlags(t *testing.T) {
	var requests int64
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&requests, 1)
		if got := r.URL.Query().Get("identifierType"); got != "slug" {
			t.Errorf("Expected identifierType=slug, got %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"_id": "p1", "title": "About", "darkMode": true, "removeTopPadding": true}`))
	}))
	defer upstream.Close()

	c := New(upstream.URL)

	result := c.PageSettings(context.Background(), "/about")
	if result.Err != nil {
		t.Fatalf("Unexpected error: %v", result.Err)
	}
	if !result.Flags.DarkMode || !result.Flags.RemoveTopPadding {
		t.Errorf("Expected flags from page, got %+v", result.Flags)
	}
	if got := c.UI(); !got.DarkMode {
		t.Errorf("Expected committed UI flags, got %+v", got)
	}

	// Repeat navigation serves from the page cache
	c.PageSettings(context.Background(), "/about")
	if got := atomic.LoadInt64(&requests); got != 1 {
		t.Errorf("Expected 1 upstream request, got %d", got)
	}
}

func TestPageSettingsRootRouteMapsToIndex(t *testing.T) {
	var identifier string
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identifier = r.URL.Query().Get("identifier")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`null`))
	}))
	defer upstream.Close()

	c := New(upstream.URL)

	result := c.PageSettings(context.Background(), "/")
	if result.Err != nil {
		t.Fatalf("Unexpected error: %v", result.Err)
	}
	if identifier != "index" {
		t.Errorf("Expected index slug for root route, got %q", identifier)
	}
	if result.Page != nil {
		t.Errorf("Expected nil page for missing record")
	}
	if result.Flags != (UIFlags{}) {
		t.Errorf("Expected default flags for missing page, got %+v", result.Flags)
	}
}

func TestPageSettingsExcludedRoutesSkipFetch(t *testing.T) {
	var requests int64
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&requests, 1)
	}))
	defer upstream.Close()

	c := New(upstream.URL)

	result := c.PageSettings(context.Background(), "/events/summer-party")
	if result.Err != nil {
		t.Fatalf("Unexpected error: %v", result.Err)
	}
	if result.Flags != (UIFlags{}) {
		t.Errorf("Expected default flags for excluded route, got %+v", result.Flags)
	}
	if got := atomic.LoadInt64(&requests); got != 0 {
		t.Errorf("Expected no upstream request for excluded route, got %d", got)
	}
}

func TestPageSettingsStaleResponseDiscarded(t *testing.T) {
	slowStarted := make(chan struct{})
	slowRelease := make(chan struct{})
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Query().Get("identifier") {
		case "slow":
			close(slowStarted)
			<-slowRelease
			w.Write([]byte(`{"_id": "p1", "title": "Slow", "darkMode": false}`))
		case "fast":
			w.Write([]byte(`{"_id": "p2", "title": "Fast", "darkMode": true}`))
		}
	}))
	defer upstream.Close()

	c := New(upstream.URL)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		c.PageSettings(context.Background(), "/slow")
	}()

	// The slow navigation is in flight; a newer one completes first
	<-slowStarted
	c.PageSettings(context.Background(), "/fast")
	close(slowRelease)
	wg.Wait()

	if got := c.UI(); !got.DarkMode {
		t.Errorf("Expected flags from the newest navigation, got %+v", got)
	}
}

func TestFormatNewsDate(t *testing.T) {
	tests := []struct {
		date string
		want string
	}{
		{"2025-07-14", "JULY 2025"},
		{"2024-01-02T10:30:00Z", "JANUARY 2024"},
		{"not a date", ""},
		{"", ""},
	}

	for _, tt := range tests {
		if got := FormatNewsDate(tt.date); got != tt.want {
			t.Errorf("FormatNewsDate(%q) = %q, want %q", tt.date, got, tt.want)
		}
	}
}

func TestTeamOrdering(t *testing.T) {
	members := []models.TeamMember{
		{Name: "Cleo", OrderRank: "c"},
		{Name: "Ada", OrderRank: "b"},
		{Name: "Bea", OrderRank: "a"},
	}

	byRank := TeamOrderedByRank(members)
	if byRank[0].Name != "Bea" || byRank[2].Name != "Cleo" {
		t.Errorf("Expected rank order, got %v", byRank)
	}

	byName := TeamOrderedByName(members)
	if byName[0].Name != "Ada" || byName[2].Name != "Cleo" {
		t.Errorf("Expected alphabetical order, got %v", byName)
	}

	if members[0].Name != "Cleo" {
		t.Errorf("Expected input slice untouched, got %v", members)
	}
}
