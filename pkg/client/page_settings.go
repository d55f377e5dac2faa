package client

import (
	"context"
	"net/url"
	"strings"

	"github.com/site-content-api/internal/models"
)

// Route prefixes that never have a CMS page behind them; their settings
// are always the defaults and no fetch is made.
var excludedRoutePrefixes = []string{"events/", "gardens/"}

// UIFlags are the global presentation flags derived from the current
// page. They are scoped to the navigation that produced them: a stale
// response from an earlier route never overwrites the current flags.
type UIFlags struct {
	DarkMode         bool
	RemoveTopPadding bool
}

// PageSettingsResult is the outcome of a page settings lookup. Err is
// informational: the flags always hold a usable value.
type PageSettingsResult struct {
	Page  *models.Page
	Flags UIFlags
	Err   error
}

// UI returns the currently committed UI flags
func (c *Client) UI() UIFlags {
	c.uiMu.Lock()
	defer c.uiMu.Unlock()
	return c.ui
}

// PageSettings resolves the page behind a route and recomputes the
// global UI flags. Call it on every navigation. Successful page loads
// are cached per route; concurrent lookups of one route share a single
// request. A missing page or a failed fetch falls back to default flags.
func (c *Client) PageSettings(ctx context.Context, route string) *PageSettingsResult {
	slug := normalizeRoute(route)
	generation := c.nextGeneration()

	for _, prefix := range excludedRoutePrefixes {
		if strings.HasPrefix(slug, prefix) {
			flags := UIFlags{}
			c.commitFlags(generation, flags)
			return &PageSettingsResult{Flags: flags}
		}
	}

	page, err := c.pageBySlug(ctx, slug)

	flags := UIFlags{}
	if err == nil && page != nil {
		flags = UIFlags{
			DarkMode:         page.DarkMode,
			RemoveTopPadding: page.RemoveTopPadding,
		}
	}
	c.commitFlags(generation, flags)

	return &PageSettingsResult{Page: page, Flags: flags, Err: err}
}

// pageBySlug fetches a page, serving repeated lookups from the cache
func (c *Client) pageBySlug(ctx context.Context, slug string) (*models.Page, error) {
	c.pagesMu.Lock()
	if page, ok := c.pages[slug]; ok {
		c.pagesMu.Unlock()
		return page, nil
	}
	c.pagesMu.Unlock()

	v, err, _ := c.group.Do("page:"+slug, func() (interface{}, error) {
		params := url.Values{}
		params.Set("type", "page")
		params.Set("identifier", slug)
		params.Set("identifierType", "slug")

		var page *models.Page
		if err := c.get(ctx, params, &page); err != nil {
			return nil, err
		}
		return page, nil
	})
	if err != nil {
		return nil, err
	}

	page := v.(*models.Page)
	if page != nil {
		c.pagesMu.Lock()
		c.pages[slug] = page
		c.pagesMu.Unlock()
	}
	return page, nil
}

// nextGeneration stamps a new navigation
func (c *Client) nextGeneration() uint64 {
	c.uiMu.Lock()
	defer c.uiMu.Unlock()
	c.uiGen++
	return c.uiGen
}

// commitFlags applies flags only if no newer navigation has started
func (c *Client) commitFlags(generation uint64, flags UIFlags) {
	c.uiMu.Lock()
	defer c.uiMu.Unlock()
	if generation == c.uiGen {
		c.ui = flags
	}
}

// normalizeRoute turns a route path into a page slug
func normalizeRoute(route string) string {
	slug := strings.TrimPrefix(route, "/")
	if slug == "" {
		return "index"
	}
	return slug
}
