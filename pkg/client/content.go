package client

import (
	"context"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/site-content-api/internal/models"
)

// Menu titles the site uses for its two navigation areas
const (
	mainMenuTitle   = "Main Menu"
	footerMenuTitle = "Footer"
)

// MainMenu returns the main navigation menu. A fetch failure yields an
// empty menu alongside the error, never a nil menu.
func (c *Client) MainMenu(ctx context.Context) (*models.Menu, error) {
	return c.menu(ctx, &c.mainMenu, "mainMenu", mainMenuTitle)
}

// FooterMenu returns the footer menu
func (c *Client) FooterMenu(ctx context.Context) (*models.Menu, error) {
	return c.menu(ctx, &c.footerMenu, "footerMenu", footerMenuTitle)
}

func (c *Client) menu(ctx context.Context, s *slot[*models.Menu], key, title string) (*models.Menu, error) {
	return fetchSlot(ctx, c, s, key,
		func(ctx context.Context) (*models.Menu, error) {
			params := url.Values{}
			params.Set("type", "menu")
			params.Set("menuTitle", title)

			menu := &models.Menu{}
			if err := c.get(ctx, params, menu); err != nil {
				return nil, err
			}
			menu.Normalize()
			return menu, nil
		},
		func() *models.Menu {
			return &models.Menu{Title: title, Items: []models.MenuItem{}}
		})
}

// News returns all news posts, newest first
func (c *Client) News(ctx context.Context) ([]models.NewsPost, error) {
	return fetchSlot(ctx, c, &c.news, "news",
		func(ctx context.Context) ([]models.NewsPost, error) {
			params := url.Values{}
			params.Set("type", "news")

			posts := []models.NewsPost{}
			if err := c.get(ctx, params, &posts); err != nil {
				return nil, err
			}
			return posts, nil
		},
		func() []models.NewsPost {
			return []models.NewsPost{}
		})
}

// FormatNewsDate renders a post date as an uppercase month and year,
// e.g. "JULY 2025". Unparseable input yields an empty string.
func FormatNewsDate(date string) string {
	if date == "" {
		return ""
	}
	parsed, err := time.Parse("2006-01-02", date)
	if err != nil {
		parsed, err = time.Parse(time.RFC3339, date)
		if err != nil {
			return ""
		}
	}
	return strings.ToUpper(parsed.Format("January 2006"))
}

// Team returns all team members in the order the CMS delivered them
func (c *Client) Team(ctx context.Context) ([]models.TeamMember, error) {
	return fetchSlot(ctx, c, &c.team, "team",
		func(ctx context.Context) ([]models.TeamMember, error) {
			params := url.Values{}
			params.Set("type", "team")

			members := []models.TeamMember{}
			if err := c.get(ctx, params, &members); err != nil {
				return nil, err
			}
			return members, nil
		},
		func() []models.TeamMember {
			return []models.TeamMember{}
		})
}

// TeamOrderedByRank returns a copy sorted by the authoring rank field
func TeamOrderedByRank(members []models.TeamMember) []models.TeamMember {
	sorted := append([]models.TeamMember(nil), members...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].OrderRank < sorted[j].OrderRank
	})
	return sorted
}

// TeamOrderedByName returns a copy sorted alphabetically by name
func TeamOrderedByName(members []models.TeamMember) []models.TeamMember {
	sorted := append([]models.TeamMember(nil), members...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Name < sorted[j].Name
	})
	return sorted
}
