package client

import (
	"context"
	"encoding/json"
	"net/url"

	"github.com/site-content-api/internal/models"
)

// SiteSettings returns a defaulted view over the global settings
// singleton. The view is never nil, and every accessor has a safe
// default, so a fetch failure degrades to an unconfigured site rather
// than a crash.
func (c *Client) SiteSettings(ctx context.Context) (*SettingsView, error) {
	settings, err := fetchSlot(ctx, c, &c.siteSettings, "siteSettings",
		func(ctx context.Context) (*models.SiteSettings, error) {
			params := url.Values{}
			params.Set("type", "siteSettings")

			settings := &models.SiteSettings{}
			if err := c.get(ctx, params, settings); err != nil {
				return nil, err
			}
			settings.Normalize()
			return settings, nil
		},
		func() *models.SiteSettings {
			empty := &models.SiteSettings{}
			empty.Normalize()
			return empty
		})
	return &SettingsView{settings: settings}, err
}

// SettingsView wraps SiteSettings with per-field defaults
type SettingsView struct {
	settings *models.SiteSettings
}

// Raw exposes the underlying settings record (never nil)
func (v *SettingsView) Raw() *models.SiteSettings {
	return v.settings
}

func (v *SettingsView) Title() string {
	if v.settings.Title != "" {
		return v.settings.Title
	}
	return "Dr Magdelena Goryczko"
}

func (v *SettingsView) ContactInfo() []models.ContactInfoItem {
	if v.settings.ContactInfo != nil {
		return v.settings.ContactInfo
	}
	return []models.ContactInfoItem{}
}

func (v *SettingsView) OpeningTimes() []models.OpeningTime {
	if v.settings.OpeningTimes != nil {
		return v.settings.OpeningTimes
	}
	return []models.OpeningTime{}
}

func (v *SettingsView) FacebookURL() string  { return v.settings.FacebookURL }
func (v *SettingsView) LinkedinURL() string  { return v.settings.LinkedinURL }
func (v *SettingsView) InstagramURL() string { return v.settings.InstagramURL }

func (v *SettingsView) PreloaderImages() []models.Image {
	if v.settings.PreloaderImages != nil {
		return v.settings.PreloaderImages
	}
	return []models.Image{}
}

func (v *SettingsView) Logotype() *models.Image {
	return v.settings.Logotype
}

func (v *SettingsView) BookingTitle() string {
	if v.settings.BookingTitle != "" {
		return v.settings.BookingTitle
	}
	return "Book Your Appointment Now"
}

func (v *SettingsView) BookingLink() string { return v.settings.BookingLink }

func (v *SettingsView) DisablePreloader() bool      { return v.settings.DisablePreloader }
func (v *SettingsView) DisablePageTransition() bool { return v.settings.DisablePageTransition }

// MainNavigationMenu always returns a menu with a non-nil item slice
func (v *SettingsView) MainNavigationMenu() *models.Menu {
	if v.settings.MainNavigationMenu != nil {
		return v.settings.MainNavigationMenu
	}
	return &models.Menu{Items: []models.MenuItem{}}
}

// FooterMenu always returns a menu with a non-nil item slice
func (v *SettingsView) FooterMenu() *models.Menu {
	if v.settings.FooterMenu != nil {
		return v.settings.FooterMenu
	}
	return &models.Menu{Items: []models.MenuItem{}}
}

func (v *SettingsView) Copyright() string     { return v.settings.Copyright }
func (v *SettingsView) Credits() string       { return v.settings.Credits }
func (v *SettingsView) HeroLeftText() string  { return v.settings.HeroLeftText }
func (v *SettingsView) HeroRightText() string { return v.settings.HeroRightText }

func (v *SettingsView) DefaultHeroVideo() *models.Video { return v.settings.DefaultHeroVideo }
func (v *SettingsView) DefaultHeroImage() *models.Image { return v.settings.DefaultHeroImage }

func (v *SettingsView) DefaultMetaDescription() string { return v.settings.DefaultMetaDesc }

func (v *SettingsView) NewsletterActionURL() string   { return v.settings.NewsletterActionURL }
func (v *SettingsView) NewsletterTitleFooter() string { return v.settings.NewsletterTitleFooter }
func (v *SettingsView) NewsletterTitleHero() string   { return v.settings.NewsletterTitleHero }

func (v *SettingsView) NewsletterPlaceholder() string {
	if v.settings.NewsletterPlaceholder != "" {
		return v.settings.NewsletterPlaceholder
	}
	return "Enter your email"
}

func (v *SettingsView) CookiesMessage() json.RawMessage {
	if len(v.settings.CookiesMessage) > 0 {
		return v.settings.CookiesMessage
	}
	return json.RawMessage("[]")
}

func (v *SettingsView) GoogleAnalyticsID() string { return v.settings.GoogleAnalyticsID }
