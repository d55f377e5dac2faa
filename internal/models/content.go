package models

import (
	"encoding/json"
)

// Slug is the CMS slug wrapper object
type Slug struct {
	Current string `json:"current"`
}

// Dimensions holds pixel dimensions of an image asset
type Dimensions struct {
	Width  float64 `json:"width,omitempty"`
	Height float64 `json:"height,omitempty"`
}

// AssetMetadata holds asset metadata returned by the CMS
type AssetMetadata struct {
	Dimensions *Dimensions `json:"dimensions,omitempty"`
}

// Asset is an expanded CMS file asset (image or video)
type Asset struct {
	ID       string         `json:"_id,omitempty"`
	URL      string         `json:"url,omitempty"`
	MimeType string         `json:"mimeType,omitempty"`
	Size     int64          `json:"size,omitempty"`
	Metadata *AssetMetadata `json:"metadata,omitempty"`
}

// Image is an image field with its expanded asset
type Image struct {
	Asset *Asset `json:"asset,omitempty"`
	Alt   string `json:"alt,omitempty"`
}

// Video is a video field with its expanded asset
type Video struct {
	Asset *Asset `json:"asset,omitempty"`
}

// PageRef is a lightweight reference to a page, used in menu targets
type PageRef struct {
	ID    string `json:"_id,omitempty"`
	Type  string `json:"_type,omitempty"`
	Slug  *Slug  `json:"slug,omitempty"`
	Title string `json:"title,omitempty"`
}

// SectionRef is a lightweight reference to a section, used in menu targets
type SectionRef struct {
	ID    string `json:"_id,omitempty"`
	Title string `json:"title,omitempty"`
}

// MenuTarget is where a menu item points: an internal page/section
// reference plus optional anchor, or an external URL
type MenuTarget struct {
	Page    *PageRef    `json:"page,omitempty"`
	Section *SectionRef `json:"section,omitempty"`
	Anchor  string      `json:"anchor,omitempty"`
	URL     string      `json:"url,omitempty"`
}

// MenuItem is a single entry of a menu
type MenuItem struct {
	Key  string      `json:"_key,omitempty"`
	Text string      `json:"text,omitempty"`
	To   *MenuTarget `json:"to,omitempty"`
}

// Menu is an ordered collection of menu items
type Menu struct {
	ID    string     `json:"_id,omitempty"`
	Title string     `json:"title,omitempty"`
	Items []MenuItem `json:"items"`
}

// ContactInfoItem is a labelled contact detail (phone, address, ...)
type ContactInfoItem struct {
	Key   string `json:"_key,omitempty"`
	Label string `json:"label,omitempty"`
	Value string `json:"value,omitempty"`
}

// OpeningTime is one row of the opening times table
type OpeningTime struct {
	Title string `json:"title,omitempty"`
	Time  string `json:"time,omitempty"`
}

// SiteSettings is the singleton global configuration record.
// The most recently updated record wins when several exist.
type SiteSettings struct {
	Title                 string            `json:"title,omitempty"`
	ContactInfo           []ContactInfoItem `json:"contactInfo"`
	OpeningTimes          []OpeningTime     `json:"openingTimes,omitempty"`
	FacebookURL           string            `json:"facebookUrl,omitempty"`
	LinkedinURL           string            `json:"linkedinUrl,omitempty"`
	InstagramURL          string            `json:"instagramUrl,omitempty"`
	PreloaderImages       []Image           `json:"preloaderImages,omitempty"`
	Logotype              *Image            `json:"logotype,omitempty"`
	FooterLogos           []Image           `json:"footerLogos"`
	CertificationLogo     *Image            `json:"certificationLogo,omitempty"`
	FtCreditLogo          *Image            `json:"ftCreditLogo,omitempty"`
	MenuBackgroundImage   *Image            `json:"menuBackgroundImage,omitempty"`
	BookingTitle          string            `json:"bookingTitle,omitempty"`
	BookingLink           string            `json:"bookingLink,omitempty"`
	DisablePreloader      bool              `json:"disablePreloader,omitempty"`
	DisablePageTransition bool              `json:"disablePageTransition,omitempty"`
	MainNavigationMenu    *Menu             `json:"mainNavigationMenu,omitempty"`
	FooterMenu            *Menu             `json:"footerMenu,omitempty"`
	Copyright             string            `json:"copyright,omitempty"`
	Credits               string            `json:"credits,omitempty"`
	HeroLeftText          string            `json:"heroLeftText,omitempty"`
	HeroRightText         string            `json:"heroRightText,omitempty"`
	DefaultHeroVideo      *Video            `json:"defaultHeroVideo,omitempty"`
	DefaultHeroImage      *Image            `json:"defaultHeroImage,omitempty"`
	DefaultMetaDesc       string            `json:"defaultMetaDescription,omitempty"`
	NewsletterActionURL   string            `json:"newsletterActionUrl,omitempty"`
	NewsletterTitleFooter string            `json:"newsletterTitleFooter,omitempty"`
	NewsletterTitleHero   string            `json:"newsletterTitleHero,omitempty"`
	NewsletterPlaceholder string            `json:"newsletterPlaceholder,omitempty"`
	CookiesMessage        json.RawMessage   `json:"cookiesMessage,omitempty"`
	GoogleAnalyticsID     string            `json:"googleAnalyticsId,omitempty"`
}

// Normalize repairs shapes consumers rely on: menu item arrays are never
// nil, and items targeting a section by reference get a derived anchor.
func (s *SiteSettings) Normalize() {
	if s.ContactInfo == nil {
		s.ContactInfo = []ContactInfoItem{}
	}
	if s.FooterLogos == nil {
		s.FooterLogos = []Image{}
	}
	if s.MainNavigationMenu != nil {
		s.MainNavigationMenu.Normalize()
	}
	if s.FooterMenu != nil {
		s.FooterMenu.Normalize()
	}
}

// Normalize guarantees a non-nil item slice and fills in derived anchors
func (m *Menu) Normalize() {
	if m.Items == nil {
		m.Items = []MenuItem{}
	}
	for i := range m.Items {
		m.Items[i].deriveAnchor()
	}
}

// deriveAnchor fills the anchor from the referenced section's title when
// the authoring side left it empty. An explicit anchor is never replaced.
func (item *MenuItem) deriveAnchor() {
	if item.To == nil || item.To.Anchor != "" {
		return
	}
	if item.To.Section != nil && item.To.Section.Title != "" {
		item.To.Anchor = DeriveAnchor(item.To.Section.Title)
	}
}

// Page is a CMS page: flags, optional hero media and an ordered list
// of expanded sections
type Page struct {
	ID                     string    `json:"_id,omitempty"`
	Title                  string    `json:"title,omitempty"`
	Slug                   *Slug     `json:"slug,omitempty"`
	RouteName              string    `json:"routeName,omitempty"`
	DarkMode               bool      `json:"darkMode,omitempty"`
	BorderTop              bool      `json:"borderTop,omitempty"`
	RemoveTopPadding       bool      `json:"removeTopPadding,omitempty"`
	HideFooter             bool      `json:"hideFooter,omitempty"`
	HideHeaderLogo         bool      `json:"hideHeaderLogo,omitempty"`
	GreyBackground         bool      `json:"greyBackground,omitempty"`
	BackgroundGradientFrom string    `json:"backgroundGradientStart,omitempty"`
	BackgroundGradientTo   string    `json:"backgroundGradientEnd,omitempty"`
	HeroVideo              *Video    `json:"heroVideo,omitempty"`
	HeroImage              *Image    `json:"heroImage,omitempty"`
	Sections               []Section `json:"sections,omitempty"`
}

// PageVideo is the lightweight projection used for video preloading
type PageVideo struct {
	ID        string `json:"_id,omitempty"`
	Slug      *Slug  `json:"slug,omitempty"`
	Title     string `json:"title,omitempty"`
	HeroVideo *Video `json:"heroVideo,omitempty"`
}

// TeamMember is a staff profile with an explicit sort rank
type TeamMember struct {
	ID        string `json:"_id,omitempty"`
	Name      string `json:"name,omitempty"`
	Role      string `json:"role,omitempty"`
	Bio       string `json:"bio,omitempty"`
	ImageURL  string `json:"imageUrl,omitempty"`
	ImageAlt  string `json:"imageAlt,omitempty"`
	OrderRank string `json:"orderRank,omitempty"`
}

// Subservice is a bookable option beneath a service
type Subservice struct {
	Title    string `json:"title,omitempty"`
	Duration string `json:"duration,omitempty"`
	Cost     string `json:"cost,omitempty"`
}

// Service is an offered service with its subservices
type Service struct {
	ID          string       `json:"_id,omitempty"`
	Title       string       `json:"title,omitempty"`
	Description string       `json:"description,omitempty"`
	BookingLink string       `json:"bookingLink,omitempty"`
	Subservices []Subservice `json:"subservices,omitempty"`
}

// TipLink is the optional call-to-action on a tip
type TipLink struct {
	Text        string `json:"text,omitempty"`
	URL         string `json:"url,omitempty"`
	TargetBlank bool   `json:"targetBlank,omitempty"`
}

// Tip is an editorial tip card
type Tip struct {
	Title           string          `json:"title,omitempty"`
	Content         json.RawMessage `json:"content,omitempty"`
	Image           *Image          `json:"image,omitempty"`
	BackgroundImage *Image          `json:"backgroundImage,omitempty"`
	Link            *TipLink        `json:"link,omitempty"`
	OrderRank       string          `json:"orderRank,omitempty"`
}

// GalleryItem is one media entry of a gallery
type GalleryItem struct {
	Type  string `json:"_type,omitempty"`
	Asset *Asset `json:"asset,omitempty"`
}

// GalleryListing is the lightweight gallery projection for index pages
type GalleryListing struct {
	ID        string       `json:"_id,omitempty"`
	Title     string       `json:"title,omitempty"`
	Thumbnail *GalleryItem `json:"thumbnail,omitempty"`
	ItemCount int          `json:"itemCount"`
}

// Gallery is a gallery with fully expanded items
type Gallery struct {
	ID    string        `json:"_id,omitempty"`
	Title string        `json:"title,omitempty"`
	Items []GalleryItem `json:"items,omitempty"`
}

// NewsPost is a dated news entry
type NewsPost struct {
	ID      string          `json:"_id,omitempty"`
	Title   string          `json:"title,omitempty"`
	Slug    *Slug           `json:"slug,omitempty"`
	Date    string          `json:"date,omitempty"`
	Excerpt string          `json:"excerpt,omitempty"`
	Content json.RawMessage `json:"content,omitempty"`
	Image   *Image          `json:"image,omitempty"`
}
