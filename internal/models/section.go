package models

import "encoding/json"

// Section is a typed content block embedded in a page. The variant is
// discriminated by SectionType; exactly one of the payload fields below is
// populated, matching the variant. Payloads are carried opaquely: the
// server shapes them in the CMS projection and the presentation layer owns
// their interpretation.
type Section struct {
	ID                  string `json:"_id,omitempty"`
	Type                string `json:"_type,omitempty"`
	Title               string `json:"title,omitempty"`
	BorderTop           bool   `json:"borderTop,omitempty"`
	BorderBottom        bool   `json:"borderBottom,omitempty"`
	NoPaddingTop        bool   `json:"noPaddingTop,omitempty"`
	NoPaddingBottom     bool   `json:"noPaddingBottom,omitempty"`
	PaddingTopMobile    bool   `json:"paddingTopMobile,omitempty"`
	PaddingBottomMobile bool   `json:"paddingBottomMobile,omitempty"`
	SectionType         string `json:"sectionType,omitempty"`

	HeroContent                  json.RawMessage `json:"heroContent,omitempty"`
	BasicContent                 json.RawMessage `json:"basicContent,omitempty"`
	ImageContent                 json.RawMessage `json:"imageContent,omitempty"`
	SectionImagesContent         json.RawMessage `json:"sectionImagesContent,omitempty"`
	TipsFromTheTableContent      json.RawMessage `json:"tipsFromTheTableContent,omitempty"`
	ReviewsContent               json.RawMessage `json:"reviewsContent,omitempty"`
	InstagramContent             json.RawMessage `json:"instagramContent,omitempty"`
	HeadlineContent              json.RawMessage `json:"headlineContent,omitempty"`
	ContactContent               json.RawMessage `json:"contactContent,omitempty"`
	HomeScrollContent            json.RawMessage `json:"homeScrollContent,omitempty"`
	TwoColumnContent             json.RawMessage `json:"twoColumnContent,omitempty"`
	NestedContent                json.RawMessage `json:"nestedContent,omitempty"`
	BannerContent                json.RawMessage `json:"bannerContent,omitempty"`
	QuoteContent                 json.RawMessage `json:"quoteContent,omitempty"`
	GoogleMapContent             json.RawMessage `json:"googleMapContent,omitempty"`
	TextContent                  json.RawMessage `json:"textContent,omitempty"`
	MarqueeContent               json.RawMessage `json:"marqueeContent,omitempty"`
	ServiceLinksContent          json.RawMessage `json:"serviceLinksContent,omitempty"`
	DualCarouselContent          json.RawMessage `json:"dualCarouselContent,omitempty"`
	SingleCarouselContent        json.RawMessage `json:"singleCarouselContent,omitempty"`
	UspsContent                  json.RawMessage `json:"uspsContent,omitempty"`
	ServiceContent               json.RawMessage `json:"serviceContent,omitempty"`
	HorizontalCarouselContent    json.RawMessage `json:"horizontalCarouselContent,omitempty"`
	SelectedPagesContent         json.RawMessage `json:"selectedPagesContent,omitempty"`
	SelectedServicesContent      json.RawMessage `json:"selectedServicesContent,omitempty"`
	CarouselContent              json.RawMessage `json:"carouselContent,omitempty"`
	FaqsContent                  json.RawMessage `json:"faqsContent,omitempty"`
	ContactFormContent           json.RawMessage `json:"contactFormContent,omitempty"`
	DirectionsContent            json.RawMessage `json:"directionsContent,omitempty"`
	OpeningTimesAndPricesContent json.RawMessage `json:"openingTimesAndPricesContent,omitempty"`
	TitleAndTextContent          json.RawMessage `json:"titleAndTextContent,omitempty"`
	TwoColumnsContent            json.RawMessage `json:"twoColumnsContent,omitempty"`
	BlocksContent                json.RawMessage `json:"blocksContent,omitempty"`
}
