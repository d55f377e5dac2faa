package models

import "fmt"

// ContentKind discriminates the fixed set of content request shapes
type ContentKind string

const (
	KindSiteSettings      ContentKind = "siteSettings"
	KindMenu              ContentKind = "menu"
	KindAllPageVideos     ContentKind = "allPageVideos"
	KindPage              ContentKind = "page"
	KindSection           ContentKind = "section"
	KindSectionHomeScroll ContentKind = "sectionHomeScroll"
	KindService           ContentKind = "service"
	KindTeam              ContentKind = "team"
	KindTips              ContentKind = "tips"
	KindNews              ContentKind = "news"
	KindGalleries         ContentKind = "galleries"
	KindGallery           ContentKind = "gallery"
)

// ContentRequest is a fully parsed content query. Building it up front,
// with one kind and explicit per-kind parameters, replaces the old
// first-match-wins parameter sniffing.
type ContentRequest struct {
	Kind           ContentKind
	Identifier     string
	IdentifierType string
	MenuTitle      string
	SectionType    string
	Title          string
	ID             string
}

// RequestError is a 400-class parse failure naming the offending parameter
type RequestError struct {
	Message string
}

func (e *RequestError) Error() string {
	return e.Message
}

// ParseContentRequest validates raw query parameters into a ContentRequest.
// A bare menuTitle without a type is accepted as a menu request for
// compatibility with older clients.
func ParseContentRequest(params map[string]string) (*ContentRequest, error) {
	req := &ContentRequest{
		Identifier:     params["identifier"],
		IdentifierType: params["identifierType"],
		MenuTitle:      params["menuTitle"],
		SectionType:    params["sectionType"],
		Title:          params["title"],
		ID:             params["id"],
	}

	kind := params["type"]
	if kind == "" && req.MenuTitle != "" {
		kind = string(KindMenu)
	}

	switch ContentKind(kind) {
	case KindSiteSettings, KindAllPageVideos, KindSectionHomeScroll,
		KindService, KindTeam, KindTips, KindNews, KindGalleries:
		req.Kind = ContentKind(kind)
	case KindMenu:
		if req.MenuTitle == "" {
			return nil, &RequestError{Message: "menuTitle is required for type=menu"}
		}
		req.Kind = KindMenu
	case KindPage:
		if req.Identifier == "" {
			return nil, &RequestError{Message: "identifier is required for type=page"}
		}
		req.Kind = KindPage
	case KindSection:
		if req.SectionType == "" {
			return nil, &RequestError{Message: "sectionType is required for type=section"}
		}
		req.Kind = KindSection
	case KindGallery:
		if req.ID == "" {
			return nil, &RequestError{Message: "id is required for type=gallery"}
		}
		req.Kind = KindGallery
	default:
		return nil, &RequestError{Message: fmt.Sprintf("invalid query parameters: unknown type %q", kind)}
	}

	return req, nil
}
