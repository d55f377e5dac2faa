package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/site-content-api/internal/cms"
	"github.com/site-content-api/internal/models"
)

// contentService is the concrete implementation of ContentService
type contentService struct {
	cms Fetcher
	log zerolog.Logger
}

// newContentService creates a new content service
func newContentService(fetcher Fetcher, log zerolog.Logger) ContentService {
	return &contentService{
		cms: fetcher,
		log: log.With().Str("component", "content").Logger(),
	}
}

// Query runs the query shape selected by the request kind. The switch is
// exhaustive over models.ContentKind; ParseContentRequest guarantees the
// per-kind required parameters are present.
func (s *contentService) Query(ctx context.Context, req *models.ContentRequest) (interface{}, error) {
	switch req.Kind {
	case models.KindSiteSettings:
		return s.siteSettings(ctx)
	case models.KindMenu:
		return s.menu(ctx, req.MenuTitle)
	case models.KindAllPageVideos:
		return fetchList[models.PageVideo](ctx, s.cms, cms.QueryAllPageVideos, nil)
	case models.KindPage:
		return s.page(ctx, req.Identifier, req.IdentifierType)
	case models.KindSection:
		return s.section(ctx, req.SectionType, req.Title)
	case models.KindSectionHomeScroll:
		return s.rawSingleton(ctx, cms.QuerySectionHomeScroll)
	case models.KindService:
		return fetchList[models.Service](ctx, s.cms, cms.QueryServices, nil)
	case models.KindTeam:
		return fetchList[models.TeamMember](ctx, s.cms, cms.QueryTeam, nil)
	case models.KindTips:
		return fetchList[models.Tip](ctx, s.cms, cms.QueryTips, nil)
	case models.KindNews:
		return fetchList[models.NewsPost](ctx, s.cms, cms.QueryNews, nil)
	case models.KindGalleries:
		return fetchList[models.GalleryListing](ctx, s.cms, cms.QueryGalleries, nil)
	case models.KindGallery:
		return s.gallery(ctx, req.ID)
	default:
		return nil, &models.RequestError{Message: fmt.Sprintf("invalid query parameters: unknown kind %q", req.Kind)}
	}
}

// siteSettings fetches the settings singleton. A dataset without any
// settings record still yields a shaped (empty) object, and menu item
// arrays are never nil.
func (s *contentService) siteSettings(ctx context.Context) (interface{}, error) {
	raw, err := s.cms.Fetch(ctx, cms.QuerySiteSettings, nil)
	if err != nil {
		s.log.Error().Err(err).Msg("Failed to fetch site settings")
		return nil, err
	}

	settings := &models.SiteSettings{}
	if !isNull(raw) {
		if err := json.Unmarshal(raw, settings); err != nil {
			return nil, fmt.Errorf("failed to decode site settings: %w", err)
		}
	}
	settings.Normalize()
	return settings, nil
}

func (s *contentService) menu(ctx context.Context, menuTitle string) (interface{}, error) {
	raw, err := s.cms.Fetch(ctx, cms.QueryMenuByTitle, map[string]string{"menuTitle": menuTitle})
	if err != nil {
		return nil, err
	}
	if isNull(raw) {
		return nil, nil
	}

	menu := &models.Menu{}
	if err := json.Unmarshal(raw, menu); err != nil {
		return nil, fmt.Errorf("failed to decode menu: %w", err)
	}
	menu.Normalize()
	return menu, nil
}

// page looks a page up by slug, or by internal route name when no
// identifier type is given. An unresolved identifier is a nil result,
// never an error.
func (s *contentService) page(ctx context.Context, identifier, identifierType string) (interface{}, error) {
	query := cms.QueryPageByRouteName
	if identifierType == "slug" {
		query = cms.QueryPageBySlug
	}

	raw, err := s.cms.Fetch(ctx, query, map[string]string{"identifier": identifier})
	if err != nil {
		s.log.Error().Err(err).
			Str("identifier", identifier).
			Str("identifier_type", identifierType).
			Msg("Failed to fetch page")
		return nil, err
	}
	if isNull(raw) {
		s.log.Debug().Str("identifier", identifier).Msg("No page found")
		return nil, nil
	}

	page := &models.Page{}
	if err := json.Unmarshal(raw, page); err != nil {
		return nil, fmt.Errorf("failed to decode page: %w", err)
	}
	return page, nil
}

func (s *contentService) section(ctx context.Context, sectionType, title string) (interface{}, error) {
	query := cms.QuerySectionByType
	params := map[string]string{"sectionType": sectionType}
	if title != "" {
		query = cms.QuerySectionByTypeAndTitle
		params["title"] = title
	}

	raw, err := s.cms.Fetch(ctx, query, params)
	if err != nil {
		return nil, err
	}
	if isNull(raw) {
		return nil, nil
	}

	section := &models.Section{}
	if err := json.Unmarshal(raw, section); err != nil {
		return nil, fmt.Errorf("failed to decode section: %w", err)
	}
	return section, nil
}

func (s *contentService) gallery(ctx context.Context, id string) (interface{}, error) {
	raw, err := s.cms.Fetch(ctx, cms.QueryGalleryByID, map[string]string{"id": id})
	if err != nil {
		return nil, err
	}
	if isNull(raw) {
		return nil, nil
	}

	gallery := &models.Gallery{}
	if err := json.Unmarshal(raw, gallery); err != nil {
		return nil, fmt.Errorf("failed to decode gallery: %w", err)
	}
	return gallery, nil
}

// rawSingleton passes a single record through without reshaping
func (s *contentService) rawSingleton(ctx context.Context, query string) (interface{}, error) {
	raw, err := s.cms.Fetch(ctx, query, nil)
	if err != nil {
		return nil, err
	}
	if isNull(raw) {
		return nil, nil
	}
	return raw, nil
}

// fetchList fetches an ordered collection into a typed slice. The result
// is never nil so callers always serialize an array.
func fetchList[T any](ctx context.Context, fetcher Fetcher, query string, params map[string]string) ([]T, error) {
	raw, err := fetcher.Fetch(ctx, query, params)
	if err != nil {
		return nil, err
	}

	items := []T{}
	if isNull(raw) {
		return items, nil
	}
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("failed to decode collection: %w", err)
	}
	return items, nil
}

// isNull reports whether a raw CMS result is the JSON literal null
func isNull(raw json.RawMessage) bool {
	return len(raw) == 0 || bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}
