package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/site-content-api/internal/cms"
	"github.com/site-content-api/internal/models"
	"github.com/site-content-api/internal/service"
)

// ContentHandler serves the content query endpoint
type ContentHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewContentHandler creates a new content handler
func NewContentHandler(services *service.Services, log zerolog.Logger) *ContentHandler {
	return &ContentHandler{
		services: services,
		log:      log.With().Str("handler", "content").Logger(),
	}
}

// Query handles GET /api/sanity. Content that does not exist is a 200
// response with a null body; only transport and upstream failures carry
// an error envelope.
func (h *ContentHandler) Query(c *gin.Context) {
	params := map[string]string{
		"type":           c.Query("type"),
		"identifier":     c.Query("identifier"),
		"identifierType": c.Query("identifierType"),
		"menuTitle":      c.Query("menuTitle"),
		"sectionType":    c.Query("sectionType"),
		"title":          c.Query("title"),
		"id":             c.Query("id"),
	}

	req, err := models.ParseContentRequest(params)
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.services.Content.Query(c.Request.Context(), req)
	if err != nil {
		h.respondQueryError(c, req, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// respondQueryError relays the upstream status code when the CMS supplied
// one, otherwise answers 500. The message is preserved for diagnosis.
func (h *ContentHandler) respondQueryError(c *gin.Context, req *models.ContentRequest, err error) {
	h.log.Error().Err(err).
		Str("kind", string(req.Kind)).
		Str("identifier", req.Identifier).
		Str("request_id", c.GetString("request_id")).
		Msg("Content query failed")

	var reqErr *models.RequestError
	if errors.As(err, &reqErr) {
		respondError(c, http.StatusBadRequest, reqErr.Message)
		return
	}

	status := http.StatusInternalServerError
	var apiErr *cms.APIError
	if errors.As(err, &apiErr) && apiErr.StatusCode >= 400 {
		status = apiErr.StatusCode
	}
	respondError(c, status, fmt.Sprintf("Error fetching data from CMS: %s", err.Error()))
}
