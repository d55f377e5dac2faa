package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/site-content-api/internal/service"
)

// ColorHandler serves the average-color extraction endpoint
type ColorHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewColorHandler creates a new color handler
func NewColorHandler(services *service.Services, log zerolog.Logger) *ColorHandler {
	return &ColorHandler{
		services: services,
		log:      log.With().Str("handler", "color").Logger(),
	}
}

// extractColorRequest is the JSON body of an extraction request
type extractColorRequest struct {
	ImageURL string `json:"imageUrl"`
}

// Extract handles POST /api/extract-color. The response is always 200:
// a failed extraction carries success=false and a palette fallback so
// the UI still gets a usable tint.
func (h *ColorHandler) Extract(c *gin.Context) {
	var req extractColorRequest
	// A malformed body is treated like a missing URL and falls back
	_ = c.ShouldBindJSON(&req)

	result := h.services.Color.Extract(c.Request.Context(), req.ImageURL)
	c.JSON(http.StatusOK, result)
}
