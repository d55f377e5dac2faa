package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/site-content-api/internal/models"
	"github.com/site-content-api/internal/repository"
	"github.com/site-content-api/internal/service"
	"github.com/site-content-api/internal/validation"
)

// ContactHandler serves the contact form endpoint and the submission
// lookup used when chasing up a relayed message
type ContactHandler struct {
	services *service.Services
	repos    *repository.Repositories
	log      zerolog.Logger
}

// NewContactHandler creates a new contact handler
func NewContactHandler(services *service.Services, repos *repository.Repositories, log zerolog.Logger) *ContactHandler {
	return &ContactHandler{
		services: services,
		repos:    repos,
		log:      log.With().Str("handler", "contact").Logger(),
	}
}

// Submit handles POST /api/contact
func (h *ContactHandler) Submit(c *gin.Context) {
	var req models.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	res, err := h.services.Contact.Submit(c.Request.Context(), &req)
	if err != nil {
		h.respondSubmitError(c, err)
		return
	}

	c.JSON(http.StatusOK, res)
}

// GetSubmission handles GET /api/contact/:id
func (h *ContactHandler) GetSubmission(c *gin.Context) {
	if h.repos == nil || h.repos.Submission == nil {
		respondError(c, http.StatusNotFound, "Submission not found")
		return
	}

	sub, err := h.repos.Submission.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.log.Error().Err(err).Str("request_id", c.GetString("request_id")).Msg("Failed to load submission")
		respondError(c, http.StatusInternalServerError, "Failed to load submission")
		return
	}
	if sub == nil {
		respondError(c, http.StatusNotFound, "Submission not found")
		return
	}

	c.JSON(http.StatusOK, sub)
}

func (h *ContactHandler) respondSubmitError(c *gin.Context, err error) {
	var validationErr *validation.Error
	switch {
	case errors.As(err, &validationErr):
		respondError(c, http.StatusBadRequest, validationErr.Message)
	case errors.Is(err, service.ErrEmailNotConfigured):
		respondError(c, http.StatusInternalServerError, "Email service not configured")
	case errors.Is(err, service.ErrRecipientNotConfigured):
		respondError(c, http.StatusInternalServerError, "Recipient email not configured")
	default:
		h.log.Error().Err(err).Str("request_id", c.GetString("request_id")).Msg("Contact submission failed")
		respondError(c, http.StatusInternalServerError, err.Error())
	}
}
