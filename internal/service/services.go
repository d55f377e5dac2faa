package service

import (
	"context"
	"encoding/json"

	"github.com/rs/zerolog"

	"github.com/site-content-api/internal/config"
	"github.com/site-content-api/internal/mailer"
	"github.com/site-content-api/internal/models"
	"github.com/site-content-api/internal/repository"
)

// Fetcher is the CMS read operation the content service depends on
type Fetcher interface {
	Fetch(ctx context.Context, query string, params map[string]string) (json.RawMessage, error)
}

// ContentService dispatches a parsed content request to the CMS and
// normalizes the result. A nil result with a nil error means the
// requested content does not exist.
type ContentService interface {
	Query(ctx context.Context, req *models.ContentRequest) (interface{}, error)
}

// ContactService validates and relays contact form submissions
type ContactService interface {
	Submit(ctx context.Context, req *models.ContactRequest) (*models.ContactResponse, error)
}

// ColorService extracts a representative color from a remote image
type ColorService interface {
	Extract(ctx context.Context, imageURL string) *models.ColorResult
}

// Services holds all service interfaces
type Services struct {
	Content ContentService
	Contact ContactService
	Color   ColorService
}

// NewServices creates all services
func NewServices(fetcher Fetcher, repos *repository.Repositories, m mailer.Mailer, cfg *config.Config, log zerolog.Logger) *Services {
	return &Services{
		Content: newContentService(fetcher, log),
		Contact: newContactService(repos.Submission, m, &cfg.Email, log),
		Color:   newColorService(log),
	}
}
