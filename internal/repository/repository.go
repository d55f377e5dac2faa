package repository

import (
	"context"

	"github.com/site-content-api/internal/database"
	"github.com/site-content-api/internal/models"
)

// SubmissionRepository defines the interface for contact submission
// audit records
type SubmissionRepository interface {
	Create(ctx context.Context, sub *models.ContactSubmission) error
	SetEmailID(ctx context.Context, id, emailID string) error
	GetByID(ctx context.Context, id string) (*models.ContactSubmission, error)
	Count(ctx context.Context) (int, error)
}

// Repositories holds all repository interfaces
type Repositories struct {
	Submission SubmissionRepository
}

// New creates all repositories with the given database connection
func New(db *database.DB) *Repositories {
	return &Repositories{
		Submission: NewSubmissionRepo(db),
	}
}
