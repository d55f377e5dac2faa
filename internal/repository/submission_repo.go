package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/site-content-api/internal/database"
	"github.com/site-content-api/internal/models"
)

// submissionRepo is the concrete implementation of SubmissionRepository
type submissionRepo struct {
	db *database.DB
}

// NewSubmissionRepo creates a new submission repository
func NewSubmissionRepo(db *database.DB) SubmissionRepository {
	return &submissionRepo{db: db}
}

// Create inserts a new contact submission
func (r *submissionRepo) Create(ctx context.Context, sub *models.ContactSubmission) error {
	query := `
		INSERT INTO contact_submissions (id, name, email, telephone, comment, email_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.db.ExecContext(ctx, query,
		sub.ID, sub.Name, sub.Email, sub.Telephone, sub.Comment, sub.EmailID, sub.CreatedAt,
	)
	return err
}

// SetEmailID records the provider's message id after a successful send
func (r *submissionRepo) SetEmailID(ctx context.Context, id, emailID string) error {
	query := `UPDATE contact_submissions SET email_id = $2 WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, id, emailID)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("submission %s not found", id)
	}
	return nil
}

// GetByID fetches one submission
func (r *submissionRepo) GetByID(ctx context.Context, id string) (*models.ContactSubmission, error) {
	query := `
		SELECT id, name, email, telephone, comment, email_id, created_at
		FROM contact_submissions
		WHERE id = $1
	`
	sub := &models.ContactSubmission{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&sub.ID, &sub.Name, &sub.Email, &sub.Telephone, &sub.Comment, &sub.EmailID, &sub.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return sub, nil
}

// Count returns the total number of stored submissions
func (r *submissionRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM contact_submissions`).Scan(&count)
	return count, err
}
