package service

import (
	"context"
	"errors"
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/site-content-api/internal/config"
	"github.com/site-content-api/internal/mailer"
	"github.com/site-content-api/internal/models"
	"github.com/site-content-api/internal/repository"
	"github.com/site-content-api/internal/validation"
)

// Configuration errors are distinct from provider failures so operators
// can tell a missing secret from a rejected send.
var (
	ErrEmailNotConfigured     = errors.New("email service not configured")
	ErrRecipientNotConfigured = errors.New("recipient email not configured")
)

// contactService is the concrete implementation of ContactService
type contactService struct {
	repo   repository.SubmissionRepository
	mailer mailer.Mailer
	cfg    *config.EmailConfig
	log    zerolog.Logger
}

// newContactService creates a new contact service
func newContactService(repo repository.SubmissionRepository, m mailer.Mailer, cfg *config.EmailConfig, log zerolog.Logger) ContactService {
	return &contactService{
		repo:   repo,
		mailer: m,
		cfg:    cfg,
		log:    log.With().Str("component", "contact").Logger(),
	}
}

// Submit validates the submission, stores an audit record and relays the
// message to the email provider. The audit insert is best-effort: a
// storage failure is logged but never blocks the email.
func (s *contactService) Submit(ctx context.Context, req *models.ContactRequest) (*models.ContactResponse, error) {
	if err := validation.ValidateContact(req); err != nil {
		return nil, err
	}

	if s.cfg.APIKey == "" {
		s.log.Error().Msg("EMAIL_API_KEY or RESEND_API_KEY environment variable is not set")
		return nil, ErrEmailNotConfigured
	}
	if s.cfg.To == "" {
		s.log.Error().Msg("EMAIL_TO environment variable is not set")
		return nil, ErrRecipientNotConfigured
	}

	submission := &models.ContactSubmission{
		ID:        uuid.New().String(),
		Name:      req.Name,
		Email:     req.Email,
		Telephone: req.Telephone,
		Comment:   req.Comment,
		CreatedAt: time.Now().UTC(),
	}
	if s.repo != nil {
		if err := s.repo.Create(ctx, submission); err != nil {
			s.log.Warn().Err(err).Str("submission_id", submission.ID).Msg("Failed to store contact submission")
		}
	}

	email := s.composeEmail(submission)
	emailID, err := s.mailer.Send(ctx, email)
	if err != nil {
		s.log.Error().Err(err).Str("submission_id", submission.ID).Msg("Failed to send contact email")
		return nil, fmt.Errorf("failed to send contact form: %w", err)
	}

	if s.repo != nil {
		if err := s.repo.SetEmailID(ctx, submission.ID, emailID); err != nil {
			s.log.Warn().Err(err).Str("submission_id", submission.ID).Msg("Failed to record email id")
		}
	}

	s.log.Info().
		Str("submission_id", submission.ID).
		Str("email_id", emailID).
		Msg("Contact form relayed")

	return &models.ContactResponse{
		Success: true,
		Message: "Contact form submitted successfully",
		Data: models.ContactResultData{
			ID:      submission.ID,
			EmailID: emailID,
		},
	}, nil
}

// composeEmail builds the HTML and plain-text bodies
func (s *contactService) composeEmail(sub *models.ContactSubmission) *mailer.Email {
	submitted := sub.CreatedAt.Format("January 2, 2006 at 15:04 MST")

	var htmlBody strings.Builder
	htmlBody.WriteString("<h2>New Contact Form Submission</h2>")
	htmlBody.WriteString(fmt.Sprintf("<p><strong>Name:</strong> %s</p>", html.EscapeString(sub.Name)))
	htmlBody.WriteString(fmt.Sprintf("<p><strong>Email:</strong> %s</p>", html.EscapeString(sub.Email)))
	htmlBody.WriteString(fmt.Sprintf("<p><strong>Telephone:</strong> %s</p>", html.EscapeString(sub.Telephone)))
	if sub.Comment != "" {
		comment := strings.ReplaceAll(html.EscapeString(sub.Comment), "\n", "<br>")
		htmlBody.WriteString(fmt.Sprintf("<p><strong>Comment:</strong><br>%s</p>", comment))
	}
	htmlBody.WriteString("<hr>")
	htmlBody.WriteString(fmt.Sprintf("<p><small>Submitted on %s</small></p>", submitted))

	var textBody strings.Builder
	textBody.WriteString("New Contact Form Submission\n\n")
	textBody.WriteString(fmt.Sprintf("Name: %s\n", sub.Name))
	textBody.WriteString(fmt.Sprintf("Email: %s\n", sub.Email))
	textBody.WriteString(fmt.Sprintf("Telephone: %s\n", sub.Telephone))
	if sub.Comment != "" {
		textBody.WriteString(fmt.Sprintf("Comment: %s\n", sub.Comment))
	}
	textBody.WriteString(fmt.Sprintf("\nSubmitted on %s\n", submitted))

	return &mailer.Email{
		From:    s.cfg.From,
		To:      s.cfg.To,
		Subject: fmt.Sprintf("New Contact Form Submission from %s", sub.Name),
		HTML:    htmlBody.String(),
		Text:    textBody.String(),
	}
}
