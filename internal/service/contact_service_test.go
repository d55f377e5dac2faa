package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/site-content-api/internal/config"
	"github.com/site-content-api/internal/mailer"
	"github.com/site-content-api/internal/models"
	"github.com/site-content-api/internal/validation"
)

type fakeSubmissionRepo struct {
	created   []*models.ContactSubmission
	emailIDs  map[string]string
	createErr error
}

func (r *fakeSubmissionRepo) Create(ctx context.Context, sub *models.ContactSubmission) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.created = append(r.created, sub)
	return nil
}

func (r *fakeSubmissionRepo) SetEmailID(ctx context.Context, id, emailID string) error {
	if r.emailIDs == nil {
		r.emailIDs = make(map[string]string)
	}
	r.emailIDs[id] = emailID
	return nil
}

func (r *fakeSubmissionRepo) GetByID(ctx context.Context, id string) (*models.ContactSubmission, error) {
	return nil, nil
}

func (r *fakeSubmissionRepo) Count(ctx context.Context) (int, error) {
	return len(r.created), nil
}

type fakeMailer struct {
	sent    []*mailer.Email
	sendErr error
}

func (m *fakeMailer) Send(ctx context.Context, email *mailer.Email) (string, error) {
	if m.sendErr != nil {
		return "", m.sendErr
	}
	m.sent = append(m.sent, email)
	return "email-123", nil
}

func validContactRequest() *models.ContactRequest {
	return &models.ContactRequest{
		Name:      "Jane Doe",
		Email:     "jane@example.com",
		Telephone: "07123456789",
		Comment:   "First line\nSecond line",
	}
}

func emailConfig() *config.EmailConfig {
	return &config.EmailConfig{
		APIKey: "re_test_key",
		From:   "onboarding@resend.dev",
		To:     "owner@example.com",
	}
}

func TestSubmitRejectsMissingFields(t *testing.T) {
	svc := newContactService(&fakeSubmissionRepo{}, &fakeMailer{}, emailConfig(), zerolog.Nop())

	req := validContactRequest()
	req.Telephone = ""

	_, err := svc.Submit(context.Background(), req)
	var vErr *validation.Error
	if !errors.As(err, &vErr) {
		t.Fatalf("Expected validation error, got %v", err)
	}
	if vErr.Field != "telephone" {
		t.Errorf("Expected telephone field flagged, got %q", vErr.Field)
	}
}

func TestSubmitRejectsInvalidEmail(t *testing.T) {
	svc := newContactService(&fakeSubmissionRepo{}, &fakeMailer{}, emailConfig(), zerolog.Nop())

	req := validContactRequest()
	req.Email = "not-an-email"

	_, err := svc.Submit(context.Background(), req)
	var vErr *validation.Error
	if !errors.As(err, &vErr) {
		t.Fatalf("Expected validation error, got %v", err)
	}
	if vErr.Field != "email" {
		t.Errorf("Expected email field flagged, got %q", vErr.Field)
	}
}

func TestSubmitRequiresAPIKey(t *testing.T) {
	cfg := emailConfig()
	cfg.APIKey = ""
	svc := newContactService(&fakeSubmissionRepo{}, &fakeMailer{}, cfg, zerolog.Nop())

	_, err := svc.Submit(context.Background(), validContactRequest())
	if !errors.Is(err, ErrEmailNotConfigured) {
		t.Errorf("Expected ErrEmailNotConfigured, got %v", err)
	}
}

func TestSubmitRequiresRecipient(t *testing.T) {
	cfg := emailConfig()
	cfg.To = ""
	svc := newContactService(&fakeSubmissionRepo{}, &fakeMailer{}, cfg, zerolog.Nop())

	_, err := svc.Submit(context.Background(), validContactRequest())
	if !errors.Is(err, ErrRecipientNotConfigured) {
		t.Errorf("Expected ErrRecipientNotConfigured, got %v", err)
	}
}

func TestSubmitSurfacesProviderFailure(t *testing.T) {
	repo := &fakeSubmissionRepo{}
	m := &fakeMailer{sendErr: errors.New("invalid api key")}
	svc := newContactService(repo, m, emailConfig(), zerolog.Nop())

	_, err := svc.Submit(context.Background(), validContactRequest())
	if err == nil || !strings.Contains(err.Error(), "invalid api key") {
		t.Errorf("Expected provider failure surfaced, got %v", err)
	}
	if len(repo.created) != 1 {
		t.Errorf("Expected audit record stored before send, got %d", len(repo.created))
	}
}

func TestSubmitSuccess(t *testing.T) {
	repo := &fakeSubmissionRepo{}
	m := &fakeMailer{}
	svc := newContactService(repo, m, emailConfig(), zerolog.Nop())

	res, err := svc.Submit(context.Background(), validContactRequest())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if !res.Success {
		t.Errorf("Expected success response")
	}
	if res.Data.ID == "" {
		t.Errorf("Expected submission id in response")
	}
	if res.Data.EmailID != "email-123" {
		t.Errorf("Expected provider email id, got %q", res.Data.EmailID)
	}
	if got := repo.emailIDs[res.Data.ID]; got != "email-123" {
		t.Errorf("Expected email id recorded against submission, got %q", got)
	}

	if len(m.sent) != 1 {
		t.Fatalf("Expected 1 email sent, got %d", len(m.sent))
	}
	email := m.sent[0]
	if email.To != "owner@example.com" {
		t.Errorf("Expected configured recipient, got %q", email.To)
	}
	if !strings.Contains(email.Subject, "Jane Doe") {
		t.Errorf("Expected name in subject, got %q", email.Subject)
	}
	if !strings.Contains(email.HTML, "First line<br>Second line") {
		t.Errorf("Expected comment newlines converted, got %q", email.HTML)
	}
}

func TestSubmitEscapesHTMLInEmail(t *testing.T) {
	m := &fakeMailer{}
	svc := newContactService(&fakeSubmissionRepo{}, m, emailConfig(), zerolog.Nop())

	req := validContactRequest()
	req.Name = "<script>alert(1)</script>"

	if _, err := svc.Submit(context.Background(), req); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if strings.Contains(m.sent[0].HTML, "<script>") {
		t.Errorf("Expected HTML-escaped name in email body")
	}
}

func TestSubmitSurvivesAuditFailure(t *testing.T) {
	repo := &fakeSubmissionRepo{createErr: errors.New("db down")}
	m := &fakeMailer{}
	svc := newContactService(repo, m, emailConfig(), zerolog.Nop())

	res, err := svc.Submit(context.Background(), validContactRequest())
	if err != nil {
		t.Fatalf("Expected audit failure to be non-fatal, got %v", err)
	}
	if !res.Success || len(m.sent) != 1 {
		t.Errorf("Expected email still sent after storage failure")
	}
}

func TestSubmitWorksWithoutRepository(t *testing.T) {
	m := &fakeMailer{}
	svc := newContactService(nil, m, emailConfig(), zerolog.Nop())

	res, err := svc.Submit(context.Background(), validContactRequest())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !res.Success {
		t.Errorf("Expected success without audit store")
	}
}
