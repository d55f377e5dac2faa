package mailer

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v2"
)

// Email is one transactional message with both HTML and plain-text bodies
type Email struct {
	From    string
	To      string
	Subject string
	HTML    string
	Text    string
}

// Mailer sends transactional email and returns the provider's message id
type Mailer interface {
	Send(ctx context.Context, email *Email) (string, error)
}

// resendMailer sends email through the Resend API
type resendMailer struct {
	client *resend.Client
}

// NewResend creates a Resend-backed mailer
func NewResend(apiKey string) Mailer {
	return &resendMailer{client: resend.NewClient(apiKey)}
}

// Send relays the email through Resend
func (m *resendMailer) Send(ctx context.Context, email *Email) (string, error) {
	params := &resend.SendEmailRequest{
		From:    email.From,
		To:      []string{email.To},
		Subject: email.Subject,
		Html:    email.HTML,
		Text:    email.Text,
	}

	sent, err := m.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		return "", fmt.Errorf("resend: %w", err)
	}
	return sent.Id, nil
}
