package validation

import (
	"regexp"

	"github.com/site-content-api/internal/models"
)

// emailRegex accepts the basic local@domain.tld shape
var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Error is a single validation failure naming the offending field
type Error struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *Error) Error() string {
	return e.Message
}

// ValidateContact checks a contact form submission. Name, email and
// telephone are required; comment is optional.
func ValidateContact(req *models.ContactRequest) *Error {
	if req.Name == "" {
		return &Error{Field: "name", Message: "name is required"}
	}
	if req.Email == "" {
		return &Error{Field: "email", Message: "email is required"}
	}
	if req.Telephone == "" {
		return &Error{Field: "telephone", Message: "telephone is required"}
	}
	if !emailRegex.MatchString(req.Email) {
		return &Error{Field: "email", Message: "invalid email address"}
	}
	return nil
}

// ValidEmail reports whether the address matches the basic email shape
func ValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}
