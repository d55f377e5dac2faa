package models

import "time"

// ContactRequest is the JSON body of a contact form submission
type ContactRequest struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Telephone string `json:"telephone"`
	Comment   string `json:"comment,omitempty"`
}

// ContactSubmission is the persisted audit record of a submission
type ContactSubmission struct {
	ID        string    `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Email     string    `json:"email" db:"email"`
	Telephone string    `json:"telephone" db:"telephone"`
	Comment   string    `json:"comment,omitempty" db:"comment"`
	EmailID   string    `json:"email_id,omitempty" db:"email_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// ContactResponse is the success envelope returned to the browser
type ContactResponse struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Data    ContactResultData `json:"data"`
}

// ContactResultData carries the provider's and our own identifiers
type ContactResultData struct {
	ID      string `json:"id"`
	EmailID string `json:"emailId,omitempty"`
}
