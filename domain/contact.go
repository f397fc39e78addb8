package domain

import "time"

const ContactStatusNew = "new"

// ContactMessage is a visitor submission from the public contact form.
// It is write-only and unrelated to the portfolio document.
type ContactMessage struct {
	ID        string    `json:"id,omitempty"`
	Name      string    `json:"name" validate:"required"`
	Email     string    `json:"email" validate:"required,email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message" validate:"required"`
	Phone     string    `json:"phone"`
	Company   string    `json:"company"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}
