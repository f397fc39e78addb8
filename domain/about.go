package domain

import "time"

// Experience is one entry of the work history embedded in the about record.
type Experience struct {
	ID          string `json:"id"`
	Role        string `json:"role"`
	Company     string `json:"company"`
	Year        string `json:"year"`
	Description string `json:"description"`
}

// About is the biography section. Like Hero, only one record is active.
type About struct {
	ID         string       `json:"id,omitempty"`
	Heading    string       `json:"heading" validate:"required"`
	Bio        string       `json:"bio" validate:"required"`
	Skills     []string     `json:"skills"`
	Experience []Experience `json:"experience"`
	IsActive   bool         `json:"is_active"`
	CreatedAt  time.Time    `json:"created_at"`
	UpdatedAt  time.Time    `json:"updated_at"`
}
