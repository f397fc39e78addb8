package domain

import "time"

// Certificate is an earned credential. IssueDate is a calendar date (YYYY-MM-DD).
type Certificate struct {
	ID            string    `json:"id,omitempty"`
	Title         string    `json:"title" validate:"required"`
	Issuer        string    `json:"issuer" validate:"required"`
	IssueDate     string    `json:"issue_date" validate:"required"`
	CredentialURL string    `json:"credential_url"`
	IsFeatured    bool      `json:"is_featured"`
	DisplayOrder  int       `json:"display_order"`
	IsPublished   bool      `json:"is_published"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
