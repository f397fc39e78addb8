package domain

import "time"

// Stat is a headline figure ("Years Experience: 5+").
type Stat struct {
	ID           string    `json:"id,omitempty"`
	Label        string    `json:"label" validate:"required"`
	Value        string    `json:"value" validate:"required"`
	DisplayOrder int       `json:"display_order"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
