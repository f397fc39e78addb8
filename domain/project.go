package domain

import "time"

// Project is a showcased piece of work, addressable by its slug.
type Project struct {
	ID               string    `json:"id,omitempty"`
	Title            string    `json:"title" validate:"required"`
	Slug             string    `json:"slug" validate:"required"`
	ShortDescription string    `json:"short_description"`
	Description      string    `json:"description"`
	Technologies     []string  `json:"technologies"`
	ThumbnailURL     string    `json:"thumbnail_url"`
	DemoURL          string    `json:"demo_url"`
	GithubURL        string    `json:"github_url"`
	Category         string    `json:"category"`
	Status           string    `json:"status"`
	Featured         bool      `json:"featured"`
	DisplayOrder     int       `json:"display_order"`
	IsPublished      bool      `json:"is_published"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
