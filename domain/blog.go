package domain

import "time"

// Content formats accepted on write. Everything is stored as Markdown.
const (
	ContentFormatMarkdown = "markdown"
	ContentFormatHTML     = "html"
)

// Blog is a published article, addressable by its slug.
type Blog struct {
	ID            string     `json:"id,omitempty"`
	Title         string     `json:"title" validate:"required"`
	Slug          string     `json:"slug" validate:"required"`
	Excerpt       string     `json:"excerpt"`
	Content       string     `json:"content" validate:"required"`
	ContentFormat string     `json:"content_format,omitempty"`
	Category      string     `json:"category"`
	ReadTime      string     `json:"read_time"`
	IsFeatured    bool       `json:"is_featured"`
	IsPublished   bool       `json:"is_published"`
	PublishedAt   *time.Time `json:"published_at"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}
