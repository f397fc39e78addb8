package domain

import "time"

// SocialLinks holds the public contact handles shown on the site. They are
// stored inside the hero record rather than in a collection of their own.
type SocialLinks struct {
	Email    string `json:"email"`
	GitHub   string `json:"github"`
	LinkedIn string `json:"linkedin"`
	Twitter  string `json:"twitter"`
}

func (s SocialLinks) IsZero() bool {
	return s == SocialLinks{}
}

// Hero is the landing section. At most one record is active at a time.
type Hero struct {
	ID                 string      `json:"id,omitempty"`
	Title              string      `json:"title" validate:"required"`
	Subtitle           string      `json:"subtitle"`
	BackgroundImageURL string      `json:"background_image_url"`
	CTAText            string      `json:"cta_text"`
	SocialLinks        SocialLinks `json:"social_links"`
	IsActive           bool        `json:"is_active"`
	CreatedAt          time.Time   `json:"created_at"`
	UpdatedAt          time.Time   `json:"updated_at"`
}
