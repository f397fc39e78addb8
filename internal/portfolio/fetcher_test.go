package portfolio

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/fastygo/portfolio/domain"
)

func TestFetchAllFailingReturnsDefaults(t *testing.T) {
	gw := &fakeGateway{readErr: errUnavailable}

	doc := NewFetcher(gw, nil).Fetch(context.Background())

	assert.Equal(t, Defaults(), doc)
}

func TestFetchEmptyStoreReturnsDefaults(t *testing.T) {
	doc := NewFetcher(&fakeGateway{}, nil).Fetch(context.Background())
	assert.Equal(t, Defaults(), doc)
}

func TestFetchMergesPerResource(t *testing.T) {
	published := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	heroID := domain.NewID()
	gw := &fakeGateway{
		hero: &domain.Hero{
			ID:          heroID,
			Title:       "My Site",
			SocialLinks: domain.SocialLinks{Email: "me@example.com"},
		},
		about: &domain.About{ID: domain.NewID(), Bio: "Real bio", Skills: []string{}},
		projects: []domain.Project{
			{ID: "p", Title: "Real Project", ShortDescription: "d", Technologies: []string{"Go"}},
		},
		blogs: []domain.Blog{{ID: "b", Title: "Post", PublishedAt: &published}},
	}

	doc := NewFetcher(gw, nil).Fetch(context.Background())
	defaults := Defaults()

	assert.Equal(t, heroID, doc.Hero.ID)
	assert.Equal(t, "My Site", doc.Hero.Title)
	assert.Equal(t, defaults.Hero.Subtitle, doc.Hero.Subtitle, "blank hero fields fall back one by one")
	assert.Equal(t, "me@example.com", doc.Contact.Email)

	assert.Equal(t, "Real bio", doc.About.Bio)
	assert.Empty(t, doc.About.Skills, "an explicitly empty skill list is kept")
	assert.Equal(t, defaults.Experience, doc.Experience)

	assert.Len(t, doc.Projects, 1)
	assert.Equal(t, "Real Project", doc.Projects[0].Title)
	assert.Equal(t, "2024-01-02T00:00:00Z", doc.Blogs[0].Date)

	assert.Equal(t, defaults.Certificates, doc.Certificates)
	assert.Equal(t, defaults.Stats, doc.Stats)
}
