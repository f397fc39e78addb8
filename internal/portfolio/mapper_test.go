package portfolio

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fastygo/portfolio/domain"
)

var fixedNow = time.Date(2024, 3, 9, 8, 30, 0, 0, time.UTC)

func TestSlugify(t *testing.T) {
	tests := map[string]string{
		"E-Commerce Dashboard": "e-commerce-dashboard",
		"  Hello,  World!! ":   "hello-world",
		"AI / ML 2024":         "ai-ml-2024",
		"---":                  "",
		"Ünïcode Title":        "n-code-title",
	}
	for in, want := range tests {
		assert.Equal(t, want, Slugify(in), in)
	}
}

func TestSlugForFallsBackToTimestamp(t *testing.T) {
	assert.Equal(t, "new-project-1709973000000", slugFor("", "new-project", fixedNow))
	assert.Equal(t, "new-post-1709973000000", slugFor("!!!", "new-post", fixedNow))
}

func TestHeroRoundTrip(t *testing.T) {
	hero := domain.Hero{
		ID:                 domain.NewID(),
		Title:              "Hi",
		Subtitle:           "Engineer",
		BackgroundImageURL: "https://img",
		CTAText:            "Go",
		SocialLinks:        domain.SocialLinks{Email: "a@b.c", GitHub: "gh", LinkedIn: "li", Twitter: "tw"},
		IsActive:           true,
	}
	section, contact := HeroToAggregate(hero)
	assert.Equal(t, hero, HeroFromAggregate(section, contact))
}

func TestHeroFromAggregateDefaultsAndPlaceholderID(t *testing.T) {
	hero := HeroFromAggregate(domain.HeroSection{ID: "1"}, domain.ContactInfo{})
	assert.Empty(t, hero.ID)
	assert.Equal(t, DefaultHeroTitle, hero.Title)
	assert.Equal(t, DefaultCTAText, hero.CTAText)
	assert.True(t, hero.IsActive)
}

func TestAboutFromAggregate(t *testing.T) {
	exp := []domain.Experience{{ID: "1", Role: "Dev"}}
	about := AboutFromAggregate(domain.AboutSection{}, exp, "")
	assert.Equal(t, DefaultAboutHeading, about.Heading)
	assert.Equal(t, DefaultBio, about.Bio)
	assert.Equal(t, []string{}, about.Skills)
	assert.Equal(t, exp, about.Experience)

	about = AboutFromAggregate(domain.AboutSection{Bio: "b", Skills: []string{"Go"}}, nil, "My Site")
	assert.Equal(t, "My Site", about.Heading)

	section, experience := AboutToAggregate(about)
	assert.Equal(t, "b", section.Bio)
	assert.Equal(t, []string{"Go"}, section.Skills)
	assert.Empty(t, experience)
}

func TestProjectRoundTrip(t *testing.T) {
	item := domain.ProjectItem{
		ID:          domain.NewID(),
		Title:       "Task Master",
		Description: "Kanban",
		TechStack:   []string{"Vue.js"},
		ImageURL:    "img",
		DemoURL:     "demo",
		RepoURL:     "repo",
	}
	project := ProjectFromAggregate(item, fixedNow)
	assert.Equal(t, "task-master", project.Slug)
	assert.True(t, project.IsPublished)
	assert.Equal(t, item, ProjectToAggregate(project))

	empty := ProjectFromAggregate(domain.ProjectItem{ID: "p1"}, fixedNow)
	assert.Empty(t, empty.ID)
	assert.Equal(t, DefaultProjectTitle, empty.Title)
	assert.Equal(t, DefaultProjectSummary, empty.ShortDescription)
	assert.Equal(t, "new-project-1709973000000", empty.Slug)
	assert.Equal(t, []string{}, empty.Technologies)
}

func TestCertificateMapping(t *testing.T) {
	item := domain.CertificateItem{ID: domain.NewID(), Title: "CKA", Issuer: "CNCF", Date: "2023-08-01", URL: "u"}
	assert.Equal(t, item, CertificateToAggregate(CertificateFromAggregate(item, fixedNow)))

	cert := CertificateFromAggregate(domain.CertificateItem{}, fixedNow)
	assert.Equal(t, DefaultCertificateTitle, cert.Title)
	assert.Equal(t, DefaultIssuer, cert.Issuer)
	assert.Equal(t, "2024-03-09", cert.IssueDate)
}

func TestBlogMapping(t *testing.T) {
	published := time.Date(2023, 10, 15, 0, 0, 0, 0, time.UTC)
	blog := domain.Blog{
		ID:          domain.NewID(),
		Title:       "RSC",
		Excerpt:     "ex",
		Content:     "body",
		ReadTime:    "5 min read",
		PublishedAt: &published,
	}
	item := BlogToAggregate(blog)
	back := BlogFromAggregate(item, fixedNow)
	require.NotNil(t, back.PublishedAt)
	assert.True(t, published.Equal(*back.PublishedAt))
	assert.Equal(t, item, BlogToAggregate(back))
	assert.Equal(t, "rsc", back.Slug)

	dateOnly := BlogFromAggregate(domain.BlogItem{Date: "2023-09-22"}, fixedNow)
	assert.Equal(t, time.Date(2023, 9, 22, 0, 0, 0, 0, time.UTC), *dateOnly.PublishedAt)
	assert.Equal(t, DefaultBlogTitle, dateOnly.Title)
	assert.Equal(t, DefaultExcerpt, dateOnly.Excerpt)
	assert.Equal(t, DefaultContent, dateOnly.Content)

	undated := BlogFromAggregate(domain.BlogItem{Title: "x", Date: "soon"}, fixedNow)
	assert.Equal(t, fixedNow, *undated.PublishedAt)
}

func TestStatMapping(t *testing.T) {
	item := domain.StatItem{ID: domain.NewID(), Label: "Years", Value: "5+"}
	stat := StatFromAggregate(item, 3)
	assert.Equal(t, 3, stat.DisplayOrder)
	assert.Equal(t, item, StatToAggregate(stat))

	blank := StatFromAggregate(domain.StatItem{ID: "1"}, 0)
	assert.Empty(t, blank.ID)
	assert.Equal(t, DefaultStatLabel, blank.Label)
	assert.Equal(t, DefaultStatValue, blank.Value)
}

func TestDefaultsAreIndependentCopies(t *testing.T) {
	a := Defaults()
	a.Projects[0].TechStack[0] = "mutated"
	a.About.Skills[0] = "mutated"

	b := Defaults()
	assert.Equal(t, "React", b.Projects[0].TechStack[0])
	assert.Equal(t, "React", b.About.Skills[0])
}
