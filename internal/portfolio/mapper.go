package portfolio

import (
	"time"

	"github.com/fastygo/portfolio/domain"
)

// Write-side placeholders for fields the dashboard left blank.
const (
	DefaultHeroTitle        = "Untitled Portfolio"
	DefaultCTAText          = "View Work"
	DefaultAboutHeading     = "About Me"
	DefaultBio              = "No bio provided."
	DefaultProjectTitle     = "New Project"
	DefaultProjectSummary   = "No description"
	DefaultCertificateTitle = "New Certificate"
	DefaultIssuer           = "Unknown Issuer"
	DefaultBlogTitle        = "New Post"
	DefaultExcerpt          = "No excerpt"
	DefaultContent          = "Draft content..."
	DefaultStatLabel        = "Stat"
	DefaultStatValue        = "0"
)

var blogDateLayouts = []string{time.RFC3339Nano, time.RFC3339, time.DateOnly}

func HeroToAggregate(h domain.Hero) (domain.HeroSection, domain.ContactInfo) {
	section := domain.HeroSection{
		ID:       h.ID,
		Title:    h.Title,
		Subtitle: h.Subtitle,
		ImageURL: h.BackgroundImageURL,
		CTAText:  h.CTAText,
	}
	contact := domain.ContactInfo{
		Email:    h.SocialLinks.Email,
		GitHub:   h.SocialLinks.GitHub,
		LinkedIn: h.SocialLinks.LinkedIn,
		Twitter:  h.SocialLinks.Twitter,
	}
	return section, contact
}

// HeroFromAggregate builds the active hero record; contact rides along as
// its social links.
func HeroFromAggregate(section domain.HeroSection, contact domain.ContactInfo) domain.Hero {
	return domain.Hero{
		ID:                 storeIDOrEmpty(section.ID),
		Title:              orDefault(section.Title, DefaultHeroTitle),
		Subtitle:           section.Subtitle,
		BackgroundImageURL: section.ImageURL,
		CTAText:            orDefault(section.CTAText, DefaultCTAText),
		SocialLinks: domain.SocialLinks{
			Email:    contact.Email,
			GitHub:   contact.GitHub,
			LinkedIn: contact.LinkedIn,
			Twitter:  contact.Twitter,
		},
		IsActive: true,
	}
}

func AboutToAggregate(a domain.About) (domain.AboutSection, []domain.Experience) {
	section := domain.AboutSection{
		ID:     a.ID,
		Bio:    a.Bio,
		Skills: cloneStrings(a.Skills),
	}
	var experience []domain.Experience
	if a.Experience != nil {
		experience = make([]domain.Experience, len(a.Experience))
		copy(experience, a.Experience)
	}
	return section, experience
}

// AboutFromAggregate builds the active about record. The document has no
// heading of its own, so it borrows the hero title.
func AboutFromAggregate(section domain.AboutSection, experience []domain.Experience, heroTitle string) domain.About {
	history := make([]domain.Experience, len(experience))
	copy(history, experience)
	return domain.About{
		ID:         storeIDOrEmpty(section.ID),
		Heading:    orDefault(heroTitle, DefaultAboutHeading),
		Bio:        orDefault(section.Bio, DefaultBio),
		Skills:     nonNilStrings(section.Skills),
		Experience: history,
		IsActive:   true,
	}
}

func ProjectToAggregate(p domain.Project) domain.ProjectItem {
	return domain.ProjectItem{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.ShortDescription,
		TechStack:   nonNilStrings(p.Technologies),
		ImageURL:    p.ThumbnailURL,
		DemoURL:     p.DemoURL,
		RepoURL:     p.GithubURL,
	}
}

func ProjectFromAggregate(item domain.ProjectItem, now time.Time) domain.Project {
	return domain.Project{
		ID:               storeIDOrEmpty(item.ID),
		Title:            orDefault(item.Title, DefaultProjectTitle),
		Slug:             slugFor(item.Title, "new-project", now),
		ShortDescription: orDefault(item.Description, DefaultProjectSummary),
		Technologies:     nonNilStrings(item.TechStack),
		ThumbnailURL:     item.ImageURL,
		DemoURL:          item.DemoURL,
		GithubURL:        item.RepoURL,
		IsPublished:      true,
	}
}

func CertificateToAggregate(c domain.Certificate) domain.CertificateItem {
	return domain.CertificateItem{
		ID:     c.ID,
		Title:  c.Title,
		Issuer: c.Issuer,
		Date:   c.IssueDate,
		URL:    c.CredentialURL,
	}
}

func CertificateFromAggregate(item domain.CertificateItem, now time.Time) domain.Certificate {
	return domain.Certificate{
		ID:            storeIDOrEmpty(item.ID),
		Title:         orDefault(item.Title, DefaultCertificateTitle),
		Issuer:        orDefault(item.Issuer, DefaultIssuer),
		IssueDate:     orDefault(item.Date, now.UTC().Format(time.DateOnly)),
		CredentialURL: item.URL,
		IsPublished:   true,
	}
}

func BlogToAggregate(b domain.Blog) domain.BlogItem {
	item := domain.BlogItem{
		ID:       b.ID,
		Title:    b.Title,
		Excerpt:  b.Excerpt,
		Content:  b.Content,
		ReadTime: b.ReadTime,
	}
	if b.PublishedAt != nil {
		item.Date = b.PublishedAt.UTC().Format(time.RFC3339Nano)
	}
	return item
}

// BlogFromAggregate builds a published post. A date that does not parse is
// replaced by now.
func BlogFromAggregate(item domain.BlogItem, now time.Time) domain.Blog {
	published := parseBlogDate(item.Date, now)
	return domain.Blog{
		ID:            storeIDOrEmpty(item.ID),
		Title:         orDefault(item.Title, DefaultBlogTitle),
		Slug:          slugFor(item.Title, "new-post", now),
		Excerpt:       orDefault(item.Excerpt, DefaultExcerpt),
		Content:       orDefault(item.Content, DefaultContent),
		ContentFormat: domain.ContentFormatMarkdown,
		ReadTime:      item.ReadTime,
		IsPublished:   true,
		PublishedAt:   &published,
	}
}

func StatToAggregate(s domain.Stat) domain.StatItem {
	return domain.StatItem{ID: s.ID, Label: s.Label, Value: s.Value}
}

func StatFromAggregate(item domain.StatItem, order int) domain.Stat {
	return domain.Stat{
		ID:           storeIDOrEmpty(item.ID),
		Label:        orDefault(item.Label, DefaultStatLabel),
		Value:        orDefault(item.Value, DefaultStatValue),
		DisplayOrder: order,
	}
}

func parseBlogDate(raw string, now time.Time) time.Time {
	for _, layout := range blogDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC()
		}
	}
	return now.UTC()
}

// storeIDOrEmpty drops client placeholder ids ("1", "p-3") so the store
// issues a real one.
func storeIDOrEmpty(id string) string {
	if domain.IsStoreID(id) {
		return id
	}
	return ""
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}

func nonNilStrings(in []string) []string {
	if in == nil {
		return []string{}
	}
	return cloneStrings(in)
}
