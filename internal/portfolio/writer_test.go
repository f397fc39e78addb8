package portfolio

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fastygo/portfolio/domain"
	"github.com/fastygo/portfolio/repository"
	"github.com/fastygo/portfolio/repository/memory"
	aboutUC "github.com/fastygo/portfolio/usecase/about"
	blogUC "github.com/fastygo/portfolio/usecase/blog"
	certificateUC "github.com/fastygo/portfolio/usecase/certificate"
	heroUC "github.com/fastygo/portfolio/usecase/hero"
	projectUC "github.com/fastygo/portfolio/usecase/project"
	statUC "github.com/fastygo/portfolio/usecase/stat"
)

func TestWriterContinuesPastFailures(t *testing.T) {
	gw := &fakeGateway{
		failProject: map[string]error{
			"third": domain.NewError(domain.ErrCodeInvalid, "Missing required fields: slug"),
		},
	}
	doc := Defaults()
	doc.Projects = []domain.ProjectItem{
		{ID: "1", Title: "First"},
		{ID: "2", Title: "Second"},
		{ID: "3", Title: "Third"},
		{ID: "4", Title: "Fourth"},
		{ID: "5", Title: "Fifth"},
	}

	report := NewWriter(gw, nil, nil).Save(context.Background(), doc)

	require.False(t, report.OK())
	failed := report.Failed()
	require.Len(t, failed, 1)
	assert.Equal(t, EntityProject, failed[0].Resource)
	assert.Equal(t, "third", failed[0].Key)
	assert.Equal(t, StatusFailed, failed[0].Status)

	var slugs []string
	for _, p := range gw.savedProj {
		slugs = append(slugs, p.Slug)
	}
	assert.Equal(t, []string{"first", "second", "fourth", "fifth"}, slugs)

	assert.Len(t, gw.savedCerts, len(doc.Certificates))
	assert.Len(t, gw.savedBlogs, len(doc.Blogs))
	require.Len(t, gw.savedStats, 1)
	assert.Len(t, gw.savedStats[0], len(doc.Stats))
}

func TestWriterMapsDocument(t *testing.T) {
	gw := &fakeGateway{}
	doc := Defaults()
	doc.Hero.Title = ""
	doc.About.Bio = ""

	report := NewWriter(gw, nil, nil).Save(context.Background(), doc)
	require.True(t, report.OK())

	require.Len(t, gw.savedHero, 1)
	hero := gw.savedHero[0]
	assert.Equal(t, DefaultHeroTitle, hero.Title)
	assert.True(t, hero.IsActive)
	assert.Equal(t, doc.Contact.Email, hero.SocialLinks.Email)

	require.Len(t, gw.savedAbout, 1)
	about := gw.savedAbout[0]
	assert.Equal(t, DefaultAboutHeading, about.Heading)
	assert.Equal(t, DefaultBio, about.Bio)
	assert.Equal(t, doc.Experience, about.Experience)

	for i, s := range gw.savedStats[0] {
		assert.Equal(t, i, s.DisplayOrder)
		assert.Empty(t, s.ID, "placeholder ids are not sent to the store")
	}

	assert.Equal(t, StatusCreated, report.Outcomes[0].Status)
	assert.Equal(t, EntityHero, report.Outcomes[0].Resource)
	assert.NotEmpty(t, report.Outcomes[0].ID)
}

func TestWriterBuffersInternalFailures(t *testing.T) {
	gw := &fakeGateway{
		failProject: map[string]error{"down": errUnavailable},
		failStat: map[string]error{
			"Happy Clients": domain.NewError(domain.ErrCodeInvalid, "Missing required fields: value"),
		},
	}
	buffer := &fakeBuffer{}
	doc := Defaults()
	doc.Projects = []domain.ProjectItem{{Title: "Down"}}
	doc.Stats = []domain.StatItem{{ID: "1", Label: "Happy Clients", Value: ""}}

	report := NewWriter(gw, buffer, nil).Save(context.Background(), doc)

	require.Len(t, buffer.entries, 1)
	assert.Equal(t, EntityProject, buffer.entries[0].entity)
	project, ok := buffer.entries[0].payload.(*domain.Project)
	require.True(t, ok)
	assert.Equal(t, "down", project.Slug)

	statuses := map[string]Status{}
	for _, o := range report.Outcomes {
		statuses[o.Resource] = o.Status
	}
	assert.Equal(t, StatusBuffered, statuses[EntityProject])
	assert.Equal(t, StatusFailed, statuses[EntityStats])
	assert.False(t, report.OK())
}

func TestReplayer(t *testing.T) {
	gw := &fakeGateway{}
	r := NewReplayer(gw)
	ctx := context.Background()

	require.NoError(t, r.Replay(ctx, EntityProject, []byte(`{"title":"Again","slug":"again"}`)))
	require.Len(t, gw.savedProj, 1)
	assert.Equal(t, "again", gw.savedProj[0].Slug)

	require.NoError(t, r.Replay(ctx, EntityStats, []byte(`[{"label":"a","value":"1"}]`)))
	require.Len(t, gw.savedStats, 1)

	assert.Error(t, r.Replay(ctx, "widgets", []byte(`{}`)))
	assert.Error(t, r.Replay(ctx, EntityHero, []byte(`not json`)))
}

func newLocalServices() (Services, *memory.ProjectRepository, *memory.BlogRepository) {
	projects := memory.NewProjectRepository()
	blogs := memory.NewBlogRepository()
	return Services{
		Hero:         heroUC.New(memory.NewHeroRepository(), nil),
		About:        aboutUC.New(memory.NewAboutRepository(), nil),
		Projects:     projectUC.New(projects, nil),
		Certificates: certificateUC.New(memory.NewCertificateRepository(), nil),
		Blogs:        blogUC.New(blogs, nil),
		Stats:        statUC.New(memory.NewStatRepository(), nil),
	}, projects, blogs
}

func TestWriterKeepsUntitledItemsApart(t *testing.T) {
	svc, projects, blogs := newLocalServices()
	doc := Defaults()
	doc.Projects = []domain.ProjectItem{{ID: "1700000000001"}, {ID: "1700000000002"}}
	doc.Blogs = []domain.BlogItem{{ID: "1700000000003"}, {ID: "1700000000004"}}

	w := NewWriter(NewLocalGateway(svc), nil, nil)
	w.now = func() time.Time { return time.UnixMilli(1792113539840) }
	report := w.Save(context.Background(), doc)
	require.True(t, report.OK(), report.Failed())

	ctx := context.Background()
	storedProjects, total, err := projects.List(ctx, repository.ListFilter{})
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	assert.NotEqual(t, storedProjects[0].Slug, storedProjects[1].Slug)

	storedBlogs, total, err := blogs.List(ctx, repository.ListFilter{})
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	assert.NotEqual(t, storedBlogs[0].Slug, storedBlogs[1].Slug)

	for _, o := range report.Outcomes {
		if o.Resource == EntityProject || o.Resource == EntityBlog {
			assert.Equal(t, StatusCreated, o.Status, o.Key)
		}
	}
}

func TestWriterReportsEachStat(t *testing.T) {
	gw := &fakeGateway{
		failStat: map[string]error{
			"Projects": domain.NewError(domain.ErrCodeInvalid, "Missing required fields: value"),
		},
	}
	doc := Defaults()
	doc.Stats = []domain.StatItem{
		{ID: "1", Label: "Years", Value: "5+"},
		{ID: "2", Label: "Projects", Value: "50+"},
		{ID: "3", Label: "Clients", Value: "100%"},
		{ID: "4", Label: "Commits", Value: "5k+"},
	}

	report := NewWriter(gw, nil, nil).Save(context.Background(), doc)

	var statOutcomes []Outcome
	for _, o := range report.Outcomes {
		if o.Resource == EntityStats {
			statOutcomes = append(statOutcomes, o)
		}
	}
	require.Len(t, statOutcomes, 4)
	assert.Equal(t, []string{"Years", "Projects", "Clients", "Commits"},
		[]string{statOutcomes[0].Key, statOutcomes[1].Key, statOutcomes[2].Key, statOutcomes[3].Key})

	assert.Equal(t, StatusFailed, statOutcomes[1].Status)
	assert.Equal(t, "Missing required fields: value", statOutcomes[1].Error)
	assert.Empty(t, statOutcomes[1].ID)
	for _, i := range []int{0, 2, 3} {
		assert.Equal(t, StatusCreated, statOutcomes[i].Status)
		assert.NotEmpty(t, statOutcomes[i].ID)
	}
	assert.False(t, report.OK())
	require.Len(t, report.Failed(), 1)
}
