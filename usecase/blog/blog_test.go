package blog

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fastygo/portfolio/domain"
	"github.com/fastygo/portfolio/repository/memory"
)

func TestReadTime(t *testing.T) {
	assert.Equal(t, "1 min read", ReadTime(""))
	assert.Equal(t, "1 min read", ReadTime("short post"))
	assert.Equal(t, "2 min read", ReadTime(strings.Repeat("word ", 201)))
}

func TestSaveNormalizesContent(t *testing.T) {
	ctx := context.Background()
	uc := New(memory.NewBlogRepository(), nil)
	fixed := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	uc.now = func() time.Time { return fixed }

	result, err := uc.Save(ctx, &domain.Blog{
		Title:         "Hello",
		Slug:          "hello",
		Content:       "<h1>Title</h1><p>Some <strong>bold</strong> text</p>",
		ContentFormat: domain.ContentFormatHTML,
		IsPublished:   true,
	})
	require.NoError(t, err)
	assert.True(t, result.Created)

	blog := result.Record
	assert.Contains(t, blog.Content, "# Title")
	assert.Contains(t, blog.Content, "**bold**")
	assert.Empty(t, blog.ContentFormat)
	assert.Equal(t, "1 min read", blog.ReadTime)
	require.NotNil(t, blog.PublishedAt)
	assert.Equal(t, fixed, *blog.PublishedAt)
}

func TestSaveDraftKeepsPublishedAtEmpty(t *testing.T) {
	uc := New(memory.NewBlogRepository(), nil)
	result, err := uc.Save(context.Background(), &domain.Blog{Title: "Draft", Slug: "draft", Content: "wip", ReadTime: "7 min read"})
	require.NoError(t, err)
	assert.Nil(t, result.Record.PublishedAt)
	assert.Equal(t, "7 min read", result.Record.ReadTime)
}

func TestSaveRejectsUnknownFormat(t *testing.T) {
	uc := New(memory.NewBlogRepository(), nil)
	_, err := uc.Save(context.Background(), &domain.Blog{Title: "T", Slug: "t", Content: "c", ContentFormat: "rtf"})
	require.Error(t, err)
	assert.True(t, domain.IsDomainError(err, domain.ErrCodeInvalid))
}

func TestSaveValidation(t *testing.T) {
	uc := New(memory.NewBlogRepository(), nil)
	_, err := uc.Save(context.Background(), &domain.Blog{Title: "T"})
	require.Error(t, err)
	assert.Equal(t, "Missing required fields: slug, content", err.Error())
}
