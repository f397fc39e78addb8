package project

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fastygo/portfolio/domain"
	"github.com/fastygo/portfolio/repository"
	"github.com/fastygo/portfolio/repository/memory"
)

func TestSaveFallsBackToSlug(t *testing.T) {
	ctx := context.Background()
	uc := New(memory.NewProjectRepository(), nil)

	first, err := uc.Save(ctx, &domain.Project{Title: "E-Commerce", Slug: "e-commerce", IsPublished: true})
	require.NoError(t, err)
	assert.True(t, first.Created)
	assert.Equal(t, DefaultStatus, first.Record.Status)

	// A stale id that no longer exists resolves through the slug.
	result, err := uc.Save(ctx, &domain.Project{
		ID:          "00000000-0000-4000-8000-0000000000aa",
		Title:       "E-Commerce Platform",
		Slug:        "e-commerce",
		IsPublished: true,
	})
	require.NoError(t, err)
	assert.False(t, result.Created)
	assert.Equal(t, first.Record.ID, result.Record.ID)

	items, total, err := uc.List(ctx, repository.ListFilter{PublishedOnly: true})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	assert.Equal(t, "E-Commerce Platform", items[0].Title)
}

func TestSaveValidation(t *testing.T) {
	_, err := New(memory.NewProjectRepository(), nil).Save(context.Background(), &domain.Project{})
	require.Error(t, err)
	assert.Equal(t, "Missing required fields: title, slug", err.Error())
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	uc := New(memory.NewProjectRepository(), nil)
	res, err := uc.Save(ctx, &domain.Project{Title: "X", Slug: "x"})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(ctx, res.Record.ID))
	assert.ErrorIs(t, uc.Delete(ctx, res.Record.ID), domain.ErrProjectNotFound)
}
