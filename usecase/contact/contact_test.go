package contact

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fastygo/portfolio/domain"
	"github.com/fastygo/portfolio/repository/memory"
)

func TestSubmit(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewContactRepository()
	uc := New(repo, nil)

	_, err := uc.Submit(ctx, &domain.ContactMessage{Name: "Ann", Email: "nope", Message: "Hi"})
	require.Error(t, err)
	assert.Equal(t, "Invalid email format", err.Error())

	msg, err := uc.Submit(ctx, &domain.ContactMessage{Name: " Ann ", Email: "ann@example.com", Message: "Hi"})
	require.NoError(t, err)
	assert.Equal(t, domain.ContactStatusNew, msg.Status)
	assert.Equal(t, "Ann", msg.Name)
	assert.NotEmpty(t, msg.ID)
	assert.Len(t, repo.Messages(), 1)
}
