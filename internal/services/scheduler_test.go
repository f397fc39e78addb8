package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduler_RejectsSubSecondInterval(t *testing.T) {
	s := NewScheduler(nil)
	err := s.Every("sweep", 500*time.Millisecond, func(context.Context) error { return nil })
	assert.Error(t, err)
}

func TestScheduler_StartStop(t *testing.T) {
	s := NewScheduler(nil)
	require.NoError(t, s.Every("drain", time.Second, func(context.Context) error { return nil }))

	s.Start()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	assert.NoError(t, s.Stop(ctx))
}
