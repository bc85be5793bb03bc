package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAcquire(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	record := f.acquired.Acquire(ctx, "t1")
	require.NotNil(t, record)
	assert.NotEmpty(t, record.ID)
	assert.Equal(t, "t1", record.TrophyID)
	assert.Equal(t, f.clock.Now(), record.AcquiredAt)

	assert.True(t, f.acquired.IsAcquired(ctx, "t1"))
	assert.False(t, f.acquired.IsAcquired(ctx, "t2"))
}

func TestAcquire_Idempotent(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	first := f.acquired.Acquire(ctx, "t1")
	f.clock.Advance(time.Hour)
	second := f.acquired.Acquire(ctx, "t1")

	// The second call returns the existing record, not a new one.
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.AcquiredAt, second.AcquiredAt)
	assert.Len(t, f.acquired.ListAcquired(ctx), 1)
}

func TestGetByTrophyID(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	assert.Nil(t, f.acquired.GetByTrophyID(ctx, "t1"))

	created := f.acquired.Acquire(ctx, "t1")
	found := f.acquired.GetByTrophyID(ctx, "t1")
	require.NotNil(t, found)
	assert.Equal(t, created.ID, found.ID)
}

func TestRevoke(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	assert.False(t, f.acquired.Revoke(ctx, "t1"))

	f.acquired.Acquire(ctx, "t1")
	f.acquired.Acquire(ctx, "t2")

	assert.True(t, f.acquired.Revoke(ctx, "t1"))
	assert.False(t, f.acquired.IsAcquired(ctx, "t1"))
	assert.True(t, f.acquired.IsAcquired(ctx, "t2"))
	assert.Len(t, f.acquired.ListAcquired(ctx), 1)
}
