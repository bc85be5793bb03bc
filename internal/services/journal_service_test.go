package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateEntry(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	entry, err := f.journal.CreateEntry(ctx, "a good day")
	require.NoError(t, err)

	assert.NotEmpty(t, entry.ID)
	assert.Equal(t, "a good day", entry.Content)
	assert.Equal(t, f.clock.Now(), entry.CreatedAt)
	assert.Equal(t, entry.CreatedAt, entry.UpdatedAt)
}

func TestCreateEntry_Validation(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	_, err := f.journal.CreateEntry(ctx, "")
	assert.ErrorIs(t, err, ErrEmptyContent)

	_, err = f.journal.CreateEntry(ctx, "  \n ")
	assert.ErrorIs(t, err, ErrEmptyContent)

	_, err = f.journal.CreateEntry(ctx, strings.Repeat("x", 10001))
	assert.ErrorIs(t, err, ErrContentTooLong)

	_, err = f.journal.CreateEntry(ctx, strings.Repeat("x", 10000))
	assert.NoError(t, err)
}

func TestListEntries_NewestFirst(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	_, err := f.journal.CreateEntry(ctx, "first")
	require.NoError(t, err)
	f.clock.Advance(time.Hour)
	_, err = f.journal.CreateEntry(ctx, "second")
	require.NoError(t, err)

	entries := f.journal.ListEntries(ctx)
	require.Len(t, entries, 2)
	assert.Equal(t, "second", entries[0].Content)
	assert.Equal(t, "first", entries[1].Content)
}

func TestUpdateEntry(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	entry, err := f.journal.CreateEntry(ctx, "draft")
	require.NoError(t, err)

	f.clock.Advance(time.Hour)

	updated, err := f.journal.UpdateEntry(ctx, entry.ID, "final")
	require.NoError(t, err)
	assert.Equal(t, "final", updated.Content)
	assert.Equal(t, entry.CreatedAt, updated.CreatedAt)
	assert.True(t, updated.UpdatedAt.After(updated.CreatedAt))

	_, err = f.journal.UpdateEntry(ctx, "missing", "anything")
	assert.ErrorIs(t, err, ErrEntryNotFound)

	_, err = f.journal.UpdateEntry(ctx, entry.ID, "")
	assert.ErrorIs(t, err, ErrEmptyContent)
}

func TestDeleteEntry(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	entry, err := f.journal.CreateEntry(ctx, "temporary")
	require.NoError(t, err)

	assert.True(t, f.journal.DeleteEntry(ctx, entry.ID))
	assert.False(t, f.journal.DeleteEntry(ctx, entry.ID))

	_, err = f.journal.GetEntry(ctx, entry.ID)
	assert.ErrorIs(t, err, ErrEntryNotFound)
}
