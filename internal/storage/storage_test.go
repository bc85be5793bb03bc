package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory_RoundTrip(t *testing.T) {
	ctx := context.Background()
	kv := NewMemory()

	require.NoError(t, kv.Set(ctx, KeyTasks, []byte(`[{"id":"a"}]`)))

	got, err := kv.Get(ctx, KeyTasks)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"a"}]`, string(got))
}

func TestMemory_GetMissingKey(t *testing.T) {
	kv := NewMemory()

	_, err := kv.Get(context.Background(), KeyTrophies)
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestMemory_Delete(t *testing.T) {
	ctx := context.Background()
	kv := NewMemory()

	require.NoError(t, kv.Set(ctx, KeyDailyChallenge, []byte(`{}`)))
	require.NoError(t, kv.Delete(ctx, KeyDailyChallenge))

	_, err := kv.Get(ctx, KeyDailyChallenge)
	assert.ErrorIs(t, err, ErrKeyNotFound)

	// Deleting an absent key is fine.
	assert.NoError(t, kv.Delete(ctx, KeyDailyChallenge))
}

func TestMemory_GetReturnsCopy(t *testing.T) {
	ctx := context.Background()
	kv := NewMemory()

	require.NoError(t, kv.Set(ctx, KeyTasks, []byte(`[1,2]`)))

	first, err := kv.Get(ctx, KeyTasks)
	require.NoError(t, err)
	first[0] = 'X'

	second, err := kv.Get(ctx, KeyTasks)
	require.NoError(t, err)
	assert.Equal(t, []byte(`[1,2]`), second)
}

func TestSQLite_RoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "focus_app.db")

	kv, err := OpenSQLite(path)
	require.NoError(t, err)
	defer kv.Close()

	require.NoError(t, kv.Set(ctx, KeyTrophies, []byte(`[{"id":"card-sunrise"}]`)))

	got, err := kv.Get(ctx, KeyTrophies)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"card-sunrise"}]`, string(got))
}

func TestSQLite_SetOverwrites(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "focus_app.db")

	kv, err := OpenSQLite(path)
	require.NoError(t, err)
	defer kv.Close()

	require.NoError(t, kv.Set(ctx, KeyTasks, []byte(`[]`)))
	require.NoError(t, kv.Set(ctx, KeyTasks, []byte(`[{"id":"b"}]`)))

	got, err := kv.Get(ctx, KeyTasks)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"b"}]`, string(got))
}

func TestSQLite_MissingKeyAndDelete(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "focus_app.db")

	kv, err := OpenSQLite(path)
	require.NoError(t, err)
	defer kv.Close()

	_, err = kv.Get(ctx, KeyJournalEntries)
	assert.ErrorIs(t, err, ErrKeyNotFound)

	require.NoError(t, kv.Set(ctx, KeyJournalEntries, []byte(`[]`)))
	require.NoError(t, kv.Delete(ctx, KeyJournalEntries))

	_, err = kv.Get(ctx, KeyJournalEntries)
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestSQLite_PersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "focus_app.db")

	kv, err := OpenSQLite(path)
	require.NoError(t, err)
	require.NoError(t, kv.Set(ctx, KeyTasks, []byte(`[{"id":"a"}]`)))
	require.NoError(t, kv.Close())

	reopened, err := OpenSQLite(path)
	require.NoError(t, err)
	defer reopened.Close()

	got, err := reopened.Get(ctx, KeyTasks)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"a"}]`, string(got))
}

func TestOpenSQLite_EmptyPath(t *testing.T) {
	_, err := OpenSQLite("   ")
	assert.Error(t, err)
}
