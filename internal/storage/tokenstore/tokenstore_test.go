package tokenstore

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	db, err := Open(filepath.Join(t.TempDir(), "tokens.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewStore(db)
}

func TestStore_GetMissing(t *testing.T) {
	store := newTestStore(t)

	token, ok, err := store.Get(context.Background(), 1)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, token)
}

func TestStore_SetGetClear(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, 1, "tok-1"))

	token, ok, err := store.Get(ctx, 1)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "tok-1", token)

	// Overwrite on re-login.
	require.NoError(t, store.Set(ctx, 1, "tok-2"))
	token, ok, err = store.Get(ctx, 1)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "tok-2", token)

	require.NoError(t, store.Clear(ctx, 1))
	_, ok, err = store.Get(ctx, 1)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStore_PerUserIsolation(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, 1, "alice"))
	require.NoError(t, store.Set(ctx, 2, "bob"))
	require.NoError(t, store.Clear(ctx, 1))

	_, ok, err := store.Get(ctx, 1)
	require.NoError(t, err)
	assert.False(t, ok)

	token, ok, err := store.Get(ctx, 2)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "bob", token)
}
