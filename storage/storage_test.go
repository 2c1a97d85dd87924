package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"canvas-arcade/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exerciseStore(t *testing.T, ctx context.Context, store Store) {
	t.Helper()

	// Given: an empty store
	// When: a missing key is read
	_, err := store.Get(ctx, "snakeHighScore")

	// Then: ErrNotFound is returned
	require.ErrorIs(t, err, ErrNotFound)

	// When: the key is written twice
	require.NoError(t, store.Set(ctx, "snakeHighScore", "40"))
	require.NoError(t, store.Set(ctx, "snakeHighScore", "120"))

	// Then: the last value wins
	value, err := store.Get(ctx, "snakeHighScore")
	require.NoError(t, err)
	assert.Equal(t, "120", value)
}

func TestMemoryStore(t *testing.T) {
	exerciseStore(t, context.Background(), NewMemoryStore())
}

func TestFileStore(t *testing.T) {
	t.Run("RoundTrip", func(t *testing.T) {
		store, err := NewFileStore(filepath.Join(t.TempDir(), "data", "scores.json"))
		require.NoError(t, err)

		exerciseStore(t, context.Background(), store)
	})

	t.Run("SurvivesReopen", func(t *testing.T) {
		ctx := context.Background()
		path := filepath.Join(t.TempDir(), "scores.json")

		store, err := NewFileStore(path)
		require.NoError(t, err)
		require.NoError(t, store.Set(ctx, "snakeHighScore", "70"))

		reopened, err := NewFileStore(path)
		require.NoError(t, err)

		value, err := reopened.Get(ctx, "snakeHighScore")
		require.NoError(t, err)
		assert.Equal(t, "70", value)

		_, err = os.Stat(path + ".tmp")
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("CorruptFile", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "scores.json")
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

		store, err := NewFileStore(path)
		require.NoError(t, err)

		_, err = store.Get(context.Background(), "snakeHighScore")
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrNotFound)
	})
}

func TestSQLiteStore(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "arcade.db")

	store, err := NewSQLiteStore(ctx, path)
	require.NoError(t, err)
	exerciseStore(t, ctx, store)
	require.NoError(t, store.Close())

	// Given: a database that was already migrated
	// When: it is opened again
	reopened, err := NewSQLiteStore(ctx, path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = reopened.Close() })

	// Then: the migration is a no-op and the data is still there
	value, err := reopened.Get(ctx, "snakeHighScore")
	require.NoError(t, err)
	assert.Equal(t, "120", value)
}

func TestOpen(t *testing.T) {
	ctx := context.Background()

	t.Run("Memory", func(t *testing.T) {
		store, err := Open(ctx, config.Storage{Driver: "memory"})
		require.NoError(t, err)
		assert.IsType(t, &MemoryStore{}, store)
	})

	t.Run("File", func(t *testing.T) {
		store, err := Open(ctx, config.Storage{Driver: "file", Path: filepath.Join(t.TempDir(), "s.json")})
		require.NoError(t, err)
		assert.IsType(t, &FileStore{}, store)
	})

	t.Run("Unknown", func(t *testing.T) {
		store, err := Open(ctx, config.Storage{Driver: "etcd"})
		require.ErrorIs(t, err, ErrUnknownDriver)
		assert.Nil(t, store)
	})
}
