package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	conf, err := Load(filepath.Join(t.TempDir(), "absent.yml"))
	require.NoError(t, err)

	assert.Equal(t, "info", conf.LogLevel)
	assert.Equal(t, "window", conf.Mode)
	assert.Equal(t, "snake", conf.Window.Route)
	assert.Equal(t, 20, conf.Snake.GridSize)
	assert.Equal(t, 150*time.Millisecond, conf.Snake.BaseInterval)
	assert.Equal(t, 50*time.Millisecond, conf.Snake.MinInterval)
	assert.Equal(t, 10*time.Millisecond, conf.Snake.SpeedStep)
	assert.Equal(t, 50, conf.Snake.SpeedUpEvery)
	assert.Equal(t, 10, conf.Snake.FoodPoints)
	assert.Equal(t, "snakeHighScore", conf.Snake.HighScoreKey)
	assert.Equal(t, 5, conf.Canvas.BrushWidth)
	assert.Equal(t, "file", conf.Storage.Driver)
	assert.Equal(t, "localhost:6379", conf.Storage.Redis.GetRedisAddr())
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	yml := `
log-level: debug
mode: tui
snake:
  grid-size: 12
  base-interval: 200ms
storage:
  driver: sqlite
  path: scores.db
`
	require.NoError(t, os.WriteFile(path, []byte(yml), 0o644))

	conf, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", conf.LogLevel)
	assert.Equal(t, "tui", conf.Mode)
	assert.Equal(t, 12, conf.Snake.GridSize)
	assert.Equal(t, 200*time.Millisecond, conf.Snake.BaseInterval)
	assert.Equal(t, "sqlite", conf.Storage.Driver)
	assert.Equal(t, "scores.db", conf.Storage.Path)

	// Then: fields absent from the file keep their defaults
	assert.Equal(t, 50*time.Millisecond, conf.Snake.MinInterval)
	assert.Equal(t, 1024, conf.Window.Width)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("CANVAS_ARCADE_STORAGE", "redis")
	t.Setenv("CANVAS_ARCADE_REDIS_HOST", "cache")
	t.Setenv("CANVAS_ARCADE_REDIS_PORT", "6380")
	t.Setenv("CANVAS_ARCADE_SEED", "99")

	conf, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "redis", conf.Storage.Driver)
	assert.Equal(t, "cache:6380", conf.Storage.Redis.GetRedisAddr())
	assert.Equal(t, uint64(99), conf.Snake.Seed)
}

func TestLoad_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("snake: [unclosed"), 0o644))

	_, err := Load(path)
	require.Error(t, err)

	assert.Panics(t, func() { MustLoad(path) })
}

func TestLoad_SampleConfig(t *testing.T) {
	conf, err := Load(filepath.Join("..", "config.yml"))
	require.NoError(t, err)

	assert.Equal(t, "window", conf.Mode)
	assert.Equal(t, "exports", conf.Canvas.ExportDir)
	assert.Equal(t, "file", conf.Storage.Driver)
}
