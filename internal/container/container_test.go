package container

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"panduit/scraper/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()

	dir := t.TempDir()
	return &config.Config{
		Scraper: config.ScraperConfig{
			InputFile:  filepath.Join(dir, "new_links.txt"),
			OutputFile: filepath.Join(dir, "data.json"),
			ImageDir:   filepath.Join(dir, "images"),
			Timeout:    5,
		},
		Redis: config.RedisConfig{
			Host:         "127.0.0.1",
			Port:         1,
			StreamPrefix: "panduit:stream:",
			StatePrefix:  "panduit:run:",
		},
	}
}

func TestNewWithoutSinks(t *testing.T) {
	cfg := testConfig(t)

	app, err := New(context.Background(), cfg)
	require.NoError(t, err)
	defer app.Close()

	assert.NotNil(t, app.Service)
	assert.NotNil(t, app.Client)
	assert.Equal(t, cfg.Scraper.ImageDir, app.Images.Dir())
	assert.Nil(t, app.db)
	assert.Nil(t, app.redis)
}

func TestRunWithEmptyURLList(t *testing.T) {
	cfg := testConfig(t)
	require.NoError(t, os.WriteFile(cfg.Scraper.InputFile, nil, 0644))

	app, err := New(context.Background(), cfg)
	require.NoError(t, err)
	defer app.Close()

	require.NoError(t, app.Run(context.Background()))

	raw, err := os.ReadFile(cfg.Scraper.OutputFile)
	require.NoError(t, err)
	assert.Equal(t, "[]\n", string(raw))
}

func TestNewFailsWhenRedisUnreachable(t *testing.T) {
	cfg := testConfig(t)
	cfg.Redis.Enabled = true

	_, err := New(context.Background(), cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to connect to Redis")
}
