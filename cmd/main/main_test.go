package main

import (
	"os"
	"path/filepath"
	"testing"

	"panduit/scraper/internal/config"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigureLogging(t *testing.T) {
	defer log.SetLevel(log.InfoLevel)
	defer log.SetFormatter(&log.TextFormatter{})

	require.NoError(t, configureLogging(config.LogConfig{Level: "debug", Format: "json"}))
	assert.Equal(t, log.DebugLevel, log.GetLevel())
	assert.IsType(t, &log.JSONFormatter{}, log.StandardLogger().Formatter)

	require.NoError(t, configureLogging(config.LogConfig{Level: "warn", Format: "text"}))
	assert.Equal(t, log.WarnLevel, log.GetLevel())

	assert.Error(t, configureLogging(config.LogConfig{Level: "loud"}))
	assert.Error(t, configureLogging(config.LogConfig{Level: "info", Format: "xml"}))
}

func TestRootCommandRunsEmptyBatch(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	defer log.SetLevel(log.InfoLevel)

	require.NoError(t, os.WriteFile("links.txt", nil, 0644))

	cmd := newRootCmd()
	cmd.SetArgs([]string{
		"--input", "links.txt",
		"--output", "out.json",
		"--images", "pics",
		"--log-level", "error",
	})
	require.NoError(t, cmd.Execute())

	raw, err := os.ReadFile(filepath.Join(dir, "out.json"))
	require.NoError(t, err)
	assert.Equal(t, "[]\n", string(raw))
}

func TestRootCommandRejectsArgs(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"extra"})
	assert.Error(t, cmd.Execute())
}
