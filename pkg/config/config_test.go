package config_test

import (
	"os"
	"path/filepath"
	"testing"

	// Packages
	config "github.com/mutablelogic/go-fileservice/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_default(t *testing.T) {
	cfg, err := config.New()
	require.NoError(t, err)
	assert.Equal(t, "http://localhost", cfg.BaseURL)
}

func TestNew_explicit(t *testing.T) {
	cfg, err := config.New(config.WithBaseURL("http://example.com:8080"))
	require.NoError(t, err)
	assert.Equal(t, "http://example.com:8080", cfg.BaseURL)
}

func TestNew_overrides_file(t *testing.T) {
	path := filepath.Join(t.TempDir(), "endpoints.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"base_url":"http://override:9000"}`), 0o644))

	cfg, err := config.New(config.WithFilepath(path))
	require.NoError(t, err)
	assert.Equal(t, "http://override:9000", cfg.BaseURL)
	assert.Equal(t, path, cfg.Filepath)
}

func TestNew_explicit_wins_over_file(t *testing.T) {
	path := filepath.Join(t.TempDir(), "endpoints.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"base_url":"http://override:9000"}`), 0o644))

	cfg, err := config.New(config.WithBaseURL("http://explicit"), config.WithFilepath(path))
	require.NoError(t, err)
	assert.Equal(t, "http://explicit", cfg.BaseURL)
}

func TestNew_empty_override_ignored(t *testing.T) {
	path := filepath.Join(t.TempDir(), "endpoints.json")
	require.NoError(t, os.WriteFile(path, []byte(`{}`), 0o644))

	cfg, err := config.New(config.WithFilepath(path))
	require.NoError(t, err)
	assert.Equal(t, "http://localhost", cfg.BaseURL)
}

func TestNew_missing_file(t *testing.T) {
	_, err := config.New(config.WithFilepath(filepath.Join(t.TempDir(), "no-such-file.json")))
	assert.Error(t, err)
}

func TestNew_invalid_file(t *testing.T) {
	path := filepath.Join(t.TempDir(), "endpoints.json")
	require.NoError(t, os.WriteFile(path, []byte(`{`), 0o644))

	_, err := config.New(config.WithFilepath(path))
	assert.Error(t, err)
}
