package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_EmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 60, cfg.Jobs.MaxAgeDays)
	assert.Equal(t, "https://boards-api.greenhouse.io", cfg.Jobs.GreenhouseBase)
	assert.NotEmpty(t, cfg.Keywords.TitleTerms)
	assert.NotEmpty(t, cfg.Blogs.Feeds)
	assert.False(t, cfg.Jobs.Discover.Enabled)
	assert.Contains(t, cfg.Jobs.Discover.Denylist, "privacy")
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")
	content := `
jobs:
  max_age_days: 14
  boards: ["acme"]
  discover:
    enabled: true
    root_url: "https://example.test"
    max_pages: 2
    max_identifiers: 5
    requests_per_second: 2
keywords:
  title_terms: ["devops"]
  context_terms: ["slo"]
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 14, cfg.Jobs.MaxAgeDays)
	assert.Equal(t, []string{"acme"}, cfg.Jobs.Boards)
	assert.True(t, cfg.Jobs.Discover.Enabled)
	assert.Equal(t, 5, cfg.Jobs.Discover.MaxIdentifiers)
	assert.Equal(t, []string{"devops"}, cfg.Keywords.TitleTerms)
	// untouched sections keep their defaults
	assert.Equal(t, 60, cfg.HTTP.TimeoutSeconds)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate(Default()))

	t.Run("rejects empty keyword sets", func(t *testing.T) {
		cfg := Default()
		cfg.Keywords.TitleTerms = nil
		cfg.Keywords.ContextTerms = nil
		assert.Error(t, Validate(cfg))
	})

	t.Run("rejects bad discover limits", func(t *testing.T) {
		cfg := Default()
		cfg.Jobs.Discover.Enabled = true
		cfg.Jobs.Discover.MaxPages = 0
		assert.Error(t, Validate(cfg))
	})

	t.Run("rejects non-positive max age", func(t *testing.T) {
		cfg := Default()
		cfg.Jobs.MaxAgeDays = 0
		assert.Error(t, Validate(cfg))
	})
}
