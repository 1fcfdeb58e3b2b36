package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"database": map[string]any{
			"sslMode":      "disable",
			"queryTimeout": "30s",
			"userName":     "user",
		},
		"catalog": map[string]any{
			"freshnessWindow": "720h",
		},
		"feed": map[string]any{
			"bucketUrl": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "DATABASE_SSLMODE", want: "database.sslMode"},
		{envKey: "DATABASE_QUERYTIMEOUT", want: "database.queryTimeout"},
		{envKey: "DATABASE_USERNAME", want: "database.userName"},
		{envKey: "CATALOG_FRESHNESSWINDOW", want: "catalog.freshnessWindow"},
		{envKey: "FEED_BUCKETURL", want: "feed.bucketUrl"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestLoadWithEnv_OverridesFromEnvironment(t *testing.T) {
	dir := t.TempDir()
	yamlBody := `
database:
  dialect: mysql
  host: localhost
  queryTimeout: 5s
catalog:
  freshnessWindow: 240h
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "test.yaml"), []byte(yamlBody), 0o600))

	t.Chdir(dir)
	t.Setenv("DATABASE_DIALECT", "postgresql")
	t.Setenv("DATABASE_QUERYTIMEOUT", "2s")

	cfg, err := LoadWithEnv[Config]("test")
	require.NoError(t, err)
	cfg.ApplyDefaults()

	assert.Equal(t, "postgresql", cfg.Database.Dialect)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 2*time.Second, cfg.Database.QueryTimeout)
	assert.Equal(t, 240*time.Hour, cfg.Catalog.FreshnessWindow)
	assert.Equal(t, defaultLatestWindow, cfg.Catalog.LatestWindow)
	assert.Equal(t, defaultPriceSource, cfg.Catalog.PriceSource)
	assert.Equal(t, defaultFeedPath, cfg.Feed.LocalPath)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("absent")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "absent.yaml not found")
}
