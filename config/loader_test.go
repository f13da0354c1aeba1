package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadValidConfig(t *testing.T) {
	path := writeConfig(t, `
feed:
  path: /data/caltrain_gtfs_latest.zip
  timezone: America/Los_Angeles
stations:
  aliases:
    San Francisco:
      - the city
  renames:
    MT VIEW: MOUNTAIN VIEW
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/data/caltrain_gtfs_latest.zip", cfg.Feed.Path)
	assert.Equal(t, "America/Los_Angeles", cfg.Feed.Timezone)
	assert.Equal(t, []string{"the city"}, cfg.Stations.Aliases["San Francisco"])
	assert.Equal(t, "MOUNTAIN VIEW", cfg.Stations.Renames["MT VIEW"])
}

func TestLoadDefaultsTimezone(t *testing.T) {
	path := writeConfig(t, `
feed:
  path: feed.zip
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultTimezone, cfg.Feed.Timezone)
}

func TestLoadRejectsMissingFeedPath(t *testing.T) {
	path := writeConfig(t, `
feed:
  timezone: America/Los_Angeles
`)

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadRejectsBadTimezone(t *testing.T) {
	path := writeConfig(t, `
feed:
  path: feed.zip
  timezone: Mars/Olympus_Mons
`)

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	assert.Error(t, err)
}

func TestLoadRejectsInvalidYAML(t *testing.T) {
	path := writeConfig(t, "feed: [not: valid")
	_, err := Load(path)
	assert.Error(t, err)
}
