package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spawnredj/config"
)

func TestLoadCredentialsCreatesTemplate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "APIds.env")

	_, err := config.LoadCredentials(path)
	require.NoError(t, err)

	bs, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(bs), "LASTFM_API_KEY=")
	assert.Contains(t, string(bs), "SPOTIFY_CLIENT_ID=")
}

func TestLoadCredentialsReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "APIds.env")
	require.NoError(t, os.WriteFile(path, []byte(
		"LASTFM_API_KEY=abc\nSPOTIFY_CLIENT_ID=id\nSPOTIFY_CLIENT_SECRET=secret\n",
	), 0600))

	creds, err := config.LoadCredentials(path)
	require.NoError(t, err)
	assert.Equal(t, "abc", creds.LastFMAPIKey)
	assert.True(t, creds.HasSpotify())
	assert.True(t, creds.HasLastFM())
}

func TestLoadSettingsDefaults(t *testing.T) {
	settings, err := config.LoadSettings(filepath.Join(t.TempDir(), "none.toml"))
	require.NoError(t, err)
	assert.Equal(t, "../", settings.PathPrefix)
	assert.Equal(t, 4, settings.Concurrency)
}

func TestLoadSettingsOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.toml")
	require.NoError(t, os.WriteFile(path, []byte(
		"music_root = \"/music\"\nconcurrency = 2\nfetch_features = true\n",
	), 0644))

	settings, err := config.LoadSettings(path)
	require.NoError(t, err)
	assert.Equal(t, "/music", settings.MusicRoot)
	assert.Equal(t, 2, settings.Concurrency)
	assert.True(t, settings.FetchFeatures)
	assert.Equal(t, "../", settings.PathPrefix)
}
