// Package config loads API credentials from an env file and run settings
// from a TOML file.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// DefaultCredentialsFile is where service credentials live. A blank template
// is created on first run so the user knows what to fill in.
const DefaultCredentialsFile = "APIds.env"

const credentialsTemplate = "LASTFM_API_KEY=\n" +
	"SPOTIFY_CLIENT_ID=\n" +
	"SPOTIFY_CLIENT_SECRET=\n"

// Credentials holds the keys for the external metadata services. Any field
// may be empty; the pipeline skips sources it has no key for.
type Credentials struct {
	LastFMAPIKey        string
	SpotifyClientID     string
	SpotifyClientSecret string
}

// LoadCredentials reads service credentials from the env file at path,
// falling back to the process environment for any variable the file doesn't
// set. A missing file is created as a blank template.
func LoadCredentials(path string) (Credentials, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := os.WriteFile(path, []byte(credentialsTemplate), 0600); err != nil {
			return Credentials{}, fmt.Errorf("error creating credentials template: %w", err)
		}
	} else if err != nil {
		return Credentials{}, fmt.Errorf("error statting credentials file: %w", err)
	}

	vars, err := godotenv.Read(path)
	if err != nil {
		return Credentials{}, fmt.Errorf("error loading credentials from '%s': %w", path, err)
	}
	get := func(key string) string {
		if v := vars[key]; v != "" {
			return v
		}
		return os.Getenv(key)
	}

	return Credentials{
		LastFMAPIKey:        get("LASTFM_API_KEY"),
		SpotifyClientID:     get("SPOTIFY_CLIENT_ID"),
		SpotifyClientSecret: get("SPOTIFY_CLIENT_SECRET"),
	}, nil
}

// HasSpotify reports whether Spotify lookups can run.
func (c Credentials) HasSpotify() bool {
	return c.SpotifyClientID != "" && c.SpotifyClientSecret != ""
}

// HasLastFM reports whether Last.fm lookups can run.
func (c Credentials) HasLastFM() bool {
	return c.LastFMAPIKey != ""
}

// Settings are the tunable run options.
type Settings struct {
	// MusicRoot is the directory track paths are made relative to.
	MusicRoot string `toml:"music_root"`

	// PathPrefix goes in front of every written playlist path.
	PathPrefix string `toml:"path_prefix"`

	// CacheDir holds the service-response cache.
	CacheDir string `toml:"cache_dir"`

	// DBFile is the sqlite analysis store.
	DBFile string `toml:"db_file"`

	// FetchFeatures turns on audio-feature fetching for curation.
	FetchFeatures bool `toml:"fetch_features"`

	// Concurrency bounds how many artists are enriched at once.
	Concurrency int `toml:"concurrency"`
}

// DefaultSettings returns the settings used when no file overrides them.
func DefaultSettings() Settings {
	return Settings{
		PathPrefix:  "../",
		CacheDir:    "cache",
		DBFile:      "spawnredj.sqlite",
		Concurrency: 4,
	}
}

// LoadSettings reads settings from a TOML file, applying defaults for
// anything unset. A missing file just means all defaults.
func LoadSettings(path string) (Settings, error) {
	settings := DefaultSettings()
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return settings, nil
	}
	if _, err := toml.DecodeFile(path, &settings); err != nil {
		return settings, fmt.Errorf("error loading settings from '%s': %w", path, err)
	}
	if settings.Concurrency < 1 {
		settings.Concurrency = 1
	}
	return settings, nil
}
