package db_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spawnredj/data"
	"spawnredj/db"
)

func open(t *testing.T) *db.DB {
	d, err := db.Open(filepath.Join(t.TempDir(), "test.sqlite"))
	require.NoError(t, err)
	return d
}

func TestTrackRoundTrip(t *testing.T) {
	d := open(t)

	want := &data.Track{
		Artist:   "Artist A",
		Album:    "Album",
		Title:    "Song 1",
		Year:     "1999",
		FilePath: "/music/Artist A/Album/Song 1.mp3",
		Spawnre: data.SpawnreTag{
			Genres: []string{"rock", "blues"},
			Hex:    "x00A2",
		},
		ArtistTag:      "rock",
		EmbeddedGenre:  "rock",
		CatalogGenres:  []string{"rock", "classic rock"},
		ScrobbleGenres: []string{"rock"},
		CrowdGenres:    []string{"blues"},
		SpotifyTrackID: "tr-1",
		Features: data.Vector{
			"danceability":     0.5,
			"energy":           0.8,
			"loudness":         -7.2,
			"speechiness":      0.04,
			"acousticness":     0.1,
			"instrumentalness": 0.0,
			"liveness":         0.12,
			"valence":          0.6,
			"tempo":            120.5,
		},
		Key:            5,
		Loved:          data.LovedFlags{Track: true},
	}
	require.NoError(t, d.UpsertTrack(want))

	tracks, err := d.Tracks()
	require.NoError(t, err)
	require.Len(t, tracks, 1)

	got := tracks[0]
	assert.Equal(t, want.FilePath, got.FilePath)
	assert.Equal(t, want.Spawnre, got.Spawnre)
	assert.Equal(t, want.CatalogGenres, got.CatalogGenres)
	assert.Equal(t, want.Features, got.Features)
	assert.Equal(t, want.Key, got.Key)
	assert.Equal(t, want.Loved, got.Loved)
}

func TestUpsertReplacesByFilePath(t *testing.T) {
	d := open(t)

	track := &data.Track{FilePath: "/m/1.mp3", Artist: "A", ArtistTag: "rock"}
	require.NoError(t, d.UpsertTrack(track))

	track.ArtistTag = "blues"
	require.NoError(t, d.UpsertTrack(track))

	tracks, err := d.Tracks()
	require.NoError(t, err)
	require.Len(t, tracks, 1)
	assert.Equal(t, "blues", tracks[0].ArtistTag)
}

func TestArtistTags(t *testing.T) {
	d := open(t)

	require.NoError(t, d.SetArtistTag("artist a", "rock"))
	require.NoError(t, d.SetArtistTag("artist a", "blues"))
	require.NoError(t, d.SetArtistTag("artist b", "jazz"))

	tags, err := d.ArtistTags()
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"artist a": "blues",
		"artist b": "jazz",
	}, tags)
}
