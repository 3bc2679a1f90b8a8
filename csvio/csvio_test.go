package csvio_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spawnredj/csvio"
	"spawnredj/data"
)

func sampleTrack() *data.Track {
	return &data.Track{
		Artist:        "Artist A",
		Album:         "Album",
		Title:         "Song 1",
		Year:          "1999",
		FilePath:      "/music/Artist A/Song 1.mp3",
		EmbeddedGenre: "rock",
		Spawnre: data.SpawnreTag{
			Genres: []string{"rock", "blues"},
			Hex:    "x00A2",
		},
		ArtistTag:      "rock",
		CatalogGenres:  []string{"rock", "classic rock"},
		ScrobbleGenres: []string{"rock"},
		CrowdGenres:    []string{"blues"},
		FileDurationMS: 215000,
		Features: data.Vector{
			"tempo":  120.5,
			"energy": 0.8,
		},
		Loved: data.LovedFlags{Track: true},
	}
}

func TestWriteHeaderAndRow(t *testing.T) {
	var buf strings.Builder
	require.NoError(t, csvio.Write(&buf, []*data.Track{sampleTrack()}))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, strings.Join(csvio.Columns, ","), lines[0])
	assert.Contains(t, lines[1], "Artist A")
	assert.Contains(t, lines[1], "x00A2")
	assert.Contains(t, lines[1], "\"rock, blues\"")
	assert.Contains(t, lines[1], "yes,no,no")
}

func TestRoundTrip(t *testing.T) {
	want := sampleTrack()

	var buf strings.Builder
	require.NoError(t, csvio.Write(&buf, []*data.Track{want}))

	tracks, err := csvio.Read(strings.NewReader(buf.String()))
	require.NoError(t, err)
	require.Len(t, tracks, 1)

	got := tracks[0]
	assert.Equal(t, want.Artist, got.Artist)
	assert.Equal(t, want.Spawnre, got.Spawnre)
	assert.Equal(t, want.ArtistTag, got.ArtistTag)
	assert.Equal(t, want.CatalogGenres, got.CatalogGenres)
	assert.Equal(t, want.FileDurationMS, got.FileDurationMS)
	assert.Equal(t, want.Features, got.Features)
	assert.Equal(t, want.Loved, got.Loved)
}

func TestReadToleratesMissingColumns(t *testing.T) {
	in := "artist,track,file_path\nArtist A,Song 1,/music/a.mp3\n"
	tracks, err := csvio.Read(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, tracks, 1)
	assert.Equal(t, "Artist A", tracks[0].Artist)
	assert.Empty(t, tracks[0].Spawnre.Genres)
	assert.False(t, tracks[0].HasFeatures())
}

func TestCollectStats(t *testing.T) {
	tracks := []*data.Track{
		{Spawnre: data.SpawnreTag{Genres: []string{"rock", "blues"}}},
		{Spawnre: data.SpawnreTag{Genres: []string{"rock"}}},
		{},
	}
	stats := csvio.CollectStats(tracks)
	assert.Equal(t, 3, stats.TotalTracks)
	assert.Equal(t, 2, stats.TracksWithGenres)
	assert.Equal(t, 2, stats.GenreCounts["rock"])
	assert.Equal(t, 1, stats.GenreCounts["blues"])
}

func TestWriteStats(t *testing.T) {
	var buf strings.Builder
	require.NoError(t, csvio.WriteStats(&buf, csvio.Stats{
		TotalTracks:      2,
		TracksWithGenres: 2,
		GenreCounts:      map[string]int{"rock": 2, "blues": 1},
	}))

	out := buf.String()
	assert.Contains(t, out, "Total Tracks,2")
	assert.Contains(t, out, "rock,0x00,2")
	assert.Contains(t, out, "blues,0xA2,1")
	// Most frequent genre is listed first.
	assert.Less(t, strings.Index(out, "rock,"), strings.Index(out, "blues,"))
}
