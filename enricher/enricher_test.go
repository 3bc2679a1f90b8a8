package enricher_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spawnredj/data"
	"spawnredj/enricher"
	"spawnredj/m3u"
	"spawnredj/musicbrainz"
	"spawnredj/spotify"
)

type fakeCatalog struct {
	artistCalls int
	genres      map[string][]string
	features    map[string]spotify.AudioFeatures
}

func (f *fakeCatalog) SearchArtist(_ context.Context, name string) (spotify.Artist, error) {
	f.artistCalls++
	return spotify.Artist{ID: "sp-" + name, Name: name, Genres: f.genres[name]}, nil
}

func (f *fakeCatalog) SearchTrack(_ context.Context, artist, title string) (spotify.TrackMatch, error) {
	return spotify.TrackMatch{ID: "tr-" + title, ArtistID: "sp-" + artist, DurationMS: 1000}, nil
}

func (f *fakeCatalog) FetchAudioFeatures(_ context.Context, ids []string) (map[string]spotify.AudioFeatures, error) {
	out := map[string]spotify.AudioFeatures{}
	for _, id := range ids {
		if af, ok := f.features[id]; ok {
			out[id] = af
		}
	}
	return out, nil
}

type fakeScrobble struct {
	trackTags  map[string][]string
	artistTags map[string][]string
}

func (f *fakeScrobble) TrackTags(_ context.Context, artist, track string) []string {
	return f.trackTags[track]
}

func (f *fakeScrobble) ArtistTags(_ context.Context, artist string) []string {
	return f.artistTags[artist]
}

type fakeCrowd struct {
	tags map[string][]string
}

func (f *fakeCrowd) SearchArtist(_ context.Context, name string) musicbrainz.ArtistInfo {
	return musicbrainz.ArtistInfo{ID: "mb-" + name, Name: name, Tags: f.tags[name]}
}

func (f *fakeCrowd) SearchRecording(_ context.Context, artist, title string) musicbrainz.RecordingInfo {
	return musicbrainz.RecordingInfo{ID: "rec-" + title, ReleaseGroupID: "rg-" + title}
}

func TestRunReconcilesSources(t *testing.T) {
	tracks := []*data.Track{
		{Artist: "Artist A", Title: "Song 1", FilePath: "/m/a/1.mp3", EmbeddedGenre: "rock"},
	}
	e := &enricher.Enricher{
		Catalog:  &fakeCatalog{genres: map[string][]string{"Artist A": {"jazz"}}},
		Scrobble: &fakeScrobble{trackTags: map[string][]string{"Song 1": {"jazz", "blues"}}},
	}

	require.NoError(t, e.Run(context.Background(), tracks, enricher.LovedSets{}))

	got := tracks[0]
	assert.Contains(t, got.Spawnre.Genres, "jazz")
	assert.Equal(t, []string{"jazz"}, got.CatalogGenres)
	assert.Equal(t, []string{"jazz", "blues"}, got.ScrobbleGenres)
	assert.Equal(t, "tr-Song 1", got.SpotifyTrackID)
	assert.Equal(t, "sp-Artist A", got.SpotifyArtistID)
}

func TestRunCachesArtistLookups(t *testing.T) {
	catalog := &fakeCatalog{genres: map[string][]string{"Artist A": {"rock"}}}
	tracks := []*data.Track{
		{Artist: "Artist A", Title: "Song 1", FilePath: "/m/a/1.mp3"},
		{Artist: "artist a", Title: "Song 2", FilePath: "/m/a/2.mp3"},
		{Artist: "Artist A", Title: "Song 3", FilePath: "/m/a/3.mp3"},
	}
	e := &enricher.Enricher{Catalog: catalog, Concurrency: 1}

	require.NoError(t, e.Run(context.Background(), tracks, enricher.LovedSets{}))
	assert.Equal(t, 1, catalog.artistCalls)
}

func TestRunAssignsArtistTags(t *testing.T) {
	tracks := []*data.Track{
		{Artist: "X", Title: "1", FilePath: "/m/1.mp3", EmbeddedGenre: "rock"},
		{Artist: "X", Title: "2", FilePath: "/m/2.mp3", EmbeddedGenre: "rock"},
		{Artist: "X", Title: "3", FilePath: "/m/3.mp3", EmbeddedGenre: "jazz"},
	}
	e := &enricher.Enricher{}

	require.NoError(t, e.Run(context.Background(), tracks, enricher.LovedSets{}))
	for _, track := range tracks {
		assert.Equal(t, "rock", track.ArtistTag)
	}
}

func TestRunFlagsLoved(t *testing.T) {
	tracks := []*data.Track{
		{Artist: "A", Title: "1", FilePath: "/m/a/1.mp3"},
		{Artist: "A", Title: "2", FilePath: "/m/a/2.mp3"},
	}
	loved := enricher.LovedSets{
		Tracks: map[string]bool{m3u.NormalizePath("/m/a/1.mp3"): true},
	}
	e := &enricher.Enricher{}

	require.NoError(t, e.Run(context.Background(), tracks, loved))
	assert.True(t, tracks[0].Loved.Track)
	assert.False(t, tracks[1].Loved.Track)
}

func TestRunFlagsLovedAlbumsAndArtists(t *testing.T) {
	tracks := []*data.Track{
		{Artist: "A", Title: "1", FilePath: "/m/artist/album/1.mp3"},
		{Artist: "A", Title: "2", FilePath: "/m/artist/other/2.mp3"},
	}
	loved := enricher.LovedSets{
		Albums:  map[string]bool{m3u.NormalizePath("/m/artist/album"): true},
		Artists: map[string]bool{m3u.NormalizePath("/m/artist"): true},
	}
	e := &enricher.Enricher{}

	require.NoError(t, e.Run(context.Background(), tracks, loved))
	assert.True(t, tracks[0].Loved.Album)
	assert.False(t, tracks[1].Loved.Album)
	assert.True(t, tracks[0].Loved.Artist)
	assert.True(t, tracks[1].Loved.Artist)
}

func TestRunFetchesFeatures(t *testing.T) {
	catalog := &fakeCatalog{
		features: map[string]spotify.AudioFeatures{
			"tr-Song 1": {
				Vector: data.Vector{"tempo": 120},
				Key:    5,
			},
		},
	}
	tracks := []*data.Track{
		{Artist: "A", Title: "Song 1", FilePath: "/m/1.mp3"},
	}
	e := &enricher.Enricher{Catalog: catalog, FetchFeatures: true}

	require.NoError(t, e.Run(context.Background(), tracks, enricher.LovedSets{}))
	assert.Equal(t, float64(120), tracks[0].Features["tempo"])
	assert.Equal(t, int64(5), tracks[0].Key)
}

func TestReprocessRecomputesTags(t *testing.T) {
	tracks := []*data.Track{
		{
			Artist:         "A",
			Title:          "1",
			EmbeddedGenre:  "rock & roll",
			ScrobbleGenres: []string{"blues"},
		},
	}
	enricher.Reprocess(tracks)

	assert.Contains(t, tracks[0].Spawnre.Genres, "rock & roll")
	assert.Contains(t, tracks[0].Spawnre.Genres, "blues")
	assert.Equal(t, tracks[0].ArtistTag, tracks[0].Spawnre.Genres[0])
}
