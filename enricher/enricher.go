// Package enricher orchestrates the analysis pipeline: it gathers genre
// opinions for each track from the embedded tag and the external services,
// reconciles them into spawnre tags, aggregates artist-level tags, and
// optionally fetches audio features for curation.
package enricher

import (
	"context"
	"log"
	"path"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"spawnredj/data"
	"spawnredj/m3u"
	"spawnredj/musicbrainz"
	"spawnredj/spawnre"
	"spawnredj/spotify"
)

// Catalog is the Spotify-shaped source: artist genres, track IDs and
// durations, audio features.
type Catalog interface {
	SearchArtist(ctx context.Context, name string) (spotify.Artist, error)
	SearchTrack(ctx context.Context, artist, title string) (spotify.TrackMatch, error)
	FetchAudioFeatures(ctx context.Context, ids []string) (map[string]spotify.AudioFeatures, error)
}

// Scrobble is the Last.fm-shaped source: crowd tags per track with an
// artist-level fallback. Its lookups return empty on failure.
type Scrobble interface {
	TrackTags(ctx context.Context, artist, track string) []string
	ArtistTags(ctx context.Context, artist string) []string
}

// Crowd is the MusicBrainz-shaped source: artist tags plus identifier
// backfill. Its lookups return zero values on failure.
type Crowd interface {
	SearchArtist(ctx context.Context, name string) musicbrainz.ArtistInfo
	SearchRecording(ctx context.Context, artist, title string) musicbrainz.RecordingInfo
}

// LovedSets are the normalized path sets parsed from the user's loved
// playlists. Tracks is keyed by track path; Albums by the album (parent)
// directory; Artists by the artist (grandparent) directory.
type LovedSets struct {
	Tracks  map[string]bool
	Albums  map[string]bool
	Artists map[string]bool
}

// Flag stamps a track's loved flags from the sets. Album and artist
// membership follow the library's artist/album/track directory layout.
func (s LovedSets) Flag(t *data.Track) {
	key := m3u.NormalizePath(t.FilePath)
	album := path.Dir(key)
	t.Loved = data.LovedFlags{
		Track:  s.Tracks[key],
		Album:  s.Albums[album],
		Artist: s.Artists[path.Dir(album)],
	}
}

// An Enricher runs the pipeline over one batch of tracks. Any source may be
// nil, in which case it contributes no genres. The artist cache is scoped to
// the Enricher, so repeated tracks by one artist cost one lookup per source.
type Enricher struct {
	Catalog  Catalog
	Scrobble Scrobble
	Crowd    Crowd

	// Concurrency bounds simultaneous per-artist enrichment.
	Concurrency int

	// FetchFeatures turns on the audio-feature pass.
	FetchFeatures bool

	mu     sync.Mutex
	byName map[string]*artistInfo
}

// artistInfo is the per-artist lookup result shared by all of the artist's
// tracks.
type artistInfo struct {
	once sync.Once

	spotifyID     string
	catalogGenres []string

	scrobbleArtistTags []string

	mbArtistID string
	crowdTags  []string
}

func (e *Enricher) artist(ctx context.Context, name string) *artistInfo {
	key := strings.ToLower(name)

	e.mu.Lock()
	if e.byName == nil {
		e.byName = map[string]*artistInfo{}
	}
	info, ok := e.byName[key]
	if !ok {
		info = &artistInfo{}
		e.byName[key] = info
	}
	e.mu.Unlock()

	info.once.Do(func() {
		if e.Catalog != nil {
			artist, err := e.Catalog.SearchArtist(ctx, name)
			if err != nil {
				log.Printf("catalog artist lookup failed for '%s': %v", name, err)
			} else {
				info.spotifyID = artist.ID
				info.catalogGenres = capGenres(artist.Genres)
			}
		}
		if e.Scrobble != nil {
			info.scrobbleArtistTags = capGenres(e.Scrobble.ArtistTags(ctx, name))
		}
		if e.Crowd != nil {
			hit := e.Crowd.SearchArtist(ctx, name)
			info.mbArtistID = hit.ID
			info.crowdTags = capGenres(hit.Tags)
		}
	})
	return info
}

// Run enriches every track in place: source genre lists, service IDs,
// per-track spawnre tags, artist-level tags, loved flags, and (when enabled)
// audio features. One track's failure never stops the batch.
func (e *Enricher) Run(ctx context.Context, tracks []*data.Track, loved LovedSets) error {
	concurrency := e.Concurrency
	if concurrency < 1 {
		concurrency = 1
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for _, t := range tracks {
		t := t
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			e.enrichTrack(gctx, t)
			loved.Flag(t)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	e.assignArtistTags(tracks)

	if e.FetchFeatures && e.Catalog != nil {
		e.fetchFeatures(ctx, tracks)
	}
	return nil
}

func (e *Enricher) enrichTrack(ctx context.Context, t *data.Track) {
	info := e.artist(ctx, t.Artist)

	t.CatalogGenres = info.catalogGenres
	if t.SpotifyArtistID == "" {
		t.SpotifyArtistID = info.spotifyID
	}
	t.CrowdGenres = info.crowdTags
	if t.MusicBrainzArtistID == "" {
		t.MusicBrainzArtistID = info.mbArtistID
	}

	if e.Scrobble != nil {
		t.ScrobbleGenres = capGenres(e.Scrobble.TrackTags(ctx, t.Artist, t.Title))
		if len(t.ScrobbleGenres) == 0 {
			t.ScrobbleGenres = info.scrobbleArtistTags
		}
	}

	if e.Catalog != nil && t.SpotifyTrackID == "" {
		match, err := e.Catalog.SearchTrack(ctx, t.Artist, t.Title)
		if err != nil {
			log.Printf("catalog track lookup failed for '%s - %s': %v", t.Artist, t.Title, err)
		} else {
			t.SpotifyTrackID = match.ID
			t.SpotifyDurationMS = match.DurationMS
			if t.SpotifyArtistID == "" {
				t.SpotifyArtistID = match.ArtistID
			}
		}
	}

	if e.Crowd != nil && (t.MusicBrainzTrackID == "" || t.MusicBrainzReleaseGroupID == "") {
		rec := e.Crowd.SearchRecording(ctx, t.Artist, t.Title)
		if t.MusicBrainzTrackID == "" {
			t.MusicBrainzTrackID = rec.ID
		}
		if t.MusicBrainzReleaseGroupID == "" {
			t.MusicBrainzReleaseGroupID = rec.ReleaseGroupID
		}
	}

	resolve(t)
}

// resolve recomputes one track's spawnre tag from the gathered genre lists.
func resolve(t *data.Track) {
	candidates := spawnre.Combine(t.EmbeddedGenre, [][]string{
		t.ScrobbleGenres,
		t.CatalogGenres,
		t.CrowdGenres,
	}, t.Artist)
	t.Spawnre = spawnre.Resolve(candidates)
}

// assignArtistTags computes each artist's dominant genre and stamps it onto
// all of the artist's tracks.
func (e *Enricher) assignArtistTags(tracks []*data.Track) {
	byArtist := map[string][][]string{}
	for _, t := range tracks {
		key := strings.ToLower(t.Artist)
		byArtist[key] = append(byArtist[key], t.Spawnre.Genres)
	}

	tags := make(map[string]string, len(byArtist))
	for artist, resolved := range byArtist {
		tags[artist] = spawnre.ArtistTag(resolved)
	}

	for _, t := range tracks {
		t.ArtistTag = tags[strings.ToLower(t.Artist)]
	}
}

// ArtistTags returns the artist-to-dominant-genre map for a batch that has
// already been enriched.
func ArtistTags(tracks []*data.Track) map[string]string {
	tags := map[string]string{}
	byArtist := map[string][][]string{}
	for _, t := range tracks {
		key := strings.ToLower(t.Artist)
		byArtist[key] = append(byArtist[key], t.Spawnre.Genres)
	}
	for artist, resolved := range byArtist {
		tags[artist] = spawnre.ArtistTag(resolved)
	}
	return tags
}

func (e *Enricher) fetchFeatures(ctx context.Context, tracks []*data.Track) {
	byID := map[string]*data.Track{}
	var ids []string
	for _, t := range tracks {
		if t.SpotifyTrackID == "" || t.HasFeatures() {
			continue
		}
		if _, ok := byID[t.SpotifyTrackID]; ok {
			continue
		}
		byID[t.SpotifyTrackID] = t
		ids = append(ids, t.SpotifyTrackID)
	}

	for start := 0; start < len(ids); start += spotify.FeatureBatchSize {
		end := start + spotify.FeatureBatchSize
		if end > len(ids) {
			end = len(ids)
		}
		features, err := e.Catalog.FetchAudioFeatures(ctx, ids[start:end])
		if err != nil {
			log.Printf("audio feature fetch failed: %v", err)
			continue
		}
		for id, f := range features {
			t := byID[id]
			t.Features = f.Vector
			t.Key = f.Key
			t.Mode = f.Mode
			t.TimeSignature = f.TimeSignature
		}
	}
}

// Reprocess re-runs reconciliation and artist aggregation over tracks whose
// source genre lists were already gathered, with no network calls. This is
// how a previously written record gets new tags after a taxonomy change.
func Reprocess(tracks []*data.Track) {
	for _, t := range tracks {
		resolve(t)
	}
	tags := ArtistTags(tracks)
	for _, t := range tracks {
		t.ArtistTag = tags[strings.ToLower(t.Artist)]
	}
}

func capGenres(genres []string) []string {
	if len(genres) > 5 {
		return genres[:5]
	}
	return genres
}
