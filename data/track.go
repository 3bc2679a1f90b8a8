package data

// A SpawnreTag is the resolved genre assignment for one track: up to five
// canonical genre names in catalog order, plus their compact hex form. The
// hex string always begins with the literal marker "x" and never exceeds ten
// characters, so at most four genre bytes are encoded even when five genres
// were selected.
type SpawnreTag struct {
	Genres []string
	Hex    string
}

// LovedFlags records a track's membership in the user's loved-tracks,
// loved-albums, and loved-artists playlists.
type LovedFlags struct {
	Track  bool
	Album  bool
	Artist bool
}

// A LovedFilter restricts clustering to loved material. Criteria combine
// with OR: a track passes if any requested flag is set on it.
type LovedFilter struct {
	WantTracks  bool
	WantAlbums  bool
	WantArtists bool
}

// Empty reports whether the filter requests nothing, in which case every
// track passes.
func (f LovedFilter) Empty() bool {
	return !f.WantTracks && !f.WantAlbums && !f.WantArtists
}

// Match applies the filter to one track's flags.
func (f LovedFilter) Match(l LovedFlags) bool {
	if f.Empty() {
		return true
	}
	return (f.WantTracks && l.Track) ||
		(f.WantAlbums && l.Album) ||
		(f.WantArtists && l.Artist)
}

// A Track is one analyzed playlist entry. It is created when the playlist is
// parsed and filled in piece by piece as the enrichment pipeline runs.
type Track struct {
	Artist   string
	Album    string
	Title    string
	Year     string
	FilePath string

	EmbeddedGenre string

	// Spawnre is this track's own resolved tag. ArtistTag is the
	// artist-level dominant genre stamped onto every track by the same
	// artist; clustering prefers it over the per-track resolution.
	Spawnre   SpawnreTag
	ArtistTag string

	MusicBrainzArtistID       string
	MusicBrainzReleaseGroupID string
	MusicBrainzTrackID        string

	SpotifyArtistID   string
	SpotifyTrackID    string
	FileDurationMS    int64
	SpotifyDurationMS int64

	// Per-source genre lists as fetched, up to five entries each. Kept
	// verbatim for the output record; the reconciler works from these.
	CatalogGenres  []string
	ScrobbleGenres []string
	CrowdGenres    []string

	// Features is nil until audio features have been fetched for the
	// track, and stays nil when the lookup finds nothing. Key, Mode,
	// and TimeSignature ride along for the record but stay out of the
	// distance vector.
	Features      Vector
	Key           int64
	Mode          int64
	TimeSignature int64

	Loved LovedFlags
}

// HasFeatures reports whether audio features were fetched for the track.
func (t *Track) HasFeatures() bool {
	return len(t.Features) > 0
}
