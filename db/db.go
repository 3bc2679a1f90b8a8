// Package db persists analysis results in a sqlite3 file so re-runs pick up
// where the last one stopped instead of re-fetching everything.
package db

import (
	_ "embed"
	"fmt"
	"strings"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"spawnredj/data"
)

// DB represents our sqlite3 database file.
type DB struct{ *gorm.DB }

//go:embed schema.sql
var schema string

// Open returns a connection to a migrated sqlite3 database file on disk,
// creating the file and running migrations if necessary.
func Open(filename string) (*DB, error) {
	gdb, err := gorm.Open(sqlite.Open(filename), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("error opening db file at '%s': %w", filename, err)
	}

	db := &DB{gdb}

	if err := db.Exec(schema).Error; err != nil {
		return nil, fmt.Errorf("error migrating db at '%s': %w", filename, err)
	}

	return db, nil
}

// trackRow is the flat persisted form of a Track.
type trackRow struct {
	ID int64

	FilePath string
	Artist   string
	Album    string
	Title    string
	Year     string

	EmbeddedGenre string
	Spawnre       string
	SpawnreHex    string
	ArtistTag     string

	MusicbrainzArtistID       string
	MusicbrainzReleaseGroupID string
	MusicbrainzTrackID        string
	SpotifyArtistID           string
	SpotifyTrackID            string

	FileDurationMS    int64 `gorm:"column:file_duration_ms"`
	SpotifyDurationMS int64 `gorm:"column:spotify_duration_ms"`

	CatalogGenres  string
	ScrobbleGenres string
	CrowdGenres    string

	HasFeatures      bool
	Danceability     float64
	Energy           float64
	Loudness         float64
	Speechiness      float64
	Acousticness     float64
	Instrumentalness float64
	Liveness         float64
	Valence          float64
	Tempo            float64
	Key              int64
	Mode             int64
	TimeSignature    int64

	LovedTrack  bool
	LovedAlbum  bool
	LovedArtist bool
}

func (trackRow) TableName() string { return "tracks" }

func toRow(t *data.Track) trackRow {
	row := trackRow{
		FilePath: t.FilePath,
		Artist:   t.Artist,
		Album:    t.Album,
		Title:    t.Title,
		Year:     t.Year,

		EmbeddedGenre: t.EmbeddedGenre,
		Spawnre:       strings.Join(t.Spawnre.Genres, ", "),
		SpawnreHex:    t.Spawnre.Hex,
		ArtistTag:     t.ArtistTag,

		MusicbrainzArtistID:       t.MusicBrainzArtistID,
		MusicbrainzReleaseGroupID: t.MusicBrainzReleaseGroupID,
		MusicbrainzTrackID:        t.MusicBrainzTrackID,
		SpotifyArtistID:           t.SpotifyArtistID,
		SpotifyTrackID:            t.SpotifyTrackID,

		FileDurationMS:    t.FileDurationMS,
		SpotifyDurationMS: t.SpotifyDurationMS,

		CatalogGenres:  strings.Join(t.CatalogGenres, "\n"),
		ScrobbleGenres: strings.Join(t.ScrobbleGenres, "\n"),
		CrowdGenres:    strings.Join(t.CrowdGenres, "\n"),

		Key:           t.Key,
		Mode:          t.Mode,
		TimeSignature: t.TimeSignature,

		LovedTrack:  t.Loved.Track,
		LovedAlbum:  t.Loved.Album,
		LovedArtist: t.Loved.Artist,
	}
	if t.HasFeatures() {
		row.HasFeatures = true
		row.Danceability = t.Features["danceability"]
		row.Energy = t.Features["energy"]
		row.Loudness = t.Features["loudness"]
		row.Speechiness = t.Features["speechiness"]
		row.Acousticness = t.Features["acousticness"]
		row.Instrumentalness = t.Features["instrumentalness"]
		row.Liveness = t.Features["liveness"]
		row.Valence = t.Features["valence"]
		row.Tempo = t.Features["tempo"]
	}
	return row
}

func fromRow(row trackRow) *data.Track {
	t := &data.Track{
		FilePath: row.FilePath,
		Artist:   row.Artist,
		Album:    row.Album,
		Title:    row.Title,
		Year:     row.Year,

		EmbeddedGenre: row.EmbeddedGenre,
		Spawnre: data.SpawnreTag{
			Genres: splitList(row.Spawnre, ", "),
			Hex:    row.SpawnreHex,
		},
		ArtistTag: row.ArtistTag,

		MusicBrainzArtistID:       row.MusicbrainzArtistID,
		MusicBrainzReleaseGroupID: row.MusicbrainzReleaseGroupID,
		MusicBrainzTrackID:        row.MusicbrainzTrackID,
		SpotifyArtistID:           row.SpotifyArtistID,
		SpotifyTrackID:            row.SpotifyTrackID,

		FileDurationMS:    row.FileDurationMS,
		SpotifyDurationMS: row.SpotifyDurationMS,

		CatalogGenres:  splitList(row.CatalogGenres, "\n"),
		ScrobbleGenres: splitList(row.ScrobbleGenres, "\n"),
		CrowdGenres:    splitList(row.CrowdGenres, "\n"),

		Key:           row.Key,
		Mode:          row.Mode,
		TimeSignature: row.TimeSignature,

		Loved: data.LovedFlags{
			Track:  row.LovedTrack,
			Album:  row.LovedAlbum,
			Artist: row.LovedArtist,
		},
	}
	if row.HasFeatures {
		t.Features = data.Vector{
			"danceability":     row.Danceability,
			"energy":           row.Energy,
			"loudness":         row.Loudness,
			"speechiness":      row.Speechiness,
			"acousticness":     row.Acousticness,
			"instrumentalness": row.Instrumentalness,
			"liveness":         row.Liveness,
			"valence":          row.Valence,
			"tempo":            row.Tempo,
		}
	}
	return t
}

func splitList(s, sep string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, sep)
}

// UpsertTrack inserts or replaces one track's analysis row, keyed by file
// path.
func (db *DB) UpsertTrack(t *data.Track) error {
	row := toRow(t)
	if err := db.
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "file_path"}},
			UpdateAll: true,
		}).
		Create(&row).
		Error; err != nil {
		return fmt.Errorf("error upserting track '%s': %w", t.FilePath, err)
	}
	return nil
}

// Tracks returns every stored track in insertion order.
func (db *DB) Tracks() ([]*data.Track, error) {
	var rows []trackRow
	if err := db.Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("error listing tracks: %w", err)
	}
	tracks := make([]*data.Track, len(rows))
	for i, row := range rows {
		tracks[i] = fromRow(row)
	}
	return tracks, nil
}

// SetArtistTag records one artist's dominant genre.
func (db *DB) SetArtistTag(artist, tag string) error {
	row := map[string]interface{}{"artist": artist, "tag": tag}
	if err := db.
		Table("artist_tags").
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "artist"}},
			UpdateAll: true,
		}).
		Create(row).
		Error; err != nil {
		return fmt.Errorf("error setting artist tag for '%s': %w", artist, err)
	}
	return nil
}

// ArtistTags returns the stored artist-to-genre map.
func (db *DB) ArtistTags() (map[string]string, error) {
	var rows []struct {
		Artist string
		Tag    string
	}
	if err := db.Table("artist_tags").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("error listing artist tags: %w", err)
	}
	tags := make(map[string]string, len(rows))
	for _, row := range rows {
		tags[row.Artist] = row.Tag
	}
	return tags, nil
}
