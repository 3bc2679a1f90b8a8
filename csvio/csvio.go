// Package csvio round-trips the analysis record between Track values and
// the tabular CSV the rest of the pipeline consumes.
package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"spawnredj/data"
)

// Columns is the record's fixed column set. Order matters for round-trip
// compatibility with previously written files.
var Columns = []string{
	"artist", "album", "track", "year", "spawnre", "spawnre_hex", "spawnre_tag", "embedded_genre",
	"musicbrainz_artist_ID", "musicbrainz_release_group_ID", "musicbrainz_track_ID",
	"spotify_artist_ID", "spotify_track_ID", "file_duration_ms", "spotify_duration_ms",
	"file_path",
	"spotify_genre_1", "spotify_genre_2", "spotify_genre_3", "spotify_genre_4", "spotify_genre_5",
	"last_FM_genre_1", "last_FM_genre_2", "last_FM_genre_3", "last_FM_genre_4", "last_FM_genre_5",
	"musicbrainz_genre_1", "musicbrainz_genre_2", "musicbrainz_genre_3", "musicbrainz_genre_4", "musicbrainz_genre_5",
	"danceability", "energy", "key", "loudness", "mode", "speechiness", "acousticness",
	"instrumentalness", "liveness", "valence", "tempo", "time_signature",
	"loved_tracks", "loved_albums", "loved_artists",
}

func row(t *data.Track) []string {
	fields := map[string]string{
		"artist":                       t.Artist,
		"album":                        t.Album,
		"track":                        t.Title,
		"year":                         t.Year,
		"spawnre":                      strings.Join(t.Spawnre.Genres, ", "),
		"spawnre_hex":                  t.Spawnre.Hex,
		"spawnre_tag":                  t.ArtistTag,
		"embedded_genre":               t.EmbeddedGenre,
		"musicbrainz_artist_ID":        t.MusicBrainzArtistID,
		"musicbrainz_release_group_ID": t.MusicBrainzReleaseGroupID,
		"musicbrainz_track_ID":         t.MusicBrainzTrackID,
		"spotify_artist_ID":            t.SpotifyArtistID,
		"spotify_track_ID":             t.SpotifyTrackID,
		"file_duration_ms":             formatInt(t.FileDurationMS),
		"spotify_duration_ms":          formatInt(t.SpotifyDurationMS),
		"file_path":                    t.FilePath,
		"key":                          formatInt(t.Key),
		"mode":                         formatInt(t.Mode),
		"time_signature":               formatInt(t.TimeSignature),
		"loved_tracks":                 yesNo(t.Loved.Track),
		"loved_albums":                 yesNo(t.Loved.Album),
		"loved_artists":                yesNo(t.Loved.Artist),
	}
	for i := 0; i < 5; i++ {
		fields[fmt.Sprintf("spotify_genre_%d", i+1)] = pick(t.CatalogGenres, i)
		fields[fmt.Sprintf("last_FM_genre_%d", i+1)] = pick(t.ScrobbleGenres, i)
		fields[fmt.Sprintf("musicbrainz_genre_%d", i+1)] = pick(t.CrowdGenres, i)
	}
	for _, key := range data.FeatureKeys {
		if v, ok := t.Features[key]; ok {
			fields[key] = strconv.FormatFloat(v, 'f', -1, 64)
		}
	}

	record := make([]string, len(Columns))
	for i, col := range Columns {
		record[i] = fields[col]
	}
	return record
}

// Write writes one row per track, preceded by the header.
func Write(w io.Writer, tracks []*data.Track) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Columns); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, t := range tracks {
		if err := cw.Write(row(t)); err != nil {
			return fmt.Errorf("write row for %q: %w", t.FilePath, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteFile writes tracks to a CSV file at path.
func WriteFile(path string, tracks []*data.Track) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv: %w", err)
	}
	if err := Write(file, tracks); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

// Read parses a previously written record back into tracks. Unknown columns
// are ignored and missing ones read as empty, so older files still load.
func Read(r io.Reader) ([]*data.Track, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	col := map[string]int{}
	for i, name := range header {
		col[name] = i
	}

	var tracks []*data.Track
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		field := func(name string) string {
			i, ok := col[name]
			if !ok || i >= len(record) {
				return ""
			}
			return record[i]
		}

		t := &data.Track{
			Artist:   field("artist"),
			Album:    field("album"),
			Title:    field("track"),
			Year:     field("year"),
			FilePath: field("file_path"),
			Spawnre: data.SpawnreTag{
				Genres: splitGenres(field("spawnre")),
				Hex:    field("spawnre_hex"),
			},
			ArtistTag:                 field("spawnre_tag"),
			EmbeddedGenre:             field("embedded_genre"),
			MusicBrainzArtistID:       field("musicbrainz_artist_ID"),
			MusicBrainzReleaseGroupID: field("musicbrainz_release_group_ID"),
			MusicBrainzTrackID:        field("musicbrainz_track_ID"),
			SpotifyArtistID:           field("spotify_artist_ID"),
			SpotifyTrackID:            field("spotify_track_ID"),
			FileDurationMS:            parseInt(field("file_duration_ms")),
			SpotifyDurationMS:         parseInt(field("spotify_duration_ms")),
			Key:                       parseInt(field("key")),
			Mode:                      parseInt(field("mode")),
			TimeSignature:             parseInt(field("time_signature")),
			Loved: data.LovedFlags{
				Track:  field("loved_tracks") == "yes",
				Album:  field("loved_albums") == "yes",
				Artist: field("loved_artists") == "yes",
			},
		}
		for i := 1; i <= 5; i++ {
			appendGenre(&t.CatalogGenres, field(fmt.Sprintf("spotify_genre_%d", i)))
			appendGenre(&t.ScrobbleGenres, field(fmt.Sprintf("last_FM_genre_%d", i)))
			appendGenre(&t.CrowdGenres, field(fmt.Sprintf("musicbrainz_genre_%d", i)))
		}
		for _, key := range data.FeatureKeys {
			raw := field(key)
			if raw == "" {
				continue
			}
			v, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				continue
			}
			if t.Features == nil {
				t.Features = data.Vector{}
			}
			t.Features[key] = v
		}
		tracks = append(tracks, t)
	}
	return tracks, nil
}

// ReadFile reads a previously written record from path.
func ReadFile(path string) ([]*data.Track, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer file.Close()
	return Read(file)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func pick(list []string, i int) string {
	if i < len(list) {
		return list[i]
	}
	return ""
}

func splitGenres(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	genres := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			genres = append(genres, p)
		}
	}
	return genres
}

func appendGenre(list *[]string, v string) {
	if v != "" {
		*list = append(*list, v)
	}
}

func formatInt(v int64) string {
	if v == 0 {
		return ""
	}
	return strconv.FormatInt(v, 10)
}

func parseInt(s string) int64 {
	v, _ := strconv.ParseInt(s, 10, 64)
	return v
}
