// Package tags reads embedded metadata from audio files.
package tags

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/dhowden/tag"
)

// Meta is the metadata embedded in one audio file. Fields the file doesn't
// carry are left empty.
type Meta struct {
	Title  string
	Artist string
	Album  string
	Genre  string
	Year   string

	MusicBrainzArtistID       string
	MusicBrainzReleaseGroupID string
	MusicBrainzTrackID        string
}

// ReadFile reads the tags embedded in the audio file at path. All supported
// container formats (ID3, MP4 atoms, Vorbis comments) go through the same
// reader.
func ReadFile(path string) (Meta, error) {
	file, err := os.Open(path)
	if err != nil {
		return Meta{}, fmt.Errorf("open audio file: %w", err)
	}
	defer file.Close()

	md, err := tag.ReadFrom(file)
	if err != nil {
		return Meta{}, fmt.Errorf("read tags from %q: %w", path, err)
	}

	meta := Meta{
		Title:  md.Title(),
		Artist: md.Artist(),
		Album:  md.Album(),
		Genre:  md.Genre(),
	}
	if y := md.Year(); y > 0 {
		meta.Year = strconv.Itoa(y)
	}

	raw := md.Raw()
	meta.MusicBrainzArtistID = rawString(raw, "musicbrainz artist id")
	meta.MusicBrainzReleaseGroupID = rawString(raw, "musicbrainz release group id")
	meta.MusicBrainzTrackID = rawString(raw, "musicbrainz release track id")
	if meta.MusicBrainzTrackID == "" {
		meta.MusicBrainzTrackID = rawString(raw, "musicbrainz track id")
	}
	return meta, nil
}

// rawString scans the raw frame map for a key containing want, matching
// case-insensitively so both MP4 freeform atoms ("----:com.apple.iTunes:
// MusicBrainz Artist Id") and Vorbis/ID3 spellings are found.
func rawString(raw map[string]interface{}, want string) string {
	for key, val := range raw {
		if !strings.Contains(strings.ToLower(key), want) {
			continue
		}
		switch v := val.(type) {
		case string:
			return strings.TrimSpace(v)
		case []byte:
			return strings.TrimSpace(string(v))
		}
	}
	return ""
}
