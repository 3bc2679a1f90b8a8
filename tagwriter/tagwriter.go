// Package tagwriter writes resolved genre tags back into MP3 files.
package tagwriter

import (
	"fmt"

	"github.com/bogem/id3v2/v2"
)

// WriteGenre replaces the genre frame of the MP3 at path. Files without an
// existing ID3 tag get a fresh one.
func WriteGenre(path, genre string) error {
	t, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		t, err = id3v2.Open(path, id3v2.Options{Parse: false})
		if err != nil {
			return fmt.Errorf("open mp3 %q: %w", path, err)
		}
	}
	defer t.Close()

	t.SetDefaultEncoding(id3v2.EncodingUTF8)
	t.SetGenre(genre)

	if err := t.Save(); err != nil {
		return fmt.Errorf("save tag for %q: %w", path, err)
	}
	return nil
}
