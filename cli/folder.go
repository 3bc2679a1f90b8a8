package main

import (
	"context"
	"fmt"
	"io/fs"
	"log"
	"path/filepath"
	"sort"
	"strings"

	"spawnredj/config"
	"spawnredj/m3u"
	"spawnredj/subcmd"
	"spawnredj/tags"
)

var audioExtensions = map[string]bool{
	".mp3":  true,
	".m4a":  true,
	".mp4":  true,
	".flac": true,
	".ogg":  true,
}

func folder(ctx context.Context, settings config.Settings, args []string) error {
	sc := subcmd.New("folder", "build an M3U playlist from a music directory tree")
	sc.SetArg("dir", "path", "music directory to walk (required)")
	var (
		out  = sc.String("out", "", "output M3U path (default: directory name + .m3u)")
		flip = sc.Bool("flip", false, "untagged filenames are 'Title - Artist' instead of 'Artist - Title'")
	)
	if err := sc.Parse(args); err != nil {
		return fmt.Errorf("flag parsing err: %w", err)
	}
	if sc.NArg() != 1 {
		sc.Usage()
		return fmt.Errorf("expected one directory argument")
	}
	root := sc.Arg(0)

	type entry struct {
		path   string
		artist string
		album  string
		title  string
	}
	var entries []entry

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() || !audioExtensions[strings.ToLower(filepath.Ext(path))] {
			return nil
		}

		e := entry{path: path}
		if meta, err := tags.ReadFile(path); err == nil {
			e.artist = meta.Artist
			e.album = meta.Album
			e.title = meta.Title
		}
		if e.artist == "" || e.title == "" {
			artist, title := splitFilename(path, *flip)
			if e.artist == "" {
				e.artist = artist
			}
			if e.title == "" {
				e.title = title
			}
		}
		entries = append(entries, e)
		return nil
	})
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		return fmt.Errorf("no audio files under %s", root)
	}

	// Walk order is lexical already, but sorting on tag metadata keeps
	// albums together when files are scattered or sloppily named.
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.artist != b.artist {
			return a.artist < b.artist
		}
		if a.album != b.album {
			return a.album < b.album
		}
		return a.path < b.path
	})

	outPath := *out
	if outPath == "" {
		outPath = filepath.Base(filepath.Clean(root)) + ".m3u"
	}

	var section m3u.Section
	for _, e := range entries {
		section.Paths = append(section.Paths, e.path)
	}
	if err := m3u.WriteFile(outPath, []m3u.Section{section}, root, settings.PathPrefix); err != nil {
		return err
	}

	log.Printf("wrote %d tracks to %s", len(entries), outPath)
	return nil
}

// splitFilename guesses artist and title from an "Artist - Title" basename,
// or "Title - Artist" when flipped. A name with no separator is all title.
func splitFilename(p string, flip bool) (artist, title string) {
	base := strings.TrimSuffix(filepath.Base(p), filepath.Ext(p))
	parts := strings.SplitN(base, " - ", 2)
	if len(parts) != 2 {
		return "", base
	}
	if flip {
		return strings.TrimSpace(parts[1]), strings.TrimSpace(parts[0])
	}
	return strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])
}
