// Package m3u reads and writes extended-M3U playlist files.
package m3u

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// DefaultPrefix is prepended to every written track path, matching a
// playlist directory that sits alongside the music root.
const DefaultPrefix = "../"

// A Section is one genre's run of tracks in an ordered playlist.
type Section struct {
	Genre string
	Paths []string
}

// Read returns the track paths from an M3U file, in order. Comment and
// blank lines are skipped. Relative entries are resolved against root.
func Read(path, root string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open playlist: %w", err)
	}
	defer file.Close()

	var paths []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if !filepath.IsAbs(line) {
			line = filepath.Join(root, line)
		}
		paths = append(paths, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read playlist: %w", err)
	}
	return paths, nil
}

// Write writes sections as an extended-M3U document: the #EXTM3U header,
// then each section introduced by a "# Genre:" comment. A section with an
// empty Genre gets no comment, so a single unnamed section produces a plain
// track list. Track paths are rewritten relative to root, given the prefix,
// with forward slashes regardless of host conventions.
func Write(w io.Writer, sections []Section, root, prefix string) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintln(bw, "#EXTM3U"); err != nil {
		return err
	}
	for _, section := range sections {
		if section.Genre != "" {
			if _, err := fmt.Fprintf(bw, "# Genre: %s\n", section.Genre); err != nil {
				return err
			}
		}
		for _, p := range section.Paths {
			rel, err := filepath.Rel(root, p)
			if err != nil {
				rel = p
			}
			if _, err := fmt.Fprintf(bw, "%s%s\n", prefix, filepath.ToSlash(rel)); err != nil {
				return err
			}
		}
	}
	return bw.Flush()
}

// WriteFile writes sections to an M3U file at path.
func WriteFile(path string, sections []Section, root, prefix string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create playlist: %w", err)
	}
	if err := Write(file, sections, root, prefix); err != nil {
		file.Close()
		return fmt.Errorf("write playlist: %w", err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("close playlist: %w", err)
	}
	return nil
}

// ReadLoved reads a loved-items playlist into a set of normalized paths:
// absolute, forward-slash, lowercased, so membership checks survive case
// and separator differences. A missing file is treated as an empty set.
func ReadLoved(path, root string) (map[string]bool, error) {
	loved := map[string]bool{}
	paths, err := Read(path, root)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return loved, nil
		}
		return nil, err
	}
	for _, p := range paths {
		loved[NormalizePath(p)] = true
	}
	return loved, nil
}

// ReadLovedDirs reads a loved-items playlist and returns the set of
// directories its tracks live in, `up` levels above the track: one for the
// album directory, two for the artist directory.
func ReadLovedDirs(playlistPath, root string, up int) (map[string]bool, error) {
	loved := map[string]bool{}
	paths, err := Read(playlistPath, root)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return loved, nil
		}
		return nil, err
	}
	for _, p := range paths {
		key := NormalizePath(p)
		for i := 0; i < up; i++ {
			key = path.Dir(key)
		}
		loved[key] = true
	}
	return loved, nil
}

// NormalizePath produces the canonical form used for loved-set membership.
func NormalizePath(p string) string {
	abs, err := filepath.Abs(p)
	if err != nil {
		abs = p
	}
	return strings.ToLower(filepath.ToSlash(abs))
}
