// Package readthrough is a disk cache for service responses, keyed by
// request and stored one file per entry, so re-running an analysis doesn't
// re-fetch every artist.
package readthrough

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

func New(dir, prefix string) *ReadThrough {
	return &ReadThrough{dir: dir, prefix: prefix}
}

type ReadThrough struct {
	dir, prefix string
}

var ErrMiss = errors.New("cache miss")

// Get returns the cached bytes for key, or ErrMiss.
func (rt *ReadThrough) Get(key string) ([]byte, error) {
	hash, filename := rt.hashAndFilename(key)

	bs, err := os.ReadFile(filename)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("cache miss for '%s': %w", hash, ErrMiss)
	} else if err != nil {
		return nil, fmt.Errorf("error reading cache file '%s': %w", hash, err)
	}
	return bs, nil
}

// Set stores bytes for key, creating the cache directory if needed.
func (rt *ReadThrough) Set(key string, bs []byte) error {
	hash, filename := rt.hashAndFilename(key)

	if err := os.MkdirAll(rt.dir, 0755); err != nil {
		return fmt.Errorf("error creating cache dir: %w", err)
	}
	if err := os.WriteFile(filename, bs, 0666); err != nil {
		return fmt.Errorf("error writing cache file '%s': %w", hash, err)
	}
	return nil
}

func (rt *ReadThrough) hashAndFilename(key string) (string, string) {
	var hasher = sha256.New()
	hasher.Write([]byte(key))
	hash := hex.EncodeToString(hasher.Sum(nil))
	return hash, filepath.Join(rt.dir, rt.prefix+hash)
}
