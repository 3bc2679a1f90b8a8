// Package genreorder loads and saves a user's preferred genre ordering for
// playlist output.
package genreorder

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

type file struct {
	PreferredGenreOrder []string `json:"preferred_genre_order"`
}

// Load reads a preferred ordering from a JSON file. The stored names are
// display-cased; they come back lowercased for comparison against cluster
// keys.
func Load(path string) ([]string, error) {
	bs, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading genre order file: %w", err)
	}

	var f file
	if err := json.Unmarshal(bs, &f); err != nil {
		return nil, fmt.Errorf("error parsing genre order file '%s': %w", path, err)
	}

	order := make([]string, len(f.PreferredGenreOrder))
	for i, name := range f.PreferredGenreOrder {
		order[i] = strings.ToLower(strings.TrimSpace(name))
	}
	return order, nil
}

// Save writes the ordering as JSON, title-casing each name for display.
func Save(path string, order []string) error {
	f := file{PreferredGenreOrder: make([]string, len(order))}
	for i, name := range order {
		f.PreferredGenreOrder[i] = titleCase(name)
	}

	bs, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return fmt.Errorf("error encoding genre order: %w", err)
	}
	if err := os.WriteFile(path, append(bs, '\n'), 0644); err != nil {
		return fmt.Errorf("error writing genre order file '%s': %w", path, err)
	}
	return nil
}

// Parse splits a comma-separated ordering as typed by the user.
func Parse(input string) []string {
	var order []string
	for _, part := range strings.Split(input, ",") {
		if part = strings.ToLower(strings.TrimSpace(part)); part != "" {
			order = append(order, part)
		}
	}
	return order
}

// titleCase uppercases the first letter of each word, leaving the rest
// as-is so names like "r&b" stay readable.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}
