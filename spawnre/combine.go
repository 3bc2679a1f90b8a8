// Package spawnre reconciles the genre opinions collected for a track into a
// single ranked candidate list and resolves that list into a compact tag.
package spawnre

import (
	"strings"

	"spawnredj/taxonomy"
)

const maxGenres = 5

// Combine merges the embedded tag with every fetched source list into at most
// five candidate genres. Each raw string is normalized and tallied; anything
// the taxonomy doesn't know is discarded. Genres confirmed by two or more
// sources rank ahead of single-source ones, which in turn are dropped when
// they merely repeat the artist's own name. Within each tier, first-seen
// order is preserved.
func Combine(embedded string, sources [][]string, artist string) []string {
	counts := map[string]int{}
	var seen []string

	tally := func(raw string) {
		if raw == "" {
			return
		}
		name := taxonomy.Normalize(raw)
		if _, ok := taxonomy.LookupByName(name); !ok {
			return
		}
		if counts[name] == 0 {
			seen = append(seen, name)
		}
		counts[name]++
	}

	tally(embedded)
	for _, source := range sources {
		for _, raw := range source {
			tally(raw)
		}
	}

	var combined []string
	for _, name := range seen {
		if counts[name] > 1 {
			combined = append(combined, name)
		}
	}
	if len(combined) > maxGenres {
		combined = combined[:maxGenres]
	}

	artistLower := strings.ToLower(artist)
	for _, name := range seen {
		if len(combined) >= maxGenres {
			break
		}
		if counts[name] != 1 || name == artistLower {
			continue
		}
		combined = append(combined, name)
	}

	return combined
}
