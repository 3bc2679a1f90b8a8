package spawnre

import (
	"fmt"
	"sort"
	"strings"

	"spawnredj/data"
	"spawnredj/taxonomy"
)

// hexTagLimit bounds the encoded tag: the "x" marker plus genre bytes. Five
// two-digit codes would need eleven characters, so a full five-genre tag
// encodes only its first four genres.
const hexTagLimit = 10

// rockKeywords maps substrings of rock-adjacent candidates to the specific
// rock subgenre they imply, checked in this order.
var rockKeywords = []struct {
	keyword string
	genre   string
}{
	{"classic", "classic rock"},
	{"alternative", "alternative rock"},
	{"indie", "indie rock"},
	{"folk", "folk rock"},
	{"acoustic", "acoustic rock"},
	{"piano", "piano rock"},
	{"hard", "hard rock"},
	{"grunge", "grunge"},
	{"metal", "metal"},
	{"punk", "punk"},
	{"surf", "surf rock"},
	{"funk", "funk rock"},
	{"country", "country rock"},
	{"blues", "blues rock"},
	{"rap", "rap rock"},
}

// Resolve selects up to five canonical genres from the candidate list, in
// taxonomy order, and encodes their hex bytes into a tag string. Candidates
// the taxonomy doesn't know are dropped. An empty candidate list yields the
// bare "x" marker.
func Resolve(candidates []string) data.SpawnreTag {
	var selected []string
	for _, name := range candidates {
		if _, ok := taxonomy.LookupByName(name); ok {
			selected = append(selected, name)
		}
	}
	sort.SliceStable(selected, func(i, j int) bool {
		return taxonomy.OrderIndex(selected[i]) < taxonomy.OrderIndex(selected[j])
	})
	if len(selected) > maxGenres {
		selected = selected[:maxGenres]
	}

	if anyContainsRock(candidates) {
		selected = applyRockCase(selected, candidates)
	}

	hex := "x"
	var genres []string
	for _, name := range selected {
		entry, ok := taxonomy.LookupByName(name)
		if !ok {
			continue
		}
		if len(hex)+2 > hexTagLimit {
			genres = append(genres, entry.Name)
			continue
		}
		hex += fmt.Sprintf("%02X", entry.Hex)
		genres = append(genres, entry.Name)
	}

	return data.SpawnreTag{Genres: genres, Hex: hex}
}

func anyContainsRock(candidates []string) bool {
	for _, c := range candidates {
		if strings.Contains(strings.ToLower(c), "rock") {
			return true
		}
	}
	return false
}

// applyRockCase moves "rock" to the front of the selection and appends the
// rock subgenres implied by keywords found among the candidates.
func applyRockCase(selected, candidates []string) []string {
	result := []string{"rock"}
	for _, name := range selected {
		if name != "rock" {
			result = append(result, name)
		}
	}
	for _, kw := range rockKeywords {
		if contains(result, kw.genre) {
			continue
		}
		for _, c := range candidates {
			if strings.Contains(strings.ToLower(c), kw.keyword) {
				result = append(result, kw.genre)
				break
			}
		}
	}
	if len(result) > maxGenres {
		result = result[:maxGenres]
	}
	return result
}

func contains(list []string, name string) bool {
	for _, v := range list {
		if v == name {
			return true
		}
	}
	return false
}
