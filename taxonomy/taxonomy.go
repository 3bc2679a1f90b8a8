// Package taxonomy holds the fixed spawnre genre catalog: a 256-slot code
// space organized into lettered families, where every named genre owns a
// single-byte identifier. The catalog is static and read-only; lookups that
// miss report absence rather than erroring, because unknown genre strings
// from external sources are routine.
package taxonomy

import "strings"

// An Entry is one slot in the catalog. Code is the family-positional
// identifier (like "A04"), Hex the slot's byte. Subgenres point at their
// family root via Parent; Related lists cross-family affinities by code.
//
// Slots without a name are reserved for future growth and are not present
// in the table at all, so they can never be selected.
type Entry struct {
	Code    string
	Hex     byte
	Name    string
	Parent  string
	Related []string
}

var (
	byName   map[string]*Entry
	orderIdx map[string]int
	byCode   map[string]*Entry
)

func init() {
	byName = make(map[string]*Entry, len(entries))
	orderIdx = make(map[string]int, len(entries))
	byCode = make(map[string]*Entry, len(entries))
	for i := range entries {
		e := &entries[i]
		byName[e.Name] = e
		orderIdx[e.Name] = i
		byCode[e.Code] = e
	}
}

// LookupByName finds the catalog entry for a genre name. The match is
// case-insensitive and exact.
func LookupByName(name string) (*Entry, bool) {
	e, ok := byName[strings.ToLower(strings.TrimSpace(name))]
	return e, ok
}

// RelatedOf returns the names of the genres the catalog declares related to
// the given one. Unknown names return nil.
func RelatedOf(name string) []string {
	e, ok := LookupByName(name)
	if !ok {
		return nil
	}
	var related []string
	for _, code := range e.Related {
		if rel, ok := byCode[code]; ok {
			related = append(related, rel.Name)
		}
	}
	return related
}

// OrderIndex returns the genre's position in the catalog, used as a sort
// key. Names not in the catalog sort after every named entry.
func OrderIndex(name string) int {
	if idx, ok := orderIdx[strings.ToLower(strings.TrimSpace(name))]; ok {
		return idx
	}
	return len(entries)
}

// Count reports how many named genres the catalog holds.
func Count() int { return len(entries) }

// All returns the named entries in catalog order. The returned slice is
// shared; callers must not modify it.
func All() []Entry { return entries }
