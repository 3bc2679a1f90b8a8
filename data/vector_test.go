package data_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"spawnredj/data"
)

func TestDistance(t *testing.T) {
	a := data.Vector{"a": 1, "b": 1, "not in b": 1}
	b := data.Vector{"a": 2, "b": 2, "not in a": 3}
	assert.Equal(t, math.Sqrt(2), a.Distance(b))
}

func TestDistanceSymmetric(t *testing.T) {
	a := data.Vector{"tempo": 100, "energy": 0.5}
	b := data.Vector{"tempo": 150, "energy": 0.9}
	assert.Equal(t, a.Distance(b), b.Distance(a))
}

func TestDistanceRawScale(t *testing.T) {
	// Tempo is not normalized, so a 50bpm gap dwarfs any 0..1 feature.
	a := data.Vector{"tempo": 100, "energy": 0}
	b := data.Vector{"tempo": 150, "energy": 1}
	c := data.Vector{"tempo": 101, "energy": 1}
	assert.Less(t, a.Distance(c), a.Distance(b))
}

func TestLovedFilterMatch(t *testing.T) {
	for _, tt := range []struct {
		name   string
		filter data.LovedFilter
		flags  data.LovedFlags
		want   bool
	}{
		{"empty filter passes everything", data.LovedFilter{}, data.LovedFlags{}, true},
		{"track filter matches loved track", data.LovedFilter{WantTracks: true}, data.LovedFlags{Track: true}, true},
		{"track filter rejects unloved", data.LovedFilter{WantTracks: true}, data.LovedFlags{Album: true}, false},
		{"criteria combine with OR", data.LovedFilter{WantTracks: true, WantAlbums: true}, data.LovedFlags{Album: true}, true},
		{"artist filter", data.LovedFilter{WantArtists: true}, data.LovedFlags{Artist: true}, true},
	} {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.filter.Match(tt.flags))
		})
	}
}
