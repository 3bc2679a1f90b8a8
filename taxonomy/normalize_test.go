package taxonomy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"spawnredj/taxonomy"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Rock", "rock"},
		{"  Hip Hop ", "hip-hop"},
		{"rap", "hip-hop"},
		{"Rhythm & Blues", "r&b"},
		{"punk rock", "punk"},
		{"alternative", "alternative rock"},
		{"rock and roll", "rock & roll"},
		{"shoegaze", "shoegaze"}, // unknown strings pass through
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, taxonomy.Normalize(tt.in))
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"Hip Hop", "rap", "Alternative", "rock-n-roll", "folk", "garbage input", "",
	}
	for _, in := range inputs {
		once := taxonomy.Normalize(in)
		assert.Equal(t, once, taxonomy.Normalize(once), "normalize(%q)", in)
	}
}

func TestNormalizeKeepsCanonicalNames(t *testing.T) {
	// names that appear in some entry's related list but are themselves
	// catalog entries must not fold away
	for _, name := range []string{"folk", "grunge", "metal", "country rock"} {
		assert.Equal(t, name, taxonomy.Normalize(name))
	}
}
