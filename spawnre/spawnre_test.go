package spawnre_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"spawnredj/spawnre"
)

func TestCombineSingleEmbeddedGenre(t *testing.T) {
	got := spawnre.Combine("rock", nil, "Artist A")
	assert.Equal(t, []string{"rock"}, got)
}

func TestCombineMultiSourceFirst(t *testing.T) {
	// "jazz" appears in two sources, "blues" in one; confirmed genres
	// rank first even though blues was seen earlier.
	got := spawnre.Combine("blues", [][]string{
		{"jazz"},
		{"jazz", "funk"},
	}, "Someone")
	assert.Equal(t, []string{"jazz", "blues", "funk"}, got)
}

func TestCombineDiscardsUnknownGenres(t *testing.T) {
	got := spawnre.Combine("vaporwave nightcore", [][]string{
		{"not a genre", "rock"},
	}, "Someone")
	assert.Equal(t, []string{"rock"}, got)
}

func TestCombineNormalizesBeforeTallying(t *testing.T) {
	// "hip hop" and "rap" normalize to the same canonical name, so they
	// count as two sources agreeing.
	got := spawnre.Combine("", [][]string{
		{"hip hop"},
		{"rap", "jazz"},
	}, "Someone")
	assert.Equal(t, []string{"hip-hop", "jazz"}, got)
}

func TestCombineExcludesArtistName(t *testing.T) {
	got := spawnre.Combine("", [][]string{
		{"Blues", "jazz"},
	}, "blues")
	assert.Equal(t, []string{"jazz"}, got)
}

func TestCombineCapsAtFive(t *testing.T) {
	got := spawnre.Combine("rock", [][]string{
		{"jazz", "blues", "funk", "soul", "pop", "country"},
	}, "Someone")
	assert.Len(t, got, 5)
}

func TestCombineEmptyInput(t *testing.T) {
	assert.Empty(t, spawnre.Combine("", nil, "Someone"))
}

func TestResolveSingleGenre(t *testing.T) {
	tag := spawnre.Resolve([]string{"rock"})
	assert.Equal(t, []string{"rock"}, tag.Genres)
	assert.Equal(t, "x00", tag.Hex)
}

func TestResolveSortsByCatalogOrder(t *testing.T) {
	tag := spawnre.Resolve([]string{"jazz", "folk", "blues"})
	assert.Equal(t, []string{"folk", "jazz", "blues"}, tag.Genres)
}

func TestResolveEmpty(t *testing.T) {
	tag := spawnre.Resolve(nil)
	assert.Empty(t, tag.Genres)
	assert.Equal(t, "x", tag.Hex)
}

func TestResolveDropsUnknown(t *testing.T) {
	tag := spawnre.Resolve([]string{"jazz", "zydeco polka"})
	assert.Equal(t, []string{"jazz"}, tag.Genres)
}

func TestResolveHexBound(t *testing.T) {
	tag := spawnre.Resolve([]string{"rock", "folk", "pop", "jazz", "blues"})
	assert.Len(t, tag.Genres, 5)
	assert.LessOrEqual(t, len(tag.Hex), 10)
	assert.Equal(t, "x", tag.Hex[:1])
	// Only the first four genres fit the encoded form.
	assert.Equal(t, "x00183048", tag.Hex)
}

func TestResolveRockKeywordCase(t *testing.T) {
	tag := spawnre.Resolve([]string{"funk rock", "jazz"})
	assert.Equal(t, "rock", tag.Genres[0])
	assert.Contains(t, tag.Genres, "funk rock")
	assert.Contains(t, tag.Genres, "jazz")
}

func TestResolveDeterministic(t *testing.T) {
	in := []string{"jazz", "rock", "blues"}
	assert.Equal(t, spawnre.Resolve(in), spawnre.Resolve(in))
}

func TestArtistTagMajority(t *testing.T) {
	got := spawnre.ArtistTag([][]string{
		{"rock"},
		{"rock", "blues"},
		{"jazz"},
	})
	assert.Equal(t, "rock", got)
}

func TestArtistTagTieBreaksOnEncounterOrder(t *testing.T) {
	got := spawnre.ArtistTag([][]string{
		{"blues"},
		{"jazz"},
	})
	assert.Equal(t, "blues", got)
}

func TestArtistTagEmpty(t *testing.T) {
	assert.Equal(t, "", spawnre.ArtistTag(nil))
}
