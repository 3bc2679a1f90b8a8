package genreorder_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spawnredj/genreorder"
)

func TestRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "order.json")

	require.NoError(t, genreorder.Save(path, []string{"rock", "folk rock", "r&b"}))

	bs, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(bs), `"Folk Rock"`)
	assert.Contains(t, string(bs), `"R&b"`)

	order, err := genreorder.Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"rock", "folk rock", "r&b"}, order)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := genreorder.Load(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoadRejectsMalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "order.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	_, err := genreorder.Load(path)
	assert.Error(t, err)
}

func TestParse(t *testing.T) {
	assert.Equal(t,
		[]string{"rock", "blues", "jazz"},
		genreorder.Parse("Rock, blues , JAZZ,"))
	assert.Nil(t, genreorder.Parse(""))
}
