package m3u_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spawnredj/m3u"
)

func TestReadSkipsCommentsAndResolvesRelative(t *testing.T) {
	dir := t.TempDir()
	playlist := filepath.Join(dir, "list.m3u")
	require.NoError(t, os.WriteFile(playlist, []byte(strings.Join([]string{
		"#EXTM3U",
		"",
		"# Genre: rock",
		"Artist/Song.mp3",
		"/abs/Other.mp3",
	}, "\n")), 0o644))

	paths, err := m3u.Read(playlist, "/music")
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join("/music", "Artist/Song.mp3"),
		"/abs/Other.mp3",
	}, paths)
}

func TestWriteSections(t *testing.T) {
	var buf strings.Builder
	err := m3u.Write(&buf, []m3u.Section{
		{Genre: "rock", Paths: []string{"/music/A/1.mp3", "/music/A/2.mp3"}},
		{Genre: "jazz", Paths: []string{"/music/B/3.mp3"}},
	}, "/music", m3u.DefaultPrefix)
	require.NoError(t, err)

	assert.Equal(t, strings.Join([]string{
		"#EXTM3U",
		"# Genre: rock",
		"../A/1.mp3",
		"../A/2.mp3",
		"# Genre: jazz",
		"../B/3.mp3",
		"",
	}, "\n"), buf.String())
}

func TestWriteUnnamedSectionHasNoGenreComment(t *testing.T) {
	var buf strings.Builder
	err := m3u.Write(&buf, []m3u.Section{
		{Paths: []string{"/music/A/1.mp3", "/music/B/2.mp3"}},
	}, "/music", m3u.DefaultPrefix)
	require.NoError(t, err)

	assert.Equal(t, strings.Join([]string{
		"#EXTM3U",
		"../A/1.mp3",
		"../B/2.mp3",
		"",
	}, "\n"), buf.String())
}

func TestWriteUsesForwardSlashes(t *testing.T) {
	var buf strings.Builder
	err := m3u.Write(&buf, []m3u.Section{
		{Genre: "rock", Paths: []string{filepath.Join("/music", "A", "1.mp3")}},
	}, "/music", "../")
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "../A/1.mp3")
}

func TestReadLovedNormalizes(t *testing.T) {
	dir := t.TempDir()
	playlist := filepath.Join(dir, "loved.m3u")
	require.NoError(t, os.WriteFile(playlist, []byte("/Music/Artist/SONG.mp3\n"), 0o644))

	loved, err := m3u.ReadLoved(playlist, dir)
	require.NoError(t, err)
	assert.True(t, loved[m3u.NormalizePath("/Music/Artist/song.mp3")])
}

func TestReadLovedDirs(t *testing.T) {
	dir := t.TempDir()
	playlist := filepath.Join(dir, "loved-albums.m3u")
	require.NoError(t, os.WriteFile(playlist, []byte(strings.Join([]string{
		"/Music/Artist/Album/Song 1.mp3",
		"/Music/Artist/Album/Song 2.mp3",
	}, "\n")), 0o644))

	albums, err := m3u.ReadLovedDirs(playlist, dir, 1)
	require.NoError(t, err)
	assert.Len(t, albums, 1)
	assert.True(t, albums[m3u.NormalizePath("/Music/Artist/Album")])

	artists, err := m3u.ReadLovedDirs(playlist, dir, 2)
	require.NoError(t, err)
	assert.True(t, artists[m3u.NormalizePath("/Music/Artist")])
}

func TestReadLovedMissingFileIsEmpty(t *testing.T) {
	loved, err := m3u.ReadLoved(filepath.Join(t.TempDir(), "nope.m3u"), ".")
	require.NoError(t, err)
	assert.Empty(t, loved)
}
