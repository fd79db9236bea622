package uploads_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Vovarama1992/voice_agents/internal/uploads"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiskStore_CreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "uploads")

	_, err := uploads.NewDiskStore(dir)
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestDiskStore_SaveRemove(t *testing.T) {
	t.Parallel()

	store, err := uploads.NewDiskStore(t.TempDir())
	require.NoError(t, err)

	path, err := store.Save("a.wav", []byte("RIFF"))
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte("RIFF"), data)

	require.NoError(t, store.Remove("a.wav"))
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	// removing again is fine
	assert.NoError(t, store.Remove("a.wav"))
}

func TestDiskStore_SaveNeverOverwrites(t *testing.T) {
	t.Parallel()

	store, err := uploads.NewDiskStore(t.TempDir())
	require.NoError(t, err)

	_, err = store.Save("same.mp3", []byte("first"))
	require.NoError(t, err)

	_, err = store.Save("same.mp3", []byte("second"))
	require.Error(t, err)

	data, err := os.ReadFile(filepath.Join(store.Dir, "same.mp3"))
	require.NoError(t, err)
	assert.Equal(t, []byte("first"), data)
}

func TestDiskStore_SaveRejectsPaths(t *testing.T) {
	t.Parallel()

	store, err := uploads.NewDiskStore(t.TempDir())
	require.NoError(t, err)

	for _, name := range []string{"", "../escape.wav", "sub/dir.wav"} {
		_, err := store.Save(name, []byte("x"))
		assert.Error(t, err, name)
	}
}

func TestDiskStore_Purge(t *testing.T) {
	t.Parallel()

	store, err := uploads.NewDiskStore(t.TempDir())
	require.NoError(t, err)

	n, err := store.Purge()
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	for _, name := range []string{"1.wav", "2.ogg", "3.flac"} {
		_, err := store.Save(name, []byte(name))
		require.NoError(t, err)
	}
	require.NoError(t, os.Mkdir(filepath.Join(store.Dir, "keep"), 0o755))

	n, err = store.Purge()
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	entries, err := os.ReadDir(store.Dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.True(t, entries[0].IsDir())
}
