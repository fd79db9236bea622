package uploads_test

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/Vovarama1992/voice_agents/internal/uploads"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type zeroReader struct{}

func (zeroReader) Read(p []byte) (int, error) {
	clear(p)
	return len(p), nil
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("connection reset")
}

func newService(t *testing.T) (*uploads.Service, string) {
	t.Helper()

	dir := t.TempDir()
	store, err := uploads.NewDiskStore(dir)
	require.NoError(t, err)

	return uploads.NewService(store), dir
}

func TestValidate_AllowList(t *testing.T) {
	t.Parallel()

	svc, _ := newService(t)

	for _, ct := range uploads.AllowedContentTypes {
		assert.NoError(t, svc.Validate(ct), ct)
	}
	assert.Len(t, uploads.AllowedContentTypes, 8)

	assert.NoError(t, svc.Validate("audio/webm;codecs=opus"))
	assert.NoError(t, svc.Validate("AUDIO/WAV"))

	for _, ct := range []string{"", "audio/x-wav", "video/mp4", "application/octet-stream", "text/plain"} {
		err := svc.Validate(ct)
		assert.ErrorIs(t, err, uploads.ErrUnsupportedType, ct)
	}
}

func TestReadAll_SizeBoundary(t *testing.T) {
	t.Parallel()

	data, err := uploads.ReadAll(io.LimitReader(zeroReader{}, uploads.MaxSize))
	require.NoError(t, err)
	assert.Len(t, data, int(uploads.MaxSize))

	_, err = uploads.ReadAll(io.LimitReader(zeroReader{}, uploads.MaxSize+1))
	require.ErrorIs(t, err, uploads.ErrTooLarge)
	assert.Contains(t, err.Error(), "50 MiB")
}

func TestReadAll_ReadError(t *testing.T) {
	t.Parallel()

	_, err := uploads.ReadAll(failingReader{})
	require.Error(t, err)
	assert.NotErrorIs(t, err, uploads.ErrTooLarge)
}

func TestPersist_KeepsExtension(t *testing.T) {
	t.Parallel()

	svc, dir := newService(t)

	name, path, err := svc.Persist("", "voice note.mp3", "", []byte("ID3"))
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(name, ".mp3"))
	assert.Equal(t, filepath.Join(dir, name), path)

	name, _, err = svc.Persist(uploads.TranscribePrefix, "blob", ".tmp", []byte("x"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(name, uploads.TranscribePrefix))
	assert.True(t, strings.HasSuffix(name, ".tmp"))

	name, _, err = svc.Persist("", "../../etc/passwd.wav", "", []byte("x"))
	require.NoError(t, err)
	assert.NotContains(t, name, "/")
}

func TestPersist_ConcurrentIdenticalUploadsGetDistinctNames(t *testing.T) {
	t.Parallel()

	svc, dir := newService(t)
	payload := bytes.Repeat([]byte{0xAB}, 1024)

	const n = 2
	names := make([]string, n)
	errs := make([]error, n)

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			names[i], _, errs[i] = svc.Persist("", "same.wav", "", payload)
		}(i)
	}
	wg.Wait()

	require.NoError(t, errs[0])
	require.NoError(t, errs[1])
	assert.NotEqual(t, names[0], names[1])

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, n)
}

func TestRemoveAndPurge(t *testing.T) {
	t.Parallel()

	svc, dir := newService(t)

	name, _, err := svc.Persist("", "a.wav", "", []byte("x"))
	require.NoError(t, err)
	require.NoError(t, svc.Remove(name))

	for i := 0; i < 3; i++ {
		_, _, err := svc.Persist("", "a.ogg", "", []byte("x"))
		require.NoError(t, err)
	}

	n, err := svc.Purge()
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
