package filestorage

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalFileStorage_SaveOpenDelete(t *testing.T) {
	fs, err := NewLocalFileStorage(t.TempDir())
	require.NoError(t, err)

	path, err := fs.Save(strings.NewReader("%PDF-1.4"), "minutes.pdf", "session-drafts")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(path, "session-drafts/"))
	assert.True(t, strings.HasSuffix(path, ".pdf"))

	f, err := fs.Open(path)
	require.NoError(t, err)
	data, err := io.ReadAll(f)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	assert.Equal(t, "%PDF-1.4", string(data))

	require.NoError(t, fs.Delete(path))
	_, err = fs.Open(path)
	assert.Error(t, err)

	// Deleting twice is fine.
	assert.NoError(t, fs.Delete(path))
}

func TestLocalFileStorage_RejectsEscapingPaths(t *testing.T) {
	fs, err := NewLocalFileStorage(t.TempDir())
	require.NoError(t, err)

	_, err = fs.Open("../etc/passwd")
	assert.Error(t, err)
	assert.Error(t, fs.Delete("session-drafts/../../x"))
}
