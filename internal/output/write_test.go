package output

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dist", "slidetheme.css")

	changed, err := WriteFile(path, []byte(".p-4{padding:1rem;}\n"))
	require.NoError(t, err)
	assert.True(t, changed, "first write creates the file")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, ".p-4{padding:1rem;}\n", string(data))

	old := time.Now().Add(-time.Hour)
	require.NoError(t, os.Chtimes(path, old, old))

	changed, err = WriteFile(path, []byte(".p-4{padding:1rem;}\n"))
	require.NoError(t, err)
	assert.False(t, changed, "identical content is not rewritten")
	after, err := os.Stat(path)
	require.NoError(t, err)
	assert.True(t, after.ModTime().Before(time.Now().Add(-30*time.Minute)), "mtime must be preserved")

	changed, err = WriteFile(path, []byte(".p-2{padding:0.5rem;}\n"))
	require.NoError(t, err)
	assert.True(t, changed)
	data, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, ".p-2{padding:0.5rem;}\n", string(data))
}
