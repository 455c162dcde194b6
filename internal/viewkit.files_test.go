package internal

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsReadableFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "index.html")
	require.NoError(t, os.WriteFile(file, []byte("hi"), 0644))

	assert.True(t, IsReadableFile(file))
	assert.False(t, IsReadableFile(dir), "directories are not templates")
	assert.False(t, IsReadableFile(filepath.Join(dir, "missing.html")))
}

func TestFindFile(t *testing.T) {
	first := t.TempDir()
	second := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(second, "index.html"), []byte("second"), 0644))

	found, ok := FindFile([]string{first, second}, "index.html")
	require.True(t, ok)
	assert.Equal(t, filepath.Join(second, "index.html"), found)

	require.NoError(t, os.WriteFile(filepath.Join(first, "index.html"), []byte("first"), 0644))
	found, ok = FindFile([]string{first, second}, "index.html")
	require.True(t, ok)
	assert.Equal(t, filepath.Join(first, "index.html"), found)

	_, ok = FindFile(nil, "index.html")
	assert.False(t, ok)
}
