// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package feed

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFileOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "feed.xml")

	require.NoError(t, WriteFile(path, []byte("first version")))
	require.NoError(t, WriteFile(path, []byte("second version")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "second version", string(data))
}

func TestWriteFileLeavesNoTempOnSuccess(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, WriteFile(filepath.Join(dir, "feed.xml"), []byte("x")))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
	assert.Equal(t, "feed.xml", entries[0].Name())
}

func TestWriteFileMissingDirectory(t *testing.T) {
	err := WriteFile(filepath.Join(t.TempDir(), "no", "such", "dir", "feed.xml"), []byte("x"))
	assert.Error(t, err)
}
