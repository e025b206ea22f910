package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDemoInputFilesSingleFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "message.bin")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	files, err := demoInputFiles(path)
	require.NoError(t, err)
	assert.Equal(t, []string{path}, files)
}

func TestDemoInputFilesDirectory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.bin"), []byte("a"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.bin"), []byte("b"), 0o644))

	files, err := demoInputFiles(dir)
	require.NoError(t, err)
	assert.Len(t, files, 2)
}

func TestDemoInputFilesMissingPath(t *testing.T) {
	_, err := demoInputFiles(filepath.Join(t.TempDir(), "does-not-exist"))
	assert.Error(t, err)
}
