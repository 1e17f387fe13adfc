package fileops

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCopyFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.txt")
	dst := filepath.Join(dir, "dst.txt")
	require.NoError(t, os.WriteFile(src, []byte("payload"), 0o644))
	require.NoError(t, os.WriteFile(dst, []byte("old content that is longer"), 0o644))

	require.NoError(t, CopyFile(src, dst))

	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "payload", string(data))
}

func TestCopyFileMissingSource(t *testing.T) {
	dir := t.TempDir()
	err := CopyFile(filepath.Join(dir, "missing"), filepath.Join(dir, "dst"))
	assert.Error(t, err)
}

func TestMoveToGUIDs(t *testing.T) {
	inDir := t.TempDir()
	outDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(inDir, "report.pdf"), []byte("pdf"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(inDir, "notes.txt"), []byte("txt"), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(inDir, "subdir"), 0o755))

	var out bytes.Buffer
	require.NoError(t, MoveToGUIDs(inDir, outDir, "", &out))

	entries, err := os.ReadDir(outDir)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	extensions := map[string]bool{}
	for _, entry := range entries {
		extensions[filepath.Ext(entry.Name())] = true
	}
	assert.True(t, extensions[".pdf"])
	assert.True(t, extensions[".txt"])
	assert.Equal(t, 2, strings.Count(out.String(), "Copy "))
}

func TestMoveToGUIDsPersistedMapReusesNames(t *testing.T) {
	inDir := t.TempDir()
	outDir := t.TempDir()
	mapPath := filepath.Join(t.TempDir(), "map.json")
	require.NoError(t, os.WriteFile(filepath.Join(inDir, "report.pdf"), []byte("pdf"), 0o644))

	var first bytes.Buffer
	require.NoError(t, MoveToGUIDs(inDir, outDir, mapPath, &first))

	guids := map[string]string{}
	data, err := os.ReadFile(mapPath)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, &guids))
	require.Contains(t, guids, "report.pdf")
	assert.True(t, strings.HasSuffix(guids["report.pdf"], ".pdf"))

	// A second run finds the target in place and copies nothing.
	var second bytes.Buffer
	require.NoError(t, MoveToGUIDs(inDir, outDir, mapPath, &second))
	assert.Empty(t, second.String())

	entries, err := os.ReadDir(outDir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}
