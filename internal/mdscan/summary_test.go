package mdscan

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOneLineSummary(t *testing.T) {
	cwd := t.TempDir()
	dir := filepath.Join(cwd, "notes")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	for _, name := range []string{"beta.md", "alpha.md", "README.md"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x\n"), 0o644))
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "skipped.txt"), []byte("x\n"), 0o644))

	var buf bytes.Buffer
	require.NoError(t, OneLineSummary(&buf, dir, cwd))

	expected := "- [alpha.md](" + filepath.Join("notes", "alpha.md") + ")\n" +
		"- [beta.md](" + filepath.Join("notes", "beta.md") + ")\n"
	assert.Equal(t, expected, buf.String())
}

func TestOneLineSummaryEmptyDirectory(t *testing.T) {
	cwd := t.TempDir()
	dir := filepath.Join(cwd, "notes")
	require.NoError(t, os.MkdirAll(dir, 0o755))

	var buf bytes.Buffer
	require.NoError(t, OneLineSummary(&buf, dir, cwd))
	assert.Empty(t, buf.String())
}
