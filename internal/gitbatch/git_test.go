package gitbatch

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func markRepository(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Join(path, ".git"), 0o755))
}

func TestIsRepository(t *testing.T) {
	dir := t.TempDir()
	assert.False(t, IsRepository(dir))

	markRepository(t, dir)
	assert.True(t, IsRepository(dir))
}

func TestFindRepositories(t *testing.T) {
	root := t.TempDir()
	for _, name := range []string{"alpha", "beta", "plain", ".hidden"} {
		require.NoError(t, os.MkdirAll(filepath.Join(root, name), 0o755))
	}
	markRepository(t, filepath.Join(root, "alpha"))
	markRepository(t, filepath.Join(root, "beta"))
	markRepository(t, filepath.Join(root, ".hidden"))

	repos, err := FindRepositories(root)
	require.NoError(t, err)
	require.Len(t, repos, 2)
	assert.Equal(t, filepath.Join(root, "alpha"), repos[0])
	assert.Equal(t, filepath.Join(root, "beta"), repos[1])
}

func TestFindRepositoriesIncludesRoot(t *testing.T) {
	root := t.TempDir()
	markRepository(t, root)
	require.NoError(t, os.MkdirAll(filepath.Join(root, "child"), 0o755))
	markRepository(t, filepath.Join(root, "child"))

	repos, err := FindRepositories(root)
	require.NoError(t, err)
	require.Len(t, repos, 2)
	assert.Equal(t, root, repos[0])
}

func TestSubdirectories(t *testing.T) {
	root := t.TempDir()
	for _, name := range []string{"zeta", "alpha", ".git"} {
		require.NoError(t, os.MkdirAll(filepath.Join(root, name), 0o755))
	}
	require.NoError(t, os.WriteFile(filepath.Join(root, "file.txt"), []byte("x"), 0o644))

	dirs, err := Subdirectories(root)
	require.NoError(t, err)
	require.Len(t, dirs, 2)
	assert.Equal(t, filepath.Join(root, "alpha"), dirs[0])
	assert.Equal(t, filepath.Join(root, "zeta"), dirs[1])
}
