package gitbatch

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSynchronizerSkipsNonRepositories(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "docs"), 0o755))

	var out bytes.Buffer
	sync := NewSynchronizer(strings.NewReader(""), &out)

	failed, err := sync.Run(root, "docs: update")
	require.NoError(t, err)
	assert.Empty(t, failed)

	assert.Contains(t, out.String(), "Found 1 subdirectories")
	assert.Contains(t, out.String(), "Processing repository: docs")
	assert.Contains(t, out.String(), "Not a git repository, skipping")
}

func TestSynchronizerEmptyDirectory(t *testing.T) {
	var out bytes.Buffer
	sync := NewSynchronizer(strings.NewReader(""), &out)

	failed, err := sync.Run(t.TempDir(), "docs: update")
	require.NoError(t, err)
	assert.Empty(t, failed)
	assert.Contains(t, out.String(), "No subdirectories found.")
}

func TestPusherNoRepositories(t *testing.T) {
	var out bytes.Buffer
	pusher := NewPusher(strings.NewReader(""), &out)

	processed, err := pusher.Run(t.TempDir(), "docs: update")
	require.NoError(t, err)
	assert.Zero(t, processed)
	assert.Contains(t, out.String(), "No git repositories found")
}
