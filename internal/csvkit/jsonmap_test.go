package csvkit

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReadOrderedMapPreservesOrder(t *testing.T) {
	path := writeFile(t, "map.json", `{"zebra": "1", "apple": "2", "mango": "3"}`)

	entries, err := ReadOrderedMap(path)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	assert.Equal(t, MapEntry{Key: "zebra", Value: "1"}, entries[0])
	assert.Equal(t, MapEntry{Key: "apple", Value: "2"}, entries[1])
	assert.Equal(t, MapEntry{Key: "mango", Value: "3"}, entries[2])
}

func TestReadOrderedMapValueTypes(t *testing.T) {
	path := writeFile(t, "map.json", `{"a": 42, "b": null, "c": "text"}`)

	entries, err := ReadOrderedMap(path)
	require.NoError(t, err)

	assert.Equal(t, "42", entries[0].Value)
	assert.Equal(t, "", entries[1].Value)
	assert.Equal(t, "text", entries[2].Value)
}

func TestReadMap(t *testing.T) {
	path := writeFile(t, "map.json", `{"key": "value"}`)

	m, err := ReadMap(path)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"key": "value"}, m)
}

func TestReadMapMissingFile(t *testing.T) {
	_, err := ReadMap(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
