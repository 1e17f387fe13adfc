package csvkit

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapToCSV(t *testing.T) {
	mapPath := writeFile(t, "map.json", `{"alice": "a-1", "bob": "b-2"}`)
	outPath := filepath.Join(t.TempDir(), "out.csv")

	require.NoError(t, MapToCSV(mapPath, outPath, "", ""))

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Equal(t, "alice,a-1\nbob,b-2\n", string(data))
}

func TestMapToCSVTitleRow(t *testing.T) {
	mapPath := writeFile(t, "map.json", `{"alice": "a-1"}`)
	outPath := filepath.Join(t.TempDir(), "out.csv")

	require.NoError(t, MapToCSV(mapPath, outPath, "Name", "ID"))

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Equal(t, "Name,ID\nalice,a-1\n", string(data))
}

func TestMapToCSVColumn(t *testing.T) {
	inPath := writeFile(t, "in.csv", "first,last,mail\nJohn,Doe,john@example.com\nJane,Roe,jane@example.com\n")
	mapPath := writeFile(t, "map.json", `{"john@example.com": "LINK-1"}`)
	outPath := filepath.Join(t.TempDir(), "out.csv")

	var messages strings.Builder
	require.NoError(t, MapToCSVColumn(inPath, mapPath, outPath, "Link", 2, &messages))

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "first,last,mail,Link", lines[0])
	assert.Equal(t, "John,Doe,john@example.com,LINK-1", lines[1])
	assert.Equal(t, "Jane,Roe,jane@example.com,", lines[2])

	assert.Contains(t, messages.String(), "Not found: jane@example.com")
}

func TestStripSuffix(t *testing.T) {
	assert.Equal(t, "report", stripSuffix("report.pdf"))
	assert.Equal(t, "archive.tar", stripSuffix("archive.tar.gz"))
	assert.Equal(t, "noext", stripSuffix("noext"))
}
