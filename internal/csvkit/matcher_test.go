package csvkit

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func matcherFixtures(t *testing.T) (csvPath, mapPath string) {
	t.Helper()
	dir := t.TempDir()

	csvPath = filepath.Join(dir, "people.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte(
		"Name,Email\n"+
			"john,john@example.com\n"+
			"jane,jane@example.com\n"), 0o644))

	mapPath = filepath.Join(dir, "guids.json")
	require.NoError(t, os.WriteFile(mapPath, []byte(`{
		"john-report.pdf": "aaaa.pdf",
		"default.pdf": "dddd.pdf"
	}`), 0o644))
	return csvPath, mapPath
}

func TestMatcherNumberDefaultAnswers(t *testing.T) {
	csvPath, mapPath := matcherFixtures(t)

	// First row picks candidate 0, second takes the default file.
	in := strings.NewReader("0\nd\n")
	var out bytes.Buffer
	matcher := NewMatcher(MatcherOptions{
		Column:  0,
		Default: "default.pdf",
		Pattern: "https://files.example.com/%s",
	}, in, &out)

	links, err := matcher.Run(csvPath, mapPath)
	require.NoError(t, err)

	assert.Equal(t, "https://files.example.com/aaaa.pdf", links["john"])
	assert.Equal(t, "https://files.example.com/dddd.pdf", links["jane"])
	assert.Contains(t, out.String(), "john-report (score")
}

func TestMatcherSkipAndUnknown(t *testing.T) {
	csvPath, mapPath := matcherFixtures(t)

	in := strings.NewReader("s\nnope.pdf\n")
	var out bytes.Buffer
	matcher := NewMatcher(MatcherOptions{Column: 0, Pattern: "%s"}, in, &out)

	links, err := matcher.Run(csvPath, mapPath)
	require.NoError(t, err)

	assert.Equal(t, "", links["john"])
	assert.Equal(t, "", links["jane"])
	assert.Contains(t, out.String(), "Unknown file: nope.pdf, skipping")
}

func TestMatcherPersistsAndResumes(t *testing.T) {
	csvPath, mapPath := matcherFixtures(t)
	linkMapPath := filepath.Join(t.TempDir(), "links.json")
	require.NoError(t, os.WriteFile(linkMapPath,
		[]byte(`{"john": "kept"}`), 0o644))

	// Only jane is prompted; john's entry already exists.
	in := strings.NewReader("john-report.pdf\n")
	var out bytes.Buffer
	matcher := NewMatcher(MatcherOptions{
		Column:  0,
		Pattern: "%s",
		MapPath: linkMapPath,
	}, in, &out)

	links, err := matcher.Run(csvPath, mapPath)
	require.NoError(t, err)

	assert.Equal(t, "kept", links["john"])
	assert.Equal(t, "aaaa.pdf", links["jane"])
	assert.NotContains(t, out.String(), "john,john@example.com")

	data, err := os.ReadFile(linkMapPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "aaaa.pdf")
}

func TestMatcherStopsOnEOF(t *testing.T) {
	csvPath, mapPath := matcherFixtures(t)

	matcher := NewMatcher(MatcherOptions{Column: 0}, strings.NewReader(""), &bytes.Buffer{})
	links, err := matcher.Run(csvPath, mapPath)
	require.NoError(t, err)
	assert.Empty(t, links)
}

func TestCopiesFromCSV(t *testing.T) {
	dir := t.TempDir()
	template := filepath.Join(dir, "letter.pdf")
	require.NoError(t, os.WriteFile(template, []byte("pdf"), 0o644))

	csvPath := filepath.Join(dir, "names.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte("Name;Email\njohn;x\njane;y\n"), 0o644))

	var out bytes.Buffer
	require.NoError(t, CopiesFromCSV(csvPath, template, 0, true, &out))

	for _, name := range []string{"john.pdf", "jane.pdf"} {
		data, err := os.ReadFile(filepath.Join(dir, name))
		require.NoError(t, err)
		assert.Equal(t, "pdf", string(data))
	}
	assert.Equal(t, 2, strings.Count(out.String(), "Copying "))
}
