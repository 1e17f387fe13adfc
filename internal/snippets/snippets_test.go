package snippets

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSnippets(t *testing.T, name, content string) {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	dir := filepath.Join(home, ".info")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, name+".yaml"), []byte(content), 0o644))
}

func TestLoadPreservesSectionOrder(t *testing.T) {
	writeSnippets(t, "work", `
zebra: last alphabetically, first in the file
greeting:
  type: text
  content: "Hello, World!"
current_dir:
  type: program
  command: "pwd"
`)

	config, err := Load("work")
	require.NoError(t, err)
	require.Len(t, config.Sections, 3)

	assert.Equal(t, "zebra", config.Sections[0].Name)
	assert.Equal(t, "greeting", config.Sections[1].Name)
	assert.Equal(t, "current_dir", config.Sections[2].Name)
}

func TestLoadScalarSectionDefaultsToText(t *testing.T) {
	writeSnippets(t, "work", "greeting: hi there\n")

	config, err := Load("work")
	require.NoError(t, err)

	section := config.Sections[0]
	assert.Equal(t, "text", section.Type)
	assert.Equal(t, "hi there", section.Content)
}

func TestLoadMissingFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	_, err := Load("nonexistent")
	assert.Error(t, err)
}

func TestFind(t *testing.T) {
	config := &Config{Sections: []Section{
		{Name: "greeting"},
		{Name: "green"},
		{Name: "farewell"},
	}}

	exact, _ := config.Find("greeting")
	require.NotNil(t, exact)
	assert.Equal(t, "greeting", exact.Name)

	unique, _ := config.Find("f")
	require.NotNil(t, unique)
	assert.Equal(t, "farewell", unique.Name)

	ambiguous, matches := config.Find("gre")
	assert.Nil(t, ambiguous)
	require.Len(t, matches, 2)
	assert.Equal(t, "green", matches[0].Name)
	assert.Equal(t, "greeting", matches[1].Name)

	none, matches := config.Find("x")
	assert.Nil(t, none)
	assert.Empty(t, matches)
}

func TestResolveText(t *testing.T) {
	section := Section{Name: "s", Type: "text", Content: "hello"}
	content, err := section.Resolve()
	require.NoError(t, err)
	assert.Equal(t, "hello", content)

	empty := Section{Name: "s", Type: "text"}
	_, err = empty.Resolve()
	assert.Error(t, err)
}

func TestResolveFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	dir := filepath.Join(home, ".info")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "note.txt"), []byte("file content"), 0o644))

	// Relative paths resolve under ~/.info.
	section := Section{Name: "s", Type: "file", File: "note.txt"}
	content, err := section.Resolve()
	require.NoError(t, err)
	assert.Equal(t, "file content", content)
}

func TestResolveProgram(t *testing.T) {
	section := Section{Name: "s", Type: "program", Command: "echo hello"}
	content, err := section.Resolve()
	require.NoError(t, err)
	assert.Equal(t, "hello\n", content)
}

func TestResolveUnknownType(t *testing.T) {
	section := Section{Name: "s", Type: "widget"}
	_, err := section.Resolve()
	assert.Error(t, err)
}
