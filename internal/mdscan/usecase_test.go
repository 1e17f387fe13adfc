package mdscan

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"randomtools/internal/models"
)

func writeScenario(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReadScenarioHeadingCases(t *testing.T) {
	path := writeScenario(t, "login.md", `# Login

## Cases

## 1. Valid credentials
Steps here.

## 2. Wrong password
`)

	scenario, err := ReadScenario(path)
	require.NoError(t, err)
	require.NotNil(t, scenario)
	require.Len(t, scenario.Cases, 2)

	assert.Equal(t, "Valid credentials", scenario.Cases[0].Name)
	assert.Equal(t, "1", scenario.Cases[0].OriginalEnumeration)
	assert.False(t, scenario.Cases[0].Simple)
	assert.Equal(t, "Wrong password", scenario.Cases[1].Name)
}

func TestReadScenarioVersionPersists(t *testing.T) {
	path := writeScenario(t, "versions.md", `# (v1.2)

## 1. First
## 2. Second

# (v2.0)

## 3. Third
`)

	scenario, err := ReadScenario(path)
	require.NoError(t, err)
	require.Len(t, scenario.Cases, 3)

	assert.Equal(t, "1.2", scenario.Cases[0].Version)
	assert.Equal(t, "1.2", scenario.Cases[1].Version)
	assert.Equal(t, "2.0", scenario.Cases[2].Version)
}

func TestReadScenarioHiddenCases(t *testing.T) {
	path := writeScenario(t, "hidden.md", `## 1. .internal check
## 2. Visible case
`)

	scenario, err := ReadScenario(path)
	require.NoError(t, err)
	require.Len(t, scenario.Cases, 1)
	assert.Equal(t, "Visible case", scenario.Cases[0].Name)
}

func TestReadScenarioSimpleCaseGating(t *testing.T) {
	path := writeScenario(t, "simple.md", `1. Counted at the top

# Notes

1. Not a case under a regular heading

## Cases

1. Counted again
`)

	scenario, err := ReadScenario(path)
	require.NoError(t, err)
	require.Len(t, scenario.Cases, 2)

	assert.Equal(t, "Counted at the top", scenario.Cases[0].Name)
	assert.True(t, scenario.Cases[0].Simple)
	assert.Equal(t, "Counted again", scenario.Cases[1].Name)
}

func TestReadScenarioNoCases(t *testing.T) {
	path := writeScenario(t, "prose.md", "# Just prose\n\nNothing enumerated.\n")

	scenario, err := ReadScenario(path)
	require.NoError(t, err)
	assert.Nil(t, scenario)
}

func TestReadScenariosDirectory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.md"), []byte("## 1. From b\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.md"), []byte("## 1. From a\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "empty.md"), []byte("prose only\n"), 0o644))

	scenarios, err := ReadScenarios(dir)
	require.NoError(t, err)
	require.Len(t, scenarios, 2)

	assert.Equal(t, filepath.Join(dir, "a.md"), scenarios[0].Path)
	assert.Equal(t, filepath.Join(dir, "b.md"), scenarios[1].Path)
}

func TestNameFuncs(t *testing.T) {
	s := &models.Scenario{Path: "/docs/area/login.md"}

	assert.Equal(t, "login.md", BaseName(s))
	assert.Equal(t, "[[login]]", WikiName(s))
	assert.Equal(t, filepath.Join("area", "login.md"), RelativeName("/docs")(s))
	assert.Equal(t, "login.md:", WithColon(BaseName)(s))
	assert.Equal(t, "## login.md\n", WithHeader(BaseName, 2)(s))
	assert.Equal(t, "# login.md\n:", WithColon(WithHeader(BaseName, 1))(s))
}

func TestPrintScenarioRenumbers(t *testing.T) {
	s := &models.Scenario{
		Path: "/docs/login.md",
		Cases: []models.Case{
			{Name: "First", OriginalEnumeration: "4"},
			{Name: "Second", OriginalEnumeration: "7", Version: "1.2"},
		},
	}

	var buf bytes.Buffer
	PrintScenario(&buf, s, BaseName)

	assert.Equal(t, "login.md\n1. First\n2. Second (v1.2)\n\n", buf.String())
}
