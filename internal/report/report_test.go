package report

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"randomtools/internal/models"
)

func sampleIssues() map[string]*models.IssueWorklogs {
	return map[string]*models.IssueWorklogs{
		"ABC-1": {
			Summary: "Fix login",
			Worklogs: []models.Worklog{
				{Issue: "ABC-1", TimeSpentSeconds: 3600, Comment: "investigated"},
				{Issue: "ABC-1", TimeSpentSeconds: 1800},
			},
		},
		"ABC-2": {
			Summary: "Code review",
			Worklogs: []models.Worklog{
				{Issue: "ABC-2", TimeSpentSeconds: 5400, Comment: "reviewed PRs"},
			},
		},
		"XYZ-9": {
			Summary: "Planning",
			Worklogs: []models.Worklog{
				{Issue: "XYZ-9", TimeSpentSeconds: 7200},
			},
		},
	}
}

func reportPeriod() (time.Time, time.Time) {
	from := time.Date(2025, time.August, 18, 0, 0, 0, 0, time.Local)
	return from, from.AddDate(0, 0, 6)
}

func TestGenerateHeadingAndTotal(t *testing.T) {
	from, to := reportPeriod()
	out := Generate(from, to, sampleIssues(), map[string]string{}, false, 1)

	assert.Contains(t, out, "# Report from 2025-08-18 to 2025-08-24")
	assert.Contains(t, out, "Total: 5h")
}

func TestGenerateUnassignedGoesToOther(t *testing.T) {
	from, to := reportPeriod()
	out := Generate(from, to, sampleIssues(), map[string]string{}, false, 1)

	// All 5h of work is uncategorized, so Other carries 100%.
	assert.Contains(t, out, "## Other (5h, 100%)")
	assert.Contains(t, out, "- ABC-1: 1h 30m - Fix login")
	assert.Contains(t, out, "  - investigated")
	assert.Contains(t, out, "- XYZ-9: 2h - Planning")
}

func TestGenerateSectionsAndPercentages(t *testing.T) {
	from, to := reportPeriod()
	sections := map[string]string{
		"ABC-1": "development",
		"ABC-2": "development",
		"XYZ-9": "meetings",
	}

	out := Generate(from, to, sampleIssues(), sections, false, 1)

	assert.Contains(t, out, "## development (3h, 60%)")
	assert.Contains(t, out, "## meetings (2h, 40%)")
}

func TestGenerateSkipWorklogs(t *testing.T) {
	from, to := reportPeriod()
	out := Generate(from, to, sampleIssues(), map[string]string{}, true, 1)

	assert.NotContains(t, out, "investigated")
	assert.NotContains(t, out, "reviewed PRs")
	assert.Contains(t, out, "- ABC-2: 1h 30m - Code review")
}

func TestGenerateLevelTruncation(t *testing.T) {
	from, to := reportPeriod()
	sections := map[string]string{
		"ABC-1": "operational:development",
		"ABC-2": "operational:reviews",
		"XYZ-9": "operational:development",
	}

	// Level 1 folds both leaf sections into "operational".
	out := Generate(from, to, sampleIssues(), sections, false, 1)
	assert.Contains(t, out, "## operational (5h, 100%)")
	assert.NotContains(t, out, "development")

	// Level 2 keeps the nested headings.
	out = Generate(from, to, sampleIssues(), sections, false, 2)
	assert.Contains(t, out, "## operational (5h, 100%)")
	assert.Contains(t, out, "### operational:development (3h 30m, 70%)")
	assert.Contains(t, out, "### operational:reviews (1h 30m, 30%)")
}

func TestGenerateCollapsesSingleChildChain(t *testing.T) {
	from, to := reportPeriod()
	issues := map[string]*models.IssueWorklogs{
		"ABC-1": {
			Summary:  "Consulting",
			Worklogs: []models.Worklog{{Issue: "ABC-1", TimeSpentSeconds: 3600}},
		},
	}
	sections := map[string]string{"ABC-1": "operational:commercial:consulting"}

	out := Generate(from, to, issues, sections, false, 3)

	// The chain has no issues at intermediate nodes, so it collapses
	// into a single heading.
	assert.Contains(t, out, "## operational:commercial:consulting (1h, 100%)")
	assert.NotContains(t, out, "### ")
}

func TestGenerateZeroGrandTotal(t *testing.T) {
	from, to := reportPeriod()
	issues := map[string]*models.IssueWorklogs{
		"ABC-1": {Summary: "Nothing logged"},
	}

	out := Generate(from, to, issues, map[string]string{}, false, 1)
	assert.Contains(t, out, "Total: 0m")
	assert.Contains(t, out, "## Other (0m, 0%)")
}

func TestAssignSections(t *testing.T) {
	issues := sampleIssues()
	sections := map[string]string{"OLD-1": "meetings"}

	// ABC-1 picks "meetings" by number, ABC-2 writes a new name,
	// XYZ-9 is skipped with an empty answer.
	in := strings.NewReader("1\ndevelopment\n\n")
	var out strings.Builder

	result, err := AssignSections(issues, sections, in, &out)
	require.NoError(t, err)

	assert.Equal(t, "meetings", result["ABC-1"])
	assert.Equal(t, "development", result["ABC-2"])
	_, assigned := result["XYZ-9"]
	assert.False(t, assigned)

	assert.Contains(t, out.String(), "ABC-1: Fix login")
	assert.Contains(t, out.String(), "No section provided, skipping.")
}

func TestAssignSectionsKeepsExisting(t *testing.T) {
	issues := sampleIssues()
	sections := map[string]string{
		"ABC-1": "development",
		"ABC-2": "development",
		"XYZ-9": "meetings",
	}

	// Nothing to assign, so no input is consumed.
	result, err := AssignSections(issues, sections, strings.NewReader(""), &strings.Builder{})
	require.NoError(t, err)
	assert.Equal(t, sections, result)
}
