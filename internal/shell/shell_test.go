package shell

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueTimeRE(t *testing.T) {
	cases := []struct {
		line        string
		issue       string
		time        string
		description string
	}{
		{"ABC-123 2h", "ABC-123", "2h", ""},
		{"ABC-123 3h 10m fix login bug", "ABC-123", "3h 10m", "fix login bug"},
		{"abc-123 1.5h", "abc-123", "1.5h", ""},
		{"XYZ-9 3:10 reviewed the rollout plan", "XYZ-9", "3:10", "reviewed the rollout plan"},
	}

	for _, tc := range cases {
		match := issueTimeRE.FindStringSubmatch(tc.line)
		require.NotNil(t, match, tc.line)
		assert.Equal(t, tc.issue, match[1], tc.line)
		assert.Equal(t, tc.time, match[2], tc.line)
		assert.Equal(t, tc.description, match[3], tc.line)
	}
}

func TestIssueTimeRERejects(t *testing.T) {
	for _, line := range []string{
		"just words",
		"ABC-123",
		"123-ABC 2h",
		"help",
	} {
		assert.Nil(t, issueTimeRE.FindStringSubmatch(line), line)
	}
}
