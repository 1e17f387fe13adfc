package tasks

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeEntry(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "entry.md")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestParseEntry(t *testing.T) {
	path := writeEntry(t, `> Date: 2025-08-20
> Thread: big-picture
> Type: observation

# Situation (What happened?)

The deploy failed twice.

# Interpretation (How you saw it, what you felt?)

Frustrating but
recoverable.

# Approach (How should you approach it in the future?)

Stage first.
`)

	payload, err := parseEntry(path, observationTitleRE)
	require.NoError(t, err)

	assert.Equal(t, "2025-08-20", payload["pub_date"])
	assert.Equal(t, "big-picture", payload["thread"])
	assert.Equal(t, "observation", payload["type"])
	assert.Equal(t, "The deploy failed twice.", payload["situation"])
	assert.Equal(t, "Frustrating but\nrecoverable.", payload["interpretation"])
	assert.Equal(t, "Stage first.", payload["approach"])
}

func TestParseEntryUnfilledSectionsStayNull(t *testing.T) {
	path := writeEntry(t, "> Date: 2025-08-20\n> Thread: Daily\n\nfree text\n")

	payload, err := parseEntry(path, observationTitleRE)
	require.NoError(t, err)

	assert.Nil(t, payload["situation"])
	assert.Nil(t, payload["interpretation"])
	assert.Nil(t, payload["type"])
	assert.Equal(t, "Daily", payload["thread"])
}

func TestParseEntryJournalTitlesOnly(t *testing.T) {
	path := writeEntry(t, `> Date: 2025-08-20

# Good (What did you do well today?)

Shipped the fix.

# Situation (ignored by the journal matcher)

Should land in Good.
`)

	payload, err := parseEntry(path, journalTitleRE)
	require.NoError(t, err)

	good := payload["good"].(string)
	assert.Contains(t, good, "Shipped the fix.")
	assert.Contains(t, good, "Should land in Good.")
	assert.Nil(t, payload["situation"])
}

func TestObservationTemplate(t *testing.T) {
	template := ObservationTemplate("2025-08-20", "big-picture", "observation")

	assert.Contains(t, template, "> Date: 2025-08-20\n")
	assert.Contains(t, template, "> Thread: big-picture\n")
	assert.Contains(t, template, "> Type: observation\n")
	assert.Contains(t, template, "# Situation (What happened?)")
}

func TestTemplateParseRoundTrip(t *testing.T) {
	path := writeEntry(t, ObservationTemplate("2025-08-20", "big-picture", "observation"))

	payload, err := parseEntry(path, observationTitleRE)
	require.NoError(t, err)

	assert.Equal(t, "2025-08-20", payload["pub_date"])
	assert.Equal(t, "", payload["situation"])
	assert.Equal(t, "", payload["approach"])
}

func TestRenderObservation(t *testing.T) {
	rendered := RenderObservation(map[string]any{
		"pub_date":  "2025-08-20",
		"thread":    "big-picture",
		"type":      "observation",
		"situation": "It happened.",
		// interpretation left nil on purpose
		"approach": 42,
	})

	assert.Contains(t, rendered, "> Date: 2025-08-20\n")
	assert.Contains(t, rendered, "It happened.")
	assert.Contains(t, rendered, "42")
}

func TestJournalTemplateCheckboxes(t *testing.T) {
	template := JournalTemplate("2025-08-20", "Daily")

	assert.Contains(t, template, "- [ ] Dreamstate\n")
	assert.Contains(t, template, "- [ ] Current plan in-sync\n")
	assert.Contains(t, template, "- [ ] Next plan in-sync\n")
}

func TestSituationSlug(t *testing.T) {
	assert.Equal(t, "short-text", situationSlug("Short text"))

	long := situationSlug("a very long situation description that keeps going and going")
	assert.LessOrEqual(t, len(long), 32)
	assert.False(t, len(long) > 0 && long[len(long)-1] == '-')
	assert.Equal(t, "a-very-long-situation", long)
}
