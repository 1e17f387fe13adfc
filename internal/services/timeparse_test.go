package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWorklogTime(t *testing.T) {
	tests := []struct {
		input     string
		seconds   int
		formatted string
	}{
		{"2h", 7200, "2h"},
		{"1.5h", 5400, "1h 30m"},
		{"1.5", 5400, "1h 30m"},
		{"0.5h", 1800, "30m"},
		{"3h 10m", 11400, "3h 10m"},
		{"3h10", 11400, "3h 10m"},
		{"3:10", 11400, "3h 10m"},
		{"30m", 1800, "30m"},
		{"45", 2700, "45m"},
		{"  2h  ", 7200, "2h"},
	}

	for _, tt := range tests {
		seconds, formatted, ok := ParseWorklogTime(tt.input)
		require.True(t, ok, "input %q should parse", tt.input)
		assert.Equal(t, tt.seconds, seconds, "input %q", tt.input)
		assert.Equal(t, tt.formatted, formatted, "input %q", tt.input)
	}
}

func TestParseWorklogTimeInvalid(t *testing.T) {
	for _, input := range []string{"", "abc", "3:75", "h", "2x"} {
		_, _, ok := ParseWorklogTime(input)
		assert.False(t, ok, "input %q should not parse", input)
	}
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "2h", FormatDuration(7200))
	assert.Equal(t, "1h 30m", FormatDuration(5400))
	assert.Equal(t, "45m", FormatDuration(2700))
	assert.Equal(t, "0m", FormatDuration(0))
}

func TestParseMeetingDuration(t *testing.T) {
	tests := []struct {
		input   string
		seconds int
	}{
		{"1h", 3600},
		{"1.5h", 5400},
		{"30m", 1800},
		{"1h30m", 5400},
		{"2", 7200},
	}

	for _, tt := range tests {
		seconds, err := ParseMeetingDuration(tt.input)
		require.NoError(t, err, "input %q", tt.input)
		assert.Equal(t, tt.seconds, seconds, "input %q", tt.input)
	}

	_, err := ParseMeetingDuration("later")
	assert.EqualError(t, err, "invalid time format: later")
}
