package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWorklogSearchJQL(t *testing.T) {
	from := time.Date(2025, 8, 18, 0, 0, 0, 0, time.Local)
	to := time.Date(2025, 8, 24, 0, 0, 0, 0, time.Local)

	assert.Equal(t,
		"worklogAuthor = currentUser() AND worklogDate >= '2025-08-18' AND worklogDate <= '2025-08-24'",
		worklogSearchJQL(from, to))
}
