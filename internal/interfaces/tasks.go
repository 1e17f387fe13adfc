package interfaces

import "randomtools/internal/models"

// TasksClient talks to the observation API of the tasks collector.
type TasksClient interface {
	// CreateEntry posts a raw payload and returns the stored entry as
	// returned by the API. Editor-composed entries carry section keys
	// beyond the Observation fields, so the payload stays untyped.
	CreateEntry(payload map[string]any) (map[string]any, error)

	// Observations lists all entries, following pagination. When year
	// is non-empty only entries published in that year are returned.
	Observations(year string) ([]models.Observation, error)
}
