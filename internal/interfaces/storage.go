package interfaces

import "randomtools/internal/models"

// StateStore persists the worklog shell's flat-JSON state. Files are
// read at start and rewritten wholesale; a missing or corrupt file
// behaves like an empty one.
type StateStore interface {
	LoadSaved() (models.IssueSet, error)
	StoreSaved(models.IssueSet) error

	LoadExcluded() (models.IssueSet, error)
	StoreExcluded(models.IssueSet) error

	LoadRecentCache() (*models.RecentCache, error)
	StoreRecentCache(*models.RecentCache) error

	// LoadSections returns the issue-key to report-section map.
	LoadSections() (map[string]string, error)
	StoreSections(map[string]string) error

	// HistoryPath is the shell's readline history file.
	HistoryPath() string
}
