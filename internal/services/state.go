package services

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/ternarybob/arbor"

	"randomtools/internal/common"
	"randomtools/internal/interfaces"
	"randomtools/internal/models"
)

const (
	savedIssuesFile    = "saved_issues.json"
	excludedIssuesFile = "excluded_issues.json"
	recentIssuesFile   = "recent_issues.json"
	sectionsFile       = "report_sections.json"
	historyFile        = "shell_history"
)

type stateStore struct {
	cacheDir  string
	configDir string
	logger    arbor.ILogger
}

// NewStateStore persists shell and report state as flat JSON files
// under the Jira cache directory. Files are created on first store and
// missing or corrupt files read back as empty state.
func NewStateStore() (interfaces.StateStore, error) {
	settings, err := common.LoadSettings("")
	if err != nil {
		return nil, common.WrapError(err, common.ErrorTypeConfiguration, "settings_load", "failed to load settings")
	}
	cacheDir := settings.Cache.Dir
	if cacheDir == "" {
		cacheDir = common.JiraCacheDir()
	}
	if err := common.EnsureDir(cacheDir); err != nil {
		return nil, common.WrapError(err, common.ErrorTypeStorage, "cache_dir_create", "failed to create cache directory")
	}
	configDir := common.JiraConfigDir()

	return &stateStore{
		cacheDir:  cacheDir,
		configDir: configDir,
		logger:    common.GetLogger(),
	}, nil
}

func (s *stateStore) LoadSaved() (models.IssueSet, error) {
	set := models.NewIssueSet()
	err := s.readJSON(filepath.Join(s.cacheDir, savedIssuesFile), &set)
	return set, err
}

func (s *stateStore) StoreSaved(set models.IssueSet) error {
	return s.writeJSON(filepath.Join(s.cacheDir, savedIssuesFile), set)
}

func (s *stateStore) LoadExcluded() (models.IssueSet, error) {
	set := models.NewIssueSet()
	err := s.readJSON(filepath.Join(s.cacheDir, excludedIssuesFile), &set)
	return set, err
}

func (s *stateStore) StoreExcluded(set models.IssueSet) error {
	return s.writeJSON(filepath.Join(s.cacheDir, excludedIssuesFile), set)
}

func (s *stateStore) LoadRecentCache() (*models.RecentCache, error) {
	var cache models.RecentCache
	if err := s.readJSON(filepath.Join(s.cacheDir, recentIssuesFile), &cache); err != nil {
		return nil, err
	}
	if cache.Issues == nil {
		return nil, nil
	}
	return &cache, nil
}

func (s *stateStore) StoreRecentCache(cache *models.RecentCache) error {
	return s.writeJSON(filepath.Join(s.cacheDir, recentIssuesFile), cache)
}

func (s *stateStore) LoadSections() (map[string]string, error) {
	sections := make(map[string]string)
	if err := s.readJSON(filepath.Join(s.configDir, sectionsFile), &sections); err != nil {
		return nil, err
	}
	return sections, nil
}

func (s *stateStore) StoreSections(sections map[string]string) error {
	return s.writeJSON(filepath.Join(s.configDir, sectionsFile), sections)
}

func (s *stateStore) HistoryPath() string {
	return filepath.Join(s.configDir, historyFile)
}

// readJSON treats a missing or unreadable file as empty state; only
// malformed JSON in an existing file is reported.
func (s *stateStore) readJSON(path string, target interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Warn().Err(err).Str("path", path).Msg("Failed to read state file")
		}
		return nil
	}
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, target); err != nil {
		return common.WrapError(err, common.ErrorTypeStorage, "state_parse_failed",
			"failed to parse state file "+filepath.Base(path))
	}
	return nil
}

func (s *stateStore) writeJSON(path string, value interface{}) error {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return common.WrapError(err, common.ErrorTypeStorage, "state_encode_failed", "failed to encode state")
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return common.WrapError(err, common.ErrorTypeStorage, "state_write_failed",
			"failed to write state file "+filepath.Base(path))
	}
	return nil
}
