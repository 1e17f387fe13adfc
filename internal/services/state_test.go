package services

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"randomtools/internal/models"
)

func newTestStore(t *testing.T) *stateStore {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("RANDOMTOOLS_CACHE_DIR", "")

	store, err := NewStateStore()
	require.NoError(t, err)
	return store.(*stateStore)
}

func TestStateStoreSavedRoundTrip(t *testing.T) {
	store := newTestStore(t)

	set := models.NewIssueSet("ABC-2", "ABC-1")
	require.NoError(t, store.StoreSaved(set))

	loaded, err := store.LoadSaved()
	require.NoError(t, err)
	assert.Equal(t, []string{"ABC-1", "ABC-2"}, loaded.Sorted())

	// Files stay a flat JSON list of keys.
	data, err := os.ReadFile(filepath.Join(store.cacheDir, savedIssuesFile))
	require.NoError(t, err)
	assert.JSONEq(t, `["ABC-1", "ABC-2"]`, string(data))
}

func TestStateStoreMissingFilesReadEmpty(t *testing.T) {
	store := newTestStore(t)

	saved, err := store.LoadSaved()
	require.NoError(t, err)
	assert.Empty(t, saved)

	cache, err := store.LoadRecentCache()
	require.NoError(t, err)
	assert.Nil(t, cache)

	sections, err := store.LoadSections()
	require.NoError(t, err)
	assert.Empty(t, sections)
}

func TestStateStoreMalformedFile(t *testing.T) {
	store := newTestStore(t)
	path := filepath.Join(store.cacheDir, savedIssuesFile)
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := store.LoadSaved()
	assert.Error(t, err)
}

func TestStateStoreRecentCacheRoundTrip(t *testing.T) {
	store := newTestStore(t)

	cache := &models.RecentCache{
		Updated: time.Date(2025, 8, 20, 9, 0, 0, 0, time.UTC),
		Days:    14,
		Issues:  []models.Issue{{Key: "ABC-1", Summary: "Fix the build"}},
	}
	require.NoError(t, store.StoreRecentCache(cache))

	loaded, err := store.LoadRecentCache()
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, 14, loaded.Days)
	require.Len(t, loaded.Issues, 1)
	assert.Equal(t, "ABC-1", loaded.Issues[0].Key)
}

func TestStateStoreSectionsRoundTrip(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.StoreSections(map[string]string{"ABC-1": "operational:development"}))

	sections, err := store.LoadSections()
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"ABC-1": "operational:development"}, sections)

	// Sections live next to the INI config, not in the cache.
	_, err = os.Stat(filepath.Join(store.configDir, sectionsFile))
	assert.NoError(t, err)
}

func TestStateStoreHistoryPath(t *testing.T) {
	store := newTestStore(t)
	assert.Equal(t, filepath.Join(store.configDir, historyFile), store.HistoryPath())
}
