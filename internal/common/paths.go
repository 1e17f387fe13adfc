package common

import (
	"os"
	"path/filepath"
)

// HomeDir returns the user's home directory, falling back to the
// current directory when it cannot be resolved.
func HomeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}

// JiraCacheDir is where the worklog shell keeps its flat JSON state.
func JiraCacheDir() string {
	return filepath.Join(HomeDir(), ".jira", "cache")
}

// JiraConfigDir holds the Jira INI config and the report section map.
func JiraConfigDir() string {
	return filepath.Join(HomeDir(), ".jira")
}

// SnippetsDir holds the copier YAML configs (~/.info).
func SnippetsDir() string {
	return filepath.Join(HomeDir(), ".info")
}

// SettingsPath is the optional TOML settings file shared by all tools.
func SettingsPath() string {
	return filepath.Join(HomeDir(), ".config", "randomtools", "settings.toml")
}

// ExpandUser replaces a leading ~ with the home directory.
func ExpandUser(path string) string {
	if path == "~" {
		return HomeDir()
	}
	if len(path) > 1 && path[0] == '~' && (path[1] == '/' || path[1] == filepath.Separator) {
		return filepath.Join(HomeDir(), path[2:])
	}
	return path
}

// EnsureDir creates a directory (and parents) if it does not exist.
func EnsureDir(dir string) error {
	return os.MkdirAll(dir, 0755)
}
