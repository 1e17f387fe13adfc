package common

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/ini.v1"
)

// Settings is the optional tool-wide configuration, loaded with the
// usual precedence: defaults -> TOML file -> environment.
type Settings struct {
	Logging LoggingConfig `toml:"logging"`
	Cache   CacheConfig   `toml:"cache"`
}

type LoggingConfig struct {
	Level      string `toml:"level"`
	Output     string `toml:"output"`
	MaxSize    int    `toml:"max_size"`
	MaxBackups int    `toml:"max_backups"`
}

type CacheConfig struct {
	// Dir overrides the default ~/.jira/cache location.
	Dir string `toml:"dir"`
}

func DefaultSettings() *Settings {
	return &Settings{
		Logging: LoggingConfig{
			Level:      "warn",
			Output:     "file",
			MaxSize:    10,
			MaxBackups: 3,
		},
		Cache: CacheConfig{
			Dir: JiraCacheDir(),
		},
	}
}

// LoadSettings reads ~/.config/randomtools/settings.toml when present.
// A missing file is not an error; the defaults apply.
func LoadSettings(path string) (*Settings, error) {
	settings := DefaultSettings()

	if path == "" {
		path = SettingsPath()
	}

	data, err := os.ReadFile(path)
	if err == nil {
		if err := toml.Unmarshal(data, settings); err != nil {
			return nil, fmt.Errorf("failed to parse settings file %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read settings file %s: %w", path, err)
	}

	applyEnvOverrides(settings)

	return settings, nil
}

func applyEnvOverrides(settings *Settings) {
	if level := os.Getenv("RANDOMTOOLS_LOG_LEVEL"); level != "" {
		settings.Logging.Level = level
	}
	if output := os.Getenv("RANDOMTOOLS_LOG_OUTPUT"); output != "" {
		settings.Logging.Output = output
	}
	if dir := os.Getenv("RANDOMTOOLS_CACHE_DIR"); dir != "" {
		settings.Cache.Dir = dir
	}
}

// JiraConfig holds the credentials from ~/.jira/config.ini.
type JiraConfig struct {
	Domain      string
	Email       string
	APIToken    string
	DashboardID string
	MonthString string
	WeekString  string
	Timeout     int
}

// BaseURL returns the Atlassian cloud URL for the configured domain.
func (c *JiraConfig) BaseURL() string {
	return fmt.Sprintf("https://%s.atlassian.net", c.Domain)
}

// BrowseURL returns the web URL of an issue.
func (c *JiraConfig) BrowseURL(issueKey string) string {
	return fmt.Sprintf("%s/browse/%s", c.BaseURL(), issueKey)
}

func jiraConfigPaths() []string {
	return []string{
		"/etc/jira/config.ini",
		filepath.Join(JiraConfigDir(), "config.ini"),
	}
}

// LoadJiraConfig reads the [Jira] section from the fixed INI locations.
func LoadJiraConfig() (*JiraConfig, error) {
	paths := jiraConfigPaths()
	file, err := ini.LooseLoad(paths[0], paths[1])
	if err != nil {
		return nil, NewConfigurationError("jira_config_read", err.Error())
	}

	section := file.Section("Jira")
	cfg := &JiraConfig{
		Domain:      section.Key("domain").String(),
		Email:       section.Key("email").String(),
		APIToken:    section.Key("api_token").String(),
		DashboardID: section.Key("dashboard_id").String(),
		MonthString: section.Key("month_string").MustString("month"),
		WeekString:  section.Key("week_string").MustString("week"),
		Timeout:     section.Key("timeout").MustInt(30),
	}

	if cfg.Domain == "" || cfg.Email == "" || cfg.APIToken == "" {
		return nil, NewConfigurationError("jira_config_missing",
			"create ~/.jira/config.ini with section [Jira] containing domain, email, api_token")
	}

	return cfg, nil
}

// GoogleConfig holds the personal calendar credentials from
// ~/.google/config.ini section [Google].
type GoogleConfig struct {
	TokenPath         string
	CredentialsPath   string
	SelectedCalendars map[string]bool
}

// WorkGoogleConfig holds the work calendar setup from the [WorkGoogle]
// section, plus the named calendars from [WorkCalendars].
type WorkGoogleConfig struct {
	TokenPath        string
	CredentialsPath  string
	SelectedCalendar string
	Calendars        map[string]string
}

// CalendarID resolves a calendar by configured name, or returns the
// value unchanged when it is not a known name.
func (c *WorkGoogleConfig) CalendarID(nameOrID string) string {
	if id, ok := c.Calendars[nameOrID]; ok {
		return id
	}
	return nameOrID
}

func googleConfigPaths() []string {
	return []string{
		"/etc/google/config.ini",
		filepath.Join(HomeDir(), ".google", "config.ini"),
	}
}

func loadGoogleINI() (*ini.File, error) {
	paths := googleConfigPaths()
	file, err := ini.LooseLoad(paths[0], paths[1])
	if err != nil {
		return nil, NewConfigurationError("google_config_read", err.Error())
	}
	return file, nil
}

// LoadGoogleConfig reads the [Google] section.
func LoadGoogleConfig() (*GoogleConfig, error) {
	file, err := loadGoogleINI()
	if err != nil {
		return nil, err
	}

	section := file.Section("Google")
	tokenPath := section.Key("token_path").String()
	credentialsPath := section.Key("credentials_path").String()

	if tokenPath == "" || credentialsPath == "" {
		return nil, NewConfigurationError("google_config_missing",
			"create ~/.google/config.ini with section [Google] containing token_path/credentials_path")
	}

	selected := make(map[string]bool)
	for _, name := range section.Key("selected_calendars").Strings(",") {
		selected[name] = true
	}

	return &GoogleConfig{
		TokenPath:         ExpandUser(tokenPath),
		CredentialsPath:   ExpandUser(credentialsPath),
		SelectedCalendars: selected,
	}, nil
}

// LoadWorkGoogleConfig reads the [WorkGoogle] and [WorkCalendars]
// sections used by the jira-calendar tool.
func LoadWorkGoogleConfig() (*WorkGoogleConfig, error) {
	file, err := loadGoogleINI()
	if err != nil {
		return nil, err
	}

	section := file.Section("WorkGoogle")
	tokenPath := section.Key("token_path").String()
	credentialsPath := section.Key("credentials_path").String()

	if tokenPath == "" || credentialsPath == "" {
		return nil, NewConfigurationError("google_config_missing",
			"create ~/.google/config.ini with section [WorkGoogle] containing token_path/credentials_path")
	}

	calendars := make(map[string]string)
	for _, key := range file.Section("WorkCalendars").Keys() {
		calendars[key.Name()] = key.String()
	}

	return &WorkGoogleConfig{
		TokenPath:        ExpandUser(tokenPath),
		CredentialsPath:  ExpandUser(credentialsPath),
		SelectedCalendar: section.Key("selected_calendar").MustString("primary"),
		Calendars:        calendars,
	}, nil
}

// TasksConfig holds the journal/observation API credentials from
// ~/.tasks-collector.ini section [Tasks].
type TasksConfig struct {
	URL      string
	User     string
	Password string
}

func tasksConfigPaths() []string {
	return []string{
		"/etc/tasks-collector.ini",
		filepath.Join(HomeDir(), ".tasks-collector.ini"),
	}
}

// LoadTasksConfig reads the [Tasks] section.
func LoadTasksConfig() (*TasksConfig, error) {
	paths := tasksConfigPaths()
	file, err := ini.LooseLoad(paths[0], paths[1])
	if err != nil {
		return nil, NewConfigurationError("tasks_config_read", err.Error())
	}

	section := file.Section("Tasks")
	cfg := &TasksConfig{
		URL:      section.Key("url").String(),
		User:     section.Key("user").String(),
		Password: section.Key("password").String(),
	}

	if cfg.URL == "" || cfg.User == "" || cfg.Password == "" {
		return nil, NewConfigurationError("tasks_config_missing",
			"create ~/.tasks-collector.ini with section [Tasks] containing url/user/password")
	}

	return cfg, nil
}
