package interfaces

import (
	"time"

	"randomtools/internal/models"
)

// JiraClient is the slice of the Jira Cloud REST API the tools use.
// Implementations keep pagination internal: callers always receive the
// complete result set.
type JiraClient interface {
	// SearchIssues runs a JQL query against /rest/api/3/search/jql,
	// following nextPageToken pages.
	SearchIssues(jql string, fields []string) ([]models.Issue, error)

	// GetIssueSummary fetches the summary of one issue.
	GetIssueSummary(issueKey string) (string, error)

	// IssueDetails fetches summary/description for the given keys in a
	// single `key in (...)` search.
	IssueDetails(issueKeys []string) (map[string]models.Issue, error)

	// CreateTask creates a Task issue and returns its key.
	CreateTask(projectKey, summary string, descriptionParagraphs []string) (string, error)

	// IssueWorklogs returns the current user's worklogs on an issue
	// within the date range, following startAt pages.
	IssueWorklogs(issueKey string, from, to time.Time) ([]models.Worklog, error)

	// AddWorklog logs time against an issue.
	AddWorklog(issueKey string, started time.Time, seconds int, comment string) error

	// Dashboards lists the dashboards visible to the user.
	Dashboards() ([]models.Dashboard, error)

	// DashboardGadgets lists the gadgets of one dashboard.
	DashboardGadgets(dashboardID string) ([]models.Gadget, error)

	// GadgetPropertyKeys lists the property keys of a gadget.
	GadgetPropertyKeys(dashboardID string, gadgetID int) ([]string, error)

	// GadgetConfig fetches the gadgetConfig property value.
	GadgetConfig(dashboardID string, gadgetID int) (models.GadgetConfig, error)

	// UpdateGadgetConfig overwrites the gadgetConfig property value.
	UpdateGadgetConfig(dashboardID string, gadgetID int, config models.GadgetConfig) error
}

// WorklogService collects the current user's worklogs over date
// ranges, combining issue search with per-issue worklog pages.
type WorklogService interface {
	// ForPeriod returns all of the user's worklogs between from and to
	// inclusive, annotated with issue key and summary.
	ForPeriod(from, to time.Time) ([]models.Worklog, error)

	// Daily returns the worklogs of a single day.
	Daily(date time.Time) ([]models.Worklog, error)

	// Weekly returns the worklogs of the week starting at weekStart.
	Weekly(weekStart time.Time) ([]models.Worklog, error)

	// RecentIssues returns issues the user logged work on in the last
	// N days, with descriptions, for the recent-issues cache.
	RecentIssues(days int) ([]models.Issue, error)
}
