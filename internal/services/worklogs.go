package services

import (
	"fmt"
	"time"

	"randomtools/internal/interfaces"
	"randomtools/internal/models"
)

type worklogService struct {
	client interfaces.JiraClient
}

// NewWorklogService builds worklog collection on top of a Jira client.
func NewWorklogService(client interfaces.JiraClient) interfaces.WorklogService {
	return &worklogService{client: client}
}

// worklogSearchJQL finds issues the current user logged work on in the
// given date range.
func worklogSearchJQL(from, to time.Time) string {
	return fmt.Sprintf("worklogAuthor = currentUser() AND worklogDate >= '%s' AND worklogDate <= '%s'",
		from.Format("2006-01-02"), to.Format("2006-01-02"))
}

func (w *worklogService) ForPeriod(from, to time.Time) ([]models.Worklog, error) {
	issues, err := w.client.SearchIssues(worklogSearchJQL(from, to), []string{"key", "summary"})
	if err != nil {
		return nil, err
	}

	var worklogs []models.Worklog
	for _, issue := range issues {
		issueWorklogs, err := w.client.IssueWorklogs(issue.Key, from, to)
		if err != nil {
			return nil, err
		}
		for _, wl := range issueWorklogs {
			wl.Issue = issue.Key
			wl.Summary = issue.Summary
			worklogs = append(worklogs, wl)
		}
	}
	return worklogs, nil
}

func (w *worklogService) Daily(date time.Time) ([]models.Worklog, error) {
	return w.ForPeriod(date, date)
}

func (w *worklogService) Weekly(weekStart time.Time) ([]models.Worklog, error) {
	return w.ForPeriod(weekStart, weekStart.AddDate(0, 0, 6))
}

func (w *worklogService) RecentIssues(days int) ([]models.Issue, error) {
	end := DateOnly(time.Now())
	start := end.AddDate(0, 0, -days)
	return w.client.SearchIssues(worklogSearchJQL(start, end), []string{"key", "summary", "description"})
}
