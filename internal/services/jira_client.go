package services

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"randomtools/internal/common"
	"randomtools/internal/interfaces"
	"randomtools/internal/models"

	"github.com/go-resty/resty/v2"
)

type jiraClient struct {
	client *resty.Client
	config *common.JiraConfig
}

// NewJiraClient creates a Jira Cloud REST client authenticated with the
// configured email and API token.
func NewJiraClient(config *common.JiraConfig) interfaces.JiraClient {
	client := resty.New().
		SetBaseURL(config.BaseURL()).
		SetBasicAuth(config.Email, config.APIToken).
		SetTimeout(time.Duration(config.Timeout) * time.Second).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	return &jiraClient{
		client: client,
		config: config,
	}
}

type searchResponse struct {
	Issues []struct {
		Key    string                 `json:"key"`
		Fields map[string]interface{} `json:"fields"`
	} `json:"issues"`
	NextPageToken string `json:"nextPageToken"`
}

func (jc *jiraClient) SearchIssues(jql string, fields []string) ([]models.Issue, error) {
	var issues []models.Issue
	nextPageToken := ""

	for {
		var response searchResponse

		req := jc.client.R().
			SetQueryParam("jql", jql).
			SetQueryParam("fields", strings.Join(fields, ",")).
			SetQueryParam("maxResults", "100").
			SetResult(&response)

		if nextPageToken != "" {
			req.SetQueryParam("nextPageToken", nextPageToken)
		}

		resp, err := req.Get("/rest/api/3/search/jql")
		if err != nil {
			return nil, fmt.Errorf("failed to search issues: %w", err)
		}
		if resp.StatusCode() != http.StatusOK {
			return nil, common.NewJiraError("search_failed",
				fmt.Sprintf("Jira API returned status %d: %s", resp.StatusCode(), resp.String()))
		}

		for _, raw := range response.Issues {
			issue := models.Issue{Key: raw.Key}
			if summary, ok := raw.Fields["summary"].(string); ok {
				issue.Summary = summary
			}
			if description, ok := raw.Fields["description"]; ok {
				issue.Description = ExtractADFText(description)
			}
			issues = append(issues, issue)
		}

		nextPageToken = response.NextPageToken
		if nextPageToken == "" {
			break
		}
	}

	return issues, nil
}

func (jc *jiraClient) GetIssueSummary(issueKey string) (string, error) {
	var response struct {
		Fields struct {
			Summary string `json:"summary"`
		} `json:"fields"`
	}

	resp, err := jc.client.R().
		SetQueryParam("fields", "summary").
		SetResult(&response).
		Get(fmt.Sprintf("/rest/api/3/issue/%s", issueKey))

	if err != nil {
		return "", fmt.Errorf("failed to get issue %s: %w", issueKey, err)
	}
	if resp.StatusCode() != http.StatusOK {
		return "", common.NewJiraError("issue_fetch_failed",
			fmt.Sprintf("Jira API returned status %d for issue %s", resp.StatusCode(), issueKey))
	}

	return response.Fields.Summary, nil
}

func (jc *jiraClient) IssueDetails(issueKeys []string) (map[string]models.Issue, error) {
	details := make(map[string]models.Issue)
	if len(issueKeys) == 0 {
		return details, nil
	}

	jql := fmt.Sprintf("key in (%s)", strings.Join(issueKeys, ","))
	issues, err := jc.SearchIssues(jql, []string{"key", "summary", "description"})
	if err != nil {
		return nil, err
	}

	for _, issue := range issues {
		details[issue.Key] = issue
	}
	return details, nil
}

func (jc *jiraClient) CreateTask(projectKey, summary string, descriptionParagraphs []string) (string, error) {
	if len(descriptionParagraphs) == 0 {
		descriptionParagraphs = []string{summary}
	}

	payload := map[string]interface{}{
		"fields": map[string]interface{}{
			"project":     map[string]string{"key": projectKey},
			"summary":     summary,
			"description": ADFDocument(descriptionParagraphs...),
			"issuetype":   map[string]string{"name": "Task"},
		},
	}

	var response struct {
		Key string `json:"key"`
	}

	resp, err := jc.client.R().
		SetBody(payload).
		SetResult(&response).
		Post("/rest/api/3/issue")

	if err != nil {
		return "", fmt.Errorf("failed to create issue: %w", err)
	}
	if resp.StatusCode() != http.StatusCreated {
		return "", common.NewJiraError("issue_create_failed",
			fmt.Sprintf("Jira API returned status %d: %s", resp.StatusCode(), resp.String()))
	}

	return response.Key, nil
}

type worklogResponse struct {
	StartAt    int `json:"startAt"`
	MaxResults int `json:"maxResults"`
	Total      int `json:"total"`
	Worklogs   []struct {
		Author struct {
			EmailAddress string `json:"emailAddress"`
		} `json:"author"`
		TimeSpent        string      `json:"timeSpent"`
		TimeSpentSeconds int         `json:"timeSpentSeconds"`
		Comment          interface{} `json:"comment"`
		Started          string      `json:"started"`
	} `json:"worklogs"`
}

func (jc *jiraClient) IssueWorklogs(issueKey string, from, to time.Time) ([]models.Worklog, error) {
	var worklogs []models.Worklog
	startAt := 0
	const maxResults = 100

	for {
		var response worklogResponse

		resp, err := jc.client.R().
			SetQueryParam("startAt", strconv.Itoa(startAt)).
			SetQueryParam("maxResults", strconv.Itoa(maxResults)).
			SetResult(&response).
			Get(fmt.Sprintf("/rest/api/3/issue/%s/worklog", issueKey))

		if err != nil {
			return nil, fmt.Errorf("failed to fetch worklogs for %s: %w", issueKey, err)
		}
		if resp.StatusCode() != http.StatusOK {
			return nil, common.NewJiraError("worklog_fetch_failed",
				fmt.Sprintf("Jira API returned status %d for worklogs of %s", resp.StatusCode(), issueKey))
		}

		for _, raw := range response.Worklogs {
			if len(raw.Started) < 10 {
				continue
			}
			date, err := time.ParseInLocation("2006-01-02", raw.Started[:10], time.Local)
			if err != nil {
				continue
			}

			// Only the configured user's worklogs inside the range count.
			if raw.Author.EmailAddress != jc.config.Email {
				continue
			}
			if date.Before(DateOnly(from)) || date.After(DateOnly(to)) {
				continue
			}

			worklogs = append(worklogs, models.Worklog{
				Issue:            issueKey,
				TimeSpent:        raw.TimeSpent,
				TimeSpentSeconds: raw.TimeSpentSeconds,
				Comment:          ExtractADFText(raw.Comment),
				Started:          raw.Started,
				Date:             date,
			})
		}

		if startAt+maxResults >= response.Total {
			break
		}
		startAt += maxResults
	}

	return worklogs, nil
}

func (jc *jiraClient) AddWorklog(issueKey string, started time.Time, seconds int, comment string) error {
	payload := map[string]interface{}{
		"timeSpentSeconds": seconds,
		"started":          started.Format("2006-01-02T15:04:05.000-0700"),
	}
	if comment != "" {
		payload["comment"] = ADFDocument(comment)
	}

	resp, err := jc.client.R().
		SetBody(payload).
		Post(fmt.Sprintf("/rest/api/3/issue/%s/worklog", issueKey))

	if err != nil {
		return fmt.Errorf("failed to log time to %s: %w", issueKey, err)
	}
	if resp.StatusCode() == http.StatusNotFound {
		return common.NewJiraError("issue_not_found",
			fmt.Sprintf("issue %s not found or no permission to log work", issueKey))
	}
	if resp.StatusCode() != http.StatusCreated {
		return common.NewJiraError("worklog_create_failed",
			fmt.Sprintf("Jira API returned status %d: %s", resp.StatusCode(), resp.String()))
	}

	return nil
}
