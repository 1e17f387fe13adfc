package services

import (
	"fmt"
	"strings"

	"github.com/go-resty/resty/v2"

	"randomtools/internal/common"
	"randomtools/internal/interfaces"
	"randomtools/internal/models"
)

type tasksClient struct {
	client *resty.Client
	config *common.TasksConfig
}

// NewTasksClient creates a client for the tasks collector's
// observation API, authenticated with HTTP basic auth.
func NewTasksClient(config *common.TasksConfig) interfaces.TasksClient {
	client := resty.New().
		SetBaseURL(strings.TrimRight(config.URL, "/")).
		SetBasicAuth(config.User, config.Password).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	return &tasksClient{
		client: client,
		config: config,
	}
}

func (tc *tasksClient) CreateEntry(payload map[string]any) (map[string]any, error) {
	var created map[string]any

	resp, err := tc.client.R().
		SetBody(payload).
		SetResult(&created).
		Post("/observation-api/")
	if err != nil {
		return nil, fmt.Errorf("failed to post entry: %w", err)
	}
	if resp.IsError() {
		return nil, common.NewNetworkError("observation_api_error",
			fmt.Sprintf("observation API returned status %d: %s", resp.StatusCode(), resp.String()))
	}
	return created, nil
}

func (tc *tasksClient) Observations(year string) ([]models.Observation, error) {
	url := "/observation-api/"
	if year != "" {
		url = fmt.Sprintf("/observation-api/?pub_date__gte=%s-01-01&pub_date__lte=%s-12-31", year, year)
	}

	var observations []models.Observation
	for url != "" {
		var page models.ObservationPage

		resp, err := tc.client.R().
			SetResult(&page).
			Get(url)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch observations: %w", err)
		}
		if resp.IsError() {
			return nil, common.NewNetworkError("observation_api_error",
				fmt.Sprintf("observation API returned status %d: %s", resp.StatusCode(), resp.String()))
		}

		observations = append(observations, page.Results...)

		// The next link is absolute; resty resolves it against the
		// base URL only when relative, so strip the base when present.
		url = strings.TrimPrefix(page.Next, tc.client.BaseURL)
	}
	return observations, nil
}
