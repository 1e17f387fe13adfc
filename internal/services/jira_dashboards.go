package services

import (
	"fmt"
	"net/http"

	"randomtools/internal/common"
	"randomtools/internal/models"
)

func (jc *jiraClient) Dashboards() ([]models.Dashboard, error) {
	var response struct {
		Dashboards []struct {
			ID          string `json:"id"`
			Name        string `json:"name"`
			Description string `json:"description"`
			View        string `json:"view"`
			Owner       struct {
				DisplayName string `json:"displayName"`
			} `json:"owner"`
		} `json:"dashboards"`
	}

	resp, err := jc.client.R().
		SetResult(&response).
		Get("/rest/api/3/dashboard")

	if err != nil {
		return nil, fmt.Errorf("failed to fetch dashboards: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, common.NewJiraError("dashboard_list_failed",
			fmt.Sprintf("Jira API returned status %d: %s", resp.StatusCode(), resp.String()))
	}

	dashboards := make([]models.Dashboard, 0, len(response.Dashboards))
	for _, raw := range response.Dashboards {
		dashboards = append(dashboards, models.Dashboard{
			ID:          raw.ID,
			Name:        raw.Name,
			Description: raw.Description,
			Owner:       raw.Owner.DisplayName,
			ViewURL:     raw.View,
		})
	}

	return dashboards, nil
}

func (jc *jiraClient) DashboardGadgets(dashboardID string) ([]models.Gadget, error) {
	var response struct {
		Gadgets []models.Gadget `json:"gadgets"`
	}

	resp, err := jc.client.R().
		SetResult(&response).
		Get(fmt.Sprintf("/rest/api/3/dashboard/%s/gadget", dashboardID))

	if err != nil {
		return nil, fmt.Errorf("failed to fetch dashboard gadgets: %w", err)
	}
	switch resp.StatusCode() {
	case http.StatusOK:
	case http.StatusNotFound:
		return nil, common.NewJiraError("dashboard_not_found",
			fmt.Sprintf("dashboard %s not found", dashboardID))
	case http.StatusForbidden:
		return nil, common.NewJiraError("dashboard_forbidden",
			"access denied, check your permissions for this dashboard")
	default:
		return nil, common.NewJiraError("gadget_list_failed",
			fmt.Sprintf("Jira API returned status %d: %s", resp.StatusCode(), resp.String()))
	}

	return response.Gadgets, nil
}

func (jc *jiraClient) GadgetPropertyKeys(dashboardID string, gadgetID int) ([]string, error) {
	var response struct {
		Keys []struct {
			Key string `json:"key"`
		} `json:"keys"`
	}

	resp, err := jc.client.R().
		SetResult(&response).
		Get(fmt.Sprintf("/rest/api/3/dashboard/%s/items/%d/properties", dashboardID, gadgetID))

	if err != nil {
		return nil, fmt.Errorf("failed to fetch gadget properties: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, common.NewJiraError("gadget_properties_failed",
			fmt.Sprintf("Jira API returned status %d for gadget %d", resp.StatusCode(), gadgetID))
	}

	keys := make([]string, 0, len(response.Keys))
	for _, k := range response.Keys {
		keys = append(keys, k.Key)
	}
	return keys, nil
}

func (jc *jiraClient) GadgetConfig(dashboardID string, gadgetID int) (models.GadgetConfig, error) {
	var response struct {
		Key   string              `json:"key"`
		Value models.GadgetConfig `json:"value"`
	}

	resp, err := jc.client.R().
		SetResult(&response).
		Get(fmt.Sprintf("/rest/api/3/dashboard/%s/items/%d/properties/gadgetConfig", dashboardID, gadgetID))

	if err != nil {
		return nil, fmt.Errorf("failed to fetch gadget config: %w", err)
	}
	if resp.StatusCode() == http.StatusNotFound {
		return nil, common.NewJiraError("gadget_config_not_found",
			fmt.Sprintf("gadgetConfig property not found for gadget %d in dashboard %s", gadgetID, dashboardID))
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, common.NewJiraError("gadget_config_failed",
			fmt.Sprintf("Jira API returned status %d for gadget %d", resp.StatusCode(), gadgetID))
	}

	return response.Value, nil
}

func (jc *jiraClient) UpdateGadgetConfig(dashboardID string, gadgetID int, config models.GadgetConfig) error {
	resp, err := jc.client.R().
		SetBody(config).
		Put(fmt.Sprintf("/rest/api/3/dashboard/%s/items/%d/properties/gadgetConfig", dashboardID, gadgetID))

	if err != nil {
		return fmt.Errorf("failed to update gadget config: %w", err)
	}
	switch resp.StatusCode() {
	case http.StatusOK, http.StatusCreated, http.StatusNoContent:
		return nil
	default:
		return common.NewJiraError("gadget_config_update_failed",
			fmt.Sprintf("Jira API returned status %d: %s", resp.StatusCode(), resp.String()))
	}
}
