package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"randomtools/internal/common"
	"randomtools/internal/interfaces"
	"randomtools/internal/models"
	"randomtools/internal/services"
)

type options struct {
	filter     string
	search     string
	raw        bool
	properties int
	config     int
}

func main() {
	var opts options

	cmd := &cobra.Command{
		Use:   "jira-dashboard [dashboard_id]",
		Short: "Search Jira dashboards and list dashboard gadgets",
		Example: `  jira-dashboard                                    # List all available dashboards
  jira-dashboard 12345                              # List all gadgets in dashboard 12345
  jira-dashboard 12345 --filter=TimeTrackingGadget  # Filter time tracking gadgets
  jira-dashboard --search="My Dashboard"            # Search dashboards by name
  jira-dashboard 12345 --properties=11579           # Show properties for gadget 11579
  jira-dashboard 12345 --config=11579               # Show gadgetConfig for gadget 11579`,
		Version: common.GetFullVersion(),
		Args:    cobra.MaximumNArgs(1),

		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(&opts, args)
		},
	}

	cmd.Flags().StringVar(&opts.filter, "filter", "", "Filter gadgets by type, title or URI substring")
	cmd.Flags().StringVar(&opts.search, "search", "", "Search dashboards by name/description")
	cmd.Flags().BoolVar(&opts.raw, "raw", false, "Show raw JSON response")
	cmd.Flags().IntVar(&opts.properties, "properties", 0, "Show properties for specific gadget ID")
	cmd.Flags().IntVar(&opts.config, "config", 0, "Show gadgetConfig property value for specific gadget ID")

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(opts *options, args []string) error {
	config, err := common.LoadJiraConfig()
	if err != nil {
		return err
	}
	client := services.NewJiraClient(config)

	if len(args) == 0 {
		return listDashboards(client, opts.search)
	}

	dashboardID := args[0]
	switch {
	case opts.properties != 0:
		return showProperties(client, dashboardID, opts.properties)
	case opts.config != 0:
		return showConfig(client, dashboardID, opts.config, opts.raw)
	default:
		return listGadgets(client, dashboardID, opts.filter, opts.raw)
	}
}

func listDashboards(client interfaces.JiraClient, search string) error {
	fmt.Println("Fetching available dashboards...")

	dashboards, err := client.Dashboards()
	if err != nil {
		return err
	}

	if search != "" {
		searchLower := strings.ToLower(search)
		var matched []models.Dashboard
		for _, d := range dashboards {
			if strings.Contains(strings.ToLower(d.Name), searchLower) ||
				strings.Contains(strings.ToLower(d.Description), searchLower) {
				matched = append(matched, d)
			}
		}
		dashboards = matched
		fmt.Printf("Dashboards matching '%s': %d\n", search, len(dashboards))
	} else {
		fmt.Printf("Total dashboards found: %d\n", len(dashboards))
	}
	fmt.Println(strings.Repeat("=", 80))

	if len(dashboards) == 0 {
		fmt.Println("No dashboards found")
		return nil
	}

	for _, d := range dashboards {
		fmt.Printf("ID: %s\n", d.ID)
		fmt.Printf("Name: %s\n", d.Name)
		if d.Description != "" {
			fmt.Printf("Description: %s\n", d.Description)
		}
		if d.Owner != "" {
			fmt.Printf("Owner: %s\n", d.Owner)
		}
		if d.ViewURL != "" {
			fmt.Printf("View URL: %s\n", d.ViewURL)
		}
		fmt.Println(strings.Repeat("-", 40))
	}

	fmt.Println("\nTo view items in a dashboard, run:")
	fmt.Println("jira-dashboard <dashboard_id>")
	return nil
}

func listGadgets(client interfaces.JiraClient, dashboardID, filter string, raw bool) error {
	fmt.Printf("Fetching dashboard gadgets for dashboard %s...\n", dashboardID)

	gadgets, err := client.DashboardGadgets(dashboardID)
	if err != nil {
		return err
	}

	if raw {
		printJSON(map[string]interface{}{"gadgets": gadgets})
		fmt.Println(strings.Repeat("-", 80))
	}

	var filtered []models.Gadget
	for _, g := range gadgets {
		if filter != "" {
			filterLower := strings.ToLower(filter)
			if !strings.Contains(strings.ToLower(g.Title), filterLower) &&
				!strings.Contains(strings.ToLower(g.ModuleKey), filterLower) &&
				!strings.Contains(strings.ToLower(g.URI), filterLower) {
				continue
			}
		}
		filtered = append(filtered, g)
	}

	if filter == "" {
		fmt.Printf("Total gadgets: %d\n", len(gadgets))
		fmt.Println(strings.Repeat("-", 80))
	}

	for _, g := range filtered {
		fmt.Printf("Gadget ID: %d\n", g.ID)
		fmt.Printf("Dashboard ID: %s\n", dashboardID)
		fmt.Printf("Position: (row %d, column %d)\n", g.Position.Row, g.Position.Column)
		fmt.Printf("Title: %s\n", g.Title)
		fmt.Printf("Module Key: %s\n", g.ModuleKey)
		fmt.Printf("Color: %s\n", g.Color)
		if len(g.Properties) > 0 {
			fmt.Println("Properties:")
			for key, value := range g.Properties {
				fmt.Printf("  %s: %v\n", key, value)
			}
		}
		fmt.Println(strings.Repeat("-", 40))
	}

	if len(filtered) == 0 {
		if filter != "" {
			fmt.Printf("No gadgets found matching filter '%s'\n", filter)
		} else {
			fmt.Println("No gadgets found in dashboard")
		}
	}
	return nil
}

func showProperties(client interfaces.JiraClient, dashboardID string, gadgetID int) error {
	fmt.Printf("Fetching properties for gadget %d in dashboard %s...\n", gadgetID, dashboardID)

	keys, err := client.GadgetPropertyKeys(dashboardID, gadgetID)
	if err != nil {
		return err
	}

	if len(keys) == 0 {
		fmt.Printf("No properties found for gadget %d\n", gadgetID)
		return nil
	}

	fmt.Printf("Properties for gadget %d:\n", gadgetID)
	fmt.Println(strings.Repeat("-", 40))
	for _, key := range keys {
		fmt.Printf("Key: %s\n", key)
		fmt.Println(strings.Repeat("-", 20))
	}
	return nil
}

func showConfig(client interfaces.JiraClient, dashboardID string, gadgetID int, raw bool) error {
	fmt.Printf("Fetching gadgetConfig for gadget %d in dashboard %s...\n", gadgetID, dashboardID)

	value, err := client.GadgetConfig(dashboardID, gadgetID)
	if err != nil {
		return err
	}

	if raw {
		printJSON(value)
		fmt.Println(strings.Repeat("-", 80))
	}

	fmt.Printf("Config for gadget %d:\n", gadgetID)
	fmt.Println(strings.Repeat("-", 40))

	if len(value) == 0 {
		fmt.Println("No configuration data found")
		return nil
	}

	fmt.Println("Configuration:")
	for key, item := range value {
		fmt.Printf("  %s: %v\n", key, item)
	}
	return nil
}

func printJSON(v interface{}) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Printf("%v\n", v)
		return
	}
	fmt.Println(string(data))
}
