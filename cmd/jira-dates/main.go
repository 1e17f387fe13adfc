package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"randomtools/internal/common"
	"randomtools/internal/interfaces"
	"randomtools/internal/services"
)

type options struct {
	date        string
	format      string
	dashboard   string
	monthString string
	weekString  string
}

func main() {
	var opts options

	cmd := &cobra.Command{
		Use:   "jira-dates",
		Short: "Auto-update Jira time tracker gadgets to the current periods",
		Long: `Find the time tracker gadgets of a dashboard and rewrite their
start/end dates to the week or month containing the reference date.
Gadgets are classified by their title: ones containing the month
string get the month range, ones containing the week string get the
week range.`,
		Example: `  jira-dates                          # Update all gadgets to current periods
  jira-dates --date=2025-07-15        # Use July 15, 2025 as reference date
  jira-dates --dashboard=123          # Update a specific dashboard
  jira-dates --month-string=monthly   # Use "monthly" to detect month gadgets`,
		Version: common.GetFullVersion(),

		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(&opts)
		},
	}

	cmd.Flags().StringVar(&opts.date, "date", "", "Reference date for calculations (YYYY-MM-DD, defaults to today)")
	cmd.Flags().StringVar(&opts.format, "format", "2006-01-02", "Date format written into the gadget config")
	cmd.Flags().StringVar(&opts.dashboard, "dashboard", "", "Dashboard ID (overrides config)")
	cmd.Flags().StringVar(&opts.monthString, "month-string", "", "String to detect month gadgets (overrides config)")
	cmd.Flags().StringVar(&opts.weekString, "week-string", "", "String to detect week gadgets (overrides config)")

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(opts *options) error {
	config, err := common.LoadJiraConfig()
	if err != nil {
		return err
	}

	dashboardID := opts.dashboard
	if dashboardID == "" {
		dashboardID = config.DashboardID
	}
	if dashboardID == "" {
		common.PrintError("dashboard_id is required")
		fmt.Println("Provide it via --dashboard argument or in ~/.jira/config.ini")
		return common.NewConfigurationError("dashboard_missing", "no dashboard id configured")
	}

	reference := services.DateOnly(time.Now())
	if opts.date != "" {
		reference, err = time.ParseInLocation("2006-01-02", opts.date, time.Local)
		if err != nil {
			return common.NewValidationError("date_parse_failed",
				fmt.Sprintf("invalid date format '%s', use YYYY-MM-DD", opts.date))
		}
	}

	monthString := firstNonEmpty(opts.monthString, config.MonthString, "month")
	weekString := firstNonEmpty(opts.weekString, config.WeekString, "week")

	client := services.NewJiraClient(config)
	return updateTimeTrackerGadgets(client, dashboardID, reference, opts.format, monthString, weekString)
}

func updateTimeTrackerGadgets(client interfaces.JiraClient, dashboardID string, reference time.Time, format, monthString, weekString string) error {
	fmt.Printf("Auto-updating time tracker gadgets in dashboard %s...\n", dashboardID)
	fmt.Printf("Reference date: %s\n", reference.Format("2006-01-02"))
	fmt.Printf("Using detection strings: month='%s', week='%s'\n", monthString, weekString)

	gadgets, err := client.DashboardGadgets(dashboardID)
	if err != nil {
		return err
	}

	var trackers []int
	var titles []string
	for _, g := range gadgets {
		if strings.Contains(g.ModuleKey, "timereports-gadget") {
			trackers = append(trackers, g.ID)
			titles = append(titles, g.Title)
		}
	}
	if len(trackers) == 0 {
		fmt.Println("No time tracker gadgets found in dashboard")
		return nil
	}

	fmt.Printf("Found %d time tracker gadgets\n", len(trackers))
	updated := 0

	for i, gadgetID := range trackers {
		title := strings.ToLower(titles[i])
		fmt.Printf("\nProcessing gadget %d: '%s'\n", gadgetID, titles[i])

		isMonth := strings.Contains(title, strings.ToLower(monthString))
		isWeek := strings.Contains(title, strings.ToLower(weekString))
		if !isMonth && !isWeek {
			fmt.Printf("  Skipping - title doesn't contain '%s' or '%s'\n", weekString, monthString)
			continue
		}

		config, err := client.GadgetConfig(dashboardID, gadgetID)
		if err != nil {
			fmt.Printf("  Skipping - couldn't get config: %v\n", err)
			continue
		}

		var from, to time.Time
		periodType := "week"
		if isMonth {
			from, to = services.MonthRange(reference, false)
			periodType = "month"
		} else {
			from, to = services.WeekRange(reference, false)
		}

		config["startDate"] = from.Format(format)
		config["endDate"] = to.Format(format)

		fmt.Printf("  Updating %s: %s to %s\n", periodType, from.Format(format), to.Format(format))

		if err := client.UpdateGadgetConfig(dashboardID, gadgetID, config); err != nil {
			common.PrintError(fmt.Sprintf("Failed to update gadget %d: %v", gadgetID, err))
			continue
		}
		common.PrintSuccess(fmt.Sprintf("Successfully updated gadget %d", gadgetID))
		updated++
	}

	fmt.Printf("\nSummary: Updated %d of %d gadgets\n", updated, len(trackers))
	if updated == 0 {
		return common.NewJiraError("gadget_update_failed", "no gadgets were updated")
	}
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
