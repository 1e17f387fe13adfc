package main

import (
	"context"
	"fmt"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"randomtools/internal/common"
	"randomtools/internal/interfaces"
	"randomtools/internal/services"
)

var (
	issueKeyRE  = regexp.MustCompile(`^[A-Z]+-\d+$`)
	clockTimeRE = regexp.MustCompile(`^(\d{1,2}):(\d{2})$`)
)

type options struct {
	duration    string
	summary     string
	calendar    string
	meeting     string
	description string
}

func main() {
	var opts options

	cmd := &cobra.Command{
		Use:   "jira-calendar PROJECT_OR_ISSUE TIME [TIME_END] DAY",
		Short: "Create a Jira issue and a matching Google Calendar event",
		Long: `Create a calendar event linked to a Jira issue.

PROJECT_OR_ISSUE is either a project key (a new Task is created in it)
or an existing issue key like ABC-123.`,
		Example: `  jira-calendar MEET 14:30 Friday
  jira-calendar ABC-123 14:30 "next Friday"
  jira-calendar MEET -t 30m 14:30 Friday
  jira-calendar MEET 14:30 15:00 Friday
  jira-calendar MEET -m "Team Standup" 14:30 Friday`,
		Version: common.GetFullVersion(),
		Args:    cobra.RangeArgs(3, 4),

		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(&opts, args)
		},
	}

	cmd.Flags().StringVarP(&opts.duration, "duration", "t", "1h", "Meeting duration")
	cmd.Flags().StringVarP(&opts.summary, "summary", "s", "Meeting", "Issue summary for new issue")
	cmd.Flags().StringVarP(&opts.calendar, "calendar", "c", "", "Calendar name or ID to use (overrides config)")
	cmd.Flags().StringVarP(&opts.meeting, "meeting", "m", "", "Title of the calendar event (overrides default)")
	cmd.Flags().StringVarP(&opts.description, "description", "d", "", "Additional description for the calendar event")

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(opts *options, args []string) error {
	projectOrIssue := strings.ToUpper(args[0])
	day := args[len(args)-1]
	timeArgs := args[1 : len(args)-1]

	jiraConfig, err := common.LoadJiraConfig()
	if err != nil {
		return err
	}
	googleConfig, err := common.LoadWorkGoogleConfig()
	if err != nil {
		return err
	}

	start, err := parseDateTime(timeArgs[0], day)
	if err != nil {
		return err
	}

	var end time.Time
	if len(timeArgs) == 2 {
		end, err = atTime(start, timeArgs[1])
		if err != nil {
			return err
		}
		if !end.After(start) {
			return common.NewValidationError("event_time_invalid", "end time must be after start time")
		}
	} else {
		seconds, err := services.ParseMeetingDuration(opts.duration)
		if err != nil {
			return err
		}
		end = start.Add(time.Duration(seconds) * time.Second)
	}

	jira := services.NewJiraClient(jiraConfig)

	summary := opts.summary
	var issueKey string
	if issueKeyRE.MatchString(projectOrIssue) {
		issueKey = projectOrIssue
		fmt.Printf("Using existing issue: %s\n", issueKey)

		if opts.meeting == "" {
			if issueSummary, err := jira.GetIssueSummary(issueKey); err == nil {
				summary = issueSummary
				fmt.Printf("Using issue summary: %s\n", issueSummary)
			} else {
				fmt.Printf("Warning: could not fetch issue summary for %s: %v\n", issueKey, err)
			}
		}
	} else {
		fmt.Printf("Creating new issue in project %s...\n", projectOrIssue)
		issueKey, err = jira.CreateTask(projectOrIssue, issueSummary(opts), issueDescription(opts))
		if err != nil {
			return err
		}
		fmt.Printf("Created issue: %s\n", issueKey)
	}

	issueURL := jiraConfig.BrowseURL(issueKey)

	calendarID := googleConfig.CalendarID(firstNonEmpty(opts.calendar, googleConfig.SelectedCalendar))

	fmt.Printf("Creating calendar event for %s - %s...\n",
		start.Format("2006-01-02 15:04"), end.Format("15:04"))

	svc, err := services.NewCalendarService(context.Background(),
		googleConfig.CredentialsPath, googleConfig.TokenPath)
	if err != nil {
		return err
	}

	title := opts.meeting
	if title == "" {
		title = fmt.Sprintf("%s: %s", issueKey, summary)
	}
	description := "Jira Issue: " + issueURL
	if opts.description != "" {
		description += "\n\n" + opts.description
	}

	link, err := svc.InsertEvent(calendarID, &interfaces.EventRequest{
		Title:       title,
		Description: description,
		Start:       start,
		End:         end,
	})
	if err != nil {
		return err
	}

	common.PrintSuccess("Issue: " + issueURL)
	common.PrintSuccess("Calendar event: " + link)
	return nil
}

// issueSummary is the summary of a newly created issue: the custom
// meeting title when given, otherwise the --summary value.
func issueSummary(opts *options) string {
	if opts.meeting != "" {
		return opts.meeting
	}
	return opts.summary
}

// issueDescription builds the description paragraphs of a new issue.
func issueDescription(opts *options) []string {
	var paragraphs []string
	if opts.meeting != "" && opts.meeting != opts.summary {
		paragraphs = append(paragraphs, "Type: "+opts.summary)
	}
	if opts.description != "" {
		paragraphs = append(paragraphs, opts.description)
	}
	if len(paragraphs) == 0 {
		paragraphs = append(paragraphs, issueSummary(opts))
	}
	return paragraphs
}

// parseDateTime combines an HH:MM time with a natural-language day.
func parseDateTime(clock, day string) (time.Time, error) {
	date, err := services.ParseNaturalDate(day)
	if err != nil {
		return time.Time{}, err
	}
	return atTime(date, clock)
}

// atTime returns the given day at the HH:MM wall-clock time, in the
// local timezone.
func atTime(day time.Time, clock string) (time.Time, error) {
	m := clockTimeRE.FindStringSubmatch(clock)
	if m == nil {
		return time.Time{}, common.NewValidationError("event_time_invalid",
			fmt.Sprintf("invalid time format: %s, use HH:MM", clock))
	}
	var hour, minute int
	fmt.Sscanf(clock, "%d:%d", &hour, &minute)
	if hour > 23 || minute > 59 {
		return time.Time{}, common.NewValidationError("event_time_invalid",
			fmt.Sprintf("invalid time: %s", clock))
	}
	return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, time.Local), nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
