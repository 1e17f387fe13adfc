package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"randomtools/internal/common"
	"randomtools/internal/models"
	"randomtools/internal/report"
	"randomtools/internal/services"
)

type options struct {
	month              bool
	week               bool
	fromDate           string
	toDate             string
	last               bool
	level              int
	skipWorklogs       bool
	skipCategorization bool
	reset              bool
}

func main() {
	var opts options

	cmd := &cobra.Command{
		Use:     "jira-report",
		Short:   "Generate a Markdown report of Jira worklogs for a period",
		Version: common.GetFullVersion(),

		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(&opts)
		},
	}

	cmd.Flags().BoolVar(&opts.month, "month", false, "Report for the current calendar month")
	cmd.Flags().BoolVar(&opts.week, "week", false, "Report for the current calendar week")
	cmd.Flags().StringVarP(&opts.fromDate, "from-date", "d", "", "Start date (YYYY-MM-DD or relative)")
	cmd.Flags().StringVarP(&opts.toDate, "to-date", "D", "", "End date (YYYY-MM-DD or relative)")
	cmd.Flags().BoolVarP(&opts.last, "last", "Y", false, "Previous period (--month/--week) or yesterday")
	cmd.Flags().IntVarP(&opts.level, "level", "L", 1, "Section nesting depth")
	cmd.Flags().BoolVar(&opts.skipWorklogs, "skip-worklogs", false, "Don't print individual worklog descriptions")
	cmd.Flags().BoolVarP(&opts.skipCategorization, "skip-categorization", "S", false, "Don't group worklogs into sections")
	cmd.Flags().BoolVar(&opts.reset, "reset", false, "Ignore saved section mappings (start fresh)")

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(opts *options) error {
	config, err := common.LoadJiraConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Please create ~/.jira/config.ini with your Jira credentials")
		return err
	}

	from, to, err := resolvePeriod(opts)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "Fetching worklogs from %s to %s...\n",
		from.Format("2006-01-02"), to.Format("2006-01-02"))

	worklogService := services.NewWorklogService(services.NewJiraClient(config))
	worklogs, err := worklogService.ForPeriod(from, to)
	if err != nil {
		return err
	}
	if len(worklogs) == 0 {
		fmt.Fprintln(os.Stderr, "No worklogs found for the given period.")
		return nil
	}

	byIssue := models.GroupByIssue(worklogs)

	sections := map[string]string{}
	if !opts.skipCategorization {
		store, err := services.NewStateStore()
		if err != nil {
			return err
		}
		if !opts.reset {
			if sections, err = store.LoadSections(); err != nil {
				return err
			}
		}
		if sections, err = report.AssignSections(byIssue, sections, os.Stdin, os.Stderr); err != nil {
			return err
		}
		if err := store.StoreSections(sections); err != nil {
			return err
		}
	}

	fmt.Println(report.Generate(from, to, byIssue, sections, opts.skipWorklogs, opts.level))
	return nil
}

// resolvePeriod turns the period flags into an inclusive date range.
func resolvePeriod(opts *options) (time.Time, time.Time, error) {
	today := services.DateOnly(time.Now())

	if opts.month {
		from, to := services.MonthRange(today, opts.last)
		return from, to, nil
	}
	if opts.week {
		from, to := services.WeekRange(today, opts.last)
		return from, to, nil
	}

	var from time.Time
	if opts.fromDate != "" {
		parsed, err := services.ParseNaturalDate(opts.fromDate)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		from = services.DateOnly(parsed)
	} else if opts.last {
		// Bare -Y means yesterday.
		from = today.AddDate(0, 0, -1)
	} else {
		from = today
	}

	to := from
	if opts.toDate != "" {
		parsed, err := services.ParseNaturalDate(opts.toDate)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		to = services.DateOnly(parsed)
	}

	return from, to, nil
}
