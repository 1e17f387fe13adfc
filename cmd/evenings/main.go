package main

import (
	"context"
	"os"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/api/calendar/v3"

	"randomtools/internal/common"
	"randomtools/internal/evenings"
	"randomtools/internal/services"
)

type options struct {
	stats    bool
	kind     string
	all      bool
	days     int
	start    string
	hourFrom int
	hourTo   int
}

func main() {
	var opts options

	cmd := &cobra.Command{
		Use:     "evenings",
		Short:   "Check if you're free in the evening",
		Version: common.GetFullVersion(),

		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(&opts)
		},
	}

	cmd.Flags().BoolVarP(&opts.stats, "stats", "S", false, "Show statistics")
	cmd.Flags().StringVarP(&opts.kind, "type", "T", "free", "Type of evenings to check: free/busy/all")
	cmd.Flags().BoolVarP(&opts.all, "all", "a", false, "Alias for --type all")
	cmd.Flags().IntVarP(&opts.days, "days", "d", 14, "Number of days to check")
	cmd.Flags().StringVarP(&opts.start, "start", "s", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&opts.hourFrom, "hour-from", 18, "Start hour")
	cmd.Flags().IntVar(&opts.hourTo, "hour-to", 22, "End hour")

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(opts *options) error {
	config, err := common.LoadGoogleConfig()
	if err != nil {
		return err
	}

	svc, err := services.NewCalendarService(context.Background(),
		config.CredentialsPath, config.TokenPath, calendar.CalendarReadonlyScope)
	if err != nil {
		return err
	}

	start := evenings.StartDate(time.Now())
	if opts.start != "" {
		start, err = time.ParseInLocation("2006-01-02", opts.start, time.Local)
		if err != nil {
			return common.NewValidationError("date_parse_failed",
				"invalid start date, use YYYY-MM-DD")
		}
	}

	days, err := evenings.Check(svc, config.SelectedCalendars, evenings.Options{
		Days:     opts.days,
		HourFrom: opts.hourFrom,
		HourTo:   opts.hourTo,
		Start:    start,
	}, os.Stderr)
	if err != nil {
		return err
	}

	if opts.stats {
		evenings.PrintStats(os.Stdout, days)
		return nil
	}

	kind := opts.kind
	if opts.all {
		kind = "all"
	}

	evenings.Print(os.Stdout, evenings.Filter(days, kind), kind)
	return nil
}
