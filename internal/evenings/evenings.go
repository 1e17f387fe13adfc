package evenings

import (
	"fmt"
	"io"
	"time"

	"randomtools/internal/interfaces"
	"randomtools/internal/models"
)

// Options controls which evenings are checked.
type Options struct {
	Days     int
	HourFrom int
	HourTo   int
	Start    time.Time
}

// StartDate picks the first day to check: today, or tomorrow when the
// evening has already started.
func StartDate(now time.Time) time.Time {
	if now.Hour() > 18 {
		now = now.AddDate(0, 0, 1)
	}
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}

// Check collects evening events for each day, across every calendar
// whose summary is in selected.
func Check(svc interfaces.CalendarService, selected map[string]bool, opts Options, errOut io.Writer) ([]models.Day, error) {
	calendars, err := svc.ListCalendars()
	if err != nil {
		return nil, err
	}

	var checked []interfaces.CalendarInfo
	for _, c := range calendars {
		if selected[c.Summary] {
			checked = append(checked, c)
		}
	}

	var days []models.Day
	for i := 0; i < opts.Days; i++ {
		date := opts.Start.AddDate(0, 0, i)
		day := models.Day{Date: date}

		from := time.Date(date.Year(), date.Month(), date.Day(), opts.HourFrom, 0, 0, 0, date.Location())
		to := time.Date(date.Year(), date.Month(), date.Day(), opts.HourTo, 0, 0, 0, date.Location())

		for _, c := range checked {
			events, err := svc.EventsBetween(c.ID, from, to)
			if err != nil {
				fmt.Fprintf(errOut, "Error retrieving events for calendar %s: %v\n", c.Summary, err)
				continue
			}
			day.Events = append(day.Events, events...)
		}
		days = append(days, day)
	}
	return days, nil
}

// Filter keeps the days matching kind: "free", "busy" or "all".
func Filter(days []models.Day, kind string) []models.Day {
	if kind == "all" {
		return days
	}
	var kept []models.Day
	for _, d := range days {
		if (kind == "free") == d.IsAvailable() {
			kept = append(kept, d)
		}
	}
	return kept
}

// PrintStats writes the free/busy day counts.
func PrintStats(out io.Writer, days []models.Day) {
	free := 0
	for _, d := range days {
		if d.IsAvailable() {
			free++
		}
	}
	fmt.Fprintf(out, "Total days: %d\n", len(days))
	fmt.Fprintf(out, "Free days: %d\n", free)
	fmt.Fprintf(out, "Busy days: %d\n", len(days)-free)
}

// Print writes the day list. With kind "all" each day carries its
// status and busy days are followed by a blank line.
func Print(out io.Writer, days []models.Day, kind string) {
	for _, day := range days {
		if kind == "all" {
			fmt.Fprintf(out, "%s - %s\n", day.Date.Format("2006-01-02 (Monday)"), day.Status())
		} else {
			fmt.Fprintln(out, day.Date.Format("2006-01-02 (Monday)"))
		}

		for _, event := range day.Events {
			fmt.Fprintf(out, "  %s - %s: %s\n",
				event.Start.Format("15:04"), event.End.Format("15:04"), event.Summary)
		}

		if kind == "all" || kind == "busy" {
			fmt.Fprintln(out)
		}
	}
}
