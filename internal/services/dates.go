package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/olebedev/when"
	wrules "github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"

	"randomtools/internal/common"
)

var dateParser = func() *when.Parser {
	p := when.New(nil)
	p.Add(en.All...)
	p.Add(wrules.All...)
	return p
}()

// ParseNaturalDate parses "2025-08-18", weekday names and relative
// expressions like "3 days ago" or "yesterday" into a date.
func ParseNaturalDate(input string) (time.Time, error) {
	input = strings.TrimSpace(input)

	if t, err := time.ParseInLocation("2006-01-02", input, time.Local); err == nil {
		return t, nil
	}

	result, err := dateParser.Parse(input, time.Now())
	if err != nil || result == nil {
		return time.Time{}, common.NewValidationError("date_parse_failed",
			fmt.Sprintf("unable to parse date: %s", input)).WithCause(err)
	}
	return DateOnly(result.Time), nil
}

// DateOnly truncates a time to midnight local time.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// RelativeDayDescription describes date relative to today, e.g.
// "today", "yesterday", "3 days ago", "in 2 days".
func RelativeDayDescription(date, today time.Time) string {
	date, today = DateOnly(date), DateOnly(today)
	switch {
	case date.Equal(today):
		return "today"
	case date.Equal(today.AddDate(0, 0, -1)):
		return "yesterday"
	}
	diff := int(today.Sub(date).Hours() / 24)
	if diff > 0 {
		return fmt.Sprintf("%d day%s ago", diff, pluralSuffix(diff))
	}
	return fmt.Sprintf("in %d day%s", -diff, pluralSuffix(-diff))
}

// WorkingDateContext renders the parenthetical shown next to the
// daily worklog heading when the working date is not today, e.g.
// " (working date: yesterday, 2025-08-17)". Empty for today.
func WorkingDateContext(workingDate, today time.Time) string {
	workingDate, today = DateOnly(workingDate), DateOnly(today)
	if workingDate.Equal(today) {
		return ""
	}
	return fmt.Sprintf(" (working date: %s, %s)",
		RelativeDayDescription(workingDate, today),
		workingDate.Format("2006-01-02"))
}

func pluralSuffix(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}

// WeekStart returns the Monday of the week containing date.
func WeekStart(date time.Time) time.Time {
	date = DateOnly(date)
	offset := (int(date.Weekday()) + 6) % 7
	return date.AddDate(0, 0, -offset)
}

// WeekRange returns Monday..Sunday of the current week, or of the
// previous week when last is set.
func WeekRange(today time.Time, last bool) (time.Time, time.Time) {
	monday := WeekStart(today)
	if last {
		monday = monday.AddDate(0, 0, -7)
	}
	return monday, monday.AddDate(0, 0, 6)
}

// MonthRange returns the first and last day of the current calendar
// month, or of the previous month when last is set.
func MonthRange(today time.Time, last bool) (time.Time, time.Time) {
	today = DateOnly(today)
	firstOfCurrent := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location())
	if last {
		end := firstOfCurrent.AddDate(0, 0, -1)
		start := time.Date(end.Year(), end.Month(), 1, 0, 0, 0, 0, end.Location())
		return start, end
	}
	end := firstOfCurrent.AddDate(0, 1, -1)
	return firstOfCurrent, end
}
