package evenings

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"randomtools/internal/interfaces"
	"randomtools/internal/models"
)

type fakeCalendarService struct {
	calendars []interfaces.CalendarInfo
	events    map[string][]models.CalendarEvent
	failing   map[string]bool
}

func (f *fakeCalendarService) ListCalendars() ([]interfaces.CalendarInfo, error) {
	return f.calendars, nil
}

func (f *fakeCalendarService) EventsBetween(calendarID string, from, to time.Time) ([]models.CalendarEvent, error) {
	if f.failing[calendarID] {
		return nil, errors.New("boom")
	}
	var events []models.CalendarEvent
	for _, e := range f.events[calendarID] {
		if !e.Start.Before(from) && e.Start.Before(to) {
			events = append(events, e)
		}
	}
	return events, nil
}

func (f *fakeCalendarService) InsertEvent(calendarID string, event *interfaces.EventRequest) (string, error) {
	return "", errors.New("not implemented")
}

func TestStartDate(t *testing.T) {
	afternoon := time.Date(2025, 8, 20, 15, 30, 0, 0, time.Local)
	assert.Equal(t, time.Date(2025, 8, 20, 0, 0, 0, 0, time.Local), StartDate(afternoon))

	lateEvening := time.Date(2025, 8, 20, 19, 5, 0, 0, time.Local)
	assert.Equal(t, time.Date(2025, 8, 21, 0, 0, 0, 0, time.Local), StartDate(lateEvening))

	sixSharp := time.Date(2025, 8, 20, 18, 59, 0, 0, time.Local)
	assert.Equal(t, time.Date(2025, 8, 20, 0, 0, 0, 0, time.Local), StartDate(sixSharp))
}

func TestCheck(t *testing.T) {
	start := time.Date(2025, 8, 20, 0, 0, 0, 0, time.Local)
	svc := &fakeCalendarService{
		calendars: []interfaces.CalendarInfo{
			{ID: "personal-id", Summary: "Personal"},
			{ID: "work-id", Summary: "Work"},
		},
		events: map[string][]models.CalendarEvent{
			"personal-id": {
				{Summary: "Dinner", Start: start.Add(19 * time.Hour), End: start.Add(21 * time.Hour)},
				{Summary: "Lunch", Start: start.Add(12 * time.Hour), End: start.Add(13 * time.Hour)},
			},
			"work-id": {
				{Summary: "Standup", Start: start.Add(19 * time.Hour)},
			},
		},
	}

	days, err := Check(svc, map[string]bool{"Personal": true}, Options{
		Days: 2, HourFrom: 18, HourTo: 22, Start: start,
	}, &bytes.Buffer{})
	require.NoError(t, err)
	require.Len(t, days, 2)

	// Only the selected calendar's evening events count.
	require.Len(t, days[0].Events, 1)
	assert.Equal(t, "Dinner", days[0].Events[0].Summary)
	assert.True(t, days[1].IsAvailable())
}

func TestCheckCalendarErrorIsReportedNotFatal(t *testing.T) {
	start := time.Date(2025, 8, 20, 0, 0, 0, 0, time.Local)
	svc := &fakeCalendarService{
		calendars: []interfaces.CalendarInfo{{ID: "broken-id", Summary: "Broken"}},
		failing:   map[string]bool{"broken-id": true},
	}

	var errOut bytes.Buffer
	days, err := Check(svc, map[string]bool{"Broken": true}, Options{
		Days: 1, HourFrom: 18, HourTo: 22, Start: start,
	}, &errOut)
	require.NoError(t, err)
	require.Len(t, days, 1)

	assert.True(t, days[0].IsAvailable())
	assert.Contains(t, errOut.String(), "Error retrieving events for calendar Broken")
}

func TestFilter(t *testing.T) {
	busy := models.Day{Events: []models.CalendarEvent{{Summary: "x"}}}
	free := models.Day{}
	days := []models.Day{busy, free}

	assert.Len(t, Filter(days, "all"), 2)
	require.Len(t, Filter(days, "free"), 1)
	assert.True(t, Filter(days, "free")[0].IsAvailable())
	require.Len(t, Filter(days, "busy"), 1)
	assert.False(t, Filter(days, "busy")[0].IsAvailable())
}

func TestPrintStats(t *testing.T) {
	days := []models.Day{
		{},
		{Events: []models.CalendarEvent{{Summary: "x"}}},
		{},
	}

	var buf bytes.Buffer
	PrintStats(&buf, days)
	assert.Equal(t, "Total days: 3\nFree days: 2\nBusy days: 1\n", buf.String())
}

func TestPrint(t *testing.T) {
	date := time.Date(2025, 8, 20, 0, 0, 0, 0, time.Local) // a Wednesday
	busy := models.Day{Date: date, Events: []models.CalendarEvent{{
		Summary: "Dinner",
		Start:   date.Add(19 * time.Hour),
		End:     date.Add(21 * time.Hour),
	}}}
	free := models.Day{Date: date.AddDate(0, 0, 1)}

	var freeOut bytes.Buffer
	Print(&freeOut, []models.Day{free}, "free")
	assert.Equal(t, "2025-08-21 (Thursday)\n", freeOut.String())

	var allOut bytes.Buffer
	Print(&allOut, []models.Day{busy, free}, "all")
	assert.Equal(t,
		"2025-08-20 (Wednesday) - Busy\n"+
			"  19:00 - 21:00: Dinner\n\n"+
			"2025-08-21 (Thursday) - Available\n\n",
		allOut.String())
}
