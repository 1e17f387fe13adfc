package interfaces

import (
	"time"

	"randomtools/internal/models"
)

// CalendarInfo identifies one calendar in the user's calendar list.
type CalendarInfo struct {
	ID      string
	Summary string
}

// EventRequest describes a calendar event to create.
type EventRequest struct {
	Title       string
	Description string
	Start       time.Time
	End         time.Time
}

// CalendarService is the slice of the Google Calendar API the tools use.
type CalendarService interface {
	ListCalendars() ([]CalendarInfo, error)
	EventsBetween(calendarID string, from, to time.Time) ([]models.CalendarEvent, error)

	// InsertEvent creates an event and returns its htmlLink.
	InsertEvent(calendarID string, event *EventRequest) (string, error)
}
