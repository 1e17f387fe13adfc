package models

import "time"

// CalendarEvent is a normalized Google Calendar event. AllDay events
// carry date-only Start/End values.
type CalendarEvent struct {
	ID      string
	Summary string
	Start   time.Time
	End     time.Time
	AllDay  bool
}

// Day is one checked day of evening availability.
type Day struct {
	Date   time.Time
	Events []CalendarEvent
}

// IsAvailable reports whether the evening has no scheduled events.
func (d *Day) IsAvailable() bool {
	return len(d.Events) == 0
}

// Status returns a simple status message.
func (d *Day) Status() string {
	if d.IsAvailable() {
		return "Available"
	}
	return "Busy"
}
