package tasks

import (
	"fmt"
	"strings"
)

const observationTemplate = `> Date: %s
> Thread: %s
> Type: %s

# Situation (What happened?)

%s

# Interpretation (How you saw it, what you felt?)

%s

# Approach (How should you approach it in the future?)

%s

`

const journalTemplate = `> Date: %s
> Thread: %s

- [%s] Dreamstate
- [%s] Current plan in-sync
- [%s] Next plan in-sync

# Current plan

## Focus

%s

## Want

%s

# Reflection

## Good (What did you do well today?)

%s

# Better (How could you improve? What could you do better?)

%s

# Best (How should you approach it in the future?)

%s

# Next plan

## Focus

%s

## Want

%s

`

// ObservationTemplate renders an empty observation entry ready for the
// editor.
func ObservationTemplate(date, thread, entryType string) string {
	return fmt.Sprintf(observationTemplate, date, thread, entryType, "", "", "")
}

// RenderObservation renders a stored entry the way the editor template
// looks, for echoing the API response back to the user.
func RenderObservation(payload map[string]any) string {
	return fmt.Sprintf(observationTemplate,
		field(payload, "pub_date"),
		field(payload, "thread"),
		field(payload, "type"),
		field(payload, "situation"),
		field(payload, "interpretation"),
		field(payload, "approach"))
}

// JournalTemplate renders an empty journal entry ready for the editor.
// The checkbox slots start as a single space so they read as unchecked
// Markdown task items.
func JournalTemplate(date, thread string) string {
	return fmt.Sprintf(journalTemplate, date, thread,
		" ", " ", " ", "", "", "", "", "", "", "")
}

// RenderJournal renders a stored journal entry from the API response.
func RenderJournal(payload map[string]any) string {
	return fmt.Sprintf(journalTemplate,
		field(payload, "pub_date"),
		field(payload, "thread"),
		field(payload, "dreamstate"),
		field(payload, "current_in_sync"),
		field(payload, "next_in_sync"),
		field(payload, "current_focus"),
		field(payload, "current_want"),
		field(payload, "good"),
		field(payload, "better"),
		field(payload, "best"),
		field(payload, "next_focus"),
		field(payload, "next_want"))
}

func field(payload map[string]any, key string) string {
	value, ok := payload[key]
	if !ok || value == nil {
		return ""
	}
	if s, ok := value.(string); ok {
		return s
	}
	return strings.TrimSpace(fmt.Sprint(value))
}
