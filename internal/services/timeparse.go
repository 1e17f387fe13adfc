package services

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	reDecimalHours   = regexp.MustCompile(`(?i)^([0-9.]+)h?$`)
	reHoursMinutes   = regexp.MustCompile(`(?i)^([0-9]+)h\s*([0-9]+)m?$`)
	reColonTime      = regexp.MustCompile(`^([0-9]+):([0-9]+)$`)
	reMinutes        = regexp.MustCompile(`(?i)^([0-9]+)m?$`)
	reMeetingHM      = regexp.MustCompile(`^(\d+(?:\.\d+)?)h(?:(\d+)m)?$`)
	reMeetingHours   = regexp.MustCompile(`^(\d+(?:\.\d+)?)h?$`)
	reMeetingMinutes = regexp.MustCompile(`^(\d+)m$`)
)

// ParseWorklogTime parses the flexible time formats accepted by the
// worklog shell and returns seconds plus a normalized display string:
//
//	1.5h    decimal hours
//	3h 10m  hours and minutes
//	3h10    hours and minutes without unit
//	3:10    hours:minutes
//	30m     minutes
//
// ok is false when the string does not parse or minutes overflow.
func ParseWorklogTime(input string) (seconds int, formatted string, ok bool) {
	input = strings.TrimSpace(input)

	if m := reDecimalHours.FindStringSubmatch(input); m != nil {
		if hours, err := strconv.ParseFloat(m[1], 64); err == nil {
			return int(hours * 3600), formatDecimalHours(hours), true
		}
	}

	if m := reHoursMinutes.FindStringSubmatch(input); m != nil {
		hours, err1 := strconv.Atoi(m[1])
		minutes, err2 := strconv.Atoi(m[2])
		if err1 == nil && err2 == nil {
			return hours*3600 + minutes*60, formatHoursMinutes(hours, minutes), true
		}
	}

	if m := reColonTime.FindStringSubmatch(input); m != nil {
		hours, err1 := strconv.Atoi(m[1])
		minutes, err2 := strconv.Atoi(m[2])
		if err1 == nil && err2 == nil {
			if minutes >= 60 {
				return 0, "", false
			}
			return hours*3600 + minutes*60, formatHoursMinutes(hours, minutes), true
		}
	}

	if m := reMinutes.FindStringSubmatch(input); m != nil {
		if minutes, err := strconv.Atoi(m[1]); err == nil {
			return minutes * 60, fmt.Sprintf("%dm", minutes), true
		}
	}

	return 0, "", false
}

func formatDecimalHours(hours float64) string {
	if hours >= 1 {
		whole := int(hours)
		minutes := int((hours - float64(whole)) * 60)
		return formatHoursMinutes(whole, minutes)
	}
	return fmt.Sprintf("%dm", int(hours*60))
}

func formatHoursMinutes(hours, minutes int) string {
	if hours > 0 && minutes > 0 {
		return fmt.Sprintf("%dh %dm", hours, minutes)
	}
	if hours > 0 {
		return fmt.Sprintf("%dh", hours)
	}
	return fmt.Sprintf("%dm", minutes)
}

// FormatDuration renders seconds as "Xh Ym", dropping empty parts.
func FormatDuration(seconds int) string {
	hours := seconds / 3600
	minutes := (seconds % 3600) / 60
	return formatHoursMinutes(hours, minutes)
}

// ParseMeetingDuration parses a meeting length like "1h", "1.5h",
// "30m" or "1h30m" into seconds.
func ParseMeetingDuration(input string) (int, error) {
	input = strings.ToLower(strings.TrimSpace(input))

	if m := reMeetingHM.FindStringSubmatch(input); m != nil && m[2] != "" {
		hours, _ := strconv.ParseFloat(m[1], 64)
		minutes, _ := strconv.Atoi(m[2])
		return int(hours*3600) + minutes*60, nil
	}

	if m := reMeetingHours.FindStringSubmatch(input); m != nil {
		hours, err := strconv.ParseFloat(m[1], 64)
		if err == nil {
			return int(hours * 3600), nil
		}
	}

	if m := reMeetingMinutes.FindStringSubmatch(input); m != nil {
		minutes, _ := strconv.Atoi(m[1])
		return minutes * 60, nil
	}

	return 0, fmt.Errorf("invalid time format: %s", input)
}
