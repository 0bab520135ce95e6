// Package timeslot maps free-form time strings onto the four fixed
// half-day dispatch windows.
package timeslot

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/azroofops/backend/internal/models"
)

var Slots = []models.TimeSlot{
	{ID: "ts-1", Label: "7:30am - 10am"},
	{ID: "ts-2", Label: "10am - 1pm"},
	{ID: "ts-3", Label: "1pm - 4pm"},
	{ID: "ts-4", Label: "4pm - 7pm"},
}

var timeStartRe = regexp.MustCompile(`^\s*(\d{1,2})(?::(\d{2}))?\s*(am|pm)?`)

// Classify maps a time string to a slot id. The hour is read from the
// start of the string; anything outside the four windows returns "".
func Classify(timeString string) string {
	hour, ok := parseHour24(timeString)
	if !ok {
		window, vague := DefaultWindow(timeString)
		if !vague {
			return ""
		}
		hour, ok = parseHour24(window)
		if !ok {
			return ""
		}
	}
	switch {
	case hour >= 7 && hour < 10:
		return "ts-1"
	case hour >= 10 && hour < 13:
		return "ts-2"
	case hour >= 13 && hour < 16:
		return "ts-3"
	case hour >= 16 && hour < 19:
		return "ts-4"
	default:
		return ""
	}
}

// SortableHour returns a 24-hour value usable for display ordering.
// An hour between 1 and 6 with no am/pm marker is treated as PM; the
// source data abbreviates afternoon slots without markers far more
// often than morning ones. Approximation, not a guarantee.
func SortableHour(timeString string) (int, bool) {
	m := timeStartRe.FindStringSubmatch(strings.ToLower(timeString))
	if m == nil {
		return 0, false
	}
	hour, err := strconv.Atoi(m[1])
	if err != nil || hour > 23 {
		return 0, false
	}
	marker := m[3]
	switch marker {
	case "pm":
		if hour < 12 {
			hour += 12
		}
	case "am":
		if hour == 12 {
			hour = 0
		}
	default:
		if hour >= 1 && hour <= 6 {
			hour += 12
		}
	}
	return hour, true
}

// DefaultWindow maps a vague descriptive timeframe to a fixed window.
func DefaultWindow(timeframe string) (string, bool) {
	v := strings.ToLower(strings.TrimSpace(timeframe))
	switch {
	case strings.Contains(v, "morning"):
		return "7:30am - 10am", true
	case strings.Contains(v, "afternoon"):
		return "1pm - 4pm", true
	case strings.Contains(v, "evening"):
		return "4pm - 7pm", true
	}
	return "", false
}

func parseHour24(timeString string) (int, bool) {
	m := timeStartRe.FindStringSubmatch(strings.ToLower(timeString))
	if m == nil {
		return 0, false
	}
	hour, err := strconv.Atoi(m[1])
	if err != nil || hour > 23 {
		return 0, false
	}
	switch m[3] {
	case "pm":
		if hour < 12 {
			hour += 12
		}
	case "am":
		if hour == 12 {
			hour = 0
		}
	}
	return hour, true
}
