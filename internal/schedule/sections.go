// Package schedule turns pasted free-text daily schedules into
// structured job records. It is a best-effort extractor: lines that
// cannot form a valid job are dropped, never surfaced as errors.
package schedule

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/azroofops/backend/internal/models"
)

var (
	dateHeaderRe = regexp.MustCompile(`(?i)\b(mon|tue|wed|thu|fri|sat|sun)[a-z]*[,.]?\s+(jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\.?\s+(\d{1,2})(?:st|nd|rd|th)?,?\s+(\d{4})`)
	atClockRe    = regexp.MustCompile(`(?i)\bat\s+\d{1,2}:\d{2}`)
)

var monthByPrefix = map[string]time.Month{
	"jan": time.January, "feb": time.February, "mar": time.March,
	"apr": time.April, "may": time.May, "jun": time.June,
	"jul": time.July, "aug": time.August, "sep": time.September,
	"oct": time.October, "nov": time.November, "dec": time.December,
}

// SectionSplitter splits multi-day pasted text into per-day blocks.
// Now is injectable so past-date dropping is testable; it defaults to
// time.Now.
type SectionSplitter struct {
	Now func() time.Time
}

// Split returns one DaySection per detected date header, in order of
// first appearance. Sections resolving to the same calendar date are
// merged; sections strictly before the current local date are dropped.
// Lines before the first header are ignored. Never fails: text with no
// valid header yields zero sections.
func (s *SectionSplitter) Split(text string) []models.DaySection {
	now := time.Now()
	if s != nil && s.Now != nil {
		now = s.Now()
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	byDate := map[string]int{}
	var sections []models.DaySection
	current := -1

	for _, rawLine := range strings.Split(text, "\n") {
		line := strings.TrimRight(rawLine, "\r")
		if dateKey, ok := parseDateHeader(line); ok {
			if idx, seen := byDate[dateKey]; seen {
				current = idx
			} else {
				sections = append(sections, models.DaySection{DateKey: dateKey})
				current = len(sections) - 1
				byDate[dateKey] = current
			}
			continue
		}
		if current < 0 {
			continue
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		sections[current].Lines = append(sections[current].Lines, line)
	}

	out := make([]models.DaySection, 0, len(sections))
	for _, sec := range sections {
		day, err := time.ParseInLocation("2006-01-02", sec.DateKey, now.Location())
		if err != nil || day.Before(today) {
			continue
		}
		out = append(out, sec)
	}
	return out
}

// parseDateHeader decides whether a line is a true date header. A line
// qualifies when it matches weekday+month+day+year, has fewer than 6
// whitespace-separated tokens, and does not carry an "at H:MM"
// timestamp. An export timestamp line mentions a date without being a
// header.
func parseDateHeader(line string) (string, bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return "", false
	}
	m := dateHeaderRe.FindStringSubmatch(trimmed)
	if m == nil {
		return "", false
	}
	if len(strings.Fields(trimmed)) >= 6 {
		return "", false
	}
	if atClockRe.MatchString(trimmed) {
		return "", false
	}

	month, ok := monthByPrefix[strings.ToLower(m[2])]
	if !ok {
		return "", false
	}
	day, err := strconv.Atoi(m[3])
	if err != nil || day < 1 || day > 31 {
		return "", false
	}
	year, err := strconv.Atoi(m[4])
	if err != nil {
		return "", false
	}
	return time.Date(year, month, day, 0, 0, 0, 0, time.Local).Format("2006-01-02"), true
}
