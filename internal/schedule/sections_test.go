package schedule

import (
	"testing"
	"time"
)

func fixedNow() time.Time {
	return time.Date(2025, time.November, 1, 8, 0, 0, 0, time.Local)
}

func TestSplitBasic(t *testing.T) {
	s := &SectionSplitter{Now: fixedNow}
	text := "ignored preamble line\n" +
		"Monday, November 3rd, 2025\n" +
		"line one\n" +
		"\n" +
		"line two\n" +
		"Tuesday, November 4th, 2025\n" +
		"line three\n"

	sections := s.Split(text)
	if len(sections) != 2 {
		t.Fatalf("expected 2 sections, got %d", len(sections))
	}
	if sections[0].DateKey != "2025-11-03" || sections[1].DateKey != "2025-11-04" {
		t.Fatalf("unexpected date keys: %+v", sections)
	}
	if len(sections[0].Lines) != 2 || sections[0].Lines[0] != "line one" {
		t.Fatalf("unexpected lines: %+v", sections[0].Lines)
	}
}

func TestSplitMergesSameDate(t *testing.T) {
	s := &SectionSplitter{Now: fixedNow}
	text := "Mon Nov 3, 2025\nfirst\nTue Nov 4, 2025\nother\nMonday, November 3rd, 2025\nsecond\n"

	sections := s.Split(text)
	if len(sections) != 2 {
		t.Fatalf("expected 2 sections, got %d", len(sections))
	}
	if sections[0].DateKey != "2025-11-03" {
		t.Fatalf("unexpected first date: %s", sections[0].DateKey)
	}
	if len(sections[0].Lines) != 2 || sections[0].Lines[1] != "second" {
		t.Fatalf("same-date sections not merged: %+v", sections[0].Lines)
	}
}

func TestSplitDropsPastDates(t *testing.T) {
	s := &SectionSplitter{Now: func() time.Time {
		return time.Date(2025, time.November, 4, 8, 0, 0, 0, time.Local)
	}}
	text := "Monday, November 3rd, 2025\nold line\nTuesday, November 4th, 2025\ntoday line\n"

	sections := s.Split(text)
	if len(sections) != 1 {
		t.Fatalf("expected only today's section, got %d", len(sections))
	}
	if sections[0].DateKey != "2025-11-04" {
		t.Fatalf("unexpected date: %s", sections[0].DateKey)
	}
}

func TestSplitNoHeaders(t *testing.T) {
	s := &SectionSplitter{Now: fixedNow}
	if sections := s.Split("just some text\nwith no headers\n"); len(sections) != 0 {
		t.Fatalf("expected no sections, got %+v", sections)
	}
}

func TestParseDateHeaderRejectsTimestampLines(t *testing.T) {
	// An export timestamp mentions a date without being a header.
	if _, ok := parseDateHeader("Exported Monday, November 3rd, 2025 at 9:15"); ok {
		t.Fatal("timestamp line accepted as header")
	}
	// Long prose lines mentioning a date are not headers either.
	if _, ok := parseDateHeader("Please reschedule the job from Monday, November 3rd, 2025 thanks"); ok {
		t.Fatal("prose line accepted as header")
	}
	if _, ok := parseDateHeader("Wed. Nov. 5th, 2025"); !ok {
		t.Fatal("abbreviated header rejected")
	}
}
