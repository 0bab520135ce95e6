package schedule

import (
	"fmt"
	"strings"
	"testing"

	"github.com/azroofops/backend/internal/models"
)

func testParser() *Parser {
	seq := 0
	return &Parser{
		Splitter: &SectionSplitter{Now: fixedNow},
		NewID: func() string {
			seq++
			return fmt.Sprintf("job-%d", seq)
		},
		Clock: fixedNow,
	}
}

func TestParseEndToEnd(t *testing.T) {
	roster := []models.Rep{{ID: "r1", Name: "John Smith"}}
	text := strings.Join([]string{
		"Monday, November 3rd, 2025",
		"7:30am - 10am (4)",
		"PHOENIX Tile 2500sq 2S John Smith - 123 N Central Ave",
		"Mesa Shingles 15yrs 456 E Main St",
		"random note line",
	}, "\n")

	results := testParser().Parse(text, roster)
	if len(results) != 1 {
		t.Fatalf("expected 1 section result, got %d", len(results))
	}
	r := results[0]
	if r.DateKey != "2025-11-03" {
		t.Fatalf("unexpected date key: %s", r.DateKey)
	}
	if len(r.Jobs) != 2 {
		t.Fatalf("expected 2 jobs, got %d: %+v", len(r.Jobs), r.Jobs)
	}

	first := r.Jobs[0]
	if first.City != "PHOENIX" || first.Address != "123 N Central Ave" {
		t.Fatalf("unexpected first job: %+v", first)
	}
	if first.Notes != "Tile 2500sq 2S (Rep: John Smith)" {
		t.Fatalf("unexpected notes: %q", first.Notes)
	}
	if first.OriginalTimeframe != "7:30am - 10am" {
		t.Fatalf("unexpected timeframe: %q", first.OriginalTimeframe)
	}

	second := r.Jobs[1]
	if second.City != "MESA" || second.Address != "456 E Main St" {
		t.Fatalf("unexpected second job: %+v", second)
	}
	if second.Notes != "Shingles 15yrs" {
		t.Fatalf("unexpected notes: %q", second.Notes)
	}

	if len(r.Assignments) != 1 {
		t.Fatalf("expected 1 assignment, got %d", len(r.Assignments))
	}
	a := r.Assignments[0]
	if a.JobID != first.ID || a.RepID != "r1" || a.SlotID != "ts-1" {
		t.Fatalf("unexpected assignment: %+v", a)
	}
}

func TestParseSectionNoAssignmentOutsideSlots(t *testing.T) {
	p := testParser()
	matcher := NewRepMatcher([]models.Rep{{ID: "r1", Name: "John Smith"}})
	section := models.DaySection{
		DateKey: "2025-11-03",
		Lines: []string{
			"11pm - 12am (2)",
			"PHOENIX Tile John Smith - 123 N Central Ave",
		},
	}

	r := p.ParseSection(section, matcher)
	if len(r.Jobs) != 1 {
		t.Fatalf("expected 1 job, got %d", len(r.Jobs))
	}
	if r.Jobs[0].OriginalTimeframe != "11pm - 12am" {
		t.Fatalf("timeframe should still be recorded: %q", r.Jobs[0].OriginalTimeframe)
	}
	if len(r.Assignments) != 0 {
		t.Fatalf("no assignment expected for an unclassifiable timeframe: %+v", r.Assignments)
	}
}

func TestParseSectionNoAssignmentWithoutTimeframe(t *testing.T) {
	p := testParser()
	matcher := NewRepMatcher([]models.Rep{{ID: "r1", Name: "John Smith"}})
	section := models.DaySection{
		DateKey: "2025-11-03",
		Lines:   []string{"PHOENIX Tile John Smith - 123 N Central Ave"},
	}

	r := p.ParseSection(section, matcher)
	if len(r.Jobs) != 1 || len(r.Assignments) != 0 {
		t.Fatalf("expected job without assignment, got %+v", r)
	}
}

func TestParseLineZipExtraction(t *testing.T) {
	p := testParser()
	matcher := NewRepMatcher([]models.Rep{{ID: "r1", Name: "John Smith"}})

	job, rep, ok := p.parseLine("PHOENIX 85004 Tile John Smith - 123 N Central Ave", matcher)
	if !ok {
		t.Fatal("expected a job")
	}
	if rep == nil || rep.ID != "r1" {
		t.Fatalf("expected rep match, got %+v", rep)
	}
	if job.ZipCode != "85004" {
		t.Fatalf("unexpected zip: %q", job.ZipCode)
	}
	if job.Notes != "Tile (Rep: John Smith)" {
		t.Fatalf("unexpected notes: %q", job.Notes)
	}
}

func TestParseLineTimestampSuffixStripped(t *testing.T) {
	p := testParser()
	matcher := NewRepMatcher(nil)

	job, _, ok := p.parseLine("PHOENIX Tile 123 N Central Ave - Monday at 9:15 AM MST", matcher)
	if !ok {
		t.Fatal("expected a job")
	}
	if job.Address != "123 N Central Ave" {
		t.Fatalf("timestamp suffix leaked into address: %q", job.Address)
	}
}

func TestParseLineCityFromAddressSuffix(t *testing.T) {
	p := testParser()
	matcher := NewRepMatcher([]models.Rep{{ID: "r1", Name: "John Smith"}})

	job, _, ok := p.parseLine("John Smith - 123 N Central Ave, Phoenix, AZ", matcher)
	if !ok {
		t.Fatal("expected a job")
	}
	if job.City != "PHOENIX" {
		t.Fatalf("city not backfilled from address suffix: %+v", job)
	}
}

func TestParseLineRejectsNonJobs(t *testing.T) {
	p := testParser()
	matcher := NewRepMatcher(nil)

	for _, line := range []string{
		"",
		"   ",
		"random note line",
		"call the office before noon",
	} {
		if _, _, ok := p.parseLine(line, matcher); ok {
			t.Fatalf("line %q should not produce a job", line)
		}
	}
}

func TestParserClockStampsUTC(t *testing.T) {
	p := testParser()
	matcher := NewRepMatcher(nil)
	job, _, ok := p.parseLine("PHOENIX Tile 123 N Central Ave", matcher)
	if !ok {
		t.Fatal("expected a job")
	}
	want := fixedNow().UTC()
	if !job.CreatedAt.Equal(want) {
		t.Fatalf("CreatedAt = %v, want %v", job.CreatedAt, want)
	}
	if _, offset := job.CreatedAt.Zone(); offset != 0 {
		t.Fatalf("CreatedAt not UTC: %v", job.CreatedAt)
	}
}
