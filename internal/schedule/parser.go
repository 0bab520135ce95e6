package schedule

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/azroofops/backend/internal/geo"
	"github.com/azroofops/backend/internal/models"
	"github.com/azroofops/backend/internal/timeslot"
)

var (
	// Timeframe headers look like "7:30am - 10am (4)": a time range
	// with a trailing parenthesized job count. They set the current
	// timeframe and never produce a job themselves.
	timeframeHeaderRe = regexp.MustCompile(`(?i)^\s*(\d{1,2}(?::\d{2})?\s*(?:am|pm)?\s*[-–]\s*\d{1,2}(?::\d{2})?\s*(?:am|pm)?)\s*\((\d+)\)\s*$`)

	// Trailing paste artifacts: "... - Monday at 9:15 AM MST" and the
	// shorter forms without weekday, clock, or timezone.
	timestampSuffixRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\s*[-–—]?\s*(?:monday|tuesday|wednesday|thursday|friday|saturday|sunday),?\s+at\s+\d{1,2}:\d{2}\s*(?:am|pm)?(?:\s+[a-z]{2,4})?\s*$`),
		regexp.MustCompile(`(?i)\s+at\s+\d{1,2}:\d{2}\s*(?:am|pm)?(?:\s+[a-z]{2,4})?\s*$`),
		regexp.MustCompile(`(?i)\s*[-–—]\s*(?:monday|tuesday|wednesday|thursday|friday|saturday|sunday)(?:,?\s+(?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\.?\s+\d{1,2})?\s*$`),
	}

	// The address is assumed to start at the LAST digit run followed by
	// an uppercase letter; rep names and notes occasionally carry
	// digits, so the last number+capital run wins.
	addressStartRe = regexp.MustCompile(`\d+\s*[A-Z]`)

	// First roof-type/size/age/stories/priority tag, used to split city
	// from notes when no known city prefix matches.
	tagTokenRe = regexp.MustCompile(`(?i)\b(?:tile|shingles?|flat|foam|metal|shake)\b|\b\d+\s*sq\b|\b\d+\s*yrs\b|\b\d+S\b|#|\(recommended reschedule`)

	standaloneZipRe = regexp.MustCompile(`\b\d{5}\b`)
	digitRunRe      = regexp.MustCompile(`\d+`)
	jobAddressRe    = regexp.MustCompile(`\d+\s*[A-Za-z]`)
	alphaRun3Re     = regexp.MustCompile(`[A-Za-z]{3,}`)
	stateCodeRe     = regexp.MustCompile(`(?i)^[a-z]{2}$`)
	fallbackAddrRe  = regexp.MustCompile(`\d`)
)

// Parser wires the section splitter and per-line extraction together.
type Parser struct {
	Splitter *SectionSplitter
	NewID    func() string
	Clock    func() time.Time
}

func NewParser() *Parser {
	return &Parser{
		Splitter: &SectionSplitter{},
		NewID:    uuid.NewString,
		Clock:    time.Now,
	}
}

// Parse splits pasted text into day sections and extracts jobs and
// pre-assignments from each, in order.
func (p *Parser) Parse(text string, roster []models.Rep) []models.ParseResult {
	matcher := NewRepMatcher(roster)
	var out []models.ParseResult
	for _, section := range p.Splitter.Split(text) {
		out = append(out, p.ParseSection(section, matcher))
	}
	return out
}

// ParseSection extracts jobs from one day's lines. A current timeframe
// header is carried across lines; a rep detected inline while a
// timeframe is active yields a pre-assignment. Unparseable lines are
// skipped silently.
func (p *Parser) ParseSection(section models.DaySection, matcher *RepMatcher) models.ParseResult {
	result := models.ParseResult{DateKey: section.DateKey}
	currentTimeframe := ""

	for _, line := range section.Lines {
		if m := timeframeHeaderRe.FindStringSubmatch(line); m != nil {
			currentTimeframe = strings.TrimSpace(m[1])
			continue
		}

		job, rep, ok := p.parseLine(line, matcher)
		if !ok {
			continue
		}
		job.DateKey = section.DateKey
		job.OriginalTimeframe = currentTimeframe
		result.Jobs = append(result.Jobs, job)

		if rep != nil && currentTimeframe != "" {
			if slotID := timeslot.Classify(currentTimeframe); slotID != "" {
				result.Assignments = append(result.Assignments, models.Assignment{
					JobID:      job.ID,
					RepID:      rep.ID,
					SlotID:     slotID,
					AssignedAt: p.now(),
				})
			}
		}
	}
	return result
}

// parseLine runs the extraction stages in their fixed precedence order.
func (p *Parser) parseLine(line string, matcher *RepMatcher) (models.Job, *models.Rep, bool) {
	line = stripTimestampSuffix(line)
	if strings.TrimSpace(line) == "" {
		return models.Job{}, nil, false
	}

	var rep *models.Rep
	if r, cleaned, found := matcher.Match(line); found {
		rep = &r
		line = cleaned
	}

	address, cityAndNotes := splitAddress(line)
	city, notes := splitCityNotes(cityAndNotes)

	zip := ""
	if z := standaloneZipRe.FindString(cityAndNotes); z != "" {
		zip = z
		city = strings.Replace(city, z, "", 1)
		notes = strings.Replace(notes, z, "", 1)
	}
	city = cleanCity(city)
	notes = strings.TrimSpace(notes)

	if address == "" {
		// No number+capital run anywhere: the notes themselves may be
		// the address, but only when they look like one.
		if fallbackAddrRe.MatchString(notes) && alphaRun3Re.MatchString(notes) {
			address = notes
		} else {
			return models.Job{}, nil, false
		}
	}

	if city == "" {
		city = cityFromAddressSuffix(address)
	}
	if city == "" || !jobAddressRe.MatchString(address) {
		return models.Job{}, nil, false
	}

	if rep != nil {
		if notes != "" {
			notes += " "
		}
		notes += "(Rep: " + rep.Name + ")"
	}

	job := models.Job{
		ID:        p.NewID(),
		Address:   strings.TrimSpace(address),
		City:      city,
		ZipCode:   zip,
		Notes:     notes,
		CreatedAt: p.now(),
	}
	return job, rep, true
}

func (p *Parser) now() time.Time {
	if p.Clock != nil {
		return p.Clock().UTC()
	}
	return time.Now().UTC()
}

func stripTimestampSuffix(line string) string {
	for _, re := range timestampSuffixRes {
		line = re.ReplaceAllString(line, "")
	}
	return line
}

// splitAddress cuts the line at the last digit-run+capital occurrence:
// everything from there is the candidate address, everything before it
// is the candidate city-and-notes segment.
func splitAddress(line string) (address, cityAndNotes string) {
	locs := addressStartRe.FindAllStringIndex(line, -1)
	if len(locs) == 0 {
		return "", line
	}
	start := locs[len(locs)-1][0]
	return strings.TrimSpace(line[start:]), line[:start]
}

// splitCityNotes first tries a known-city prefix (longest names first,
// so "Sun City West" beats "Sun City"); failing that it splits at the
// first tag token; failing that the whole segment is the city.
func splitCityNotes(segment string) (city, notes string) {
	trimmed := strings.TrimSpace(segment)
	if trimmed == "" {
		return "", ""
	}
	lowered := strings.ToLower(trimmed)

	for _, known := range geo.KnownCities() {
		k := strings.ToLower(known)
		if !strings.HasPrefix(lowered, k) {
			continue
		}
		if len(trimmed) > len(k) && isAlphaNum(trimmed[len(k)]) {
			continue
		}
		rest := strings.TrimLeft(trimmed[len(k):], " \t-–,:")
		return strings.ToUpper(known), rest
	}

	if loc := tagTokenRe.FindStringIndex(trimmed); loc != nil {
		return trimmed[:loc[0]], trimmed[loc[0]:]
	}
	return trimmed, ""
}

func cleanCity(city string) string {
	city = digitRunRe.ReplaceAllString(city, "")
	return strings.Trim(city, " \t-–,.:;()")
}

// cityFromAddressSuffix backfills a missing city from a comma-delimited
// address suffix, skipping bare state codes and zips.
func cityFromAddressSuffix(address string) string {
	parts := strings.Split(address, ",")
	if len(parts) < 2 {
		return ""
	}
	candidates := []string{}
	if len(parts) >= 3 {
		candidates = append(candidates, parts[len(parts)-2])
	}
	candidates = append(candidates, parts[len(parts)-1], parts[len(parts)-2])
	for _, c := range candidates {
		c = strings.TrimSpace(c)
		if c == "" || stateCodeRe.MatchString(c) || standaloneZipRe.MatchString(c) {
			continue
		}
		if digitRunRe.MatchString(c) {
			continue
		}
		return cleanCity(strings.ToUpper(c))
	}
	return ""
}
