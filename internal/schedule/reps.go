package schedule

import (
	"regexp"
	"sort"
	"strings"

	"github.com/azroofops/backend/internal/models"
)

var (
	parentheticalRe = regexp.MustCompile(`\s*\([^)]*\)`)
	quoteRe         = regexp.MustCompile(`["'` + "`" + `]`)
	multiSpaceRe    = regexp.MustCompile(`\s{2,}`)
	doubleHyphenRe  = regexp.MustCompile(`\s*[-–]{2,}\s*`)
	edgeHyphenRe    = regexp.MustCompile(`^\s*[-–]\s*|\s*[-–]\s*$`)
)

type repEntry struct {
	rep   models.Rep
	terms []string
}

// RepMatcher holds per-rep searchable name variants, longest first, so
// a more specific term always wins over a shorter one.
type RepMatcher struct {
	entries []repEntry
}

// NewRepMatcher builds search terms for each rep in the roster.
// Single first-name tokens are never terms: a rep called "Chandler Lee"
// must only match on the full two-token name, never on "Chandler"
// alone, which collides with the city.
func NewRepMatcher(roster []models.Rep) *RepMatcher {
	m := &RepMatcher{}
	for _, rep := range roster {
		terms := buildSearchTerms(rep.Name)
		if len(terms) == 0 {
			continue
		}
		m.entries = append(m.entries, repEntry{rep: rep, terms: terms})
	}
	return m
}

func buildSearchTerms(name string) []string {
	cleaned := strings.ToLower(name)
	cleaned = quoteRe.ReplaceAllString(cleaned, "")
	cleaned = parentheticalRe.ReplaceAllString(cleaned, "")
	cleaned = strings.TrimSuffix(strings.TrimSpace(cleaned), " phoenix")
	cleaned = strings.TrimSuffix(strings.TrimSpace(cleaned), " tucson")
	cleaned = strings.TrimSpace(multiSpaceRe.ReplaceAllString(cleaned, " "))

	parts := strings.Fields(cleaned)
	seen := map[string]struct{}{}
	var terms []string
	add := func(term string) {
		term = strings.TrimSpace(term)
		if term == "" || !strings.Contains(term, " ") {
			return
		}
		if _, dup := seen[term]; dup {
			return
		}
		seen[term] = struct{}{}
		terms = append(terms, term)
	}

	if len(parts) >= 2 {
		add(cleaned)
	}
	if len(parts) > 2 {
		add(parts[0] + " " + parts[len(parts)-1])
	}
	if len(parts) == 2 && len(parts[1]) == 1 {
		// "Lee Y"-style names stay verbatim as their own term.
		add(parts[0] + " " + parts[1])
	}

	sort.SliceStable(terms, func(i, j int) bool {
		if len(terms[i]) != len(terms[j]) {
			return len(terms[i]) > len(terms[j])
		}
		return terms[i] < terms[j]
	})
	return terms
}

// Match scans the roster in registration order and each rep's terms
// longest-first, looking for a whole-word occurrence in the line. On
// the first hit it returns the rep and the line with the matched name
// and its adjacent separators removed. At most one rep matches per
// line.
func (m *RepMatcher) Match(line string) (models.Rep, string, bool) {
	lowered := strings.ToLower(line)
	for _, entry := range m.entries {
		for _, term := range entry.terms {
			idx := wholeWordIndex(lowered, term)
			if idx < 0 {
				continue
			}
			return entry.rep, removeMatched(line, idx, idx+len(term)), true
		}
	}
	return models.Rep{}, line, false
}

// wholeWordIndex finds term in text with non-alphanumeric (or string
// edge) boundaries on both sides. Both inputs must be lowercase.
func wholeWordIndex(text, term string) int {
	if term == "" {
		return -1
	}
	start := 0
	for {
		idx := strings.Index(text[start:], term)
		if idx < 0 {
			return -1
		}
		abs := start + idx
		end := abs + len(term)
		leftOK := abs == 0 || !isAlphaNum(text[abs-1])
		rightOK := end == len(text) || !isAlphaNum(text[end])
		if leftOK && rightOK {
			return abs
		}
		start = abs + 1
	}
}

// removeMatched cuts [from,to) out of the line, swallowing surrounding
// whitespace and hyphen separators so "Name - 123 Main" collapses
// cleanly.
func removeMatched(line string, from, to int) string {
	for from > 0 && isSeparator(line[from-1]) {
		from--
	}
	for to < len(line) && isSeparator(line[to]) {
		to++
	}
	cleaned := strings.TrimSpace(line[:from]) + " " + strings.TrimSpace(line[to:])
	cleaned = doubleHyphenRe.ReplaceAllString(cleaned, " ")
	cleaned = edgeHyphenRe.ReplaceAllString(cleaned, "")
	cleaned = multiSpaceRe.ReplaceAllString(cleaned, " ")
	return strings.TrimSpace(cleaned)
}

func isSeparator(b byte) bool {
	return b == ' ' || b == '\t' || b == '-'
}

func isAlphaNum(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}
