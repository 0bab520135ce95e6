// Package address canonicalizes street addresses, generates plausible
// spelling variations, and fuzzy-matches them against a candidate index
// of previously known addresses.
package address

import (
	"regexp"
	"strings"

	"github.com/azroofops/backend/internal/geo"
)

var directionWords = map[string]string{
	"n":  "north",
	"s":  "south",
	"e":  "east",
	"w":  "west",
	"ne": "northeast",
	"nw": "northwest",
	"se": "southeast",
	"sw": "southwest",
}

var streetTypeWords = map[string]string{
	"st":   "street",
	"ave":  "avenue",
	"av":   "avenue",
	"rd":   "road",
	"dr":   "drive",
	"ln":   "lane",
	"blvd": "boulevard",
	"pkwy": "parkway",
	"ct":   "court",
	"cir":  "circle",
	"pl":   "place",
	"ter":  "terrace",
	"trl":  "trail",
	"hwy":  "highway",
	"loop": "loop",
	"way":  "way",
}

// The reverse maps carry one canonical abbreviation per expanded word,
// used when generating variations.
var directionAbbrevs = map[string]string{
	"north":     "n",
	"south":     "s",
	"east":      "e",
	"west":      "w",
	"northeast": "ne",
	"northwest": "nw",
	"southeast": "se",
	"southwest": "sw",
}

var streetTypeAbbrevs = map[string]string{
	"street":    "st",
	"avenue":    "ave",
	"road":      "rd",
	"drive":     "dr",
	"lane":      "ln",
	"boulevard": "blvd",
	"parkway":   "pkwy",
	"court":     "ct",
	"circle":    "cir",
	"place":     "pl",
	"terrace":   "ter",
	"trail":     "trl",
	"highway":   "hwy",
	"loop":      "loop",
	"way":       "way",
}

var (
	stateZipSuffixRe = regexp.MustCompile(`(?i)[,\s]+(az|ariz\.?|arizona)\.?(\s+\d{5}(-\d{4})?)?\s*$`)
	zipSuffixRe      = regexp.MustCompile(`[,\s]+\d{5}(-\d{4})?\s*$`)
	leadingNumberRe  = regexp.MustCompile(`^\d+`)
	nonAlphaNumRe    = regexp.MustCompile(`[^a-z0-9]+`)
)

// Normalize canonicalizes a raw address: lowercase, trailing state/zip
// and known-city suffixes stripped, directional and street-type
// abbreviations expanded, punctuation removed. Returns false when the
// address has no leading street number; such addresses are never
// fuzzy-matched.
func Normalize(raw string) (string, bool) {
	v := strings.ToLower(strings.TrimSpace(raw))
	v = stateZipSuffixRe.ReplaceAllString(v, "")
	v = zipSuffixRe.ReplaceAllString(v, "")
	v = stripCitySuffix(v)

	v = strings.TrimSpace(v)
	if !leadingNumberRe.MatchString(v) {
		return "", false
	}

	tokens := tokenize(v)
	for i, tok := range tokens {
		if full, ok := directionWords[tok]; ok {
			tokens[i] = full
		} else if full, ok := streetTypeWords[tok]; ok {
			tokens[i] = full
		}
	}
	return strings.Join(tokens, " "), true
}

// LooseForm strips a trailing street-type word and the directional word
// after the street number, producing the weakest canonical form. Used
// only for fuzzy comparison, never as an index key.
func LooseForm(normalized string) string {
	tokens := strings.Fields(normalized)
	if len(tokens) > 2 {
		if _, ok := streetTypeAbbrevs[tokens[len(tokens)-1]]; ok {
			tokens = tokens[:len(tokens)-1]
		}
	}
	if len(tokens) > 2 && leadingNumberRe.MatchString(tokens[0]) {
		if _, ok := directionAbbrevs[tokens[1]]; ok {
			tokens = append(tokens[:1], tokens[2:]...)
		}
	}
	return strings.Join(tokens, " ")
}

// StreetNumber returns the leading digit run of an address, or "".
func StreetNumber(s string) string {
	return leadingNumberRe.FindString(strings.TrimSpace(s))
}

func stripCitySuffix(v string) string {
	for _, city := range geo.KnownCities() {
		c := strings.ToLower(city)
		for _, sep := range []string{", ", " "} {
			if strings.HasSuffix(v, sep+c) {
				return strings.TrimRight(strings.TrimSuffix(v, sep+c), ", ")
			}
		}
	}
	return v
}

func tokenize(v string) []string {
	return strings.Fields(nonAlphaNumRe.ReplaceAllString(v, " "))
}
