package address

import (
	"sort"

	"github.com/agnivade/levenshtein"

	"github.com/azroofops/backend/internal/models"
)

// DefaultThreshold is the minimum similarity a fuzzy candidate must
// exceed to be considered a match.
const DefaultThreshold = 0.85

// Similarity scores two strings as 1 - distance/maxLen. Identical
// strings score 1.0.
func Similarity(a, b string) float64 {
	if a == b {
		return 1.0
	}
	maxLen := len([]rune(a))
	if l := len([]rune(b)); l > maxLen {
		maxLen = l
	}
	if maxLen == 0 {
		return 1.0
	}
	return 1.0 - float64(levenshtein.ComputeDistance(a, b))/float64(maxLen)
}

// FindBestMatch resolves a target address against a candidate index of
// address -> external id. Exact variation hits short-circuit with score
// 1.0. Otherwise only candidates sharing the target's leading street
// number are scanned; the scan keeps the best similarity across all
// target variations, and a candidate wins only when its score exceeds
// both the running best and the threshold. Targets without a street
// number are an automatic no-match.
func FindBestMatch(target string, index map[string]string, threshold float64) models.MatchResult {
	variations := Variations(target)
	for _, v := range variations {
		if value, ok := index[v]; ok {
			return models.MatchResult{Match: v, Score: 1.0, Value: value, Found: true}
		}
	}

	streetNumber := StreetNumber(target)
	if streetNumber == "" {
		return models.MatchResult{}
	}

	// The loose form joins the scan set for fuzzy comparison only; it is
	// never an exact-match key.
	if normalized, ok := Normalize(target); ok {
		if loose := LooseForm(normalized); loose != normalized {
			variations = append(variations, loose)
		}
	}

	best := models.MatchResult{}
	for candidate, value := range index {
		if StreetNumber(candidate) != streetNumber {
			continue
		}
		score := 0.0
		for _, v := range variations {
			if s := Similarity(v, candidate); s > score {
				score = s
			}
		}
		if score > best.Score && score > threshold {
			best = models.MatchResult{Match: candidate, Score: score, Value: value, Found: true}
		}
	}
	return best
}

// BuildVariationIndex expands every candidate key into its variation
// set, each pointing at the original value. First writer wins on
// collisions; keys are walked in sorted order so the result is stable.
func BuildVariationIndex(index map[string]string) map[string]string {
	keys := make([]string, 0, len(index))
	for k := range index {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make(map[string]string, len(index))
	for _, key := range keys {
		for _, v := range Variations(key) {
			if _, exists := out[v]; !exists {
				out[v] = index[key]
			}
		}
	}
	return out
}
