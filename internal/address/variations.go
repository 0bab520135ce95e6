package address

import (
	"sort"
	"strings"
)

// Variations generates every plausible spelling of an address by
// substituting abbreviated and expanded forms of each directional and
// street-type word. The normalized form is always a member. Addresses
// without a street number get only the bare cleaned string; variation
// generation (and therefore fuzzy matching) is not attempted for them.
func Variations(raw string) []string {
	normalized, ok := Normalize(raw)
	if !ok {
		return []string{strings.Join(tokenize(strings.ToLower(strings.TrimSpace(raw))), " ")}
	}

	tokens := strings.Fields(normalized)
	options := make([][]string, len(tokens))
	for i, tok := range tokens {
		options[i] = tokenForms(tok)
	}

	seen := map[string]struct{}{}
	var out []string
	combine(options, 0, make([]string, 0, len(tokens)), func(parts []string) {
		v := strings.Join(parts, " ")
		if _, dup := seen[v]; dup {
			return
		}
		seen[v] = struct{}{}
		out = append(out, v)
	})

	if _, dup := seen[normalized]; !dup {
		out = append(out, normalized)
	}
	sort.Strings(out)
	return out
}

// tokenForms lists the spellings one token may take: both the
// abbreviation and the expansion for directionals and street types, the
// token itself for everything else.
func tokenForms(tok string) []string {
	if abbrev, ok := directionAbbrevs[tok]; ok {
		if abbrev == tok {
			return []string{tok}
		}
		return []string{tok, abbrev}
	}
	if abbrev, ok := streetTypeAbbrevs[tok]; ok {
		if abbrev == tok {
			return []string{tok}
		}
		return []string{tok, abbrev}
	}
	return []string{tok}
}

func combine(options [][]string, idx int, acc []string, emit func([]string)) {
	if idx == len(options) {
		emit(acc)
		return
	}
	for _, form := range options[idx] {
		combine(options, idx+1, append(acc, form), emit)
	}
}
