package parser

import (
	"sort"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// maxSuggestionDistance bounds how far a typo may be from a real command
// before we stop suggesting it.
const maxSuggestionDistance = 2

// SuggestCommand returns up to three command keywords resembling the given
// word, best match first. It is meant for the caller's "unknown command"
// error path; an exact keyword yields itself.
func SuggestCommand(word string) []string {
	if word == "" {
		return nil
	}

	ranks := fuzzy.RankFindFold(word, requestKeywords)
	sort.Sort(ranks)

	var out []string
	for _, r := range ranks {
		out = append(out, r.Target)
	}

	// Fuzzy matching requires the typed characters to appear in order; a
	// transposition like "fecth" gets nothing, so fall back to edit distance.
	if len(out) == 0 {
		for _, kw := range requestKeywords {
			if fuzzy.LevenshteinDistance(word, kw) <= maxSuggestionDistance {
				out = append(out, kw)
			}
		}
	}

	if len(out) > 3 {
		out = out[:3]
	}
	return out
}
