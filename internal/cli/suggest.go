package cli

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

const (
	// maxSuggestDistance is the largest edit distance for a key to be suggested.
	// Shorter keys allow one edit per 3 characters
	maxSuggestDistance = 2
	// minSubsequenceLen is the shortest missing key that is suggested a longer key containing its characters
	minSubsequenceLen = 3
)

// suggestKey returns the present key closest to the missing `key` or "" if none is close enough
func suggestKey(key string, presentKeys []string) string {
	maxDistance := min(maxSuggestDistance, max(1, len(key)/3))
	var ranks fuzzy.Ranks
	for i, candidate := range presentKeys {
		distance := fuzzy.LevenshteinDistance(strings.ToLower(key), strings.ToLower(candidate))
		isClose := distance <= maxDistance && distance < len(key)
		isSubsequence := len(key) >= minSubsequenceLen && fuzzy.MatchFold(key, candidate)
		if !isClose && !isSubsequence {
			continue
		}
		ranks = append(ranks, fuzzy.Rank{
			Source:        key,
			Target:        candidate,
			Distance:      distance,
			OriginalIndex: i,
		})
	}
	if len(ranks) == 0 {
		return ""
	}
	sort.Stable(ranks)
	return ranks[0].Target
}
