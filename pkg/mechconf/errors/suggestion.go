package errors

import (
	"fmt"
	"sort"
	"strings"
)

// maxSuggestionDistance is the largest edit distance still offered as a
// "did you mean" hint.
const maxSuggestionDistance = 4

// SuggestKey suggests the closest valid key for an unrecognized one.
// It returns "" when no key is close enough.
func SuggestKey(unknown string, validKeys []string) string {
	if match, ok := closest(unknown, validKeys); ok {
		return fmt.Sprintf("did you mean '%s'?", match)
	}
	return ""
}

// SuggestReactionType suggests a reaction type tag for an unrecognized one.
func SuggestReactionType(unknown string, validTypes []string) string {
	if len(validTypes) == 0 {
		return ""
	}
	if match, ok := closest(strings.ToUpper(unknown), validTypes); ok {
		return fmt.Sprintf("did you mean '%s'?", match)
	}
	sorted := append([]string(nil), validTypes...)
	sort.Strings(sorted)
	return fmt.Sprintf("valid reaction types: %s", strings.Join(sorted, ", "))
}

// SuggestName suggests a declared name for a dangling reference.
func SuggestName(unknown string, declared []string) string {
	if match, ok := closest(unknown, declared); ok {
		return fmt.Sprintf("did you mean '%s'?", match)
	}
	return ""
}

// SuggestMissingKey suggests adding a required key.
func SuggestMissingKey(key string) string {
	return fmt.Sprintf("add the '%s' key", key)
}

func closest(unknown string, candidates []string) (string, bool) {
	best := ""
	bestDistance := maxSuggestionDistance + 1
	for _, candidate := range candidates {
		if d := levenshteinDistance(unknown, candidate); d < bestDistance {
			bestDistance = d
			best = candidate
		}
	}
	// Very short keys ("A", "B") are within a few edits of everything.
	if best == "" || bestDistance >= len(unknown) {
		return "", false
	}
	return best, true
}

// levenshteinDistance computes the Levenshtein distance between two strings.
func levenshteinDistance(s1, s2 string) int {
	if s1 == s2 {
		return 0
	}

	len1 := len(s1)
	len2 := len(s2)

	prev := make([]int, len2+1)
	curr := make([]int, len2+1)
	for j := 0; j <= len2; j++ {
		prev[j] = j
	}

	for i := 1; i <= len1; i++ {
		curr[0] = i
		for j := 1; j <= len2; j++ {
			cost := 1
			if s1[i-1] == s2[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}

	return prev[len2]
}
