// Package fuzzy provides typo-tolerant matching for the task search box.
package fuzzy

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// LevenshteinDistance calculates the edit distance between two strings.
// Both strings are normalised first, so case and accents do not count.
func LevenshteinDistance(s1, s2 string) int {
	r1 := []rune(normalizeString(s1))
	r2 := []rune(normalizeString(s2))
	m, n := len(r1), len(r2)

	if m == 0 {
		return n
	}
	if n == 0 {
		return m
	}

	// two rolling rows are enough
	prev := make([]int, n+1)
	curr := make([]int, n+1)
	for j := 0; j <= n; j++ {
		prev[j] = j
	}

	for i := 1; i <= m; i++ {
		curr[0] = i
		for j := 1; j <= n; j++ {
			cost := 0
			if r1[i-1] != r2[j-1] {
				cost = 1
			}
			curr[j] = min3(
				prev[j]+1,      // deletion
				curr[j-1]+1,    // insertion
				prev[j-1]+cost, // substitution
			)
		}
		prev, curr = curr, prev
	}

	return prev[n]
}

// FuzzyMatch checks if query fuzzy-matches text within a given threshold.
// threshold is the maximum allowed edit distance against a single word.
func FuzzyMatch(query, text string, threshold int) bool {
	query = normalizeString(query)
	text = normalizeString(text)
	if query == "" {
		return true
	}

	if strings.Contains(text, query) {
		return true
	}

	for _, word := range strings.Fields(text) {
		if strings.HasPrefix(word, query) {
			return true
		}
		if LevenshteinDistance(query, word) <= threshold {
			return true
		}
	}

	return false
}

// Threshold picks the typo tolerance for a query by its length.
func Threshold(query string) int {
	switch n := len([]rune(normalizeString(query))); {
	case n <= 3:
		return 0
	case n >= 8:
		return 2
	default:
		return 1
	}
}

// MatchTask reports whether a task with the given title and description matches query.
func MatchTask(query, title, description string) bool {
	threshold := Threshold(query)
	if FuzzyMatch(query, title, threshold) {
		return true
	}
	return description != "" && FuzzyMatch(query, description, threshold)
}

// RelevanceScore scores how well a task matches query. Higher is better;
// title hits outweigh description hits.
func RelevanceScore(query, title, description string) float64 {
	query = normalizeString(query)
	if query == "" {
		return 0
	}
	return fieldScore(query, title, 100, 50) + fieldScore(query, description, 60, 30)
}

func fieldScore(query, field string, containsWeight, fuzzyWeight float64) float64 {
	field = normalizeString(field)
	if field == "" {
		return 0
	}

	if strings.Contains(field, query) {
		score := containsWeight
		if containsWord(field, query) {
			score += containsWeight / 2
		}
		return score
	}

	score := 0.0
	for _, word := range strings.Fields(field) {
		if strings.HasPrefix(word, query) {
			score += fuzzyWeight * 0.8
		}
		if dist := LevenshteinDistance(query, word); dist <= 2 {
			score += fuzzyWeight - float64(dist)*fuzzyWeight/3
		}
	}
	return score
}

// Helper functions

func min3(a, b, c int) int {
	if a < b {
		if a < c {
			return a
		}
		return c
	}
	if b < c {
		return b
	}
	return c
}

// normalizeString lowercases, strips accents and collapses whitespace
func normalizeString(s string) string {
	s = strings.ToLower(removeAccents(s))
	return strings.Join(strings.Fields(s), " ")
}

// containsWord checks if text contains query as a whole word
func containsWord(text, query string) bool {
	for _, word := range strings.Fields(text) {
		if word == query {
			return true
		}
	}
	return false
}

// removeAccents decomposes s and drops the combining marks, so "café" matches "cafe"
func removeAccents(s string) string {
	var result strings.Builder
	for _, r := range norm.NFD.String(s) {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		result.WriteRune(r)
	}
	return result.String()
}
