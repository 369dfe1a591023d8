package fuzzy

import (
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Match is a candidate with its relevance score.
type Match struct {
	Text  string
	Score float64
}

// LevenshteinDistance calculates the edit distance between two strings
// This measures how many single-character edits (insertions, deletions, or substitutions)
// are required to change one string into another
func LevenshteinDistance(s1, s2 string) int {
	r1 := []rune(normalizeString(s1))
	r2 := []rune(normalizeString(s2))
	m := len(r1)
	n := len(r2)

	if m == 0 {
		return n
	}
	if n == 0 {
		return m
	}

	// Two rows are enough: d[i][j] only looks at row i-1.
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
			curr[j] = min(
				prev[j]+1,      // deletion
				curr[j-1]+1,    // insertion
				prev[j-1]+cost, // substitution
			)
		}
		prev, curr = curr, prev
	}

	return prev[n]
}

// FuzzyMatch checks if query fuzzy-matches text within a given threshold
// threshold is the maximum allowed edit distance
func FuzzyMatch(query, text string, threshold int) bool {
	query = normalizeString(query)
	text = normalizeString(text)

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

// Score rates how well text matches query. Zero means no match.
// Exact beats prefix beats substring beats a near miss within the typo threshold.
func Score(query, text string) float64 {
	query = normalizeString(query)
	text = normalizeString(text)
	if query == "" || text == "" {
		return 0
	}

	switch {
	case text == query:
		return 100
	case strings.HasPrefix(text, query):
		// Shorter completions rank first.
		return 80 - float64(len(text)-len(query))/10
	case containsWord(text, query):
		return 70
	case strings.Contains(text, query):
		return 60
	}

	best := 0.0
	threshold := Threshold(query)
	for _, word := range append(strings.Fields(text), text) {
		dist := LevenshteinDistance(query, word)
		if dist <= threshold {
			if s := 40 - float64(dist)*10; s > best {
				best = s
			}
		}
	}
	return best
}

// Rank scores every candidate against query and returns the matches best first,
// ties broken alphabetically. limit <= 0 means no limit.
func Rank(query string, candidates []string, limit int) []Match {
	matches := make([]Match, 0, len(candidates))
	for _, c := range candidates {
		if s := Score(query, c); s > 0 {
			matches = append(matches, Match{Text: c, Score: s})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Score != matches[j].Score {
			return matches[i].Score > matches[j].Score
		}
		return matches[i].Text < matches[j].Text
	})

	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}
	return matches
}

// Threshold is the typo tolerance for a query of this length.
func Threshold(query string) int {
	n := len([]rune(query))
	switch {
	case n <= 3:
		return 1
	case n >= 8:
		return 3
	default:
		return 2
	}
}

// Helper functions

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

// removeAccents removes diacritical marks so "café" matches "cafe"
func removeAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	// đ has no decomposition.
	return strings.NewReplacer("đ", "d", "Đ", "D").Replace(out)
}
