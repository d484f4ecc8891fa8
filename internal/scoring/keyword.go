package scoring

import (
	"strings"
	"unicode/utf8"

	"alfredoptarigan/resume-analyzer/internal/models"
)

const (
	KeywordMaxPoints        = 40
	keywordPointsPerKeyword = 8
	partialTokenMinLength   = 3
)

// ScoreKeywords awards full per-keyword credit for a case-insensitive substring hit in
// the text, and half credit when the keyword only appears inside a token longer than
// three characters. Both kinds of hit count as matched.
func ScoreKeywords(text string, keywords []string) models.PartialScore {
	result := models.PartialScore{
		Category:  models.CategoryKeywords,
		Matched:   []string{},
		Unmatched: []string{},
	}
	if len(keywords) == 0 {
		return result
	}

	maxPoints := min(KeywordMaxPoints, keywordPointsPerKeyword*len(keywords))
	result.Max = maxPoints

	lower := strings.ToLower(text)
	var tokens []string
	for _, word := range strings.Fields(text) {
		if utf8.RuneCountInString(word) > partialTokenMinLength {
			tokens = append(tokens, strings.ToLower(word))
		}
	}

	// Credit is counted in half-keyword units so the truncation below is exact.
	halves := 0
	for _, kw := range keywords {
		needle := strings.ToLower(kw)
		switch {
		case strings.Contains(lower, needle):
			halves += 2
			result.Matched = append(result.Matched, kw)
		case containsInAny(tokens, needle):
			halves++
			result.Matched = append(result.Matched, kw)
		default:
			result.Unmatched = append(result.Unmatched, kw)
		}
	}

	result.Points = maxPoints * halves / (2 * len(keywords))
	return result
}

func containsInAny(tokens []string, needle string) bool {
	for _, token := range tokens {
		if strings.Contains(token, needle) {
			return true
		}
	}
	return false
}
