package scoring

import (
	"strings"

	"alfredoptarigan/resume-analyzer/internal/models"
)

const MaxScore = KeywordMaxPoints + StructureMaxPoints + ContentMaxPoints + ATSFormatMaxPoints

const (
	TipExcellent = "Excellent resume! Your resume shows strong ATS compatibility and structure."
	TipSolid     = "Your resume has a solid foundation. Consider the suggestions below to improve your ATS score further."
	TipFiller    = "Your resume structure looks good! Keep up the great work."
)

// Aggregate combines the keyword partial with the prose-producing partials (in order)
// into the final result.
func Aggregate(keywords models.PartialScore, partials ...models.PartialScore) models.AnalysisResult {
	total := capPoints(keywords)
	var tips []string
	for _, p := range partials {
		total += capPoints(p)
		tips = append(tips, p.Tips...)
	}

	score := int(float64(total) / float64(MaxScore) * 100)
	score = max(0, min(100, score))

	tips = dedupe(tips)

	switch {
	case score >= 80:
		if !mentionsPraise(tips) {
			tips = append([]string{TipExcellent}, tips...)
		}
	case score >= 60:
		tips = append([]string{TipSolid}, tips...)
	}

	if len(tips) == 0 {
		tips = append(tips, TipFiller)
	}

	suggestions := make([]string, 0, len(keywords.Unmatched))
	suggestions = append(suggestions, keywords.Unmatched...)

	return models.AnalysisResult{
		Score:              score,
		KeywordSuggestions: suggestions,
		FormattingTips:     tips,
	}
}

func capPoints(p models.PartialScore) int {
	points := max(0, p.Points)
	if p.Max > 0 && points > p.Max {
		return p.Max
	}
	return points
}

func dedupe(tips []string) []string {
	seen := make(map[string]struct{}, len(tips))
	out := make([]string, 0, len(tips))
	for _, tip := range tips {
		if _, ok := seen[tip]; ok {
			continue
		}
		seen[tip] = struct{}{}
		out = append(out, tip)
	}
	return out
}

func mentionsPraise(tips []string) bool {
	for _, tip := range tips {
		lower := strings.ToLower(tip)
		if strings.Contains(lower, "good") || strings.Contains(lower, "great") {
			return true
		}
	}
	return false
}
