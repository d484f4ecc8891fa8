package scoring

import (
	"fmt"
	"strings"

	"alfredoptarigan/resume-analyzer/internal/models"
)

const (
	ContentMaxPoints = 20

	idealMinWords = 200
	idealMaxWords = 800
)

var actionVerbs = []string{
	"developed", "created", "implemented", "designed", "managed", "led", "improved",
	"achieved", "optimized", "built", "delivered", "executed", "launched", "established",
}

var metricPatterns = compileAll(
	`\d+%`,
	`\d+\+`,
	`\$\d+`,
	`\d+\s+(years?|months?)`,
	`\d+\s+(people|users|customers)`,
)

// ScoreContent rates length, action verb usage and quantified achievements.
func ScoreContent(text string) models.PartialScore {
	lower := strings.ToLower(text)
	wordCount := len(strings.Fields(text))
	result := models.PartialScore{
		Category: models.CategoryContent,
		Max:      ContentMaxPoints,
		Tips:     []string{},
	}

	// The two outer branches cover every count, so there is no partial 3-point case.
	switch {
	case wordCount >= idealMinWords && wordCount <= idealMaxWords:
		result.Points += 10
	case wordCount < idealMinWords:
		result.Points += 5
		result.Tips = append(result.Tips, fmt.Sprintf("Your resume is quite short (%d words). Add more detail about your experience, projects, and achievements.", wordCount))
	default:
		result.Points += 5
		result.Tips = append(result.Tips, fmt.Sprintf("Your resume is lengthy (%d words). Consider condensing to 1-2 pages for better readability.", wordCount))
	}

	verbs := CountActionVerbs(lower)
	switch {
	case verbs >= 5:
		result.Points += 5
	case verbs >= 3:
		result.Points += 3
		result.Tips = append(result.Tips, "Use more action verbs (e.g., 'developed', 'created', 'implemented') to make your achievements stand out.")
	default:
		result.Tips = append(result.Tips, "Include more action verbs to describe your accomplishments and responsibilities.")
	}

	if matchesAny(lower, metricPatterns) {
		result.Points += 5
	} else {
		result.Tips = append(result.Tips, "Add quantifiable metrics (percentages, numbers, timeframes) to demonstrate your impact.")
	}

	return result
}

// CountActionVerbs returns how many distinct action verbs occur in the lower-cased text.
// Matching is by substring, so "led" also matches inside "called".
func CountActionVerbs(lower string) int {
	count := 0
	for _, verb := range actionVerbs {
		if strings.Contains(lower, verb) {
			count++
		}
	}
	return count
}
