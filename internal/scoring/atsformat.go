package scoring

import (
	"strings"

	"alfredoptarigan/resume-analyzer/internal/models"
)

const (
	ATSFormatMaxPoints = 10

	minStandardHeaders = 3
)

var (
	imageReference  = compileAll(`\.(jpg|jpeg|png|gif)`)
	standardHeaders = compileAll(`\bsummary\b`, `\bobjective\b`, `\bskills\b`, `\bexperience\b`, `\beducation\b`, `\bprojects\b`)
)

// ScoreATSFormat always awards the full points: text was extracted, so the document is
// text based. It only contributes tips.
func ScoreATSFormat(text string) models.PartialScore {
	lower := strings.ToLower(text)
	result := models.PartialScore{
		Category: models.CategoryATSFormat,
		Points:   ATSFormatMaxPoints,
		Max:      ATSFormatMaxPoints,
		Tips:     []string{},
	}

	if matchesAny(lower, imageReference) {
		result.Tips = append(result.Tips, "Avoid embedding images in your resume. ATS systems cannot read text from images.")
	}

	found := 0
	for _, header := range standardHeaders {
		if header.MatchString(lower) {
			found++
		}
	}
	if found < minStandardHeaders {
		result.Tips = append(result.Tips, "Use clear, standard section headers (e.g., 'Experience', 'Education', 'Skills') for better ATS parsing.")
	}

	return result
}
