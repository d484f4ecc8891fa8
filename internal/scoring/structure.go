package scoring

import (
	"regexp"
	"strings"

	"alfredoptarigan/resume-analyzer/internal/models"
)

const StructureMaxPoints = 30

type sectionCheck struct {
	name     string
	points   int
	patterns []*regexp.Regexp
	tip      string
}

var sectionChecks = []sectionCheck{
	{
		name:     "skills",
		points:   10,
		patterns: compileAll(`\bskills\b`, `\btechnical\s+skills\b`, `\bcompetencies\b`, `\bproficiencies\b`),
		tip:      "Add a dedicated 'Skills' or 'Technical Skills' section to highlight your competencies.",
	},
	{
		name:     "experience",
		points:   10,
		patterns: compileAll(`\bexperience\b`, `\bwork\s+history\b`, `\bemployment\b`, `\bprofessional\s+experience\b`, `\bwork\s+experience\b`),
		tip:      "Add an 'Experience', 'Work History', or 'Professional Experience' section.",
	},
	{
		name:     "education",
		points:   5,
		patterns: compileAll(`\beducation\b`, `\bacademic\b`, `\bqualifications\b`),
		tip:      "Include an 'Education' section with your academic qualifications.",
	},
	{
		name:     "contact",
		points:   5,
		patterns: compileAll(`@`, `\bemail\b`, `\bphone\b`, `\bmobile\b`, `\bcontact\b`),
		tip:      "Ensure your contact information (email, phone) is clearly visible.",
	},
}

// ScoreStructure checks for the four expected résumé sections.
func ScoreStructure(text string) models.PartialScore {
	lower := strings.ToLower(text)
	result := models.PartialScore{
		Category: models.CategoryStructure,
		Max:      StructureMaxPoints,
		Tips:     []string{},
	}

	for _, check := range sectionChecks {
		if matchesAny(lower, check.patterns) {
			result.Points += check.points
		} else {
			result.Tips = append(result.Tips, check.tip)
		}
	}

	return result
}

func compileAll(patterns ...string) []*regexp.Regexp {
	compiled := make([]*regexp.Regexp, len(patterns))
	for i, p := range patterns {
		compiled[i] = regexp.MustCompile(p)
	}
	return compiled
}

func matchesAny(text string, patterns []*regexp.Regexp) bool {
	for _, re := range patterns {
		if re.MatchString(text) {
			return true
		}
	}
	return false
}
