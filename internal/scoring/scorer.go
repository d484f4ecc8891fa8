// Package scoring implements the lexical ATS scoring criteria and their aggregation.
package scoring

import (
	"fmt"

	"alfredoptarigan/resume-analyzer/internal/models"
)

// Breakdown holds every criterion's partial score for one text.
type Breakdown struct {
	Keywords  models.PartialScore
	Structure models.PartialScore
	Content   models.PartialScore
	ATSFormat models.PartialScore
}

// Score runs the four independent criteria over the text.
func Score(text string, keywords models.KeywordSet) Breakdown {
	return Breakdown{
		Keywords:  ScoreKeywords(text, keywords.Keywords),
		Structure: ScoreStructure(text),
		Content:   ScoreContent(text),
		ATSFormat: ScoreATSFormat(text),
	}
}

// Result folds the breakdown into an AnalysisResult.
func (b Breakdown) Result() models.AnalysisResult {
	return Aggregate(b.Keywords, b.Structure, b.Content, b.ATSFormat)
}

// Safe runs Score and Result, converting a panic in any criterion into ErrInternalScoring.
func Safe(text string, keywords models.KeywordSet) (result models.AnalysisResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", models.ErrInternalScoring, r)
		}
	}()

	return Score(text, keywords).Result(), nil
}
