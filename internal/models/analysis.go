package models

type ScoreCategory string

const (
	CategoryKeywords  ScoreCategory = "keywords"
	CategoryStructure ScoreCategory = "structure"
	CategoryContent   ScoreCategory = "content"
	CategoryATSFormat ScoreCategory = "ats_format"
)

// KeywordSet is the ordered list of target keywords for a role.
type KeywordSet struct {
	Role     string   `yaml:"role" json:"role"`
	Keywords []string `yaml:"keywords" json:"keywords"`
}

// Clone returns a copy whose keyword slice can be handed out safely.
func (k KeywordSet) Clone() KeywordSet {
	keywords := make([]string, len(k.Keywords))
	copy(keywords, k.Keywords)
	return KeywordSet{Role: k.Role, Keywords: keywords}
}

// PartialScore is the contribution of a single scoring criterion.
type PartialScore struct {
	Category ScoreCategory
	Points   int
	Max      int
	Tips     []string

	// Only set by the keyword scorer.
	Matched   []string
	Unmatched []string
}

// AnalysisResult is the only externally visible output of an analysis.
type AnalysisResult struct {
	Score              int      `json:"atsScore"`
	KeywordSuggestions []string `json:"keywordSuggestions"`
	FormattingTips     []string `json:"formattingTips"`
}

// Normalize substitutes defaults for missing fields and clamps the score.
func (r *AnalysisResult) Normalize() {
	if r.Score < 0 {
		r.Score = 0
	}
	if r.Score > 100 {
		r.Score = 100
	}
	if r.KeywordSuggestions == nil {
		r.KeywordSuggestions = []string{}
	}
	if r.FormattingTips == nil {
		r.FormattingTips = []string{}
	}
}
