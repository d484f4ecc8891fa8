package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// Annotations are named entities recognized in a résumé. Scoring never reads them.
type Annotations struct {
	Skills        []string `json:"skills"`
	Organizations []string `json:"organizations"`
	JobTitles     []string `json:"job_titles"`
}

func (a *Annotations) Count() int {
	if a == nil {
		return 0
	}
	return len(a.Skills) + len(a.Organizations) + len(a.JobTitles)
}

// Annotator is an optional NLP collaborator. Callers must check Available first and treat
// any error as non-fatal.
type Annotator interface {
	Available() bool
	Annotate(ctx context.Context, text string) (*Annotations, error)
}

type noopAnnotator struct{}

func NewNoopAnnotator() Annotator {
	return noopAnnotator{}
}

func (noopAnnotator) Available() bool { return false }

func (noopAnnotator) Annotate(context.Context, string) (*Annotations, error) {
	return nil, fmt.Errorf("annotator not available")
}

func parseAnnotations(response string) (*Annotations, error) {
	var a Annotations
	if err := json.Unmarshal([]byte(extractJSON(response)), &a); err != nil {
		return nil, fmt.Errorf("failed to unmarshal annotations: %w", err)
	}
	return &a, nil
}

// extractJSON tries to extract a JSON object from text that might be wrapped in markdown.
func extractJSON(text string) string {
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start != -1 && end > start {
		return text[start : end+1]
	}

	return strings.TrimSpace(text)
}
