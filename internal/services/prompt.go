package services

import "fmt"

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildAnnotationPrompt asks for the named entities found in a résumé.
func (pb *PromptBuilder) BuildAnnotationPrompt(resumeText string) string {
	return fmt.Sprintf(`You are a resume parser. Extract named entities from the resume below.

RESUME:
%s

Return ONLY a JSON object in the following format, using the exact wording found in the resume:
{
  "skills": ["<technical or soft skill>", ...],
  "organizations": ["<company, university or institution>", ...],
  "job_titles": ["<job title held by the candidate>", ...]
}

Use empty arrays when nothing is found. Do not invent entities.`, resumeText)
}
