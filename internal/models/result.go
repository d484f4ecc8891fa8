package models

type ErrorResponse struct {
	Error string `json:"error"`
}

type HealthResponse struct {
	Status         string   `json:"status"`
	Message        string   `json:"message"`
	AnalysisModule string   `json:"analysis_module"`
	Roles          []string `json:"roles"`
}

// FileAnalysis pairs a local file with its result for batch output.
type FileAnalysis struct {
	File   string         `json:"file"`
	Role   string         `json:"role"`
	Result AnalysisResult `json:"result"`
}
