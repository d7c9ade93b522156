package models

type AnalysisRequest struct {
	FileURL   string `json:"fileUrl"`
	UserName  string `json:"userName"`
	UserStory string `json:"userStory"`
	Language  string `json:"language"`
}

// AnalysisResult carries the parsed sections of the model output plus the
// short closing summary.
type AnalysisResult struct {
	Analysis map[string]string `json:"analysis"`
	Summary  string            `json:"summary"`
}
