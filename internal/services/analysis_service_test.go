package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"doctorkays/internal/config"
	"doctorkays/internal/models"
)

func TestAnalyzeValidation(t *testing.T) {
	svc := NewAnalysisService(config.AIConfig{})

	_, err := svc.Analyze(context.Background(), &models.AnalysisRequest{UserName: "Pat"})
	assert.ErrorIs(t, err, ErrAnalysisMissingFields)

	// all fields present but no API key configured
	_, err = svc.Analyze(context.Background(), &models.AnalysisRequest{
		FileURL:   "https://example.test/report.pdf",
		UserName:  "Pat",
		UserStory: "Recurring headaches",
	})
	assert.ErrorIs(t, err, ErrAnalysisUnavailable)
}

func TestBuildAnalysisPrompt(t *testing.T) {
	prompt := buildAnalysisPrompt("Pat", "Recurring headaches", "French")

	assert.Contains(t, prompt, `User Pat says: "Recurring headaches"`)
	assert.Contains(t, prompt, "Answer ONLY in French.")
	assert.Contains(t, prompt, "• Findings & Measurements:")
	assert.Contains(t, prompt, "• Impression & Diagnosis:")
	assert.Contains(t, prompt, "• Recommendations:")
}

func TestParseAnalysis(t *testing.T) {
	output := `• Findings & Measurements:
Hemoglobin 13.2 g/dL, within normal range.

• Impression & Diagnosis:
No acute abnormality.

• Recommendations:
Repeat panel in 6 months.

Summary: Normal blood panel with no findings requiring immediate action.`

	analysis, summary := parseAnalysis(output)

	assert.Equal(t, "Hemoglobin 13.2 g/dL, within normal range.", analysis["Findings & Measurements"])
	assert.Equal(t, "No acute abnormality.", analysis["Impression & Diagnosis"])
	assert.Equal(t, "Repeat panel in 6 months.", analysis["Recommendations"])
	assert.Equal(t, "Normal blood panel with no findings requiring immediate action.", summary)
}

func TestParseAnalysisNoSummaryLine(t *testing.T) {
	output := `• Findings & Measurements:
Mild anemia.
• Impression & Diagnosis:
Iron deficiency likely.
• Recommendations:
Start iron supplementation.`

	analysis, summary := parseAnalysis(output)

	assert.Len(t, analysis, 3)
	assert.Equal(t, "Start iron supplementation.", summary)
}
