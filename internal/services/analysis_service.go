package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"google.golang.org/genai"

	"doctorkays/internal/config"
	"doctorkays/internal/models"
)

var (
	ErrAnalysisMissingFields = errors.New("missing required fields")
	ErrAnalysisUnavailable   = errors.New("ai analysis is not configured")
)

const maxReportDownload = 20 << 20 // 20 MiB

type AnalysisService interface {
	Analyze(ctx context.Context, req *models.AnalysisRequest) (*models.AnalysisResult, error)
}

type analysisService struct {
	apiKey string
	model  string
	client *http.Client
}

func NewAnalysisService(cfg config.AIConfig) AnalysisService {
	return &analysisService{
		apiKey: cfg.APIKey,
		model:  cfg.Model,
		client: &http.Client{Timeout: 60 * time.Second},
	}
}

func (s *analysisService) Analyze(ctx context.Context, req *models.AnalysisRequest) (*models.AnalysisResult, error) {
	if req.FileURL == "" || req.UserName == "" || req.UserStory == "" {
		return nil, ErrAnalysisMissingFields
	}
	if s.apiKey == "" {
		return nil, ErrAnalysisUnavailable
	}
	language := req.Language
	if language == "" {
		language = "English"
	}

	data, contentType, err := s.download(ctx, req.FileURL)
	if err != nil {
		return nil, fmt.Errorf("download report: %w", err)
	}

	output, err := s.generate(ctx, buildAnalysisPrompt(req.UserName, req.UserStory, language), data, contentType)
	if err != nil {
		return nil, fmt.Errorf("generate analysis: %w", err)
	}

	analysis, summary := parseAnalysis(output)
	return &models.AnalysisResult{Analysis: analysis, Summary: summary}, nil
}

func (s *analysisService) download(ctx context.Context, url string) ([]byte, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, "", err
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxReportDownload))
	if err != nil {
		return nil, "", err
	}
	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = http.DetectContentType(data)
	}
	return data, contentType, nil
}

func (s *analysisService) generate(ctx context.Context, prompt string, file []byte, mimeType string) (string, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  s.apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return "", err
	}
	resp, err := client.Models.GenerateContent(
		ctx,
		s.model,
		[]*genai.Content{{Parts: []*genai.Part{
			{InlineData: &genai.Blob{MIMEType: mimeType, Data: file}},
			{Text: prompt},
		}}},
		nil,
	)
	if err != nil {
		return "", err
	}
	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", fmt.Errorf("empty model response")
	}
	return text, nil
}

func buildAnalysisPrompt(userName, userStory, language string) string {
	return fmt.Sprintf(`You are a board-certified medical AI assistant.
User %s says: "%s"

Analyze the attached medical report. Answer ONLY in %s.

Produce a structured analysis under these headings:
• Findings & Measurements:
• Impression & Diagnosis:
• Recommendations:

Then give a <=3-sentence summary of the whole report, prefixed with "Summary:", with maximum clinical accuracy.`,
		userName, userStory, language)
}

var summaryRe = regexp.MustCompile(`(?is)(?:^|\n)Summary:(.*)$`)

// parseAnalysis splits the model output into heading-keyed sections and pulls
// out the trailing summary. When the summary line is absent, the last section
// stands in for it.
func parseAnalysis(output string) (map[string]string, string) {
	summary := ""
	if m := summaryRe.FindStringSubmatch(output); m != nil {
		summary = strings.TrimSpace(m[1])
		output = output[:len(output)-len(m[0])]
	}

	analysis := map[string]string{}
	var lastBody string
	blocks := strings.Split("\n"+output, "\n• ")
	for _, block := range blocks[1:] {
		heading, body, ok := strings.Cut(block, ":")
		if !ok {
			continue
		}
		heading = strings.TrimSpace(heading)
		if heading == "" {
			continue
		}
		body = strings.TrimSpace(body)
		analysis[heading] = body
		lastBody = body
	}
	if summary == "" {
		summary = lastBody
	}
	return analysis, summary
}
