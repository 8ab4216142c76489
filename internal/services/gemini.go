package services

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/genai"
)

var (
	// ErrAnalysisUnavailable means the AI capability is not configured
	// (missing credential or missing client).
	ErrAnalysisUnavailable = errors.New("analysis unavailable: gemini client not configured")
	// ErrAnalysisCallFailed means the remote model call itself errored.
	ErrAnalysisCallFailed = errors.New("analysis call failed")
)

// GeminiService sends one extraction/job-description pair to the model
// and returns its raw text response. A single failure surfaces
// immediately; fallback handling belongs to the orchestrator, so there
// is no retry or backoff here.
type GeminiService interface {
	AnalyzeResume(ctx context.Context, resumeText, jobDescription string) (string, error)
}

type geminiService struct {
	client        *genai.Client
	modelName     string
	promptBuilder *PromptBuilder
}

func NewGeminiService(apiKey, modelName string) (GeminiService, error) {
	if apiKey == "" {
		return nil, ErrAnalysisUnavailable
	}

	ctx := context.Background()
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &geminiService{
		client:        client,
		modelName:     modelName,
		promptBuilder: NewPromptBuilder(),
	}, nil
}

// AnalyzeResume implements GeminiService.
func (g *geminiService) AnalyzeResume(ctx context.Context, resumeText, jobDescription string) (string, error) {
	prompt := g.promptBuilder.BuildATSEvaluationPrompt(resumeText, jobDescription)

	temperature := float32(0.3)
	generateConfig := &genai.GenerateContentConfig{
		Temperature:     &temperature,
		MaxOutputTokens: 4096,
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.modelName, genai.Text(prompt), generateConfig)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrAnalysisCallFailed, err)
	}
	if resp == nil {
		return "", fmt.Errorf("%w: nil response", ErrAnalysisCallFailed)
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("%w: no text content in response", ErrAnalysisCallFailed)
	}

	return text, nil
}
