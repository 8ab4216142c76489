package services

import (
	"context"
	"log"

	"ats-resume-analyzer/internal/models"
)

// maxDebugChars caps the input copies attached to the debug block.
const maxDebugChars = 2000

// fallbackWarning flags scorecards synthesized without a real analysis.
const fallbackWarning = "AI analysis unavailable; returning estimated scores."

// AnalyzerService runs the full pipeline for one request: extract text,
// attempt AI analysis, fall back when it is skipped or fails, normalize
// scores, and assemble the final scorecard. Analyze never fails; every
// internal failure is absorbed into a guaranteed-valid result.
type AnalyzerService interface {
	Analyze(ctx context.Context, pdfPath, jobDescription string) *models.ScoreCard
}

type analyzerService struct {
	extractor  TextExtractor
	gemini     GeminiService // nil when the AI capability is not configured
	parser     *ResponseParser
	fallback   *FallbackGenerator
	normalizer *ScoreNormalizer
}

func NewAnalyzerService(extractor TextExtractor, gemini GeminiService) AnalyzerService {
	return &analyzerService{
		extractor:  extractor,
		gemini:     gemini,
		parser:     NewResponseParser(),
		fallback:   NewFallbackGenerator(),
		normalizer: NewScoreNormalizer(),
	}
}

// Analyze implements AnalyzerService. The pipeline runs exactly once
// per request from a clean start; no step is retried.
func (s *analyzerService) Analyze(ctx context.Context, pdfPath, jobDescription string) *models.ScoreCard {
	resumeText := s.extractor.Extract(ctx, pdfPath)

	warning := ""
	raw, err := s.attemptAnalysis(ctx, resumeText, jobDescription)
	if err != nil {
		log.Printf("⚠️  Analysis fell back: %v\n", err)
		raw = s.fallback.Generate()
		warning = fallbackWarning
	}

	overall, sections := s.normalizer.Normalize(raw)

	missingKeywords := raw.MissingKeywords
	if missingKeywords == nil {
		missingKeywords = []string{}
	}
	suggestions := raw.Suggestions
	if suggestions == nil {
		suggestions = []string{}
	}

	return &models.ScoreCard{
		ATSScore:        overall,
		SectionScores:   sections,
		MissingKeywords: missingKeywords,
		Suggestions:     suggestions,
		Warning:         warning,
		Debug: models.DebugInfo{
			ResumeText: truncateForDebug(resumeText),
			JDText:     truncateForDebug(jobDescription),
		},
	}
}

// attemptAnalysis returns the parsed model analysis or one of the
// sentinel errors (ErrAnalysisUnavailable, ErrAnalysisCallFailed,
// ErrResponseUnparseable) for the orchestrator to branch on.
func (s *analyzerService) attemptAnalysis(ctx context.Context, resumeText, jobDescription string) (*models.RawAnalysis, error) {
	if s.gemini == nil {
		return nil, ErrAnalysisUnavailable
	}

	rawResponse, err := s.gemini.AnalyzeResume(ctx, resumeText, jobDescription)
	if err != nil {
		return nil, err
	}

	parsed, ok := s.parser.Parse(rawResponse)
	if !ok {
		return nil, ErrResponseUnparseable
	}

	return parsed, nil
}

func truncateForDebug(text string) string {
	runes := []rune(text)
	if len(runes) <= maxDebugChars {
		return text
	}
	return string(runes[:maxDebugChars]) + "..."
}
