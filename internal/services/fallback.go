package services

import (
	"math/rand/v2"

	"ats-resume-analyzer/internal/models"
)

// FallbackGenerator produces a plausible synthetic scorecard when real
// analysis is unavailable. It keeps the external contract stable; the
// orchestrator flags the result with a warning so it is never mistaken
// for a genuine evaluation.
type FallbackGenerator struct{}

func NewFallbackGenerator() *FallbackGenerator {
	return &FallbackGenerator{}
}

// Generate draws the overall and per-section scores independently from
// the uniform range [50, 90] and fills in fixed illustrative keyword
// and suggestion lists.
func (g *FallbackGenerator) Generate() *models.RawAnalysis {
	return &models.RawAnalysis{
		ATSScore: fallbackScore(),
		SectionScores: map[string]any{
			"Skills":     fallbackScore(),
			"Experience": fallbackScore(),
			"Education":  fallbackScore(),
		},
		MissingKeywords: []string{"Python", "SQL", "AWS"},
		Suggestions: []string{
			"Add cloud skills (AWS/GCP/Azure).",
			"Quantify achievements in Experience (use numbers).",
			"Add relevant keywords from JD to Skills section.",
		},
	}
}

func fallbackScore() float64 {
	return float64(rand.IntN(41) + 50)
}
