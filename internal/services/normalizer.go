package services

import (
	"strconv"
	"strings"

	"ats-resume-analyzer/internal/models"
)

// ScoreNormalizer coerces a loosely-typed analysis into the canonical
// numeric shape. It never fails: values that cannot be coerced become 0
// rather than aborting the pipeline.
type ScoreNormalizer struct{}

func NewScoreNormalizer() *ScoreNormalizer {
	return &ScoreNormalizer{}
}

// Normalize returns the overall score and the per-section score map
// with every field present and numeric.
//
// The overall score is parsed as a plain float with no character
// stripping, so a string like "85%" coerces to 0. Section scores are
// stripped of non-digit/non-dot characters before parsing, so "70%"
// coerces to 70. The asymmetry is deliberate: downstream consumers rely
// on exact parity with the reference behavior.
func (n *ScoreNormalizer) Normalize(raw *models.RawAnalysis) (float64, map[string]float64) {
	overall := coerceFloat(raw.ATSScore)

	sections := make(map[string]float64, len(models.SectionNames))
	for _, name := range models.SectionNames {
		var value any
		if raw.SectionScores != nil {
			value = raw.SectionScores[name]
		}
		sections[name] = coerceSectionScore(value)
	}

	return overall, sections
}

func coerceFloat(value any) float64 {
	switch v := value.(type) {
	case float64:
		return v
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0
		}
		return parsed
	default:
		return 0
	}
}

func coerceSectionScore(value any) float64 {
	switch v := value.(type) {
	case float64:
		return v
	case string:
		cleaned := stripNonNumeric(v)
		if cleaned == "" {
			return 0
		}
		parsed, err := strconv.ParseFloat(cleaned, 64)
		if err != nil {
			return 0
		}
		return parsed
	default:
		return 0
	}
}

// stripNonNumeric keeps digits and dots, handling inputs like "85%".
func stripNonNumeric(s string) string {
	var sb strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
