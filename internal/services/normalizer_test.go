package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ats-resume-analyzer/internal/models"
)

func TestScoreNormalizer_Normalize(t *testing.T) {
	normalizer := NewScoreNormalizer()

	tests := []struct {
		name         string
		raw          *models.RawAnalysis
		wantOverall  float64
		wantSections map[string]float64
	}{
		{
			name: "percent string at top level coerces to zero, sections strip units",
			raw: &models.RawAnalysis{
				ATSScore: "85%",
				SectionScores: map[string]any{
					"Skills":     "70%",
					"Experience": float64(80),
					"Education":  nil,
				},
			},
			wantOverall: 0,
			wantSections: map[string]float64{
				"Skills":     70,
				"Experience": 80,
				"Education":  0,
			},
		},
		{
			name: "plain numbers pass through",
			raw: &models.RawAnalysis{
				ATSScore: float64(88.5),
				SectionScores: map[string]any{
					"Skills":     float64(90),
					"Experience": float64(85),
					"Education":  float64(70),
				},
			},
			wantOverall: 88.5,
			wantSections: map[string]float64{
				"Skills":     90,
				"Experience": 85,
				"Education":  70,
			},
		},
		{
			name: "numeric string at top level parses",
			raw: &models.RawAnalysis{
				ATSScore: "85",
				SectionScores: map[string]any{
					"Skills":     "88 / 100",
					"Experience": "",
					"Education":  true,
				},
			},
			wantOverall: 85,
			wantSections: map[string]float64{
				"Skills":     88100,
				"Experience": 0,
				"Education":  0,
			},
		},
		{
			name:        "missing everything defaults to zero",
			raw:         &models.RawAnalysis{},
			wantOverall: 0,
			wantSections: map[string]float64{
				"Skills":     0,
				"Experience": 0,
				"Education":  0,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			overall, sections := normalizer.Normalize(tt.raw)
			assert.Equal(t, tt.wantOverall, overall)
			assert.Equal(t, tt.wantSections, sections)
		})
	}
}

func TestScoreNormalizer_Normalize_AlwaysFullSectionSet(t *testing.T) {
	normalizer := NewScoreNormalizer()

	_, sections := normalizer.Normalize(&models.RawAnalysis{
		SectionScores: map[string]any{"Skills": float64(50), "Unknown": float64(99)},
	})

	require.Len(t, sections, len(models.SectionNames))
	for _, name := range models.SectionNames {
		assert.Contains(t, sections, name)
	}
	assert.NotContains(t, sections, "Unknown")
}
