package models

// SectionNames is the fixed set of scored resume sections.
var SectionNames = []string{"Skills", "Experience", "Education"}

// RawAnalysis is the loosely-typed shape parsed out of a model
// response. Score fields stay `any` because the model may emit numbers
// or strings like "85%"; NormalizeScores coerces them.
type RawAnalysis struct {
	ATSScore        any            `json:"ats_score"`
	SectionScores   map[string]any `json:"section_scores"`
	MissingKeywords []string       `json:"missing_keywords"`
	Suggestions     []string       `json:"suggestions"`
}

// ScoreCard is the canonical analysis result returned to callers.
// Every score field is always present and numeric, even when the
// upstream value was a string, missing, or malformed.
type ScoreCard struct {
	ATSScore        float64            `json:"ats_score"`
	SectionScores   map[string]float64 `json:"section_scores"`
	MissingKeywords []string           `json:"missing_keywords"`
	Suggestions     []string           `json:"suggestions"`
	Warning         string             `json:"warning"`
	Debug           DebugInfo          `json:"debug"`
}

// DebugInfo carries truncated copies of the analyzed inputs.
type DebugInfo struct {
	ResumeText string `json:"resume_text"`
	JDText     string `json:"jd_text"`
}
