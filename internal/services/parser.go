package services

import (
	"encoding/json"
	"errors"
	"strings"

	"ats-resume-analyzer/internal/models"
)

// ErrResponseUnparseable means the model output contained no
// valid/extractable JSON object.
var ErrResponseUnparseable = errors.New("model response contained no parseable JSON")

// ResponseParser extracts a JSON analysis object from a free-form model
// response. Models routinely wrap their JSON in prose or markdown
// fencing, so a strict parse is tried first and then the outermost
// brace-delimited substring.
type ResponseParser struct{}

func NewResponseParser() *ResponseParser {
	return &ResponseParser{}
}

// Parse returns the embedded analysis and true on success, or nil and
// false when no JSON object can be recovered.
func (p *ResponseParser) Parse(raw string) (*models.RawAnalysis, bool) {
	if result, ok := tryUnmarshalAnalysis(raw); ok {
		return result, true
	}

	// Single bounded scan: first '{' to last '}'. Greedy on purpose so
	// nested objects stay inside the candidate region.
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start == -1 || end <= start {
		return nil, false
	}

	return tryUnmarshalAnalysis(raw[start : end+1])
}

func tryUnmarshalAnalysis(candidate string) (*models.RawAnalysis, bool) {
	candidate = strings.TrimSpace(candidate)
	if !strings.HasPrefix(candidate, "{") {
		// Only object-shaped payloads qualify; "null" or a bare array
		// would otherwise unmarshal into an empty analysis.
		return nil, false
	}

	var result models.RawAnalysis
	if err := json.Unmarshal([]byte(candidate), &result); err != nil {
		return nil, false
	}
	return &result, true
}
