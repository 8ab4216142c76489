package services

import "fmt"

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildATSEvaluationPrompt creates the instruction sent to the model for
// one resume/job-description pair. The JSON shape requested here is the
// contract ParseAnalysis and NormalizeScores depend on.
func (pb *PromptBuilder) BuildATSEvaluationPrompt(resumeText, jobDescription string) string {
	if jobDescription == "" {
		jobDescription = "Not provided"
	}

	return fmt.Sprintf(`You are an ATS (Applicant Tracking System) simulator and HR expert.
Evaluate the resume against the given job description (if any).

Resume:
%s

Job Description:
%s

Provide output in this JSON format only (valid JSON):
{
  "ats_score": <overall match score out of 100>,
  "section_scores": {
    "Skills": <score out of 100>,
    "Experience": <score out of 100>,
    "Education": <score out of 100>
  },
  "missing_keywords": [<list of important missing keywords>],
  "suggestions": [<list of actionable suggestions>]
}`, resumeText, jobDescription)
}
