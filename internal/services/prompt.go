package services

import (
	"fmt"

	"alfredoptarigan/ats-resume-checker/internal/models"
)

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// Build renders the template for mode. Unknown modes use the ATS template.
func (pb *PromptBuilder) Build(mode models.Mode, jobDescription, resumeText string) string {
	if mode == models.ModeHR {
		return pb.BuildHREvaluationPrompt(jobDescription, resumeText)
	}
	return pb.BuildATSPrompt(jobDescription, resumeText)
}

// BuildHREvaluationPrompt creates prompt for free-form recruiter feedback
func (pb *PromptBuilder) BuildHREvaluationPrompt(jobDescription, resumeText string) string {
	return fmt.Sprintf(`You are an experienced HR professional. Given the following job description and resume text, please provide an evaluation of the candidate. Highlight strengths, weaknesses, skill match, and areas for improvement.

Job Description:
%s

Resume:
%s`, jobDescription, resumeText)
}

// BuildATSPrompt creates prompt for ATS match scoring
func (pb *PromptBuilder) BuildATSPrompt(jobDescription, resumeText string) string {
	return fmt.Sprintf(`Act as an ATS (Applicant Tracking System). Analyze the resume and the job description. Give a match percentage (0-100%%), list missing keywords, and provide a summary.

Job Description:
%s

Resume:
%s`, jobDescription, resumeText)
}
