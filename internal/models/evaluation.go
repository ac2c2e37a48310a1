package models

import (
	"fmt"

	"github.com/google/uuid"
)

// Mode selects the prompt template.
type Mode string

const (
	ModeHR  Mode = "HR"
	ModeATS Mode = "ATS"
)

// Trigger is the user action that starts a run.
type Trigger string

const (
	TriggerEvaluateHR  Trigger = "hr"
	TriggerEvaluateATS Trigger = "ats"
	TriggerShortlist   Trigger = "shortlist"
)

// Mode returns the prompt template a trigger evaluates with.
func (t Trigger) Mode() Mode {
	if t == TriggerEvaluateHR {
		return ModeHR
	}
	return ModeATS
}

// Scored reports whether the trigger ranks its results.
func (t Trigger) Scored() bool {
	return t == TriggerEvaluateATS || t == TriggerShortlist
}

// Score is a match percentage in [0,100]. Scored is false when the model
// response contained no percentage; Value is then 0.
type Score struct {
	Value  int  `json:"value"`
	Scored bool `json:"scored"`
}

func (s Score) String() string {
	if !s.Scored {
		return "unscored"
	}
	return fmt.Sprintf("%d%%", s.Value)
}

// EvaluationRequest pairs one document's text with the job description.
type EvaluationRequest struct {
	DocumentName   string
	ResumeText     string
	JobDescription string
	Mode           Mode
}

type EvaluationResult struct {
	Name  string `json:"name"`
	Score Score  `json:"score"`
	Body  string `json:"body"`
}

// RankedResultSet is ordered by score descending; equal scores keep upload order.
type RankedResultSet []EvaluationResult

// ShortlistView is the part of a RankedResultSet at or above Threshold.
type ShortlistView struct {
	Threshold  int                `json:"threshold"`
	Candidates []EvaluationResult `json:"candidates"`
	Count      int                `json:"count"`
	Notice     string             `json:"notice,omitempty"`
}

// FailureStage names the step a document dropped out at.
type FailureStage string

const (
	StageExtraction FailureStage = "extraction"
	StageCompletion FailureStage = "completion"
	StageScore      FailureStage = "score"
)

// DocumentFailure is the user-visible diagnostic for a document excluded from results.
type DocumentFailure struct {
	Name    string       `json:"name"`
	Stage   FailureStage `json:"stage"`
	Message string       `json:"message"`
}

// RunRequest is everything the presentation layer collects for one run.
type RunRequest struct {
	Trigger        Trigger    `form:"trigger" validate:"required,oneof=hr ats shortlist"`
	JobDescription string     `form:"job_description" validate:"required"`
	Documents      []Document `form:"resumes" validate:"required,min=1"`
	Threshold      int        `form:"threshold" validate:"min=0,max=100"`
}

type HRFeedback struct {
	Name string `json:"name"`
	Body string `json:"body"`
}

// RunReport is the outcome of one run, held only for the current response.
type RunReport struct {
	RunID     uuid.UUID         `json:"run_id"`
	Trigger   Trigger           `json:"trigger"`
	Feedback  []HRFeedback      `json:"feedback,omitempty"`
	Ranked    RankedResultSet   `json:"ranked,omitempty"`
	Shortlist *ShortlistView    `json:"shortlist,omitempty"`
	Failures  []DocumentFailure `json:"failures,omitempty"`
}
