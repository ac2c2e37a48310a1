package models

type HealthResponse struct {
	Status string `json:"status"`
	Model  string `json:"model"`
}

type ErrorResponse struct {
	Error string `json:"error"`
	Code  int    `json:"code,omitempty"`
}

// ATSResponse is the EvaluateATS payload.
type ATSResponse struct {
	RunID    string            `json:"run_id"`
	Results  RankedResultSet   `json:"results"`
	Failures []DocumentFailure `json:"failures,omitempty"`
}

type HRResponse struct {
	RunID    string            `json:"run_id"`
	Feedback []HRFeedback      `json:"feedback"`
	Failures []DocumentFailure `json:"failures,omitempty"`
}

type ShortlistResponse struct {
	RunID     string            `json:"run_id"`
	Shortlist ShortlistView     `json:"shortlist"`
	Ranked    RankedResultSet   `json:"ranked"`
	Failures  []DocumentFailure `json:"failures,omitempty"`
}
