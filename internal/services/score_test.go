package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"alfredoptarigan/ats-resume-checker/internal/models"
)

func TestRegexScoreExtractor(t *testing.T) {
	tests := []struct {
		name     string
		response string
		expected models.Score
	}{
		{"percent", "Match: 82%", models.Score{Value: 82, Scored: true}},
		{"no numbers", "no numbers here", models.Score{}},
		{"clamped", "999% match", models.Score{Value: 100, Scored: true}},
		{"space before percent", "Match Percentage: 67 %", models.Score{Value: 67, Scored: true}},
		{"first number wins", "Match: 45%. Missing 3 keywords", models.Score{Value: 45, Scored: true}},
		{"bare number", "Score 7 out of 10", models.Score{Value: 7, Scored: true}},
		{"long number truncated to three digits", "1234%", models.Score{Value: 100, Scored: true}},
		{"zero is scored", "Match: 0%", models.Score{Value: 0, Scored: true}},
		{"empty", "", models.Score{}},
	}

	extractor := NewRegexScoreExtractor()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, extractor.ExtractScore(tt.response))
		})
	}
}

func TestJSONScoreExtractor(t *testing.T) {
	tests := []struct {
		name     string
		response string
		expected models.Score
	}{
		{"numeric field", `{"match_percentage": 88, "missing_keywords": ["k8s"]}`, models.Score{Value: 88, Scored: true}},
		{"fenced", "```json\n{\"match_score\": 73}\n```", models.Score{Value: 73, Scored: true}},
		{"string field", `Result: {"match_percentage": "64%"}`, models.Score{Value: 64, Scored: true}},
		{"out of range", `{"score": 250}`, models.Score{Value: 100, Scored: true}},
		{"huge number", `{"match_percentage": 1e20}`, models.Score{Value: 100, Scored: true}},
		{"huge negative number", `{"match_percentage": -1e20}`, models.Score{Value: 0, Scored: true}},
		{"fractional", `{"match_percentage": 72.9}`, models.Score{Value: 72, Scored: true}},
		{"falls back to regex", "Match: 55%\nSummary: decent", models.Score{Value: 55, Scored: true}},
		{"nothing", "no score given", models.Score{}},
	}

	extractor := NewJSONScoreExtractor()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, extractor.ExtractScore(tt.response))
		})
	}
}

func TestNewScoreExtractor(t *testing.T) {
	assert.IsType(t, &JSONScoreExtractor{}, NewScoreExtractor("json"))
	assert.IsType(t, &RegexScoreExtractor{}, NewScoreExtractor("regex"))
	assert.IsType(t, &RegexScoreExtractor{}, NewScoreExtractor(""))
}

func TestScoreString(t *testing.T) {
	assert.Equal(t, "82%", models.Score{Value: 82, Scored: true}.String())
	assert.Equal(t, "unscored", models.Score{}.String())
}
