package services

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"alfredoptarigan/ats-resume-checker/internal/models"
)

// ScoreExtractor turns a free-form ATS response into a match score.
type ScoreExtractor interface {
	ExtractScore(response string) models.Score
}

// NewScoreExtractor returns the strategy registered under name ("regex" or "json").
func NewScoreExtractor(name string) ScoreExtractor {
	if name == "json" {
		return NewJSONScoreExtractor()
	}
	return NewRegexScoreExtractor()
}

var percentPattern = regexp.MustCompile(`(\d{1,3})\s*%?`)

// RegexScoreExtractor takes the first one-to-three digit number, with or
// without a trailing percent sign.
type RegexScoreExtractor struct{}

func NewRegexScoreExtractor() *RegexScoreExtractor {
	return &RegexScoreExtractor{}
}

func (RegexScoreExtractor) ExtractScore(response string) models.Score {
	match := percentPattern.FindStringSubmatch(response)
	if match == nil {
		return models.Score{}
	}

	value, err := strconv.Atoi(match[1])
	if err != nil {
		return models.Score{}
	}
	return clampScore(value, match[0])
}

// JSONScoreExtractor reads a score field from a JSON object in the response
// and falls back to the regex strategy when there is none.
type JSONScoreExtractor struct {
	fallback ScoreExtractor
	fields   []string
}

func NewJSONScoreExtractor() *JSONScoreExtractor {
	return &JSONScoreExtractor{
		fallback: NewRegexScoreExtractor(),
		fields:   []string{"match_percentage", "match_score", "score"},
	}
}

func (j *JSONScoreExtractor) ExtractScore(response string) models.Score {
	var payload map[string]any
	if err := json.Unmarshal([]byte(extractJSON(response)), &payload); err == nil {
		for _, field := range j.fields {
			raw, ok := payload[field]
			if !ok {
				continue
			}
			switch v := raw.(type) {
			case float64:
				return clampFloatScore(v, field)
			case string:
				if score := NewRegexScoreExtractor().ExtractScore(v); score.Scored {
					return score
				}
			}
		}
	}
	return j.fallback.ExtractScore(response)
}

func clampScore(value int, source string) models.Score {
	if value > 100 {
		log.Warn().Int("parsed", value).Str("match", source).Msg("⚠️ score above 100, clamping")
		value = 100
	}
	if value < 0 {
		log.Warn().Int("parsed", value).Str("match", source).Msg("⚠️ negative score, clamping")
		value = 0
	}
	return models.Score{Value: value, Scored: true}
}

// clampFloatScore clamps before converting so huge JSON numbers cannot
// overflow int.
func clampFloatScore(value float64, source string) models.Score {
	switch {
	case value > 100:
		log.Warn().Float64("parsed", value).Str("match", source).Msg("⚠️ score above 100, clamping")
		return models.Score{Value: 100, Scored: true}
	case value < 0:
		log.Warn().Float64("parsed", value).Str("match", source).Msg("⚠️ negative score, clamping")
		return models.Score{Value: 0, Scored: true}
	}
	return models.Score{Value: int(value), Scored: true}
}

// extractJSON tries to extract JSON from text that might contain markdown or other formatting
func extractJSON(text string) string {
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")

	startObj := strings.Index(text, "{")
	endObj := strings.LastIndex(text, "}")
	if startObj != -1 && endObj > startObj {
		return text[startObj : endObj+1]
	}

	return text
}
