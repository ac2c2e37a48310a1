package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"alfredoptarigan/ats-resume-checker/internal/models"
)

func TestBuild_Deterministic(t *testing.T) {
	pb := NewPromptBuilder()
	jd := "Senior Go engineer, 5 years concurrency experience"
	resume := "Built %d services with 100% uptime"

	for _, mode := range []models.Mode{models.ModeHR, models.ModeATS} {
		first := pb.Build(mode, jd, resume)
		second := NewPromptBuilder().Build(mode, jd, resume)
		assert.Equal(t, first, second, "mode %s", mode)
	}
}

func TestBuild_EmbedsInputsVerbatim(t *testing.T) {
	pb := NewPromptBuilder()
	jd := "Needs Go & SQL (50% on-call)"
	resume := "Jane Doe\n- Go\n- %s literal"

	for _, mode := range []models.Mode{models.ModeHR, models.ModeATS} {
		prompt := pb.Build(mode, jd, resume)
		assert.Contains(t, prompt, "Job Description:\n"+jd+"\n\nResume:\n"+resume)
		assert.True(t, strings.HasSuffix(prompt, resume))
	}
}

func TestBuild_TemplatesDiffer(t *testing.T) {
	pb := NewPromptBuilder()

	hr := pb.Build(models.ModeHR, "jd", "cv")
	ats := pb.Build(models.ModeATS, "jd", "cv")

	assert.Contains(t, hr, "experienced HR professional")
	assert.Contains(t, hr, "areas for improvement")
	assert.Contains(t, ats, "Applicant Tracking System")
	assert.Contains(t, ats, "match percentage (0-100%)")
	assert.Contains(t, ats, "missing keywords")
	assert.NotEqual(t, hr, ats)
}
