package handlers

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/ats-resume-checker/internal/models"
	"alfredoptarigan/ats-resume-checker/internal/services"
)

// parseRunForm builds a RunRequest from the multipart fields job_description,
// resumes (repeated) and threshold. Range checks are left to the evaluator.
func parseRunForm(c *fiber.Ctx, trigger models.Trigger, maxFileSize int64, defaultThreshold int) (models.RunRequest, error) {
	req := models.RunRequest{Trigger: trigger, Threshold: defaultThreshold}

	form, err := c.MultipartForm()
	if err != nil {
		return req, &services.InputValidationError{Field: "form", Reason: "failed to parse multipart form"}
	}

	if values := form.Value["job_description"]; len(values) > 0 {
		req.JobDescription = values[0]
	}

	if trigger == models.TriggerShortlist {
		if values := form.Value["threshold"]; len(values) > 0 && strings.TrimSpace(values[0]) != "" {
			threshold, err := strconv.Atoi(strings.TrimSpace(values[0]))
			if err != nil {
				return req, &services.InputValidationError{Field: "threshold", Reason: "must be an integer"}
			}
			req.Threshold = threshold
		}
	} else {
		req.Threshold = 0
	}

	docs, err := services.ReadUploads(form.File["resumes"], maxFileSize)
	if err != nil {
		return req, err
	}
	req.Documents = docs

	return req, nil
}
