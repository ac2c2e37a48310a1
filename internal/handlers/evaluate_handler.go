package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"alfredoptarigan/ats-resume-checker/internal/models"
	"alfredoptarigan/ats-resume-checker/internal/services"
)

type EvaluationHandler struct {
	evaluator        services.EvaluatorService
	maxFileSize      int64
	defaultThreshold int
}

func NewEvaluationHandler(
	evaluator services.EvaluatorService,
	maxFileSize int64,
	defaultThreshold int,
) *EvaluationHandler {
	return &EvaluationHandler{
		evaluator:        evaluator,
		maxFileSize:      maxFileSize,
		defaultThreshold: defaultThreshold,
	}
}

// HandleEvaluateHR handles POST /evaluate/hr
func (h *EvaluationHandler) HandleEvaluateHR(c *fiber.Ctx) error {
	report, err := h.run(c, models.TriggerEvaluateHR)
	if err != nil {
		return h.respondError(c, err)
	}

	return c.JSON(models.HRResponse{
		RunID:    report.RunID.String(),
		Feedback: report.Feedback,
		Failures: report.Failures,
	})
}

// HandleEvaluateATS handles POST /evaluate/ats
func (h *EvaluationHandler) HandleEvaluateATS(c *fiber.Ctx) error {
	report, err := h.run(c, models.TriggerEvaluateATS)
	if err != nil {
		return h.respondError(c, err)
	}

	return c.JSON(models.ATSResponse{
		RunID:    report.RunID.String(),
		Results:  nonNilRanked(report.Ranked),
		Failures: report.Failures,
	})
}

// HandleShortlist handles POST /shortlist
func (h *EvaluationHandler) HandleShortlist(c *fiber.Ctx) error {
	report, err := h.run(c, models.TriggerShortlist)
	if err != nil {
		return h.respondError(c, err)
	}

	response := models.ShortlistResponse{
		RunID:    report.RunID.String(),
		Ranked:   nonNilRanked(report.Ranked),
		Failures: report.Failures,
	}
	if report.Shortlist != nil {
		response.Shortlist = *report.Shortlist
	}

	return c.JSON(response)
}

func (h *EvaluationHandler) run(c *fiber.Ctx, trigger models.Trigger) (*models.RunReport, error) {
	req, err := parseRunForm(c, trigger, h.maxFileSize, h.defaultThreshold)
	if err != nil {
		return nil, err
	}

	return h.evaluator.Run(c.UserContext(), req)
}

func (h *EvaluationHandler) respondError(c *fiber.Ctx, err error) error {
	var inputErr *services.InputValidationError
	if errors.As(err, &inputErr) {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Error: inputErr.Field + " " + inputErr.Reason,
			Code:  fiber.StatusBadRequest,
		})
	}

	log.Error().Err(err).Str("path", c.Path()).Msg("❌ evaluation request failed")
	return err
}

func nonNilRanked(ranked models.RankedResultSet) models.RankedResultSet {
	if ranked == nil {
		return models.RankedResultSet{}
	}
	return ranked
}
