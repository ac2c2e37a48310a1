package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"alfredoptarigan/ats-resume-checker/internal/models"
	"alfredoptarigan/ats-resume-checker/internal/repositories"
)

type RunHandler struct {
	runRepo repositories.RunRepository
}

func NewRunHandler(runRepo repositories.RunRepository) *RunHandler {
	return &RunHandler{
		runRepo: runRepo,
	}
}

// HandleGetRun returns the audit record of a finished run.
func (h *RunHandler) HandleGetRun(c *fiber.Ctx) error {
	runID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Error: "Invalid run ID format",
			Code:  fiber.StatusBadRequest,
		})
	}

	run, err := h.runRepo.FindByID(c.UserContext(), runID)
	if err != nil {
		if errors.Is(err, repositories.ErrRunNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse{
				Error: "Run not found",
				Code:  fiber.StatusNotFound,
			})
		}
		return err
	}

	return c.JSON(run)
}
