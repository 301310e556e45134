package handlers

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"jobfit/matching-api/internal/matching"
	"jobfit/matching-api/internal/models"
	"jobfit/matching-api/internal/repositories"
)

type MatchingHandler struct {
	engine     *matching.Engine
	matchRepo  repositories.MatchRecordRepository
	resumeRepo repositories.ResumeRepository
	validate   *validator.Validate
	log        *zap.Logger
}

func NewMatchingHandler(
	engine *matching.Engine,
	matchRepo repositories.MatchRecordRepository,
	resumeRepo repositories.ResumeRepository,
	log *zap.Logger,
) *MatchingHandler {
	return &MatchingHandler{
		engine:     engine,
		matchRepo:  matchRepo,
		resumeRepo: resumeRepo,
		validate:   validator.New(),
		log:        log,
	}
}

// HandleMatch handles POST /api/matching/match. Runs the engine and
// persists the result as match history; the response is always either a
// complete MatchResult or one stage-tagged error, never a partial result.
func (h *MatchingHandler) HandleMatch(c *fiber.Ctx) error {
	var req models.MatchRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Error: "Invalid request payload",
		})
	}

	if err := h.validate.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Error: err.Error(),
		})
	}

	resumeID, err := uuid.Parse(req.ResumeID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Error: "Invalid resumeId format",
		})
	}

	jobID, err := uuid.Parse(req.JobDescriptionID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Error: "Invalid jobDescriptionId format",
		})
	}

	result, err := h.engine.Match(c.Context(), resumeID, jobID)
	if err != nil {
		return h.matchError(c, err)
	}

	if err := h.matchRepo.Upsert(models.NewMatchRecord(resumeID, jobID, result)); err != nil {
		// History is best-effort; the computed result is still valid.
		h.log.Warn("failed to persist match result",
			zap.String("resume_id", resumeID.String()),
			zap.String("job_id", jobID.String()),
			zap.Error(err),
		)
	}

	return c.JSON(result)
}

// HandleResults handles GET /api/matching/results
func (h *MatchingHandler) HandleResults(c *fiber.Ctx) error {
	records, err := h.matchRepo.FindByUser(currentUserID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse{
			Error: "Failed to list match results",
		})
	}

	return c.JSON(records)
}

// HandleGetResult handles GET /api/matching/results/:resumeId/:jobId
func (h *MatchingHandler) HandleGetResult(c *fiber.Ctx) error {
	resumeID, err := uuid.Parse(c.Params("resumeId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Error: "Invalid resume ID format",
		})
	}

	jobID, err := uuid.Parse(c.Params("jobId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Error: "Invalid job description ID format",
		})
	}

	resume, err := h.resumeRepo.FindByID(resumeID)
	if err != nil || resume.UserID != currentUserID(c) {
		return c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse{
			Error: "Match result not found",
		})
	}

	record, err := h.matchRepo.FindByPair(resumeID, jobID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse{
			Error: "Match result not found",
		})
	}

	return c.JSON(record)
}

// matchError maps the engine's stage-tagged errors onto HTTP statuses.
// Internal detail stays out of the response body.
func (h *MatchingHandler) matchError(c *fiber.Ctx, err error) error {
	stage := ""
	var stageError *matching.StageError
	if errors.As(err, &stageError) {
		stage = string(stageError.Stage)
	}

	status := fiber.StatusInternalServerError
	message := "Matching failed"

	switch {
	case errors.Is(err, matching.ErrNotFound):
		status = fiber.StatusNotFound
		message = "Resume or job description not found"
	case errors.Is(err, matching.ErrTimeout):
		status = fiber.StatusGatewayTimeout
		message = "Document lookup timed out, please retry"
	case errors.Is(err, matching.ErrEmptyDocument):
		status = fiber.StatusUnprocessableEntity
		message = "Document has no usable content, please re-upload"
	default:
		h.log.Error("match pipeline failure", zap.String("stage", stage), zap.Error(err))
	}

	return c.Status(status).JSON(models.ErrorResponse{
		Error: message,
		Stage: stage,
	})
}
