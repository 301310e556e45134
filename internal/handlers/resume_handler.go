package handlers

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"jobfit/matching-api/internal/models"
	"jobfit/matching-api/internal/repositories"
	"jobfit/matching-api/internal/services"
)

type ResumeHandler struct {
	resumeRepo        repositories.ResumeRepository
	storageService    services.StorageService
	extractionService services.ExtractionService
	maxFileSize       int64
}

func NewResumeHandler(
	resumeRepo repositories.ResumeRepository,
	storageService services.StorageService,
	extractionService services.ExtractionService,
	maxFileSize int64,
) *ResumeHandler {
	return &ResumeHandler{
		resumeRepo:        resumeRepo,
		storageService:    storageService,
		extractionService: extractionService,
		maxFileSize:       maxFileSize,
	}
}

// HandleUpload handles POST /api/resumes/upload. Accepts a PDF or DOCX
// under the "resume" form field, extracts text and structured fields and
// persists the parsed résumé.
func (h *ResumeHandler) HandleUpload(c *fiber.Ctx) error {
	file, err := c.FormFile("resume")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Error: "No resume file uploaded. Please upload a PDF or DOCX file under 'resume'.",
		})
	}

	if file.Size > h.maxFileSize {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Error: fmt.Sprintf("Resume file too large. Max size: %d bytes", h.maxFileSize),
		})
	}

	filename, filePath, err := h.storageService.SaveFile(file, "resume")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Error: fmt.Sprintf("failed to save resume file: %v", err),
		})
	}

	text, err := h.extractionService.ExtractText(filePath)
	if err != nil {
		h.storageService.DeleteFile(filename)
		return c.Status(fiber.StatusUnprocessableEntity).JSON(models.ErrorResponse{
			Error: fmt.Sprintf("failed to extract text from resume: %v", err),
		})
	}

	parsed := h.extractionService.ParseResume(text)

	resume := &models.Resume{
		ID:               uuid.New(),
		UserID:           currentUserID(c),
		OriginalFileName: file.Filename,
		StoredFileName:   filename,
		ExtractedText:    text,
		Skills:           parsed.Skills,
		Experience:       parsed.Experience,
		Education:        parsed.Education,
		CreatedAt:        time.Now(),
		UpdatedAt:        time.Now(),
	}

	if err := h.resumeRepo.Create(resume); err != nil {
		// Cleanup uploaded file if database insert fails
		h.storageService.DeleteFile(filename)
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse{
			Error: "Failed to save resume record",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(models.ResumeUploadResponse{
		ID:           resume.ID.String(),
		OriginalName: resume.OriginalFileName,
		Skills:       resume.Skills,
	})
}

// HandleList handles GET /api/resumes
func (h *ResumeHandler) HandleList(c *fiber.Ctx) error {
	resumes, err := h.resumeRepo.FindByUser(currentUserID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse{
			Error: "Failed to list resumes",
		})
	}

	return c.JSON(resumes)
}

// HandleGet handles GET /api/resumes/:id
func (h *ResumeHandler) HandleGet(c *fiber.Ctx) error {
	resume := h.findOwned(c)
	if resume == nil {
		return nil
	}

	return c.JSON(resume)
}

// HandleDelete handles DELETE /api/resumes/:id
func (h *ResumeHandler) HandleDelete(c *fiber.Ctx) error {
	resume := h.findOwned(c)
	if resume == nil {
		return nil
	}

	if err := h.resumeRepo.Delete(resume.ID); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse{
			Error: "Failed to delete resume",
		})
	}

	if resume.StoredFileName != "" {
		h.storageService.DeleteFile(resume.StoredFileName)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// findOwned resolves the :id param to a résumé owned by the caller. On
// failure it writes the error response and returns nil.
func (h *ResumeHandler) findOwned(c *fiber.Ctx) *models.Resume {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Error: "Invalid resume ID format",
		})
		return nil
	}

	resume, err := h.resumeRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse{
				Error: "Resume not found",
			})
			return nil
		}
		c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse{
			Error: "Failed to find resume",
		})
		return nil
	}

	if resume.UserID != currentUserID(c) {
		c.Status(fiber.StatusForbidden).JSON(models.ErrorResponse{
			Error: "Not authorized to access this resume",
		})
		return nil
	}

	return resume
}
