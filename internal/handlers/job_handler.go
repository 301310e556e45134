package handlers

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"jobfit/matching-api/internal/matching"
	"jobfit/matching-api/internal/models"
	"jobfit/matching-api/internal/repositories"
)

type JobHandler struct {
	jobRepo  repositories.JobDescriptionRepository
	validate *validator.Validate
}

func NewJobHandler(jobRepo repositories.JobDescriptionRepository) *JobHandler {
	return &JobHandler{
		jobRepo:  jobRepo,
		validate: validator.New(),
	}
}

// HandleCreate handles POST /api/jobs
func (h *JobHandler) HandleCreate(c *fiber.Ctx) error {
	var req models.CreateJobRequest

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

	job := &models.JobDescription{
		ID:                 uuid.New(),
		UserID:             currentUserID(c),
		Title:              req.Title,
		Company:            req.Company,
		Description:        req.Description,
		RequiredSkills:     toSkillRequirements(req.RequiredSkills),
		PreferredSkills:    toSkillRequirements(req.PreferredSkills),
		MinEducation:       req.MinEducation,
		MinExperienceYears: req.MinExperienceYears,
		CreatedAt:          time.Now(),
		UpdatedAt:          time.Now(),
	}

	if err := h.jobRepo.Create(job); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse{
			Error: "Failed to create job description",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(job)
}

// HandleList handles GET /api/jobs
func (h *JobHandler) HandleList(c *fiber.Ctx) error {
	jobs, err := h.jobRepo.FindByUser(currentUserID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse{
			Error: "Failed to list job descriptions",
		})
	}

	return c.JSON(jobs)
}

// HandleGet handles GET /api/jobs/:id
func (h *JobHandler) HandleGet(c *fiber.Ctx) error {
	job := h.findOwned(c)
	if job == nil {
		return nil
	}

	return c.JSON(job)
}

// HandleDelete handles DELETE /api/jobs/:id
func (h *JobHandler) HandleDelete(c *fiber.Ctx) error {
	job := h.findOwned(c)
	if job == nil {
		return nil
	}

	if err := h.jobRepo.Delete(job.ID); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse{
			Error: "Failed to delete job description",
		})
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (h *JobHandler) findOwned(c *fiber.Ctx) *models.JobDescription {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Error: "Invalid job description ID format",
		})
		return nil
	}

	job, err := h.jobRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse{
				Error: "Job description not found",
			})
			return nil
		}
		c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse{
			Error: "Failed to find job description",
		})
		return nil
	}

	if job.UserID != currentUserID(c) {
		c.Status(fiber.StatusForbidden).JSON(models.ErrorResponse{
			Error: "Not authorized to access this job description",
		})
		return nil
	}

	return job
}

func toSkillRequirements(reqs []models.SkillRequirementRequest) []matching.ParsedSkillRequirement {
	skills := make([]matching.ParsedSkillRequirement, 0, len(reqs))
	for _, r := range reqs {
		skills = append(skills, matching.ParsedSkillRequirement{
			Name:     r.Name,
			MinYears: r.MinYears,
		})
	}
	return skills
}
