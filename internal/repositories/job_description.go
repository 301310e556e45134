package repositories

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"jobfit/matching-api/internal/models"
)

type JobDescriptionRepository interface {
	Create(job *models.JobDescription) error
	FindByID(id uuid.UUID) (*models.JobDescription, error)
	FindByUser(userID uuid.UUID) ([]models.JobDescription, error)
	Delete(id uuid.UUID) error
}

type jobDescriptionRepository struct {
	db *gorm.DB
}

func NewJobDescriptionRepository(db *gorm.DB) JobDescriptionRepository {
	return &jobDescriptionRepository{db: db}
}

// Create implements JobDescriptionRepository.
func (r *jobDescriptionRepository) Create(job *models.JobDescription) error {
	if err := r.db.Create(job).Error; err != nil {
		return fmt.Errorf("failed to create job description: %w", err)
	}

	return nil
}

// FindByID implements JobDescriptionRepository.
func (r *jobDescriptionRepository) FindByID(id uuid.UUID) (*models.JobDescription, error) {
	var job models.JobDescription
	if err := r.db.Where("id = ?", id).First(&job).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("job description %s: %w", id, ErrNotFound)
		}

		return nil, fmt.Errorf("failed to find job description: %w", err)
	}

	return &job, nil
}

// FindByUser implements JobDescriptionRepository.
func (r *jobDescriptionRepository) FindByUser(userID uuid.UUID) ([]models.JobDescription, error) {
	var jobs []models.JobDescription
	err := r.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&jobs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list job descriptions: %w", err)
	}

	return jobs, nil
}

// Delete implements JobDescriptionRepository.
func (r *jobDescriptionRepository) Delete(id uuid.UUID) error {
	result := r.db.Where("id = ?", id).Delete(&models.JobDescription{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete job description: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("job description %s: %w", id, ErrNotFound)
	}

	return nil
}
