package repositories

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"jobfit/matching-api/internal/models"
)

type MatchRecordRepository interface {
	Upsert(record *models.MatchRecord) error
	FindByPair(resumeID, jobID uuid.UUID) (*models.MatchRecord, error)
	FindByUser(userID uuid.UUID) ([]models.MatchRecord, error)
}

type matchRecordRepository struct {
	db *gorm.DB
}

func NewMatchRecordRepository(db *gorm.DB) MatchRecordRepository {
	return &matchRecordRepository{db: db}
}

// Upsert implements MatchRecordRepository. One record per (resume, job)
// pair: re-matching overwrites the previous scores.
func (r *matchRecordRepository) Upsert(record *models.MatchRecord) error {
	record.UpdatedAt = time.Now()
	err := r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "resume_id"}, {Name: "job_description_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"overall_score", "skills_score", "experience_score", "education_score",
			"skill_scores", "missing_skills", "suggestions", "resources", "updated_at",
		}),
	}).Create(record).Error
	if err != nil {
		return fmt.Errorf("failed to save match result: %w", err)
	}

	return nil
}

// FindByPair implements MatchRecordRepository.
func (r *matchRecordRepository) FindByPair(resumeID, jobID uuid.UUID) (*models.MatchRecord, error) {
	var record models.MatchRecord
	err := r.db.
		Where("resume_id = ? AND job_description_id = ?", resumeID, jobID).
		First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("match result: %w", ErrNotFound)
		}

		return nil, fmt.Errorf("failed to find match result: %w", err)
	}

	return &record, nil
}

// FindByUser implements MatchRecordRepository. History for every résumé
// owned by the user, newest first.
func (r *matchRecordRepository) FindByUser(userID uuid.UUID) ([]models.MatchRecord, error) {
	var records []models.MatchRecord
	err := r.db.
		Joins("JOIN resumes ON resumes.id = match_results.resume_id").
		Where("resumes.user_id = ?", userID).
		Order("match_results.updated_at DESC").
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list match results: %w", err)
	}

	return records, nil
}
