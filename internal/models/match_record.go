package models

import (
	"time"

	"github.com/google/uuid"

	"jobfit/matching-api/internal/matching"
)

// MatchRecord is the persisted history of one resume-to-job match. One
// record per (resume, job) pair; re-running the match overwrites it.
type MatchRecord struct {
	ID               uuid.UUID          `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	ResumeID         uuid.UUID          `gorm:"type:uuid;not null;uniqueIndex:idx_match_pair" json:"resume_id"`
	JobDescriptionID uuid.UUID          `gorm:"type:uuid;not null;uniqueIndex:idx_match_pair" json:"job_description_id"`
	OverallScore     float64            `gorm:"type:decimal(4,3)" json:"overallScore"`
	SkillsScore      float64            `gorm:"type:decimal(4,3)" json:"skillsScore"`
	ExperienceScore  float64            `gorm:"type:decimal(4,3)" json:"experienceScore"`
	EducationScore   float64            `gorm:"type:decimal(4,3)" json:"educationScore"`
	SkillScores      map[string]float64 `gorm:"type:jsonb;serializer:json" json:"skillScores"`
	MissingSkills    []string           `gorm:"type:jsonb;serializer:json" json:"missingSkills"`
	Suggestions      []string           `gorm:"type:jsonb;serializer:json" json:"improvementSuggestions"`
	Resources        []string           `gorm:"type:jsonb;serializer:json" json:"learningResources"`
	CreatedAt        time.Time          `gorm:"type:timestamp;default:now()" json:"created_at"`
	UpdatedAt        time.Time          `gorm:"type:timestamp;default:now()" json:"updated_at"`

	Resume         Resume         `gorm:"foreignKey:ResumeID" json:"-"`
	JobDescription JobDescription `gorm:"foreignKey:JobDescriptionID" json:"-"`
}

func (m *MatchRecord) TableName() string {
	return "match_results"
}

// NewMatchRecord snapshots an engine result for persistence.
func NewMatchRecord(resumeID, jobID uuid.UUID, result *matching.MatchResult) *MatchRecord {
	return &MatchRecord{
		ResumeID:         resumeID,
		JobDescriptionID: jobID,
		OverallScore:     result.OverallScore,
		SkillsScore:      result.SkillsScore,
		ExperienceScore:  result.ExperienceScore,
		EducationScore:   result.EducationScore,
		SkillScores:      result.SkillScores,
		MissingSkills:    result.MissingSkills,
		Suggestions:      result.ImprovementSuggestions,
		Resources:        result.LearningResources,
	}
}
