package models

import (
	"time"

	"github.com/google/uuid"

	"jobfit/matching-api/internal/matching"
)

type JobDescription struct {
	ID                 uuid.UUID                         `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID             uuid.UUID                         `gorm:"type:uuid;not null;index" json:"user_id"`
	Title              string                            `gorm:"type:text;not null" json:"title"`
	Company            string                            `gorm:"type:text" json:"company"`
	Description        string                            `gorm:"type:text" json:"description"`
	RequiredSkills     []matching.ParsedSkillRequirement `gorm:"type:jsonb;serializer:json" json:"required_skills"`
	PreferredSkills    []matching.ParsedSkillRequirement `gorm:"type:jsonb;serializer:json" json:"preferred_skills"`
	MinEducation       string                            `gorm:"type:text" json:"min_education"`
	MinExperienceYears float64                           `gorm:"type:decimal(5,2);default:0" json:"min_experience_years"`
	CreatedAt          time.Time                         `gorm:"type:timestamp;default:now()" json:"created_at"`
	UpdatedAt          time.Time                         `gorm:"type:timestamp;default:now()" json:"updated_at"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

func (j *JobDescription) TableName() string {
	return "job_descriptions"
}

// Parsed returns the engine's view of this job description.
func (j *JobDescription) Parsed() *matching.ParsedJobDescription {
	return &matching.ParsedJobDescription{
		RequiredSkills:     j.RequiredSkills,
		PreferredSkills:    j.PreferredSkills,
		MinEducation:       j.MinEducation,
		MinExperienceYears: j.MinExperienceYears,
	}
}
