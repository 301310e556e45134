package models

import (
	"time"

	"github.com/google/uuid"

	"jobfit/matching-api/internal/matching"
)

// Resume is a parsed résumé as persisted: the extracted plain text plus
// the structured fields the matching engine consumes.
type Resume struct {
	ID               uuid.UUID                  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID           uuid.UUID                  `gorm:"type:uuid;not null;index" json:"user_id"`
	OriginalFileName string                     `gorm:"type:text" json:"original_filename"`
	StoredFileName   string                     `gorm:"type:text" json:"-"`
	ExtractedText    string                     `gorm:"type:text" json:"-"`
	Skills           []string                   `gorm:"type:jsonb;serializer:json" json:"skills"`
	Experience       []matching.ExperienceEntry `gorm:"type:jsonb;serializer:json" json:"experience"`
	Education        []matching.EducationEntry  `gorm:"type:jsonb;serializer:json" json:"education"`
	CreatedAt        time.Time                  `gorm:"type:timestamp;default:now()" json:"created_at"`
	UpdatedAt        time.Time                  `gorm:"type:timestamp;default:now()" json:"updated_at"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

func (r *Resume) TableName() string {
	return "resumes"
}

// Parsed returns the engine's view of this résumé.
func (r *Resume) Parsed() *matching.ParsedResume {
	return &matching.ParsedResume{
		Skills:     r.Skills,
		Experience: r.Experience,
		Education:  r.Education,
	}
}
