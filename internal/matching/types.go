package matching

import "time"

// SkillID is the canonical identifier of a skill after normalization.
// Many raw tokens may map to one SkillID.
type SkillID string

type EducationLevel int

const (
	EducationNone EducationLevel = iota
	EducationAssociate
	EducationBachelor
	EducationMaster
	EducationDoctorate
)

func (l EducationLevel) String() string {
	switch l {
	case EducationAssociate:
		return "associate"
	case EducationBachelor:
		return "bachelor"
	case EducationMaster:
		return "master"
	case EducationDoctorate:
		return "doctorate"
	default:
		return "none"
	}
}

// ExperienceEntry is one role on a résumé. Either a date range or an
// explicit year count; date ranges for concurrent roles are merged before
// summing so they never double-count.
type ExperienceEntry struct {
	Title  string     `json:"title"`
	Skills []string   `json:"skills,omitempty"`
	Start  *time.Time `json:"start,omitempty"`
	End    *time.Time `json:"end,omitempty"` // nil with Start set means ongoing
	Years  float64    `json:"years,omitempty"`
}

type EducationEntry struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution,omitempty"`
}

// ParsedResume is the structured input the engine consumes. Producing it
// (PDF/DOCX text extraction, field parsing) is the ingestion layer's job.
type ParsedResume struct {
	Skills     []string
	Experience []ExperienceEntry
	Education  []EducationEntry
}

// ParsedSkillRequirement is a job-description skill entry as authored.
type ParsedSkillRequirement struct {
	Name     string  `json:"name"`
	MinYears float64 `json:"min_years,omitempty"`
}

type ParsedJobDescription struct {
	RequiredSkills     []ParsedSkillRequirement
	PreferredSkills    []ParsedSkillRequirement
	MinEducation       string
	MinExperienceYears float64
}

// ResumeFeatures is the comparison-ready view of a résumé. The engine
// never mutates it after extraction.
type ResumeFeatures struct {
	Skills                 map[SkillID]bool
	ExperienceYearsBySkill map[SkillID]float64
	TotalExperienceYears   float64
	EducationLevel         EducationLevel

	// LowConfidenceEducation is set when a degree string was not in the
	// mapping table and fell back to the lowest ordinal.
	LowConfidenceEducation bool
}

type SkillRequirement struct {
	ID       SkillID
	Required bool
	MinYears float64 // 0 means no minimum
}

type JobRequirement struct {
	Skills                  []SkillRequirement
	MinEducationLevel       EducationLevel
	MinTotalExperienceYears float64
}

// ScoreBreakdown holds the three sub-scores, the overall convex
// combination, and the per-skill detail. All values lie in [0,1].
type ScoreBreakdown struct {
	Skills      float64
	Experience  float64
	Education   float64
	Overall     float64
	SkillScores map[SkillID]float64
}

// MatchResult is the JSON-serializable shape the front-end consumes.
// Immutable once assembled; the engine itself never persists it.
type MatchResult struct {
	OverallScore           float64            `json:"overallScore"`
	SkillsScore            float64            `json:"skillsScore"`
	ExperienceScore        float64            `json:"experienceScore"`
	EducationScore         float64            `json:"educationScore"`
	SkillScores            map[string]float64 `json:"skillScores"`
	MissingSkills          []string           `json:"missingSkills"`
	ImprovementSuggestions []string           `json:"improvementSuggestions"`
	LearningResources      []string           `json:"learningResources"`
}
