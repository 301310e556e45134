package models

type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=64"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type SkillRequirementRequest struct {
	Name     string  `json:"name" validate:"required"`
	MinYears float64 `json:"min_years" validate:"gte=0"`
}

type CreateJobRequest struct {
	Title              string                    `json:"title" validate:"required"`
	Company            string                    `json:"company"`
	Description        string                    `json:"description"`
	RequiredSkills     []SkillRequirementRequest `json:"required_skills" validate:"dive"`
	PreferredSkills    []SkillRequirementRequest `json:"preferred_skills" validate:"dive"`
	MinEducation       string                    `json:"min_education"`
	MinExperienceYears float64                   `json:"min_experience_years" validate:"gte=0"`
}

type MatchRequest struct {
	ResumeID         string `json:"resumeId" validate:"required,uuid"`
	JobDescriptionID string `json:"jobDescriptionId" validate:"required,uuid"`
}

type ResumeUploadResponse struct {
	ID           string   `json:"id"`
	OriginalName string   `json:"original_name"`
	Skills       []string `json:"skills"`
}

// ErrorResponse is the only error shape the API emits: a human-readable
// message, optionally tagged with the pipeline stage that failed.
type ErrorResponse struct {
	Error string `json:"error"`
	Stage string `json:"stage,omitempty"`
}
