package matching

import (
	"fmt"
	"math"
)

// Weights are the scoring policy constants. They are configuration, not
// algorithm: tests and deployments may tune them, the defaults are the
// product contract.
type Weights struct {
	Skills     float64 `mapstructure:"skills"`
	Experience float64 `mapstructure:"experience"`
	Education  float64 `mapstructure:"education"`

	RequiredSkill  float64 `mapstructure:"required_skill"`
	PreferredSkill float64 `mapstructure:"preferred_skill"`
}

func DefaultWeights() Weights {
	return Weights{
		Skills:         0.5,
		Experience:     0.3,
		Education:      0.2,
		RequiredSkill:  2,
		PreferredSkill: 1,
	}
}

const weightTolerance = 1e-9

// Validate checks the convex-combination invariant: the three component
// weights must be non-negative and sum to 1.
func (w Weights) Validate() error {
	if w.Skills < 0 || w.Experience < 0 || w.Education < 0 {
		return fmt.Errorf("%w: negative component weight", ErrInvariant)
	}
	if math.Abs(w.Skills+w.Experience+w.Education-1) > weightTolerance {
		return fmt.Errorf("%w: component weights sum to %g, want 1", ErrInvariant, w.Skills+w.Experience+w.Education)
	}
	if w.RequiredSkill <= 0 || w.PreferredSkill <= 0 {
		return fmt.Errorf("%w: skill weights must be positive", ErrInvariant)
	}
	return nil
}

// Scorer computes the four match scores with deterministic weighted
// rules. It is pure: same inputs always produce the same breakdown.
type Scorer struct {
	weights Weights
}

func NewScorer(weights Weights) (*Scorer, error) {
	if err := weights.Validate(); err != nil {
		return nil, err
	}
	return &Scorer{weights: weights}, nil
}

// Score computes the breakdown for one résumé against one job. It never
// fails on missing data: absent optional fields score as their neutral
// defaults. An out-of-range result is a programming error and surfaces
// as ErrInvariant.
func (s *Scorer) Score(resume *ResumeFeatures, job *JobRequirement) (*ScoreBreakdown, error) {
	breakdown := &ScoreBreakdown{
		Skills:      s.skillsScore(resume, job),
		Experience:  experienceScore(resume, job),
		Education:   educationScore(resume, job),
		SkillScores: s.skillScores(resume, job),
	}
	breakdown.Overall = clamp01(s.weights.Skills*breakdown.Skills +
		s.weights.Experience*breakdown.Experience +
		s.weights.Education*breakdown.Education)

	for _, v := range []float64{breakdown.Skills, breakdown.Experience, breakdown.Education, breakdown.Overall} {
		if v < 0 || v > 1 || math.IsNaN(v) {
			return nil, fmt.Errorf("%w: score %g out of range", ErrInvariant, v)
		}
	}
	return breakdown, nil
}

// EntryScore is the per-skill score: 1.0 when the skill is present and
// meets its minimum-years requirement (or none is specified), partial
// credit actual/required when present but under-experienced, 0.0 when
// absent.
func EntryScore(resume *ResumeFeatures, req SkillRequirement) float64 {
	if !resume.Skills[req.ID] {
		return 0
	}
	if req.MinYears <= 0 {
		return 1
	}
	actual := resume.ExperienceYearsBySkill[req.ID]
	if actual >= req.MinYears {
		return 1
	}
	return clamp01(actual / req.MinYears)
}

// skillsScore is the weighted overlap: present required skills contribute
// the required weight, present preferred skills the preferred weight,
// over the sum of all weights. A job with no skill requirements is
// trivially satisfied.
func (s *Scorer) skillsScore(resume *ResumeFeatures, job *JobRequirement) float64 {
	if len(job.Skills) == 0 {
		return 1
	}
	var got, total float64
	for _, req := range job.Skills {
		weight := s.weights.PreferredSkill
		if req.Required {
			weight = s.weights.RequiredSkill
		}
		total += weight
		if resume.Skills[req.ID] {
			got += weight
		}
	}
	return clamp01(got / total)
}

func (s *Scorer) skillScores(resume *ResumeFeatures, job *JobRequirement) map[SkillID]float64 {
	scores := make(map[SkillID]float64, len(job.Skills))
	for _, req := range job.Skills {
		scores[req.ID] = EntryScore(resume, req)
	}
	return scores
}

func experienceScore(resume *ResumeFeatures, job *JobRequirement) float64 {
	if job.MinTotalExperienceYears <= 0 {
		return 1
	}
	return clamp01(resume.TotalExperienceYears / job.MinTotalExperienceYears)
}

func educationScore(resume *ResumeFeatures, job *JobRequirement) float64 {
	if resume.EducationLevel >= job.MinEducationLevel {
		return 1
	}
	denominator := float64(job.MinEducationLevel)
	if denominator < 1 {
		denominator = 1
	}
	return clamp01(float64(resume.EducationLevel) / denominator)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
