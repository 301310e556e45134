package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testScorer(t *testing.T) *Scorer {
	t.Helper()
	scorer, err := NewScorer(DefaultWeights())
	require.NoError(t, err)
	return scorer
}

func resumeWith(skills map[SkillID]float64, total float64, education EducationLevel) *ResumeFeatures {
	features := &ResumeFeatures{
		Skills:                 make(map[SkillID]bool),
		ExperienceYearsBySkill: make(map[SkillID]float64),
		TotalExperienceYears:   total,
		EducationLevel:         education,
	}
	for id, years := range skills {
		features.Skills[id] = true
		features.ExperienceYearsBySkill[id] = years
	}
	return features
}

func TestScoreReferenceScenario(t *testing.T) {
	// Resume {python 3y, sql} against required python (2y min), required
	// java, preferred sql: skills (2+0+1)/5 = 0.6, experience and
	// education trivially satisfied, overall 0.8.
	scorer := testScorer(t)

	resume := resumeWith(map[SkillID]float64{"python": 3, "sql": 0}, 3, EducationNone)
	job := &JobRequirement{
		Skills: []SkillRequirement{
			{ID: "python", Required: true, MinYears: 2},
			{ID: "java", Required: true},
			{ID: "sql", Required: false},
		},
	}

	breakdown, err := scorer.Score(resume, job)
	require.NoError(t, err)

	assert.InDelta(t, 0.6, breakdown.Skills, 1e-9)
	assert.InDelta(t, 1.0, breakdown.Experience, 1e-9)
	assert.InDelta(t, 1.0, breakdown.Education, 1e-9)
	assert.InDelta(t, 0.8, breakdown.Overall, 1e-9)

	assert.Equal(t, 1.0, breakdown.SkillScores["python"])
	assert.Equal(t, 0.0, breakdown.SkillScores["java"])
	assert.Equal(t, 1.0, breakdown.SkillScores["sql"])
}

func TestScoreOverallIsConvexCombination(t *testing.T) {
	scorer := testScorer(t)
	weights := DefaultWeights()

	resume := resumeWith(map[SkillID]float64{"go": 1}, 2, EducationBachelor)
	job := &JobRequirement{
		Skills: []SkillRequirement{
			{ID: "go", Required: true, MinYears: 3},
			{ID: "rust", Required: false},
		},
		MinEducationLevel:       EducationMaster,
		MinTotalExperienceYears: 4,
	}

	breakdown, err := scorer.Score(resume, job)
	require.NoError(t, err)

	want := weights.Skills*breakdown.Skills +
		weights.Experience*breakdown.Experience +
		weights.Education*breakdown.Education
	assert.InDelta(t, want, breakdown.Overall, 1e-9)

	for _, v := range []float64{breakdown.Skills, breakdown.Experience, breakdown.Education, breakdown.Overall} {
		assert.GreaterOrEqual(t, v, 0.0)
		assert.LessOrEqual(t, v, 1.0)
	}
}

func TestScoreEmptyJobSkills(t *testing.T) {
	scorer := testScorer(t)

	resume := resumeWith(nil, 0, EducationNone)
	job := &JobRequirement{MinTotalExperienceYears: 5}

	breakdown, err := scorer.Score(resume, job)
	require.NoError(t, err)

	assert.Equal(t, 1.0, breakdown.Skills, "no skill requirements are trivially satisfied")
	assert.Empty(t, breakdown.SkillScores)
}

func TestScoreZeroMinExperience(t *testing.T) {
	scorer := testScorer(t)

	resume := resumeWith(map[SkillID]float64{"go": 0}, 0, EducationNone)
	job := &JobRequirement{
		Skills: []SkillRequirement{{ID: "go", Required: true}},
	}

	breakdown, err := scorer.Score(resume, job)
	require.NoError(t, err)

	assert.Equal(t, 1.0, breakdown.Experience)
}

func TestScoreExperiencePartialCredit(t *testing.T) {
	scorer := testScorer(t)

	resume := resumeWith(map[SkillID]float64{"go": 0}, 3, EducationNone)
	job := &JobRequirement{
		Skills:                  []SkillRequirement{{ID: "go", Required: true}},
		MinTotalExperienceYears: 6,
	}

	breakdown, err := scorer.Score(resume, job)
	require.NoError(t, err)

	assert.InDelta(t, 0.5, breakdown.Experience, 1e-9)
}

func TestScoreEducationPartialCredit(t *testing.T) {
	scorer := testScorer(t)

	job := &JobRequirement{
		Skills:            []SkillRequirement{{ID: "go", Required: true}},
		MinEducationLevel: EducationMaster,
	}

	bachelor, err := scorer.Score(resumeWith(nil, 0, EducationBachelor), job)
	require.NoError(t, err)
	assert.InDelta(t, float64(EducationBachelor)/float64(EducationMaster), bachelor.Education, 1e-9)

	doctorate, err := scorer.Score(resumeWith(nil, 0, EducationDoctorate), job)
	require.NoError(t, err)
	assert.Equal(t, 1.0, doctorate.Education)

	none, err := scorer.Score(resumeWith(nil, 0, EducationNone), job)
	require.NoError(t, err)
	assert.Equal(t, 0.0, none.Education)
}

func TestEntryScoreUnderExperienced(t *testing.T) {
	resume := resumeWith(map[SkillID]float64{"python": 1}, 1, EducationNone)

	score := EntryScore(resume, SkillRequirement{ID: "python", Required: true, MinYears: 4})
	assert.InDelta(t, 0.25, score, 1e-9)

	score = EntryScore(resume, SkillRequirement{ID: "java", Required: true, MinYears: 4})
	assert.Equal(t, 0.0, score)
}

func TestWeightsValidate(t *testing.T) {
	assert.NoError(t, DefaultWeights().Validate())

	bad := DefaultWeights()
	bad.Skills = 0.9
	assert.ErrorIs(t, bad.Validate(), ErrInvariant)

	negative := DefaultWeights()
	negative.Education = -0.2
	negative.Skills = 1.0
	assert.ErrorIs(t, negative.Validate(), ErrInvariant)

	_, err := NewScorer(Weights{Skills: 1, RequiredSkill: 0, PreferredSkill: 1})
	assert.ErrorIs(t, err, ErrInvariant)
}
