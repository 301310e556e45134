package matching

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y, m, d int) *time.Time {
	t := time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
	return &t
}

func testExtractor() *Extractor {
	return NewExtractorAt(NewVocabulary(nil), time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
}

func TestExtractResumeEmptyDocument(t *testing.T) {
	e := testExtractor()

	_, err := e.ExtractResume(&ParsedResume{})
	assert.ErrorIs(t, err, ErrEmptyDocument)

	_, err = e.ExtractResume(nil)
	assert.ErrorIs(t, err, ErrEmptyDocument)
}

func TestExtractResumeMergesOverlappingRoles(t *testing.T) {
	e := testExtractor()

	// Two concurrent roles in 2020-2022 plus a disjoint one in 2023.
	features, err := e.ExtractResume(&ParsedResume{
		Skills: []string{"Python"},
		Experience: []ExperienceEntry{
			{Title: "engineer", Start: date(2020, 1, 1), End: date(2022, 1, 1)},
			{Title: "consultant", Start: date(2021, 1, 1), End: date(2022, 1, 1)},
			{Title: "lead", Start: date(2023, 1, 1), End: date(2024, 1, 1)},
		},
	})
	require.NoError(t, err)

	assert.InDelta(t, 3.0, features.TotalExperienceYears, 0.01)
}

func TestExtractResumeExplicitYearsAddAfterMerge(t *testing.T) {
	e := testExtractor()

	features, err := e.ExtractResume(&ParsedResume{
		Skills: []string{"go"},
		Experience: []ExperienceEntry{
			{Title: "engineer", Start: date(2020, 1, 1), End: date(2022, 1, 1)},
			{Title: "prior work", Years: 2.5},
		},
	})
	require.NoError(t, err)

	assert.InDelta(t, 4.5, features.TotalExperienceYears, 0.01)
}

func TestExtractResumeOngoingRoleUsesReferenceTime(t *testing.T) {
	e := testExtractor()

	features, err := e.ExtractResume(&ParsedResume{
		Skills: []string{"go"},
		Experience: []ExperienceEntry{
			{Title: "engineer", Start: date(2024, 1, 1)}, // no end date
		},
	})
	require.NoError(t, err)

	assert.InDelta(t, 2.0, features.TotalExperienceYears, 0.01)
}

func TestExtractResumePerSkillYears(t *testing.T) {
	e := testExtractor()

	features, err := e.ExtractResume(&ParsedResume{
		Skills: []string{"SQL"},
		Experience: []ExperienceEntry{
			{Title: "backend", Skills: []string{"Golang", "Postgres"}, Years: 3},
			{Title: "platform", Skills: []string{"go"}, Years: 1},
		},
	})
	require.NoError(t, err)

	assert.InDelta(t, 4.0, features.ExperienceYearsBySkill["go"], 0.001)
	assert.InDelta(t, 3.0, features.ExperienceYearsBySkill["postgresql"], 0.001)
	assert.True(t, features.Skills["go"], "entry skills join the skill set")
	assert.True(t, features.Skills["sql"])
}

func TestExtractResumeEducation(t *testing.T) {
	e := testExtractor()

	features, err := e.ExtractResume(&ParsedResume{
		Skills: []string{"java"},
		Education: []EducationEntry{
			{Degree: "BSc Computer Science"},
			{Degree: "Master of Science in Data Engineering"},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, EducationMaster, features.EducationLevel)
	assert.False(t, features.LowConfidenceEducation)
}

func TestExtractResumeUnknownDegreeIsLowConfidence(t *testing.T) {
	e := testExtractor()

	features, err := e.ExtractResume(&ParsedResume{
		Education: []EducationEntry{{Degree: "School of Hard Knocks"}},
	})
	require.NoError(t, err)

	assert.Equal(t, EducationNone, features.EducationLevel)
	assert.True(t, features.LowConfidenceEducation)
}

func TestExtractJobRequiredWinsOverPreferred(t *testing.T) {
	e := testExtractor()

	job, err := e.ExtractJob(&ParsedJobDescription{
		RequiredSkills:  []ParsedSkillRequirement{{Name: "Python", MinYears: 2}},
		PreferredSkills: []ParsedSkillRequirement{{Name: "py", MinYears: 5}},
	})
	require.NoError(t, err)

	require.Len(t, job.Skills, 1)
	assert.Equal(t, SkillID("python"), job.Skills[0].ID)
	assert.True(t, job.Skills[0].Required)
	assert.Equal(t, 5.0, job.Skills[0].MinYears, "highest stated minimum wins")
}

func TestExtractJobEducationAndClamping(t *testing.T) {
	e := testExtractor()

	job, err := e.ExtractJob(&ParsedJobDescription{
		RequiredSkills:     []ParsedSkillRequirement{{Name: "go"}},
		MinEducation:       "Bachelor's degree",
		MinExperienceYears: -3,
	})
	require.NoError(t, err)

	assert.Equal(t, EducationBachelor, job.MinEducationLevel)
	assert.Equal(t, 0.0, job.MinTotalExperienceYears, "negative years clamp to zero")
}

func TestExtractJobEmpty(t *testing.T) {
	e := testExtractor()

	_, err := e.ExtractJob(&ParsedJobDescription{})
	assert.ErrorIs(t, err, ErrEmptyDocument)

	// A job with only a non-skill requirement is still scoreable.
	job, err := e.ExtractJob(&ParsedJobDescription{MinExperienceYears: 2})
	require.NoError(t, err)
	assert.Empty(t, job.Skills)
}
