package services

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleResumeText = `John Smith
Senior Software Engineer

5+ years of experience building backend systems in Java and Go.
Worked as a platform developer on PostgreSQL, Docker and Kubernetes.
3 years of experience with Python.

Education:
Bachelor of Science in Computer Science
Master's degree in Data Engineering
`

func TestParseResumeSkills(t *testing.T) {
	parsed := NewExtractionService().ParseResume(sampleResumeText)

	assert.Contains(t, parsed.Skills, "Java")
	assert.Contains(t, parsed.Skills, "Go")
	assert.Contains(t, parsed.Skills, "Python")
	assert.Contains(t, parsed.Skills, "PostgreSQL")
	assert.Contains(t, parsed.Skills, "Docker")
	assert.Contains(t, parsed.Skills, "Kubernetes")
}

func TestParseResumeSkillsDeduplicated(t *testing.T) {
	parsed := NewExtractionService().ParseResume("Java, java and JAVA again")

	require.Len(t, parsed.Skills, 1)
	assert.Equal(t, "Java", parsed.Skills[0])
}

func TestParseResumeExperienceKeepsLargestYears(t *testing.T) {
	// Repeated "N years" claims must not add up.
	parsed := NewExtractionService().ParseResume(sampleResumeText)

	var years []float64
	for _, entry := range parsed.Experience {
		if entry.Years > 0 {
			years = append(years, entry.Years)
		}
	}
	require.Len(t, years, 1)
	assert.Equal(t, 5.0, years[0])
}

func TestParseResumeExperienceRoles(t *testing.T) {
	parsed := NewExtractionService().ParseResume(sampleResumeText)

	var titles []string
	for _, entry := range parsed.Experience {
		titles = append(titles, entry.Title)
	}
	assert.Contains(t, titles, "Senior Software Engineer")
}

func TestParseResumeEducation(t *testing.T) {
	parsed := NewExtractionService().ParseResume(sampleResumeText)

	require.Len(t, parsed.Education, 2)
	assert.Contains(t, parsed.Education[0].Degree, "Bachelor")
	assert.Contains(t, parsed.Education[1].Degree, "Master")
}

func TestParseResumeEmptyText(t *testing.T) {
	parsed := NewExtractionService().ParseResume("lorem ipsum dolor sit amet")

	assert.Empty(t, parsed.Skills)
	assert.Empty(t, parsed.Experience)
	assert.Empty(t, parsed.Education)
}

func TestExtractTextUnsupportedExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.txt")
	require.NoError(t, os.WriteFile(path, []byte("plain text"), 0o644))

	_, err := NewExtractionService().ExtractText(path)
	assert.ErrorContains(t, err, "unsupported file type")
}

func TestExtractTextMissingFile(t *testing.T) {
	_, err := NewExtractionService().ExtractText(filepath.Join(t.TempDir(), "nope.pdf"))
	assert.ErrorContains(t, err, "does not exist")
}

func TestCleanText(t *testing.T) {
	input := "  line one \t has   spaces  \n\n\n  line two  \n"
	assert.Equal(t, "line one has spaces\nline two", CleanText(input))
}
