package matching

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func goodScores() *ScoreBreakdown {
	return &ScoreBreakdown{Skills: 0.9, Experience: 1, Education: 1, Overall: 0.93}
}

func TestSuggestCatalogAndSynthesized(t *testing.T) {
	engine := NewSuggestionEngine(DefaultCatalog(), 0)

	suggestions, resources := engine.Suggest(goodScores(), []SkillID{"java", "underwater basket weaving"})

	assert.Contains(t, suggestions[0], "Java")
	assert.Equal(t, "Develop stronger proficiency in underwater basket weaving", suggestions[1])
	assert.Contains(t, resources, "LinkedIn Learning: underwater basket weaving courses")
}

func TestSuggestScoreLevelAdvice(t *testing.T) {
	engine := NewSuggestionEngine(DefaultCatalog(), 0)

	scores := &ScoreBreakdown{Skills: 0.4, Experience: 0.2, Education: 0.5, Overall: 0.36}
	suggestions, _ := engine.Suggest(scores, []SkillID{"go"})

	assert.Equal(t, "Your resume needs significant improvements to match this job requirement", suggestions[0])
	assert.Equal(t, "Consider adding more relevant technical skills to your resume", suggestions[1])
	assert.Equal(t, "Highlight your most relevant skills at the top of your resume", suggestions[2])
}

func TestSuggestDeduplicatesResources(t *testing.T) {
	catalog := &staticCatalog{
		version: "test",
		entries: map[SkillID]CatalogEntry{
			"a": {Suggestion: "learn a", Resources: []string{"shared course", "a course"}},
			"b": {Suggestion: "learn b", Resources: []string{"shared course", "b course"}},
		},
	}
	engine := NewSuggestionEngine(catalog, 0)

	_, resources := engine.Suggest(goodScores(), []SkillID{"a", "b"})
	assert.Equal(t, []string{"shared course", "a course", "b course"}, resources)
}

func TestSuggestCapsOutput(t *testing.T) {
	engine := NewSuggestionEngine(DefaultCatalog(), 3)

	var missing []SkillID
	for i := 0; i < 20; i++ {
		missing = append(missing, SkillID(fmt.Sprintf("skill-%02d", i)))
	}

	suggestions, resources := engine.Suggest(goodScores(), missing)
	assert.Len(t, suggestions, 3)
	assert.LessOrEqual(t, len(resources), 3)
}

func TestSuggestWellAlignedFallback(t *testing.T) {
	engine := NewSuggestionEngine(DefaultCatalog(), 0)

	suggestions, resources := engine.Suggest(goodScores(), nil)

	assert.Equal(t, []string{"Your resume looks well-aligned with the job requirements!"}, suggestions)
	assert.Equal(t, []string{"No specific learning resources needed. Your skills match well!"}, resources)
}
