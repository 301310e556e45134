package matching

import "fmt"

// SuggestionEngine maps gaps to ranked, de-duplicated improvement
// suggestions and learning resources from the catalog.
type SuggestionEngine struct {
	catalog Catalog
	limit   int
}

// DefaultSuggestionLimit bounds each output list so the response stays
// readable regardless of how many gaps the analysis produced.
const DefaultSuggestionLimit = 10

func NewSuggestionEngine(catalog Catalog, limit int) *SuggestionEngine {
	if limit <= 0 {
		limit = DefaultSuggestionLimit
	}
	return &SuggestionEngine{catalog: catalog, limit: limit}
}

// Suggest produces improvement suggestions and learning resources for the
// missing skills, in gap order. Score-level advice comes first, then one
// suggestion per missing skill; a gap without a catalog entry gets a
// synthesized suggestion so it is never silently dropped. Resources are
// de-duplicated across skills preserving first-seen order, and both lists
// are capped at the configured limit.
func (e *SuggestionEngine) Suggest(scores *ScoreBreakdown, missing []SkillID) (suggestions, resources []string) {
	if scores.Overall < 0.5 {
		suggestions = append(suggestions, "Your resume needs significant improvements to match this job requirement")
	}
	if scores.Skills < 0.5 {
		suggestions = append(suggestions, "Consider adding more relevant technical skills to your resume")
	}
	if scores.Skills < 0.7 {
		suggestions = append(suggestions, "Highlight your most relevant skills at the top of your resume")
	}

	seenResource := make(map[string]bool)
	for _, id := range missing {
		entry, ok := e.catalog.Lookup(id)
		if !ok {
			entry = CatalogEntry{
				Suggestion: fmt.Sprintf("Develop stronger proficiency in %s", id),
				Resources: []string{
					fmt.Sprintf("LinkedIn Learning: %s courses", id),
					fmt.Sprintf("YouTube: %s tutorial videos", id),
				},
			}
		}
		suggestions = append(suggestions, entry.Suggestion)
		for _, resource := range entry.Resources {
			if seenResource[resource] {
				continue
			}
			seenResource[resource] = true
			resources = append(resources, resource)
		}
	}

	if len(suggestions) == 0 {
		suggestions = append(suggestions, "Your resume looks well-aligned with the job requirements!")
	}
	if len(resources) == 0 {
		resources = append(resources, "No specific learning resources needed. Your skills match well!")
	}

	if len(suggestions) > e.limit {
		suggestions = suggestions[:e.limit]
	}
	if len(resources) > e.limit {
		resources = resources[:e.limit]
	}
	return suggestions, resources
}
