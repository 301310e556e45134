package matching

import "sort"

// MissingSkills lists the required skills the résumé does not fully
// satisfy: any required entry whose score is below 1.0, including partial
// scores ("missing" means not fully met, matching the displayed "Skills
// to Develop"). Preferred skills never appear here.
//
// Order is deterministic: required before preferred (vacuous today, kept
// so the comparator survives a policy change), then descending weight,
// then ascending SkillID.
func MissingSkills(job *JobRequirement, skillScores map[SkillID]float64, weights Weights) []SkillID {
	type gap struct {
		id       SkillID
		required bool
		weight   float64
	}

	var gaps []gap
	for _, req := range job.Skills {
		if !req.Required {
			continue
		}
		if score, ok := skillScores[req.ID]; ok && score >= 1 {
			continue
		}
		gaps = append(gaps, gap{id: req.ID, required: req.Required, weight: weights.RequiredSkill})
	}

	sort.Slice(gaps, func(i, j int) bool {
		if gaps[i].required != gaps[j].required {
			return gaps[i].required
		}
		if gaps[i].weight != gaps[j].weight {
			return gaps[i].weight > gaps[j].weight
		}
		return gaps[i].id < gaps[j].id
	})

	missing := make([]SkillID, len(gaps))
	for i, g := range gaps {
		missing[i] = g.id
	}
	return missing
}
