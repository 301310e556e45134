package matching

import (
	"sort"
	"strings"
	"time"
)

const hoursPerYear = 365.25 * 24

// degreeLevels maps degree-name fragments to the education ordinal.
// Matching is substring-based on the lower-cased degree string; the
// highest matching level wins.
var degreeLevels = []struct {
	fragment string
	level    EducationLevel
}{
	{"phd", EducationDoctorate},
	{"ph.d", EducationDoctorate},
	{"doctor", EducationDoctorate},
	{"master", EducationMaster},
	{"msc", EducationMaster},
	{"m.s", EducationMaster},
	{"mba", EducationMaster},
	{"bachelor", EducationBachelor},
	{"bsc", EducationBachelor},
	{"b.s", EducationBachelor},
	{"b.a", EducationBachelor},
	{"undergraduate", EducationBachelor},
	{"associate", EducationAssociate},
	{"diploma", EducationAssociate},
	{"certificate", EducationAssociate},
}

// Extractor turns parsed documents into comparison features. It holds the
// vocabulary and a fixed reference time so ongoing roles (no end date)
// extract deterministically.
type Extractor struct {
	vocab *Vocabulary
	now   time.Time
}

func NewExtractor(vocab *Vocabulary) *Extractor {
	return &Extractor{vocab: vocab, now: time.Now().UTC()}
}

// NewExtractorAt pins the reference time used for ongoing roles.
func NewExtractorAt(vocab *Vocabulary, now time.Time) *Extractor {
	return &Extractor{vocab: vocab, now: now}
}

// ExtractResume derives ResumeFeatures from a parsed résumé. It fails
// with ErrEmptyDocument only when the input is structurally empty: no
// skills, no experience and no education.
func (e *Extractor) ExtractResume(doc *ParsedResume) (*ResumeFeatures, error) {
	if doc == nil || (len(doc.Skills) == 0 && len(doc.Experience) == 0 && len(doc.Education) == 0) {
		return nil, ErrEmptyDocument
	}

	features := &ResumeFeatures{
		Skills:                 make(map[SkillID]bool),
		ExperienceYearsBySkill: make(map[SkillID]float64),
	}

	for _, id := range e.vocab.NormalizeAll(doc.Skills) {
		features.Skills[id] = true
	}

	features.TotalExperienceYears = e.totalYears(doc.Experience)

	for _, entry := range doc.Experience {
		years := e.entryYears(entry)
		for _, id := range e.vocab.NormalizeAll(entry.Skills) {
			features.Skills[id] = true
			features.ExperienceYearsBySkill[id] += years
		}
	}

	features.EducationLevel, features.LowConfidenceEducation = highestEducation(doc.Education)

	return features, nil
}

// ExtractJob derives a JobRequirement. Required entries win over
// preferred duplicates of the same canonical skill. A job with no
// requirements at all is structurally empty.
func (e *Extractor) ExtractJob(doc *ParsedJobDescription) (*JobRequirement, error) {
	if doc == nil {
		return nil, ErrEmptyDocument
	}

	job := &JobRequirement{
		MinTotalExperienceYears: max0(doc.MinExperienceYears),
	}

	seen := make(map[SkillID]int) // index into job.Skills
	add := func(parsed ParsedSkillRequirement, required bool) {
		id := e.vocab.Normalize(parsed.Name)
		if id == "" {
			return
		}
		if i, ok := seen[id]; ok {
			if required && !job.Skills[i].Required {
				job.Skills[i].Required = true
			}
			if parsed.MinYears > job.Skills[i].MinYears {
				job.Skills[i].MinYears = max0(parsed.MinYears)
			}
			return
		}
		seen[id] = len(job.Skills)
		job.Skills = append(job.Skills, SkillRequirement{
			ID:       id,
			Required: required,
			MinYears: max0(parsed.MinYears),
		})
	}
	for _, s := range doc.RequiredSkills {
		add(s, true)
	}
	for _, s := range doc.PreferredSkills {
		add(s, false)
	}

	if strings.TrimSpace(doc.MinEducation) != "" {
		job.MinEducationLevel, _ = degreeLevel(doc.MinEducation)
	}

	if len(job.Skills) == 0 && job.MinTotalExperienceYears == 0 && job.MinEducationLevel == EducationNone &&
		strings.TrimSpace(doc.MinEducation) == "" {
		return nil, ErrEmptyDocument
	}

	return job, nil
}

// totalYears sums experience without double-counting concurrent roles:
// date ranges are merged into disjoint intervals first, then entries
// carrying only an explicit year count are added on top.
func (e *Extractor) totalYears(entries []ExperienceEntry) float64 {
	type interval struct{ start, end time.Time }
	var intervals []interval
	var explicit float64

	for _, entry := range entries {
		if entry.Start == nil {
			explicit += max0(entry.Years)
			continue
		}
		end := e.now
		if entry.End != nil {
			end = *entry.End
		}
		if !end.After(*entry.Start) {
			continue
		}
		intervals = append(intervals, interval{start: *entry.Start, end: end})
	}

	sort.Slice(intervals, func(i, j int) bool {
		return intervals[i].start.Before(intervals[j].start)
	})

	var merged float64
	for i := 0; i < len(intervals); {
		start, end := intervals[i].start, intervals[i].end
		j := i + 1
		for j < len(intervals) && !intervals[j].start.After(end) {
			if intervals[j].end.After(end) {
				end = intervals[j].end
			}
			j++
		}
		merged += end.Sub(start).Hours() / hoursPerYear
		i = j
	}

	return merged + explicit
}

func (e *Extractor) entryYears(entry ExperienceEntry) float64 {
	if entry.Start == nil {
		return max0(entry.Years)
	}
	end := e.now
	if entry.End != nil {
		end = *entry.End
	}
	if !end.After(*entry.Start) {
		return 0
	}
	return end.Sub(*entry.Start).Hours() / hoursPerYear
}

// highestEducation maps the best degree on the résumé to the ordinal
// scale. Unknown degree strings default to the lowest ordinal with a
// low-confidence flag rather than failing extraction.
func highestEducation(entries []EducationEntry) (EducationLevel, bool) {
	best := EducationNone
	lowConfidence := false
	for _, entry := range entries {
		level, known := degreeLevel(entry.Degree)
		if !known {
			lowConfidence = true
			continue
		}
		if level > best {
			best = level
		}
	}
	return best, lowConfidence
}

func degreeLevel(degree string) (EducationLevel, bool) {
	s := strings.ToLower(degree)
	for _, d := range degreeLevels {
		if strings.Contains(s, d.fragment) {
			return d.level, true
		}
	}
	return EducationNone, false
}

func max0(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}
