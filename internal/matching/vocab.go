package matching

import (
	"strings"
	"unicode"
)

// Vocabulary canonicalizes free-text skill tokens. It is immutable after
// construction, so concurrent reads need no synchronization.
type Vocabulary struct {
	synonyms map[string]SkillID
}

// defaultSynonyms maps cleaned tokens to canonical ids. Canonical ids must
// be fixed points of Normalize: already cleaned and never remapped.
var defaultSynonyms = map[string]SkillID{
	"js":         "javascript",
	"ecmascript": "javascript",
	"ts":         "typescript",
	"py":         "python",
	"golang":     "go",
	"c sharp":    "c#",
	"csharp":     "c#",
	"cpp":        "c++",
	"node":       "node.js",
	"nodejs":     "node.js",
	"reactjs":    "react",
	"react.js":   "react",
	"vuejs":      "vue",
	"vue.js":     "vue",
	"angularjs":  "angular",
	"postgres":   "postgresql",
	"psql":       "postgresql",
	"mongo":      "mongodb",
	"k8s":        "kubernetes",
	"ml":         "machine learning",
	"ai":         "machine learning",
	"gcp":        "google cloud",
	"amazon web services": "aws",
	"ci cd":               "ci/cd",
	"cicd":                "ci/cd",
	"rest api":            "rest",
	"restful":             "rest",
}

// NewVocabulary returns a vocabulary seeded with the built-in synonym
// table. Extra synonyms (e.g. from reference data) override built-ins.
func NewVocabulary(extra map[string]string) *Vocabulary {
	synonyms := make(map[string]SkillID, len(defaultSynonyms)+len(extra))
	for token, id := range defaultSynonyms {
		synonyms[token] = id
	}
	for token, id := range extra {
		synonyms[cleanToken(token)] = SkillID(cleanToken(id))
	}
	return &Vocabulary{synonyms: synonyms}
}

// Normalize canonicalizes a raw skill token. It is total: tokens absent
// from the synonym table become their own canonical id, so novel skills
// still participate in scoring. Normalize(Normalize(x)) == Normalize(x).
func (v *Vocabulary) Normalize(raw string) SkillID {
	token := cleanToken(raw)
	if id, ok := v.synonyms[token]; ok {
		return id
	}
	return SkillID(token)
}

// NormalizeAll normalizes a token list, dropping empties and duplicates
// while preserving first-seen order.
func (v *Vocabulary) NormalizeAll(raw []string) []SkillID {
	seen := make(map[SkillID]bool, len(raw))
	ids := make([]SkillID, 0, len(raw))
	for _, token := range raw {
		id := v.Normalize(token)
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
	}
	return ids
}

// cleanToken lower-cases, trims and strips punctuation. Separator runes
// become spaces so "ci/cd" and "ci-cd" clean identically; '+', '#' and
// interior dots survive so "c++", "c#" and "node.js" stay distinct.
func cleanToken(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	s = strings.Map(func(r rune) rune {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			return r
		case r == '+' || r == '#' || r == '.' || r == '/' || r == ' ':
			return r
		case r == '-' || r == '_' || r == ',' || r == ';':
			return ' '
		default:
			return -1
		}
	}, s)
	s = strings.Join(strings.Fields(s), " ")
	return strings.Trim(s, "./ ")
}
