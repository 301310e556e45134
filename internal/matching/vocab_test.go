package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeSynonyms(t *testing.T) {
	vocab := NewVocabulary(nil)

	cases := map[string]SkillID{
		"JS":         "javascript",
		"js":         "javascript",
		"JavaScript": "javascript",
		"Golang":     "go",
		"  Python  ": "python",
		"node":       "node.js",
		"NodeJS":     "node.js",
		"Postgres":   "postgresql",
		"k8s":        "kubernetes",
		"C#":         "c#",
		"C++":        "c++",
		"ci-cd":      "ci/cd",
		"CI/CD":      "ci/cd",
	}

	for raw, want := range cases {
		assert.Equal(t, want, vocab.Normalize(raw), "normalize %q", raw)
	}
}

func TestNormalizeUnknownTokenIsItsOwnID(t *testing.T) {
	vocab := NewVocabulary(nil)

	assert.Equal(t, SkillID("quantum basket weaving"), vocab.Normalize("Quantum Basket-Weaving!"))
}

func TestNormalizeIsIdempotent(t *testing.T) {
	vocab := NewVocabulary(nil)

	inputs := []string{"JS", "node", "C++", "Machine Learning", "ci-cd", "weird   spacing", "", "...", "Sénior Dev"}
	for _, raw := range inputs {
		once := vocab.Normalize(raw)
		assert.Equal(t, once, vocab.Normalize(string(once)), "fixed point for %q", raw)
	}
}

func TestNormalizeExtraSynonymsOverrideBuiltins(t *testing.T) {
	vocab := NewVocabulary(map[string]string{
		"js":     "ecmascript-2023",
		"Erlang": "BEAM",
	})

	assert.Equal(t, SkillID("ecmascript 2023"), vocab.Normalize("JS"))
	assert.Equal(t, SkillID("beam"), vocab.Normalize("erlang"))
}

func TestNormalizeAllDeduplicates(t *testing.T) {
	vocab := NewVocabulary(nil)

	ids := vocab.NormalizeAll([]string{"JS", "javascript", "Python", "", "  ", "py"})
	assert.Equal(t, []SkillID{"javascript", "python"}, ids)
}
