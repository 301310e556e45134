package matching

import (
	"fmt"

	"github.com/spf13/viper"
)

// CatalogEntry is the reference data behind one skill: the improvement
// suggestion to surface and the learning resources to recommend.
type CatalogEntry struct {
	Suggestion string   `mapstructure:"suggestion"`
	Resources  []string `mapstructure:"resources"`
}

// Catalog is versioned, swappable reference data. Implementations are
// loaded once at process start, never mutated afterward, and therefore
// safe for unsynchronized concurrent reads.
type Catalog interface {
	Lookup(id SkillID) (CatalogEntry, bool)
	Version() string
}

type staticCatalog struct {
	version string
	entries map[SkillID]CatalogEntry
}

func (c *staticCatalog) Lookup(id SkillID) (CatalogEntry, bool) {
	entry, ok := c.entries[id]
	return entry, ok
}

func (c *staticCatalog) Version() string {
	return c.version
}

// DefaultCatalog returns the built-in catalog used when no catalog file
// is configured.
func DefaultCatalog() Catalog {
	return &staticCatalog{
		version: "builtin-1",
		entries: map[SkillID]CatalogEntry{
			"java": {
				Suggestion: "Build a small Spring Boot service to demonstrate hands-on Java experience",
				Resources:  []string{"Coursera: Java Programming specialization", "Udemy: Java tutorials"},
			},
			"python": {
				Suggestion: "Publish a Python project or contribute to an open-source package",
				Resources:  []string{"Coursera: Python for Everybody", "Udemy: Python tutorials"},
			},
			"javascript": {
				Suggestion: "Add a JavaScript project with tests to your portfolio",
				Resources:  []string{"MDN: JavaScript guide", "Udemy: JavaScript tutorials"},
			},
			"typescript": {
				Suggestion: "Convert an existing JavaScript project to TypeScript",
				Resources:  []string{"TypeScript handbook", "Udemy: TypeScript tutorials"},
			},
			"react": {
				Suggestion: "Ship a small React application and link it from your résumé",
				Resources:  []string{"React official tutorial", "Udemy: React tutorials"},
			},
			"go": {
				Suggestion: "Write a CLI or small service in Go to show production-style code",
				Resources:  []string{"Go tour", "Udemy: Go tutorials"},
			},
			"sql": {
				Suggestion: "Practice query design and indexing on a realistic dataset",
				Resources:  []string{"LinkedIn Learning: SQL courses", "Coursera: SQL specialization"},
			},
			"postgresql": {
				Suggestion: "Model and tune a schema in PostgreSQL, including explain plans",
				Resources:  []string{"PostgreSQL documentation", "Udemy: PostgreSQL tutorials"},
			},
			"docker": {
				Suggestion: "Containerize one of your projects with a multi-stage build",
				Resources:  []string{"Docker getting started guide", "Udemy: Docker tutorials"},
			},
			"kubernetes": {
				Suggestion: "Deploy a containerized app to a local Kubernetes cluster",
				Resources:  []string{"Kubernetes basics tutorial", "Udemy: Kubernetes tutorials"},
			},
			"aws": {
				Suggestion: "Complete a cloud-practitioner level AWS project end to end",
				Resources:  []string{"AWS skill builder", "Coursera: AWS specialization"},
			},
			"machine learning": {
				Suggestion: "Work through an applied machine-learning course with a capstone",
				Resources:  []string{"Coursera: Machine Learning specialization", "YouTube: machine learning tutorial videos"},
			},
		},
	}
}

type catalogFile struct {
	Version string                  `mapstructure:"version"`
	Skills  map[string]CatalogEntry `mapstructure:"skills"`
}

// LoadCatalog reads a YAML catalog file. Skill keys are normalized with
// the given vocabulary so catalog authors may use display names.
func LoadCatalog(path string, vocab *Vocabulary) (Catalog, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	var file catalogFile
	if err := v.Unmarshal(&file); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file: %w", err)
	}
	if file.Version == "" {
		return nil, fmt.Errorf("%w: catalog file has no version", ErrInvariant)
	}

	entries := make(map[SkillID]CatalogEntry, len(file.Skills))
	for name, entry := range file.Skills {
		if entry.Suggestion == "" {
			return nil, fmt.Errorf("%w: catalog entry %q has no suggestion", ErrInvariant, name)
		}
		entries[vocab.Normalize(name)] = entry
	}

	return &staticCatalog{version: file.Version, entries: entries}, nil
}
