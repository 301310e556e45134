package matching

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCatalogFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadCatalog(t *testing.T) {
	path := writeCatalogFile(t, `
version: "2026-01"
skills:
  Golang:
    suggestion: "Ship a Go microservice"
    resources:
      - "Go tour"
  K8s:
    suggestion: "Run workloads on a local cluster"
    resources:
      - "Kubernetes basics tutorial"
`)

	catalog, err := LoadCatalog(path, NewVocabulary(nil))
	require.NoError(t, err)
	assert.Equal(t, "2026-01", catalog.Version())

	// Display names in the file resolve through the same vocabulary
	// the extractor uses.
	entry, ok := catalog.Lookup("go")
	require.True(t, ok)
	assert.Equal(t, "Ship a Go microservice", entry.Suggestion)

	entry, ok = catalog.Lookup("kubernetes")
	require.True(t, ok)
	assert.Equal(t, []string{"Kubernetes basics tutorial"}, entry.Resources)

	_, ok = catalog.Lookup("golang")
	assert.False(t, ok, "only canonical ids are stored")
}

func TestLoadCatalogMissingVersion(t *testing.T) {
	path := writeCatalogFile(t, `
skills:
  go:
    suggestion: "Ship a Go microservice"
`)

	_, err := LoadCatalog(path, NewVocabulary(nil))
	assert.ErrorIs(t, err, ErrInvariant)
}

func TestLoadCatalogMissingSuggestion(t *testing.T) {
	path := writeCatalogFile(t, `
version: "2026-01"
skills:
  go:
    resources:
      - "Go tour"
`)

	_, err := LoadCatalog(path, NewVocabulary(nil))
	assert.ErrorIs(t, err, ErrInvariant)
}

func TestLoadCatalogMissingFile(t *testing.T) {
	_, err := LoadCatalog(filepath.Join(t.TempDir(), "nope.yaml"), NewVocabulary(nil))
	assert.Error(t, err)
}
