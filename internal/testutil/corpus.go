// Package testutil provides helpers for building temporary on-disk
// corpora and synonym files for tests across the indexing and ranking
// packages.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// CorpusBuilder accumulates documents to materialize under a temporary
// corpus directory.
type CorpusBuilder struct {
	t    *testing.T
	docs map[string]string
}

// NewCorpusBuilder creates an empty corpus builder.
func NewCorpusBuilder(t *testing.T) *CorpusBuilder {
	return &CorpusBuilder{t: t, docs: make(map[string]string)}
}

// WithDoc registers a document by filename (including extension) and
// content, returning the builder for chaining.
func (cb *CorpusBuilder) WithDoc(filename, content string) *CorpusBuilder {
	cb.docs[filename] = content
	return cb
}

// Build writes every registered document into a fresh temp directory
// and returns its path.
func (cb *CorpusBuilder) Build() string {
	cb.t.Helper()
	dir := cb.t.TempDir()
	for name, content := range cb.docs {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			cb.t.Fatalf("testutil: failed to write %s: %v", path, err)
		}
	}
	return dir
}

// WriteSynonymsFile writes a YAML synonym thesaurus (term: [synonyms])
// to a temp file and returns its path.
func WriteSynonymsFile(t *testing.T, yamlContent string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "synonyms.yaml")
	if err := os.WriteFile(path, []byte(yamlContent), 0o644); err != nil {
		t.Fatalf("testutil: failed to write synonyms file: %v", err)
	}
	return path
}
