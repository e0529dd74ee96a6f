package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCorpusBuilderWritesDocuments(t *testing.T) {
	dir := NewCorpusBuilder(t).
		WithDoc("a.txt", "the cat sat").
		WithDoc("b.txt", "the dog ran").
		Build()

	for _, name := range []string{"a.txt", "b.txt"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("expected %s to exist: %v", name, err)
		}
	}
}

func TestWriteSynonymsFile(t *testing.T) {
	path := WriteSynonymsFile(t, "cat: [feline]\n")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read synonyms file: %v", err)
	}
	if string(data) != "cat: [feline]\n" {
		t.Errorf("unexpected synonyms content: %q", data)
	}
}
