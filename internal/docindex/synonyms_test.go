package docindex

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadSynonymsMissingPathIsEmpty(t *testing.T) {
	syns, err := LoadSynonyms("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(syns) != 0 {
		t.Errorf("expected empty map, got %v", syns)
	}
}

func TestLoadSynonymsNonexistentFileIsEmpty(t *testing.T) {
	syns, err := LoadSynonyms(filepath.Join(t.TempDir(), "missing.yml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(syns) != 0 {
		t.Errorf("expected empty map, got %v", syns)
	}
}

func TestLoadSynonymsParsesYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "synonyms.yml")
	content := "happy:\n  - glad\n  - joyful\nfast:\n  - quick\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	syns, err := LoadSynonyms(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(syns["happy"]) != 2 || syns["happy"][0] != "glad" {
		t.Errorf("unexpected synonyms for happy: %v", syns["happy"])
	}
	if len(syns["fast"]) != 1 || syns["fast"][0] != "quick" {
		t.Errorf("unexpected synonyms for fast: %v", syns["fast"])
	}
}
