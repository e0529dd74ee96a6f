package docfind

import (
	"testing"

	"github.com/corpuslab/vsmsearch/internal/docindex"
)

func snapshotWithDocs(paths map[int]string) *docindex.Snapshot {
	snap := docindex.Empty()
	for id, p := range paths {
		snap.DocIDMap[id] = p
	}
	return snap
}

func TestFinderFindsClosestFilename(t *testing.T) {
	snap := snapshotWithDocs(map[int]string{
		1: "corpus/alpha_report.txt",
		2: "corpus/beta_notes.txt",
		3: "corpus/gamma_summary.txt",
	})
	finder := NewFinder(snap)

	matches := finder.Find("alpha", 5)
	if len(matches) == 0 {
		t.Fatal("expected at least one match")
	}
	if matches[0].DocID != 1 {
		t.Errorf("expected doc 1 (alpha_report.txt) to rank first, got doc %d", matches[0].DocID)
	}
}

func TestFinderRespectsLimit(t *testing.T) {
	snap := snapshotWithDocs(map[int]string{
		1: "corpus/notes_one.txt",
		2: "corpus/notes_two.txt",
		3: "corpus/notes_three.txt",
	})
	finder := NewFinder(snap)

	matches := finder.Find("notes", 2)
	if len(matches) > 2 {
		t.Errorf("expected at most 2 matches, got %d", len(matches))
	}
}

func TestFinderNoMatchesReturnsEmpty(t *testing.T) {
	snap := snapshotWithDocs(map[int]string{
		1: "corpus/alpha.txt",
	})
	finder := NewFinder(snap)

	matches := finder.Find("zzzzzzzzzzzzzzz", 5)
	if len(matches) != 0 {
		t.Errorf("expected no matches, got %d", len(matches))
	}
}

func TestFinderEmptySnapshot(t *testing.T) {
	finder := NewFinder(docindex.Empty())
	matches := finder.Find("anything", 5)
	if len(matches) != 0 {
		t.Errorf("expected no matches over empty snapshot, got %d", len(matches))
	}
}
