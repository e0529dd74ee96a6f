// Package docfind provides fuzzy filename lookup over the indexed
// corpus, separate from the ranked search pipeline so that an
// approximate-match convenience command can never perturb cosine
// ranking.
package docfind

import (
	"path/filepath"
	"sort"

	"github.com/sahilm/fuzzy"

	"github.com/corpuslab/vsmsearch/internal/docindex"
)

// Match represents one fuzzy filename match.
type Match struct {
	DocID    int
	Path     string
	Filename string
	Score    int
}

// Finder performs fuzzy matching over a snapshot's known document paths.
type Finder struct {
	docIDs []int
	paths  []string
}

// NewFinder builds a finder over the given snapshot's document set.
func NewFinder(snap *docindex.Snapshot) *Finder {
	f := &Finder{
		docIDs: make([]int, 0, len(snap.DocIDMap)),
		paths:  make([]string, 0, len(snap.DocIDMap)),
	}
	for id, path := range snap.DocIDMap {
		f.docIDs = append(f.docIDs, id)
		f.paths = append(f.paths, path)
	}
	return f
}

// Find returns up to limit fuzzy matches for query against indexed
// filenames, best score first.
func (f *Finder) Find(query string, limit int) []Match {
	if limit <= 0 {
		limit = 10
	}

	targets := make([]string, len(f.paths))
	for i, p := range f.paths {
		targets[i] = filepath.Base(p)
	}

	results := fuzzy.Find(query, targets)
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	var matches []Match
	for i, r := range results {
		if i >= limit {
			break
		}
		matches = append(matches, Match{
			DocID:    f.docIDs[r.Index],
			Path:     f.paths[r.Index],
			Filename: targets[r.Index],
			Score:    r.Score,
		})
	}
	return matches
}
