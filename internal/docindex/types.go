// Package docindex builds, persists, loads and serves the positional
// inverted index and its auxiliary phonetic and k-gram structures as a
// single immutable snapshot.
package docindex

import "github.com/corpuslab/vsmsearch/internal/kgram"

// Posting records one document's occurrences of a term: its document id,
// term frequency, and the strictly ascending zero-based positions of the
// term within that document's cleaned-term stream.
type Posting struct {
	DocID     int
	TF        int
	Positions []int
}

// Snapshot is the complete, immutable bundle of index artifacts produced
// by a single build and loaded together for query service.
type Snapshot struct {
	// DocIDMap maps a document id to its source file path. Injective.
	DocIDMap map[int]string

	// Postings maps a term to its postings list, ordered by ascending
	// doc id.
	Postings map[string][]Posting

	// DocFreq maps a term to the number of distinct documents
	// containing it. Invariant: DocFreq[t] == len(Postings[t]).
	DocFreq map[string]int

	// DocLen maps a document id to the Euclidean norm of its lnc
	// weight vector.
	DocLen map[int]float64

	// TermDictionary is the set of terms actually present in the
	// corpus.
	TermDictionary map[string]struct{}

	// SoundexMap maps a 4-character Soundex code to the set of
	// lowercase original tokens that were purely alphabetic and
	// appeared capitalized in some document.
	SoundexMap map[string]map[string]struct{}

	// KgramMap maps a 3-gram to the set of dictionary terms
	// containing it.
	KgramMap map[string]map[string]struct{}

	// SynonymMap maps a term to its list of synonym terms. Supplied
	// externally and read-only at query time.
	SynonymMap map[string][]string
}

// Empty returns a Snapshot with all fields initialized to empty, non-nil
// containers.
func Empty() *Snapshot {
	return &Snapshot{
		DocIDMap:       make(map[int]string),
		Postings:       make(map[string][]Posting),
		DocFreq:        make(map[string]int),
		DocLen:         make(map[int]float64),
		TermDictionary: make(map[string]struct{}),
		SoundexMap:     make(map[string]map[string]struct{}),
		KgramMap:       make(map[string]map[string]struct{}),
		SynonymMap:     make(map[string][]string),
	}
}

// NumDocs returns the number of documents with a recorded length, i.e.
// N in the ranking formula. Unreadable documents have a doc_id but no
// DocLen entry and are excluded from N.
func (s *Snapshot) NumDocs() int {
	return len(s.DocLen)
}

// HasSoundex, HasKgrams and HasSynonyms report whether the matching
// optional auxiliary artifact is non-empty, for disabling expansion
// modes gracefully.
func (s *Snapshot) HasSoundex() bool  { return len(s.SoundexMap) > 0 }
func (s *Snapshot) HasKgrams() bool   { return len(s.KgramMap) > 0 }
func (s *Snapshot) HasSynonyms() bool { return len(s.SynonymMap) > 0 }

// HasTerm reports whether term is present in the corpus's term
// dictionary, satisfying spell.Dictionary.
func (s *Snapshot) HasTerm(term string) bool {
	_, ok := s.TermDictionary[term]
	return ok
}

// KgramCandidates returns every dictionary term sharing a k-gram with
// term, satisfying spell.Dictionary.
func (s *Snapshot) KgramCandidates(term string) []string {
	seen := make(map[string]struct{})
	for _, g := range kgram.Generate(term) {
		for t := range s.KgramMap[g] {
			if t != term {
				seen[t] = struct{}{}
			}
		}
	}
	out := make([]string, 0, len(seen))
	for t := range seen {
		out = append(out, t)
	}
	return out
}
