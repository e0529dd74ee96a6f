// Package kgram generates k-grams from terms and maintains the auxiliary
// k-gram index used for fuzzy/spelling-correction candidate generation.
package kgram

const (
	// size is k in k-gram; fixed at 3 per the indexing contract.
	size    = 3
	padding = "$"
)

// Generate returns every length-3 substring of the $-padded term. A term
// whose padded form is shorter than 3 runes produces no k-grams.
func Generate(term string) []string {
	padded := []rune(padding + term + padding)
	if len(padded) < size {
		return nil
	}

	grams := make([]string, 0, len(padded)-size+1)
	for i := 0; i+size <= len(padded); i++ {
		grams = append(grams, string(padded[i:i+size]))
	}
	return grams
}

// Index maps each 3-gram to the set of dictionary terms containing it.
type Index struct {
	grams map[string]map[string]struct{}
}

// NewIndex returns an empty k-gram index.
func NewIndex() *Index {
	return &Index{grams: make(map[string]map[string]struct{})}
}

// Add inserts term's k-grams into the index.
func (idx *Index) Add(term string) {
	for _, g := range Generate(term) {
		set, ok := idx.grams[g]
		if !ok {
			set = make(map[string]struct{})
			idx.grams[g] = set
		}
		set[term] = struct{}{}
	}
}

// Candidates returns the set of terms sharing at least one k-gram with
// term, deduplicated, excluding term itself.
func (idx *Index) Candidates(term string) []string {
	seen := make(map[string]struct{})
	for _, g := range Generate(term) {
		for t := range idx.grams[g] {
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

// Grams exposes the raw gram-to-terms map, e.g. for persistence.
func (idx *Index) Grams() map[string]map[string]struct{} {
	return idx.grams
}

// TermGrams returns term's own set of k-grams (for Jaccard similarity
// computation in the spelling corrector, which needs both sides'
// k-gram sets, not just the inverted index).
func TermGrams(term string) map[string]struct{} {
	grams := Generate(term)
	set := make(map[string]struct{}, len(grams))
	for _, g := range grams {
		set[g] = struct{}{}
	}
	return set
}
