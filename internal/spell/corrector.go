// Package spell implements k-gram Jaccard-similarity spelling
// correction against a term dictionary.
package spell

import (
	"sort"

	"github.com/corpuslab/vsmsearch/internal/kgram"
)

// Dictionary is the minimal view of a snapshot the corrector needs:
// term membership and the k-gram index for candidate generation.
type Dictionary interface {
	HasTerm(term string) bool
	KgramCandidates(term string) []string
}

// jaccard computes |A∩B| / |A∪B| for two k-gram sets.
func jaccard(a, b map[string]struct{}) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 0
	}
	inter := 0
	for g := range a {
		if _, ok := b[g]; ok {
			inter++
		}
	}
	union := len(a) + len(b) - inter
	if union == 0 {
		return 0
	}
	return float64(inter) / float64(union)
}

// Correct returns term unchanged if it is already in the dictionary.
// Otherwise it finds the dictionary term maximizing Jaccard similarity
// of 3-gram sets, breaking ties by ascending lexicographic order for
// reproducibility. If term has fewer than 3 padded characters, or no
// candidate shares a k-gram with it, term is returned unchanged.
func Correct(term string, dict Dictionary) string {
	if dict.HasTerm(term) {
		return term
	}

	termGrams := kgram.TermGrams(term)
	if len(termGrams) == 0 {
		return term
	}

	candidates := dict.KgramCandidates(term)
	if len(candidates) == 0 {
		return term
	}
	sort.Strings(candidates)

	best := term
	bestScore := -1.0
	for _, c := range candidates {
		score := jaccard(termGrams, kgram.TermGrams(c))
		if score > bestScore {
			bestScore = score
			best = c
		}
	}
	return best
}
