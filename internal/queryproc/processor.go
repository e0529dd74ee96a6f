// Package queryproc expands a raw query string into a weighted term
// list ready for ranking: exact lemmas, their bigrams, and optional
// spelling/synonym/phonetic expansions.
package queryproc

import (
	"strings"
	"unicode"

	"github.com/corpuslab/vsmsearch/internal/phonetic"
	"github.com/corpuslab/vsmsearch/internal/spell"
	"github.com/corpuslab/vsmsearch/internal/textnorm"
)

// WeightedTerm is one entry of the expanded term list E.
type WeightedTerm struct {
	Term   string
	Weight float64
}

// Toggles selects which expansion modes run.
type Toggles struct {
	Spelling bool
	Synonyms bool
	Soundex  bool
}

// Resources is the read-only snapshot data the processor expands
// against. All three maps may be nil or empty, in which case the
// corresponding expansion mode is a no-op.
type Resources struct {
	Dictionary spell.Dictionary
	SynonymMap map[string][]string
	SoundexMap map[string]map[string]struct{}
}

// Processor expands raw query strings using a normalizer shared with
// indexing, so lemmatization stays consistent between the two sides.
type Processor struct {
	Norm *textnorm.Normalizer
}

// NewProcessor builds a Processor around norm.
func NewProcessor(norm *textnorm.Normalizer) *Processor {
	return &Processor{Norm: norm}
}

// Expand runs the full query-expansion pipeline of a raw query string
// into the expanded weighted term list E, per the uniform-weight
// expansion scheme (every appended term carries weight 1.0).
func (p *Processor) Expand(query string, toggles Toggles, res Resources) []WeightedTerm {
	tokens := p.Norm.Tokenizer.Tokenize(query)

	type survivor struct {
		lemma   string
		surface string
	}
	var survivors []survivor
	originalCasing := make(map[string]string)

	for _, tok := range tokens {
		if !isAllAlpha(tok) {
			continue
		}
		lower := strings.ToLower(tok)
		if p.Norm.Stopwords.IsStopword(lower) {
			continue
		}
		lemma := p.Norm.Lemma.Lemmatize(lower)
		survivors = append(survivors, survivor{lemma: lemma, surface: tok})
		if _, seen := originalCasing[lemma]; !seen {
			originalCasing[lemma] = tok
		}
	}

	uq := make([]string, len(survivors))
	for i, s := range survivors {
		uq[i] = s.lemma
	}
	bq := textnorm.Bigrams(uq)

	var expanded []WeightedTerm
	for _, s := range survivors {
		term := s.lemma
		if toggles.Spelling && res.Dictionary != nil {
			term = spell.Correct(term, res.Dictionary)
		}
		expanded = append(expanded, WeightedTerm{Term: term, Weight: 1.0})

		if toggles.Synonyms {
			for _, syn := range res.SynonymMap[term] {
				expanded = append(expanded, WeightedTerm{Term: syn, Weight: 1.0})
			}
		}

		if toggles.Soundex {
			surface := originalCasing[s.lemma]
			if isAllAlpha(surface) && isUpperInitial(surface) {
				code := phonetic.Encode(surface)
				lowerSurface := strings.ToLower(surface)
				for name := range res.SoundexMap[code] {
					if name != lowerSurface {
						expanded = append(expanded, WeightedTerm{Term: name, Weight: 1.0})
					}
				}
			}
		}
	}

	for _, b := range bq {
		expanded = append(expanded, WeightedTerm{Term: b, Weight: 1.0})
	}

	return expanded
}

func isAllAlpha(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

func isUpperInitial(s string) bool {
	r := []rune(s)[0]
	return unicode.IsUpper(r)
}
