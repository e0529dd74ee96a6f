package queryproc

import (
	"testing"

	"github.com/corpuslab/vsmsearch/internal/kgram"
	"github.com/corpuslab/vsmsearch/internal/textnorm"
)

type stubDict struct {
	terms map[string]struct{}
	idx   *kgram.Index
}

func (d *stubDict) HasTerm(term string) bool { _, ok := d.terms[term]; return ok }
func (d *stubDict) KgramCandidates(term string) []string { return d.idx.Candidates(term) }

func newStubDict(terms ...string) *stubDict {
	d := &stubDict{terms: make(map[string]struct{}), idx: kgram.NewIndex()}
	for _, t := range terms {
		d.terms[t] = struct{}{}
		d.idx.Add(t)
	}
	return d
}

func countTerm(terms []WeightedTerm, target string) int {
	n := 0
	for _, t := range terms {
		if t.Term == target {
			n++
		}
	}
	return n
}

func TestExpandNoTogglesIsLemmasPlusBigrams(t *testing.T) {
	p := NewProcessor(textnorm.NewDefaultNormalizer())
	expanded := p.Expand("cats and dogs", Toggles{}, Resources{})

	if countTerm(expanded, "cat") != 1 || countTerm(expanded, "dog") != 1 {
		t.Errorf("expected unigrams cat and dog, got %#v", expanded)
	}
	if countTerm(expanded, "cat_dog") != 1 {
		t.Errorf("expected bigram cat_dog, got %#v", expanded)
	}
}

func TestExpandOnlyStopwordsIsEmpty(t *testing.T) {
	p := NewProcessor(textnorm.NewDefaultNormalizer())
	expanded := p.Expand("the and of", Toggles{}, Resources{})
	if len(expanded) != 0 {
		t.Errorf("expected empty expansion for stopword-only query, got %#v", expanded)
	}
}

func TestExpandSpellingCorrectsTerm(t *testing.T) {
	p := NewProcessor(textnorm.NewDefaultNormalizer())
	dict := newStubDict("smith")

	expanded := p.Expand("smyth", Toggles{Spelling: true}, Resources{Dictionary: dict})
	if countTerm(expanded, "smith") != 1 {
		t.Errorf("expected corrected term smith, got %#v", expanded)
	}
}

func TestExpandSynonyms(t *testing.T) {
	p := NewProcessor(textnorm.NewDefaultNormalizer())
	synonyms := map[string][]string{"happy": {"glad"}}

	expanded := p.Expand("happy", Toggles{Synonyms: true}, Resources{SynonymMap: synonyms})
	if countTerm(expanded, "happy") != 1 || countTerm(expanded, "glad") != 1 {
		t.Errorf("expected both happy and glad, got %#v", expanded)
	}
}

func TestExpandSoundexRequiresCapitalizedSurface(t *testing.T) {
	p := NewProcessor(textnorm.NewDefaultNormalizer())
	soundexMap := map[string]map[string]struct{}{
		"S530": {"smyth": {}, "smythe": {}},
	}

	capitalized := p.Expand("Smith", Toggles{Soundex: true}, Resources{SoundexMap: soundexMap})
	if countTerm(capitalized, "smyth") != 1 || countTerm(capitalized, "smythe") != 1 {
		t.Errorf("expected phonetic expansion for capitalized surface, got %#v", capitalized)
	}

	lowercase := p.Expand("smith", Toggles{Soundex: true}, Resources{SoundexMap: soundexMap})
	if countTerm(lowercase, "smyth") != 0 {
		t.Errorf("expected no phonetic expansion for lowercase surface, got %#v", lowercase)
	}
}
