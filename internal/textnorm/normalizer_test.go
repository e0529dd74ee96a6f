package textnorm

import (
	"reflect"
	"testing"
)

func TestNormalizerCleanTermsIsUnigramsThenBigrams(t *testing.T) {
	n := NewDefaultNormalizer()

	terms := n.CleanTerms("The Quick Brown Fox jumps")
	lemmas := n.Lemmas("The Quick Brown Fox jumps")

	if len(terms) != len(lemmas)+len(Bigrams(lemmas)) {
		t.Fatalf("CleanTerms length mismatch: got %d terms for %d lemmas", len(terms), len(lemmas))
	}
	if !reflect.DeepEqual(terms[:len(lemmas)], lemmas) {
		t.Errorf("expected unigrams first: got %#v, lemmas %#v", terms, lemmas)
	}
	if !reflect.DeepEqual(terms[len(lemmas):], Bigrams(lemmas)) {
		t.Errorf("expected bigrams to follow unigrams: got %#v", terms)
	}
}

func TestNormalizerDropsStopwordsAndNonAlpha(t *testing.T) {
	n := NewDefaultNormalizer()
	lemmas := n.Lemmas("The 42 cats and the dogs")
	for _, l := range lemmas {
		if l == "the" || l == "and" || l == "42" {
			t.Errorf("expected stopwords/non-alpha dropped, got %q in %#v", l, lemmas)
		}
	}
}

func TestBigramsShortInput(t *testing.T) {
	if got := Bigrams([]string{"only"}); got != nil {
		t.Errorf("expected no bigrams for single lemma, got %#v", got)
	}
	if got := Bigrams(nil); got != nil {
		t.Errorf("expected nil for empty input, got %#v", got)
	}
}

func TestBigramsJoining(t *testing.T) {
	got := Bigrams([]string{"a", "b", "c"})
	want := []string{"a_b", "b_c"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Bigrams = %#v, want %#v", got, want)
	}
}
