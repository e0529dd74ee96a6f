package textnorm

import "testing"

func TestEnglishStopwordsMembership(t *testing.T) {
	sw := NewEnglishStopwords()

	for _, word := range []string{"the", "and", "of", "is"} {
		if !sw.IsStopword(word) {
			t.Errorf("expected %q to be a stopword", word)
		}
	}

	for _, word := range []string{"algorithm", "corpus", "retrieval"} {
		if sw.IsStopword(word) {
			t.Errorf("did not expect %q to be a stopword", word)
		}
	}
}
