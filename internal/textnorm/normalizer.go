package textnorm

import (
	"strings"
	"unicode"
)

// Normalizer runs the shared cleaning pipeline used by both indexing and
// query processing: tokenize, keep purely-alphabetic tokens, lowercase,
// drop stopwords, lemmatize, then append adjacent bigrams of the result.
type Normalizer struct {
	Tokenizer Tokenizer
	Stopwords StopwordSet
	Lemma     Lemmatizer
}

// NewNormalizer builds a Normalizer from its three collaborator ports.
func NewNormalizer(tok Tokenizer, stop StopwordSet, lemma Lemmatizer) *Normalizer {
	return &Normalizer{Tokenizer: tok, Stopwords: stop, Lemma: lemma}
}

// NewDefaultNormalizer wires the built-in stand-in collaborators.
func NewDefaultNormalizer() *Normalizer {
	return NewNormalizer(NewDefaultTokenizer(), NewEnglishStopwords(), NewSuffixLemmatizer())
}

// isAllAlpha reports whether every rune in s is a letter.
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

// Lemmas runs steps 1-5 of the cleaning pipeline only (tokenize, alpha
// filter, lowercase, stopword filter, lemmatize) without appending
// bigrams; CleanTerms builds on it.
func (n *Normalizer) Lemmas(text string) []string {
	tokens := n.Tokenizer.Tokenize(text)
	lemmas := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if !isAllAlpha(tok) {
			continue
		}
		lower := strings.ToLower(tok)
		if n.Stopwords.IsStopword(lower) {
			continue
		}
		lemmas = append(lemmas, n.Lemma.Lemmatize(lower))
	}
	return lemmas
}

// Bigrams returns the adjacent-pair bigrams of a lemma sequence, joined
// with an underscore: [u1,u2,u3] -> ["u1_u2", "u2_u3"].
func Bigrams(lemmas []string) []string {
	if len(lemmas) < 2 {
		return nil
	}
	bigrams := make([]string, 0, len(lemmas)-1)
	for i := 0; i+1 < len(lemmas); i++ {
		bigrams = append(bigrams, lemmas[i]+"_"+lemmas[i+1])
	}
	return bigrams
}

// CleanTerms runs the full cleaning pipeline: lemma unigrams followed by
// their bigrams, U ++ B. Position i in the returned slice is the
// positional index recorded in postings for a document's terms.
func (n *Normalizer) CleanTerms(text string) []string {
	lemmas := n.Lemmas(text)
	return append(lemmas, Bigrams(lemmas)...)
}
