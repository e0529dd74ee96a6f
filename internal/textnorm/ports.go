// Package textnorm implements the text normalization pipeline shared by
// indexing and query processing: tokenize, filter to alphabetic tokens,
// lowercase, drop stopwords, lemmatize, then append adjacent bigrams.
//
// Tokenization, stopword membership and lemmatization are treated as ports
// — pluggable services with a documented contract — since a production
// deployment would back them with a real English NLP pipeline (a proper
// word tokenizer, a curated stopword list, a WordNet-style lemmatizer).
// The implementations in this package are small, dependency-free stand-ins
// that satisfy the same contract so the pipeline is runnable standalone.
package textnorm

// Tokenizer splits raw text into surface tokens, preserving original
// casing and punctuation boundaries (it does not filter or normalize).
type Tokenizer interface {
	Tokenize(text string) []string
}

// StopwordSet reports whether a lowercase token should be dropped.
type StopwordSet interface {
	IsStopword(lower string) bool
}

// Lemmatizer reduces a lowercase, non-stopword token to its dictionary
// form (e.g. "dogs" -> "dog").
type Lemmatizer interface {
	Lemmatize(lower string) string
}
