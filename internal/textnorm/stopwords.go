package textnorm

// englishStopwords is a compact general-purpose English stopword list,
// standing in for the curated stopword resource spec.md treats as an
// external collaborator.
var englishStopwords = map[string]bool{
	"a": true, "an": true, "and": true, "are": true, "as": true, "at": true,
	"be": true, "been": true, "but": true, "by": true, "can": true,
	"could": true, "did": true, "do": true, "does": true, "for": true,
	"from": true, "had": true, "has": true, "have": true, "he": true,
	"her": true, "his": true, "how": true, "i": true, "if": true, "in": true,
	"into": true, "is": true, "it": true, "its": true, "no": true,
	"not": true, "of": true, "on": true, "or": true, "our": true,
	"she": true, "should": true, "so": true, "than": true, "that": true,
	"the": true, "their": true, "them": true, "then": true, "there": true,
	"these": true, "they": true, "this": true, "those": true, "to": true,
	"was": true, "we": true, "were": true, "what": true, "when": true,
	"where": true, "which": true, "who": true, "why": true, "will": true,
	"with": true, "would": true, "you": true, "your": true,
}

// EnglishStopwords is the built-in default stopword set.
type EnglishStopwords struct{}

// NewEnglishStopwords returns the built-in English stopword set.
func NewEnglishStopwords() *EnglishStopwords { return &EnglishStopwords{} }

// IsStopword implements StopwordSet.
func (EnglishStopwords) IsStopword(lower string) bool {
	return englishStopwords[lower]
}
