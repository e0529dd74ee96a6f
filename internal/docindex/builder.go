package docindex

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode"

	"github.com/corpuslab/vsmsearch/internal/errors"
	"github.com/corpuslab/vsmsearch/internal/kgram"
	"github.com/corpuslab/vsmsearch/internal/phonetic"
	"github.com/corpuslab/vsmsearch/internal/recovery"
	"github.com/corpuslab/vsmsearch/internal/textnorm"
)

// BuildLogger receives a diagnostic message for a skipped file. Callers
// that don't care may pass a no-op.
type BuildLogger func(msg string)

// Build runs the full offline indexing pass over corpusDir and returns
// the resulting snapshot. It does not persist anything; callers combine
// it with Save. A missing corpusDir aborts with no partial state. An
// individual unreadable file is logged via logger and skipped, but its
// doc id is still reserved in DocIDMap.
func Build(corpusDir string, norm *textnorm.Normalizer, logger BuildLogger) (*Snapshot, error) {
	if logger == nil {
		logger = func(string) {}
	}

	info, err := os.Stat(corpusDir)
	if err != nil || !info.IsDir() {
		return nil, errors.NewCorpusError("Build", corpusDir, fmt.Errorf("corpus directory not accessible: %w", err))
	}

	entries, err := os.ReadDir(corpusDir)
	if err != nil {
		return nil, errors.NewCorpusError("Build", corpusDir, err)
	}

	var filenames []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if strings.HasSuffix(strings.ToLower(e.Name()), ".txt") {
			filenames = append(filenames, e.Name())
		}
	}
	sort.Strings(filenames)

	snap := Empty()
	kidx := kgram.NewIndex()
	retry := recovery.DefaultConfig()

	for i, name := range filenames {
		docID := i + 1
		path := filepath.Join(corpusDir, name)
		snap.DocIDMap[docID] = path

		raw, err := recovery.ReadFileWithRetry(retry, path)
		if err != nil {
			if logger != nil {
				logger(fmt.Sprintf("skipping unreadable document %s: %v", path, err))
			}
			continue
		}

		text := lossyUTF8(raw)
		originalTokens := norm.Tokenizer.Tokenize(text)
		cleanTerms := norm.CleanTerms(text)

		indexDocument(snap, docID, cleanTerms)
		recordSoundexTokens(snap, originalTokens)
	}

	for term := range snap.TermDictionary {
		kidx.Add(term)
	}
	snap.KgramMap = kidx.Grams()

	return snap, nil
}

// lossyUTF8 re-encodes raw bytes as a valid UTF-8 string, replacing any
// invalid byte sequences with the Unicode replacement character rather
// than aborting on malformed input.
func lossyUTF8(raw []byte) string {
	return strings.ToValidUTF8(string(raw), "�")
}

// indexDocument scans a single document's clean-term stream, updating
// the snapshot's postings, doc_freq, term_dictionary and doc_len.
func indexDocument(snap *Snapshot, docID int, cleanTerms []string) {
	type accum struct {
		tf        int
		positions []int
	}
	perTerm := make(map[string]*accum)

	for pos, term := range cleanTerms {
		a, ok := perTerm[term]
		if !ok {
			a = &accum{}
			perTerm[term] = a
		}
		a.tf++
		a.positions = append(a.positions, pos)
	}

	terms := make([]string, 0, len(perTerm))
	for term := range perTerm {
		terms = append(terms, term)
	}
	sort.Strings(terms)

	var sumSquares float64
	for _, term := range terms {
		a := perTerm[term]
		snap.Postings[term] = append(snap.Postings[term], Posting{
			DocID:     docID,
			TF:        a.tf,
			Positions: a.positions,
		})
		snap.DocFreq[term]++
		snap.TermDictionary[term] = struct{}{}

		w := 1 + math.Log10(float64(a.tf))
		sumSquares += w * w
	}

	if len(terms) > 0 {
		snap.DocLen[docID] = math.Sqrt(sumSquares)
	}
}

// recordSoundexTokens adds every purely-alphabetic, capitalized surface
// token to the soundex map under its 4-character code.
func recordSoundexTokens(snap *Snapshot, originalTokens []string) {
	for _, tok := range originalTokens {
		if !isAllAlpha(tok) {
			continue
		}
		first := []rune(tok)[0]
		if !unicode.IsUpper(first) {
			continue
		}
		code := phonetic.Encode(tok)
		if code == "" {
			continue
		}
		set, ok := snap.SoundexMap[code]
		if !ok {
			set = make(map[string]struct{})
			snap.SoundexMap[code] = set
		}
		set[strings.ToLower(tok)] = struct{}{}
	}
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
