package docindex

import (
	"bufio"
	"fmt"
	"os"

	"github.com/corpuslab/vsmsearch/internal/errors"
)

// Save persists every artifact of snap into dir, creating it if needed.
// Writes are not transactional across files; callers that need
// all-or-nothing semantics across a full rebuild should write into a
// temporary directory and rename it into place (see Service.Rebuild).
func Save(dir string, snap *Snapshot) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.NewInternalError("Save", fmt.Errorf("creating data dir: %w", err))
	}

	writers := []struct {
		name   string
		encode func(*bufio.Writer) error
	}{
		{fileDocIDMap, func(w *bufio.Writer) error { return encodeDocIDMap(w, snap.DocIDMap) }},
		{filePostings, func(w *bufio.Writer) error { return encodePostings(w, snap.Postings) }},
		{fileDocFreq, func(w *bufio.Writer) error { return encodeIntMap(w, snap.DocFreq) }},
		{fileDocLen, func(w *bufio.Writer) error { return encodeDocLen(w, snap.DocLen) }},
		{fileTermDict, func(w *bufio.Writer) error { return writeStringSet(w, snap.TermDictionary) }},
		{fileSoundex, func(w *bufio.Writer) error { return writeStringKeyedSetMap(w, snap.SoundexMap) }},
		{fileKgram, func(w *bufio.Writer) error { return writeStringKeyedSetMap(w, snap.KgramMap) }},
		{fileSynonyms, func(w *bufio.Writer) error { return encodeSynonymMap(w, snap.SynonymMap) }},
	}

	for _, a := range writers {
		if err := writeArtifact(dir, a.name, a.encode); err != nil {
			return errors.NewInternalError("Save", err)
		}
	}
	return nil
}

// Load reads a snapshot from dir. Missing optional artifacts (soundex,
// kgram, synonyms) default to empty containers. A missing or unreadable
// core artifact (doc_id_map, postings, doc_freq, doc_len, term
// dictionary) returns a StateError so the caller can treat the service
// as not ready rather than serving a half-built index.
func Load(dir string) (*Snapshot, error) {
	snap := Empty()

	var err error
	var ok bool

	if ok, err = readArtifact(dir, fileDocIDMap, func(r *bufio.Reader) (e error) {
		snap.DocIDMap, e = decodeDocIDMap(r)
		return
	}); err != nil {
		return nil, errors.NewStateError("Load", err)
	} else if !ok {
		return nil, errors.NewStateError("Load", fmt.Errorf("missing required artifact %s", fileDocIDMap))
	}

	if ok, err = readArtifact(dir, filePostings, func(r *bufio.Reader) (e error) {
		snap.Postings, e = decodePostings(r)
		return
	}); err != nil {
		return nil, errors.NewStateError("Load", err)
	} else if !ok {
		return nil, errors.NewStateError("Load", fmt.Errorf("missing required artifact %s", filePostings))
	}

	if ok, err = readArtifact(dir, fileDocFreq, func(r *bufio.Reader) (e error) {
		snap.DocFreq, e = decodeIntMap(r)
		return
	}); err != nil {
		return nil, errors.NewStateError("Load", err)
	} else if !ok {
		return nil, errors.NewStateError("Load", fmt.Errorf("missing required artifact %s", fileDocFreq))
	}

	if ok, err = readArtifact(dir, fileDocLen, func(r *bufio.Reader) (e error) {
		snap.DocLen, e = decodeDocLen(r)
		return
	}); err != nil {
		return nil, errors.NewStateError("Load", err)
	} else if !ok {
		return nil, errors.NewStateError("Load", fmt.Errorf("missing required artifact %s", fileDocLen))
	}

	if ok, err = readArtifact(dir, fileTermDict, func(r *bufio.Reader) (e error) {
		snap.TermDictionary, e = readStringSet(r)
		return
	}); err != nil {
		return nil, errors.NewStateError("Load", err)
	} else if !ok {
		return nil, errors.NewStateError("Load", fmt.Errorf("missing required artifact %s", fileTermDict))
	}

	// Optional artifacts: absence just disables the matching expansion
	// feature, it does not block service readiness.
	if ok, err = readArtifact(dir, fileSoundex, func(r *bufio.Reader) (e error) {
		snap.SoundexMap, e = readStringKeyedSetMap(r)
		return
	}); err != nil {
		return nil, errors.NewStateError("Load", err)
	} else if !ok {
		snap.SoundexMap = make(map[string]map[string]struct{})
	}

	if ok, err = readArtifact(dir, fileKgram, func(r *bufio.Reader) (e error) {
		snap.KgramMap, e = readStringKeyedSetMap(r)
		return
	}); err != nil {
		return nil, errors.NewStateError("Load", err)
	} else if !ok {
		snap.KgramMap = make(map[string]map[string]struct{})
	}

	if ok, err = readArtifact(dir, fileSynonyms, func(r *bufio.Reader) (e error) {
		snap.SynonymMap, e = decodeSynonymMap(r)
		return
	}); err != nil {
		return nil, errors.NewStateError("Load", err)
	} else if !ok {
		snap.SynonymMap = make(map[string][]string)
	}

	return snap, nil
}
