package docindex

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// The snapshot is persisted as eight sibling files under a data
// directory, one per artifact, each using the same length-prefixed
// binary framing: a little-endian uint32 length or count ahead of every
// variable-sized field ([count:u32] then per-entry
// [len:u32][bytes][payload]) rather than a general-purpose encoding
// like gob, so the on-disk layout stays simple to read back outside Go
// as well.
const (
	fileDocIDMap  = "doc_id_map.bin"
	filePostings  = "postings.bin"
	fileDocFreq   = "doc_freq.bin"
	fileDocLen    = "doc_len.bin"
	fileTermDict  = "term_dictionary.bin"
	fileSoundex   = "soundex_map.bin"
	fileKgram     = "kgram_index.bin"
	fileSynonyms  = "synonym_map.bin"
)

func writeString(w *bufio.Writer, s string) error {
	if err := binary.Write(w, binary.LittleEndian, uint32(len(s))); err != nil {
		return err
	}
	_, err := w.WriteString(s)
	return err
}

func readString(r *bufio.Reader) (string, error) {
	var n uint32
	if err := binary.Read(r, binary.LittleEndian, &n); err != nil {
		return "", err
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return "", err
	}
	return string(buf), nil
}

func writeStringSet(w *bufio.Writer, set map[string]struct{}) error {
	if err := binary.Write(w, binary.LittleEndian, uint32(len(set))); err != nil {
		return err
	}
	for s := range set {
		if err := writeString(w, s); err != nil {
			return err
		}
	}
	return nil
}

func readStringSet(r *bufio.Reader) (map[string]struct{}, error) {
	var n uint32
	if err := binary.Read(r, binary.LittleEndian, &n); err != nil {
		return nil, err
	}
	set := make(map[string]struct{}, n)
	for i := uint32(0); i < n; i++ {
		s, err := readString(r)
		if err != nil {
			return nil, err
		}
		set[s] = struct{}{}
	}
	return set, nil
}

func writeStringKeyedSetMap(w *bufio.Writer, m map[string]map[string]struct{}) error {
	if err := binary.Write(w, binary.LittleEndian, uint32(len(m))); err != nil {
		return err
	}
	for key, set := range m {
		if err := writeString(w, key); err != nil {
			return err
		}
		if err := writeStringSet(w, set); err != nil {
			return err
		}
	}
	return nil
}

func readStringKeyedSetMap(r *bufio.Reader) (map[string]map[string]struct{}, error) {
	var n uint32
	if err := binary.Read(r, binary.LittleEndian, &n); err != nil {
		return nil, err
	}
	m := make(map[string]map[string]struct{}, n)
	for i := uint32(0); i < n; i++ {
		key, err := readString(r)
		if err != nil {
			return nil, err
		}
		set, err := readStringSet(r)
		if err != nil {
			return nil, err
		}
		m[key] = set
	}
	return m, nil
}

// encodeDocIDMap / decodeDocIDMap handle the D -> filepath mapping.
func encodeDocIDMap(w *bufio.Writer, m map[int]string) error {
	if err := binary.Write(w, binary.LittleEndian, uint32(len(m))); err != nil {
		return err
	}
	for id, path := range m {
		if err := binary.Write(w, binary.LittleEndian, uint32(id)); err != nil {
			return err
		}
		if err := writeString(w, path); err != nil {
			return err
		}
	}
	return nil
}

func decodeDocIDMap(r *bufio.Reader) (map[int]string, error) {
	var n uint32
	if err := binary.Read(r, binary.LittleEndian, &n); err != nil {
		return nil, err
	}
	m := make(map[int]string, n)
	for i := uint32(0); i < n; i++ {
		var id uint32
		if err := binary.Read(r, binary.LittleEndian, &id); err != nil {
			return nil, err
		}
		path, err := readString(r)
		if err != nil {
			return nil, err
		}
		m[int(id)] = path
	}
	return m, nil
}

func encodePostings(w *bufio.Writer, m map[string][]Posting) error {
	if err := binary.Write(w, binary.LittleEndian, uint32(len(m))); err != nil {
		return err
	}
	for term, postings := range m {
		if err := writeString(w, term); err != nil {
			return err
		}
		if err := binary.Write(w, binary.LittleEndian, uint32(len(postings))); err != nil {
			return err
		}
		for _, p := range postings {
			if err := binary.Write(w, binary.LittleEndian, uint32(p.DocID)); err != nil {
				return err
			}
			if err := binary.Write(w, binary.LittleEndian, uint32(p.TF)); err != nil {
				return err
			}
			if err := binary.Write(w, binary.LittleEndian, uint32(len(p.Positions))); err != nil {
				return err
			}
			for _, pos := range p.Positions {
				if err := binary.Write(w, binary.LittleEndian, uint32(pos)); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func decodePostings(r *bufio.Reader) (map[string][]Posting, error) {
	var n uint32
	if err := binary.Read(r, binary.LittleEndian, &n); err != nil {
		return nil, err
	}
	m := make(map[string][]Posting, n)
	for i := uint32(0); i < n; i++ {
		term, err := readString(r)
		if err != nil {
			return nil, err
		}
		var count uint32
		if err := binary.Read(r, binary.LittleEndian, &count); err != nil {
			return nil, err
		}
		postings := make([]Posting, count)
		for j := uint32(0); j < count; j++ {
			var docID, tf, posCount uint32
			if err := binary.Read(r, binary.LittleEndian, &docID); err != nil {
				return nil, err
			}
			if err := binary.Read(r, binary.LittleEndian, &tf); err != nil {
				return nil, err
			}
			if err := binary.Read(r, binary.LittleEndian, &posCount); err != nil {
				return nil, err
			}
			positions := make([]int, posCount)
			for k := uint32(0); k < posCount; k++ {
				var pos uint32
				if err := binary.Read(r, binary.LittleEndian, &pos); err != nil {
					return nil, err
				}
				positions[k] = int(pos)
			}
			postings[j] = Posting{DocID: int(docID), TF: int(tf), Positions: positions}
		}
		m[term] = postings
	}
	return m, nil
}

func encodeIntMap(w *bufio.Writer, m map[string]int) error {
	if err := binary.Write(w, binary.LittleEndian, uint32(len(m))); err != nil {
		return err
	}
	for k, v := range m {
		if err := writeString(w, k); err != nil {
			return err
		}
		if err := binary.Write(w, binary.LittleEndian, uint32(v)); err != nil {
			return err
		}
	}
	return nil
}

func decodeIntMap(r *bufio.Reader) (map[string]int, error) {
	var n uint32
	if err := binary.Read(r, binary.LittleEndian, &n); err != nil {
		return nil, err
	}
	m := make(map[string]int, n)
	for i := uint32(0); i < n; i++ {
		k, err := readString(r)
		if err != nil {
			return nil, err
		}
		var v uint32
		if err := binary.Read(r, binary.LittleEndian, &v); err != nil {
			return nil, err
		}
		m[k] = int(v)
	}
	return m, nil
}

func encodeDocLen(w *bufio.Writer, m map[int]float64) error {
	if err := binary.Write(w, binary.LittleEndian, uint32(len(m))); err != nil {
		return err
	}
	for id, length := range m {
		if err := binary.Write(w, binary.LittleEndian, uint32(id)); err != nil {
			return err
		}
		if err := binary.Write(w, binary.LittleEndian, length); err != nil {
			return err
		}
	}
	return nil
}

func decodeDocLen(r *bufio.Reader) (map[int]float64, error) {
	var n uint32
	if err := binary.Read(r, binary.LittleEndian, &n); err != nil {
		return nil, err
	}
	m := make(map[int]float64, n)
	for i := uint32(0); i < n; i++ {
		var id uint32
		if err := binary.Read(r, binary.LittleEndian, &id); err != nil {
			return nil, err
		}
		var length float64
		if err := binary.Read(r, binary.LittleEndian, &length); err != nil {
			return nil, err
		}
		m[int(id)] = length
	}
	return m, nil
}

func encodeSynonymMap(w *bufio.Writer, m map[string][]string) error {
	if err := binary.Write(w, binary.LittleEndian, uint32(len(m))); err != nil {
		return err
	}
	for term, syns := range m {
		if err := writeString(w, term); err != nil {
			return err
		}
		if err := binary.Write(w, binary.LittleEndian, uint32(len(syns))); err != nil {
			return err
		}
		for _, s := range syns {
			if err := writeString(w, s); err != nil {
				return err
			}
		}
	}
	return nil
}

func decodeSynonymMap(r *bufio.Reader) (map[string][]string, error) {
	var n uint32
	if err := binary.Read(r, binary.LittleEndian, &n); err != nil {
		return nil, err
	}
	m := make(map[string][]string, n)
	for i := uint32(0); i < n; i++ {
		term, err := readString(r)
		if err != nil {
			return nil, err
		}
		var count uint32
		if err := binary.Read(r, binary.LittleEndian, &count); err != nil {
			return nil, err
		}
		syns := make([]string, count)
		for j := uint32(0); j < count; j++ {
			s, err := readString(r)
			if err != nil {
				return nil, err
			}
			syns[j] = s
		}
		m[term] = syns
	}
	return m, nil
}

// writeArtifact opens dir/name for writing and runs encode against a
// buffered writer, flushing and closing on return.
func writeArtifact(dir, name string, encode func(*bufio.Writer) error) error {
	f, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return fmt.Errorf("create %s: %w", name, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if err := encode(w); err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}
	return w.Flush()
}

// readArtifact opens dir/name and runs decode against a buffered
// reader. If the file does not exist, ok is false and err is nil so
// callers can apply their own optional/required-artifact policy.
func readArtifact(dir, name string, decode func(*bufio.Reader) error) (ok bool, err error) {
	f, err := os.Open(filepath.Join(dir, name))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("open %s: %w", name, err)
	}
	defer f.Close()

	if err := decode(bufio.NewReader(f)); err != nil {
		return false, fmt.Errorf("decode %s: %w", name, err)
	}
	return true, nil
}
