// Package rank scores documents against an expanded query term list
// using the lnc.ltc cosine-similarity weighting scheme: log-TF only on
// the document side, log-TF times idf with cosine normalization on the
// query side.
package rank

import (
	"math"
	"sort"

	"github.com/corpuslab/vsmsearch/internal/docindex"
	"github.com/corpuslab/vsmsearch/internal/queryproc"
)

// Hit is one ranked result.
type Hit struct {
	DocID int
	Score float64
}

// Rank scores every document reachable from terms in expanded against
// the snapshot's postings, sorts by (-score, +doc_id), and returns the
// top k hits. k is assumed already clamped by the caller.
func Rank(expanded []queryproc.WeightedTerm, snap *docindex.Snapshot, k int) []Hit {
	n := snap.NumDocs()
	if n == 0 {
		return nil
	}

	qtf := make(map[string]float64)
	for _, wt := range expanded {
		qtf[wt.Term] += wt.Weight
	}

	type queryWeight struct {
		term string
		w    float64
	}
	var qvec []queryWeight
	var qNormSq float64

	for term, tf := range qtf {
		df := snap.DocFreq[term]
		if df <= 0 {
			continue
		}
		idf := math.Log10(float64(n) / float64(df))
		w := (1 + math.Log10(tf)) * idf
		qvec = append(qvec, queryWeight{term: term, w: w})
		qNormSq += w * w
	}

	qNorm := math.Sqrt(qNormSq)
	if qNorm == 0 {
		qNorm = 1
	}

	scores := make(map[int]float64)
	for _, qw := range qvec {
		for _, p := range snap.Postings[qw.term] {
			wd := 1 + math.Log10(float64(p.TF))
			scores[p.DocID] += wd * qw.w
		}
	}

	hits := make([]Hit, 0, len(scores))
	for docID, score := range scores {
		docLen, ok := snap.DocLen[docID]
		if !ok || docLen <= 0 {
			continue
		}
		hits = append(hits, Hit{DocID: docID, Score: score / (docLen * qNorm)})
	}

	sort.Slice(hits, func(i, j int) bool {
		if hits[i].Score != hits[j].Score {
			return hits[i].Score > hits[j].Score
		}
		return hits[i].DocID < hits[j].DocID
	})

	if k > 0 && len(hits) > k {
		hits = hits[:k]
	}
	return hits
}
