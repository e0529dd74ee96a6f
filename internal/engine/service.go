// Package engine wires the query-processing, ranking, caching, and
// index-service packages together behind a single Search/Rebuild API,
// matching the external query contract (input validation, k clamping,
// not-ready/busy signaling).
package engine

import (
	"path"
	"strings"
	"time"

	"github.com/corpuslab/vsmsearch/internal/cache"
	"github.com/corpuslab/vsmsearch/internal/docindex"
	"github.com/corpuslab/vsmsearch/internal/errors"
	"github.com/corpuslab/vsmsearch/internal/history"
	"github.com/corpuslab/vsmsearch/internal/metrics"
	"github.com/corpuslab/vsmsearch/internal/queryproc"
	"github.com/corpuslab/vsmsearch/internal/rank"
	"github.com/corpuslab/vsmsearch/internal/textnorm"
	"github.com/corpuslab/vsmsearch/internal/validation"
)

// SearchRequest is one Search call's parameters.
type SearchRequest struct {
	Query    string
	K        int
	Spelling bool
	Synonyms bool
	Soundex  bool
}

// SearchHit is one externally visible ranked result.
type SearchHit struct {
	DocID    int
	Filename string
	Score    float64
}

// Engine is the top-level search service: it validates requests,
// consults the query cache, expands and ranks queries against the
// currently published index snapshot, and records metrics and history
// for every call that returns results (calls rejected by validation or
// by a not-ready index record nothing).
type Engine struct {
	Index     *docindex.Service
	Norm      *textnorm.Normalizer
	Processor *queryproc.Processor
	Cache     *cache.QueryCache
	Monitor   *metrics.PerformanceMonitor
	History   *history.QueryHistory
}

// New builds an Engine from its component services. Cache, Monitor and
// History may be nil; the corresponding functionality is skipped.
func New(index *docindex.Service, norm *textnorm.Normalizer, qcache *cache.QueryCache, monitor *metrics.PerformanceMonitor, hist *history.QueryHistory) *Engine {
	return &Engine{
		Index:     index,
		Norm:      norm,
		Processor: queryproc.NewProcessor(norm),
		Cache:     qcache,
		Monitor:   monitor,
		History:   hist,
	}
}

// Search validates req, serves from cache when possible, and otherwise
// expands and ranks the query against the current snapshot.
func (e *Engine) Search(req SearchRequest) ([]SearchHit, error) {
	start := time.Now()

	cleaned, err := validation.ValidateQuery(req.Query)
	if err != nil {
		return nil, err
	}
	k := validation.ClampK(req.K)

	if !e.Index.Ready() {
		return nil, errors.ErrNotReady
	}
	snap := e.Index.Current()

	if e.Cache != nil {
		if cached, ok := e.Cache.Get(cleaned, req.Spelling, req.Synonyms, req.Soundex, k); ok {
			hits := fromCacheHits(cached)
			e.recordQuery(start, len(hits), true)
			e.recordHistory(cleaned, req, len(hits), time.Since(start))
			return hits, nil
		}
	}

	toggles := queryproc.Toggles{Spelling: req.Spelling, Synonyms: req.Synonyms, Soundex: req.Soundex}
	res := queryproc.Resources{
		Dictionary: snap,
		SynonymMap: snap.SynonymMap,
		SoundexMap: snap.SoundexMap,
	}
	expanded := e.Processor.Expand(cleaned, toggles, res)
	ranked := rank.Rank(expanded, snap, k)

	hits := make([]SearchHit, len(ranked))
	cacheHits := make([]cache.QueryHit, len(ranked))
	for i, r := range ranked {
		filename := filenameFor(snap, r.DocID)
		hits[i] = SearchHit{DocID: r.DocID, Filename: filename, Score: r.Score}
		cacheHits[i] = cache.QueryHit{DocID: r.DocID, Filename: filename, Score: r.Score}
	}

	if e.Cache != nil {
		e.Cache.Put(cleaned, req.Spelling, req.Synonyms, req.Soundex, k, cacheHits)
	}

	duration := time.Since(start)
	e.recordQuery(start, len(hits), false)
	e.recordHistory(cleaned, req, len(hits), duration)
	return hits, nil
}

// Rebuild runs a full index rebuild and invalidates the query cache on
// success, since doc ids and scores may have shifted.
func (e *Engine) Rebuild(logger docindex.BuildLogger) error {
	start := time.Now()
	err := e.Index.Rebuild(logger)
	if e.Monitor != nil {
		docCount := 0
		if snap := e.Index.Current(); snap != nil {
			docCount = snap.NumDocs()
		}
		e.Monitor.RecordRebuild(time.Since(start), docCount, err == nil)
	}
	if err != nil {
		return err
	}
	if e.Cache != nil {
		e.Cache.Invalidate()
	}
	return nil
}

func (e *Engine) recordQuery(start time.Time, resultCount int, cacheHit bool) {
	if e.Monitor == nil {
		return
	}
	e.Monitor.RecordQuery(time.Since(start), resultCount, cacheHit)
}

func (e *Engine) recordHistory(query string, req SearchRequest, resultCount int, duration time.Duration) {
	if e.History == nil {
		return
	}
	e.History.AddEntry(query, resultCount, flagsString(req), duration)
}

func flagsString(req SearchRequest) string {
	var flags []string
	if req.Spelling {
		flags = append(flags, "spelling")
	}
	if req.Synonyms {
		flags = append(flags, "synonyms")
	}
	if req.Soundex {
		flags = append(flags, "soundex")
	}
	return strings.Join(flags, ",")
}

func fromCacheHits(cached []cache.QueryHit) []SearchHit {
	hits := make([]SearchHit, len(cached))
	for i, c := range cached {
		hits[i] = SearchHit{DocID: c.DocID, Filename: c.Filename, Score: c.Score}
	}
	return hits
}

// filenameFor derives the displayed filename from a doc id's stored
// path, normalizing Windows-style separators before taking the base
// name so the result is stable regardless of the corpus's origin OS.
func filenameFor(snap *docindex.Snapshot, docID int) string {
	stored := snap.DocIDMap[docID]
	normalized := strings.ReplaceAll(stored, "\\", "/")
	return path.Base(normalized)
}
