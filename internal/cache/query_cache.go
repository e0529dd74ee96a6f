// Package cache memoizes Engine.Search results so repeated queries
// (the same terms with the same expansion toggles and result count)
// skip re-running the ranking pipeline.
package cache

import (
	"container/list"
	"strings"
	"sync"
	"time"
)

// QueryHit mirrors the externally visible shape of one ranked result,
// duplicated here (rather than imported) to keep this package free of
// a dependency on the ranking/engine packages.
type QueryHit struct {
	DocID    int
	Filename string
	Score    float64
}

// cacheKey identifies one memoized search: the normalized query text
// plus every toggle that can change its result set. Using a struct
// key (rather than a formatted string) means two logically identical
// requests always collide and two different ones never accidentally
// do.
type cacheKey struct {
	query    string
	spelling bool
	synonyms bool
	soundex  bool
	k        int
}

func newCacheKey(query string, spelling, synonyms, soundex bool, k int) cacheKey {
	return cacheKey{
		query:    strings.ToLower(strings.TrimSpace(query)),
		spelling: spelling,
		synonyms: synonyms,
		soundex:  soundex,
		k:        k,
	}
}

// entry is one cached result set plus the bookkeeping needed to
// expire it on TTL and evict it on capacity pressure.
type entry struct {
	key      cacheKey
	hits     []QueryHit
	storedAt time.Time
}

// QueryCache is a thread-safe, fixed-capacity, TTL-bounded cache from
// cacheKey to a ranked result set, evicting the least recently used
// entry once capacity is exceeded.
type QueryCache struct {
	mu       sync.Mutex
	capacity int
	ttl      time.Duration
	enabled  bool
	index    map[cacheKey]*list.Element
	order    *list.List // front = most recently used

	hits      int64
	misses    int64
	evictions int64
}

// NewQueryCache creates a query cache with the given capacity and TTL.
// A non-positive capacity falls back to 100 entries; a non-positive
// TTL disables expiry (entries only leave via eviction or Invalidate).
func NewQueryCache(capacity int, ttl time.Duration) *QueryCache {
	if capacity <= 0 {
		capacity = 100
	}
	return &QueryCache{
		capacity: capacity,
		ttl:      ttl,
		enabled:  true,
		index:    make(map[cacheKey]*list.Element),
		order:    list.New(),
	}
}

// Get returns cached hits for the given query/flags/k combination.
func (qc *QueryCache) Get(query string, spelling, synonyms, soundex bool, k int) ([]QueryHit, bool) {
	qc.mu.Lock()
	defer qc.mu.Unlock()

	if !qc.enabled {
		return nil, false
	}

	key := newCacheKey(query, spelling, synonyms, soundex, k)
	elem, ok := qc.index[key]
	if !ok {
		qc.misses++
		return nil, false
	}

	e := elem.Value.(*entry)
	if qc.ttl > 0 && time.Since(e.storedAt) > qc.ttl {
		qc.removeElement(elem)
		qc.misses++
		return nil, false
	}

	qc.order.MoveToFront(elem)
	qc.hits++
	out := make([]QueryHit, len(e.hits))
	copy(out, e.hits)
	return out, true
}

// Put stores hits for the given query/flags/k combination.
func (qc *QueryCache) Put(query string, spelling, synonyms, soundex bool, k int, hits []QueryHit) {
	qc.mu.Lock()
	defer qc.mu.Unlock()

	if !qc.enabled {
		return
	}

	key := newCacheKey(query, spelling, synonyms, soundex, k)
	stored := make([]QueryHit, len(hits))
	copy(stored, hits)

	if elem, ok := qc.index[key]; ok {
		e := elem.Value.(*entry)
		e.hits = stored
		e.storedAt = time.Now()
		qc.order.MoveToFront(elem)
		return
	}

	elem := qc.order.PushFront(&entry{key: key, hits: stored, storedAt: time.Now()})
	qc.index[key] = elem

	if qc.order.Len() > qc.capacity {
		qc.evictOldest()
	}
}

// Invalidate drops every cached result, used after a successful rebuild
// since doc ids and scores may have shifted.
func (qc *QueryCache) Invalidate() {
	qc.mu.Lock()
	defer qc.mu.Unlock()

	qc.index = make(map[cacheKey]*list.Element)
	qc.order.Init()
	qc.hits, qc.misses, qc.evictions = 0, 0, 0
}

// Enable toggles caching on or off.
func (qc *QueryCache) Enable(enabled bool) {
	qc.mu.Lock()
	defer qc.mu.Unlock()
	qc.enabled = enabled
}

// Stats reports the cache's hit/miss/eviction counters.
func (qc *QueryCache) Stats() CacheStats {
	qc.mu.Lock()
	defer qc.mu.Unlock()

	total := qc.hits + qc.misses
	var hitRatio float64
	if total > 0 {
		hitRatio = float64(qc.hits) / float64(total)
	}
	return CacheStats{
		Hits:      qc.hits,
		Misses:    qc.misses,
		Evictions: qc.evictions,
		Size:      len(qc.index),
		Capacity:  qc.capacity,
		HitRatio:  hitRatio,
	}
}

func (qc *QueryCache) evictOldest() {
	elem := qc.order.Back()
	if elem != nil {
		qc.removeElement(elem)
		qc.evictions++
	}
}

func (qc *QueryCache) removeElement(elem *list.Element) {
	qc.order.Remove(elem)
	delete(qc.index, elem.Value.(*entry).key)
}

// CacheStats reports point-in-time counters for a QueryCache.
type CacheStats struct {
	Hits      int64
	Misses    int64
	Evictions int64
	Size      int
	Capacity  int
	HitRatio  float64
}
