package cache

import (
	"testing"
	"time"
)

func TestQueryCachePutGet(t *testing.T) {
	qc := NewQueryCache(10, time.Minute)
	hits := []QueryHit{{DocID: 1, Filename: "a.txt", Score: 0.9}}

	qc.Put("cat", true, false, false, 10, hits)

	got, ok := qc.Get("cat", true, false, false, 10)
	if !ok {
		t.Fatal("expected cache hit")
	}
	if len(got) != 1 || got[0].DocID != 1 {
		t.Errorf("unexpected cached hits: %#v", got)
	}
}

func TestQueryCacheDistinguishesFlags(t *testing.T) {
	qc := NewQueryCache(10, time.Minute)
	qc.Put("cat", true, false, false, 10, []QueryHit{{DocID: 1}})

	if _, ok := qc.Get("cat", false, false, false, 10); ok {
		t.Error("expected distinct cache entry for different toggle combination")
	}
}

func TestQueryCacheInvalidate(t *testing.T) {
	qc := NewQueryCache(10, time.Minute)
	qc.Put("cat", false, false, false, 10, []QueryHit{{DocID: 1}})
	qc.Invalidate()

	if _, ok := qc.Get("cat", false, false, false, 10); ok {
		t.Error("expected cache to be empty after Invalidate")
	}
}

func TestQueryCacheDisabled(t *testing.T) {
	qc := NewQueryCache(10, time.Minute)
	qc.Enable(false)
	qc.Put("cat", false, false, false, 10, []QueryHit{{DocID: 1}})

	if _, ok := qc.Get("cat", false, false, false, 10); ok {
		t.Error("expected no caching while disabled")
	}
}
