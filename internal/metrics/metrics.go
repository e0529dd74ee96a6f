// Package metrics tracks query latency, rebuild duration, and cache
// hit/miss counts for the ranking engine. It exposes four primitives —
// counters, gauges, histograms and timers — collected behind a single
// MetricsCollector so internal/metrics/performance.go can snapshot
// everything into one report.
package metrics

import (
	"fmt"
	"runtime"
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

// MetricType identifies the shape of a recorded Metric.
type MetricType string

const (
	MetricTypeCounter   MetricType = "counter"
	MetricTypeGauge     MetricType = "gauge"
	MetricTypeHistogram MetricType = "histogram"
)

// Metric is a point-in-time snapshot of one counter, gauge, or
// histogram bucket, suitable for JSON reporting.
type Metric struct {
	Name      string            `json:"name"`
	Type      MetricType        `json:"type"`
	Value     float64           `json:"value"`
	Unit      string            `json:"unit"`
	Timestamp time.Time         `json:"timestamp"`
	Tags      map[string]string `json:"tags,omitempty"`
}

// Counter is a monotonically increasing count, stored as an int64
// manipulated only through sync/atomic.
type Counter struct {
	value int64
	name  string
	tags  map[string]string
}

func NewCounter(name string, tags map[string]string) *Counter {
	return &Counter{name: name, tags: tags}
}

func (c *Counter) Inc()            { atomic.AddInt64(&c.value, 1) }
func (c *Counter) Add(delta int64) { atomic.AddInt64(&c.value, delta) }
func (c *Counter) Value() int64    { return atomic.LoadInt64(&c.value) }
func (c *Counter) Reset()          { atomic.StoreInt64(&c.value, 0) }

// Gauge is a value that can move in either direction. It is stored as
// a scaled int64 (three decimal digits of precision) so it can be
// updated atomically without a mutex.
type Gauge struct {
	scaled int64
	name   string
	tags   map[string]string
}

const gaugeScale = 1000

func NewGauge(name string, tags map[string]string) *Gauge {
	return &Gauge{name: name, tags: tags}
}

func (g *Gauge) Set(v float64)     { atomic.StoreInt64(&g.scaled, int64(v*gaugeScale)) }
func (g *Gauge) Add(delta float64) { atomic.AddInt64(&g.scaled, int64(delta*gaugeScale)) }
func (g *Gauge) Inc()              { g.Add(1) }
func (g *Gauge) Dec()              { g.Add(-1) }
func (g *Gauge) Value() float64    { return float64(atomic.LoadInt64(&g.scaled)) / gaugeScale }

// histogramBuckets holds upper bounds, in milliseconds, for the
// latency distributions this package records (query and rebuild
// durations). One bucket set covers both since neither operation runs
// fast enough to need finer resolution below 0.1ms.
var histogramBuckets = []float64{0.1, 0.5, 1, 2.5, 5, 10, 25, 50, 100, 250, 500, 1000, 2500, 5000, 10000}

// Histogram tracks the distribution of observed values across
// histogramBuckets plus one overflow bucket.
type Histogram struct {
	mu     sync.RWMutex
	counts []int64
	sum    float64
	count  int64
	name   string
	tags   map[string]string
}

func NewHistogram(name string, tags map[string]string) *Histogram {
	return &Histogram{
		counts: make([]int64, len(histogramBuckets)+1),
		name:   name,
		tags:   tags,
	}
}

func (h *Histogram) Observe(value float64) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.sum += value
	h.count++
	for i, bound := range histogramBuckets {
		if value <= bound {
			h.counts[i]++
			return
		}
	}
	h.counts[len(histogramBuckets)]++
}

func (h *Histogram) Count() int64 {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.count
}

func (h *Histogram) Sum() float64 {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.sum
}

func (h *Histogram) Mean() float64 {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.count == 0 {
		return 0
	}
	return h.sum / float64(h.count)
}

// Percentile returns the upper bound of the bucket holding the p-th
// percentile observation (0-100).
func (h *Histogram) Percentile(p float64) float64 {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.count == 0 {
		return 0
	}

	target := int64(float64(h.count) * p / 100.0)
	cumulative := int64(0)
	for i, c := range h.counts {
		cumulative += c
		if cumulative >= target {
			if i < len(histogramBuckets) {
				return histogramBuckets[i]
			}
			return histogramBuckets[len(histogramBuckets)-1]
		}
	}
	return 0
}

// Timer wraps a Histogram to measure elapsed time in milliseconds.
type Timer struct {
	histogram *Histogram
}

func NewTimer(name string, tags map[string]string) *Timer {
	return &Timer{histogram: NewHistogram(name, tags)}
}

// Time starts a measurement; call the returned func when the
// operation completes.
func (t *Timer) Time() func() {
	start := time.Now()
	return func() {
		t.histogram.Observe(float64(time.Since(start).Nanoseconds()) / 1e6)
	}
}

func (t *Timer) TimeFunc(fn func()) {
	defer t.Time()()
	fn()
}

func (t *Timer) Histogram() *Histogram { return t.histogram }

// MetricsCollector is a registry of named counters, gauges and timers,
// keyed by name plus tag set so that e.g. queries_total{cache_hit=true}
// and queries_total{cache_hit=false} are tracked independently.
type MetricsCollector struct {
	mu        sync.RWMutex
	counters  map[string]*Counter
	gauges    map[string]*Gauge
	timers    map[string]*Timer
	startTime time.Time
}

func NewMetricsCollector() *MetricsCollector {
	return &MetricsCollector{
		counters:  make(map[string]*Counter),
		gauges:    make(map[string]*Gauge),
		timers:    make(map[string]*Timer),
		startTime: time.Now(),
	}
}

func (mc *MetricsCollector) Counter(name string, tags map[string]string) *Counter {
	mc.mu.Lock()
	defer mc.mu.Unlock()
	key := metricKey(name, tags)
	if c, ok := mc.counters[key]; ok {
		return c
	}
	c := NewCounter(name, tags)
	mc.counters[key] = c
	return c
}

func (mc *MetricsCollector) Gauge(name string, tags map[string]string) *Gauge {
	mc.mu.Lock()
	defer mc.mu.Unlock()
	key := metricKey(name, tags)
	if g, ok := mc.gauges[key]; ok {
		return g
	}
	g := NewGauge(name, tags)
	mc.gauges[key] = g
	return g
}

func (mc *MetricsCollector) Timer(name string, tags map[string]string) *Timer {
	mc.mu.Lock()
	defer mc.mu.Unlock()
	key := metricKey(name, tags)
	if t, ok := mc.timers[key]; ok {
		return t
	}
	t := NewTimer(name, tags)
	mc.timers[key] = t
	return t
}

// GetAllMetrics snapshots every counter and gauge, plus each timer's
// underlying histogram (count, sum, mean and p50/p90/p95/p99).
func (mc *MetricsCollector) GetAllMetrics() []Metric {
	mc.mu.RLock()
	defer mc.mu.RUnlock()

	now := time.Now()
	var out []Metric

	for _, c := range mc.counters {
		out = append(out, Metric{Name: c.name, Type: MetricTypeCounter, Value: float64(c.Value()), Unit: "count", Timestamp: now, Tags: c.tags})
	}
	for _, g := range mc.gauges {
		out = append(out, Metric{Name: g.name, Type: MetricTypeGauge, Value: g.Value(), Unit: "value", Timestamp: now, Tags: g.tags})
	}
	for _, t := range mc.timers {
		h := t.histogram
		out = append(out, Metric{Name: h.name + "_count", Type: MetricTypeHistogram, Value: float64(h.Count()), Unit: "count", Timestamp: now, Tags: h.tags})
		out = append(out, Metric{Name: h.name + "_sum", Type: MetricTypeHistogram, Value: h.Sum(), Unit: "ms", Timestamp: now, Tags: h.tags})
		out = append(out, Metric{Name: h.name + "_mean", Type: MetricTypeHistogram, Value: h.Mean(), Unit: "ms", Timestamp: now, Tags: h.tags})
		for _, p := range []float64{50, 90, 95, 99} {
			out = append(out, Metric{Name: h.name + "_p" + fmt.Sprintf("%.0f", p), Type: MetricTypeHistogram, Value: h.Percentile(p), Unit: "ms", Timestamp: now, Tags: h.tags})
		}
	}
	return out
}

// GetSystemMetrics returns a runtime.MemStats snapshot alongside
// process uptime and goroutine count.
func (mc *MetricsCollector) GetSystemMetrics() []Metric {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	now := time.Now()
	return []Metric{
		{Name: "system_memory_alloc", Type: MetricTypeGauge, Value: float64(m.Alloc), Unit: "bytes", Timestamp: now},
		{Name: "system_memory_sys", Type: MetricTypeGauge, Value: float64(m.Sys), Unit: "bytes", Timestamp: now},
		{Name: "system_gc_runs", Type: MetricTypeCounter, Value: float64(m.NumGC), Unit: "count", Timestamp: now},
		{Name: "system_goroutines", Type: MetricTypeGauge, Value: float64(runtime.NumGoroutine()), Unit: "count", Timestamp: now},
		{Name: "system_uptime", Type: MetricTypeGauge, Value: now.Sub(mc.startTime).Seconds(), Unit: "seconds", Timestamp: now},
	}
}

// metricKey folds a metric name and its tag set into one map key so
// distinct tag combinations of the same name don't collide.
func metricKey(name string, tags map[string]string) string {
	if len(tags) == 0 {
		return name
	}
	var b strings.Builder
	b.WriteString(name)
	for k, v := range tags {
		b.WriteByte(':')
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(v)
	}
	return b.String()
}
