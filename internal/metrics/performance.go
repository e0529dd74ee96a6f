package metrics

import (
	"fmt"
	"runtime"
	"time"
)

// PerformanceMonitor tracks query and rebuild performance for the
// ranking engine, wrapping a MetricsCollector with domain-specific
// recording helpers.
type PerformanceMonitor struct {
	collector *MetricsCollector
	enabled   bool
}

// NewPerformanceMonitor creates a new performance monitor.
func NewPerformanceMonitor() *PerformanceMonitor {
	return &PerformanceMonitor{
		collector: NewMetricsCollector(),
		enabled:   true,
	}
}

// Enable enables or disables performance monitoring.
func (pm *PerformanceMonitor) Enable(enabled bool) {
	pm.enabled = enabled
}

// IsEnabled returns whether performance monitoring is enabled.
func (pm *PerformanceMonitor) IsEnabled() bool {
	return pm.enabled
}

// RecordQuery records metrics for one Search call: latency, result
// count, and whether it was served from the query cache.
func (pm *PerformanceMonitor) RecordQuery(duration time.Duration, resultCount int, cacheHit bool) {
	if !pm.enabled {
		return
	}

	queryTimer := pm.collector.Timer("query_duration", map[string]string{
		"cache_hit": fmt.Sprintf("%t", cacheHit),
	})
	queryTimer.Histogram().Observe(float64(duration.Nanoseconds()) / 1e6)

	resultGauge := pm.collector.Gauge("query_results", nil)
	resultGauge.Set(float64(resultCount))

	queryCounter := pm.collector.Counter("queries_total", map[string]string{
		"cache_hit": fmt.Sprintf("%t", cacheHit),
	})
	queryCounter.Inc()

	if cacheHit {
		pm.collector.Counter("cache_hits_total", nil).Inc()
	} else {
		pm.collector.Counter("cache_misses_total", nil).Inc()
	}
}

// RecordRebuild records metrics for one index rebuild: latency,
// indexed document count, and whether it succeeded.
func (pm *PerformanceMonitor) RecordRebuild(duration time.Duration, docCount int, success bool) {
	if !pm.enabled {
		return
	}

	rebuildTimer := pm.collector.Timer("rebuild_duration", map[string]string{
		"success": fmt.Sprintf("%t", success),
	})
	rebuildTimer.Histogram().Observe(float64(duration.Nanoseconds()) / 1e6)

	docsGauge := pm.collector.Gauge("indexed_documents", nil)
	docsGauge.Set(float64(docCount))

	pm.collector.Counter("rebuilds_total", map[string]string{
		"success": fmt.Sprintf("%t", success),
	}).Inc()
}

// RecordMemoryUsage records current memory usage.
func (pm *PerformanceMonitor) RecordMemoryUsage() {
	if !pm.enabled {
		return
	}

	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	pm.collector.Gauge("memory_alloc_bytes", nil).Set(float64(m.Alloc))
	pm.collector.Gauge("memory_sys_bytes", nil).Set(float64(m.Sys))
	pm.collector.Gauge("gc_runs_total", nil).Set(float64(m.NumGC))
	pm.collector.Gauge("goroutines_active", nil).Set(float64(runtime.NumGoroutine()))
}

// GetPerformanceReport generates a performance report.
func (pm *PerformanceMonitor) GetPerformanceReport() PerformanceReport {
	report := PerformanceReport{
		Timestamp:          time.Now(),
		ApplicationMetrics: pm.collector.GetAllMetrics(),
		SystemMetrics:      pm.collector.GetSystemMetrics(),
	}
	report.calculateDerivedMetrics()
	return report
}

// PerformanceReport contains performance metrics and analysis.
type PerformanceReport struct {
	Timestamp          time.Time `json:"timestamp"`
	ApplicationMetrics []Metric  `json:"application_metrics"`
	SystemMetrics      []Metric  `json:"system_metrics"`

	AverageQueryTime float64 `json:"average_query_time_ms"`
	CacheHitRatio    float64 `json:"cache_hit_ratio"`
	QueriesPerSecond float64 `json:"queries_per_second"`
	MemoryUsageMB    float64 `json:"memory_usage_mb"`
	GoroutineCount   int     `json:"goroutine_count"`
}

// calculateDerivedMetrics calculates derived performance metrics.
func (pr *PerformanceReport) calculateDerivedMetrics() {
	metricMap := make(map[string]float64)
	// Sum across tag sets so e.g. queries_total{cache_hit=true} and
	// queries_total{cache_hit=false} both count toward the totals.
	for _, metric := range pr.ApplicationMetrics {
		metricMap[metric.Name] += metric.Value
	}
	for _, metric := range pr.SystemMetrics {
		metricMap[metric.Name] = metric.Value
	}

	if queryCount := metricMap["query_duration_count"]; queryCount > 0 {
		if querySum := metricMap["query_duration_sum"]; querySum > 0 {
			pr.AverageQueryTime = querySum / queryCount
		}
	}

	cacheHits := metricMap["cache_hits_total"]
	cacheMisses := metricMap["cache_misses_total"]
	if total := cacheHits + cacheMisses; total > 0 {
		pr.CacheHitRatio = cacheHits / total
	}

	if uptime := metricMap["system_uptime"]; uptime > 0 {
		pr.QueriesPerSecond = metricMap["queries_total"] / uptime
	}

	if memAlloc := metricMap["system_memory_alloc"]; memAlloc > 0 {
		pr.MemoryUsageMB = memAlloc / (1024 * 1024)
	}

	pr.GoroutineCount = int(metricMap["system_goroutines"])
}

// String returns a string representation of the performance report.
func (pr *PerformanceReport) String() string {
	return fmt.Sprintf(`Performance Report (%s):
  Average Query Time: %.2f ms
  Cache Hit Ratio: %.2f%%
  Queries/Second: %.2f
  Memory Usage: %.2f MB
  Active Goroutines: %d`,
		pr.Timestamp.Format("2006-01-02 15:04:05"),
		pr.AverageQueryTime,
		pr.CacheHitRatio*100,
		pr.QueriesPerSecond,
		pr.MemoryUsageMB,
		pr.GoroutineCount)
}
