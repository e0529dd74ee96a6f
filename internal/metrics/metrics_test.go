package metrics

import (
	"testing"
	"time"
)

func TestCounter(t *testing.T) {
	counter := NewCounter("test_counter", nil)

	if counter.Value() != 0 {
		t.Errorf("Expected initial value 0, got %d", counter.Value())
	}

	counter.Inc()
	if counter.Value() != 1 {
		t.Errorf("Expected value 1 after Inc(), got %d", counter.Value())
	}

	counter.Add(5)
	if counter.Value() != 6 {
		t.Errorf("Expected value 6 after Add(5), got %d", counter.Value())
	}

	counter.Reset()
	if counter.Value() != 0 {
		t.Errorf("Expected value 0 after Reset(), got %d", counter.Value())
	}
}

func TestGauge(t *testing.T) {
	gauge := NewGauge("test_gauge", nil)

	if gauge.Value() != 0 {
		t.Errorf("Expected initial value 0, got %f", gauge.Value())
	}

	gauge.Set(3.14)
	if gauge.Value() != 3.14 {
		t.Errorf("Expected value 3.14 after Set(3.14), got %f", gauge.Value())
	}

	gauge.Inc()
	if gauge.Value() != 4.14 {
		t.Errorf("Expected value 4.14 after Inc(), got %f", gauge.Value())
	}

	gauge.Dec()
	if gauge.Value() != 3.14 {
		t.Errorf("Expected value 3.14 after Dec(), got %f", gauge.Value())
	}

	gauge.Add(1.86)
	if gauge.Value() != 5.0 {
		t.Errorf("Expected value 5.0 after Add(1.86), got %f", gauge.Value())
	}
}

func TestHistogram(t *testing.T) {
	histogram := NewHistogram("test_histogram", nil)

	if histogram.Count() != 0 {
		t.Errorf("Expected initial count 0, got %d", histogram.Count())
	}
	if histogram.Sum() != 0 {
		t.Errorf("Expected initial sum 0, got %f", histogram.Sum())
	}

	for _, v := range []float64{1.0, 2.0, 3.0, 4.0, 5.0} {
		histogram.Observe(v)
	}

	if histogram.Count() != 5 {
		t.Errorf("Expected count 5, got %d", histogram.Count())
	}
	if expected := 15.0; histogram.Sum() != expected {
		t.Errorf("Expected sum %f, got %f", expected, histogram.Sum())
	}
	if expected := 3.0; histogram.Mean() != expected {
		t.Errorf("Expected mean %f, got %f", expected, histogram.Mean())
	}

	p50 := histogram.Percentile(50)
	if p50 < 2.5 || p50 > 5.0 {
		t.Errorf("Expected 50th percentile between 2.5 and 5.0, got %f", p50)
	}
}

func TestTimer(t *testing.T) {
	timer := NewTimer("test_timer", nil)

	done := timer.Time()
	time.Sleep(10 * time.Millisecond)
	done()

	histogram := timer.Histogram()
	if histogram.Count() != 1 {
		t.Errorf("Expected 1 timing measurement, got %d", histogram.Count())
	}
	if histogram.Mean() < 10 {
		t.Errorf("Expected mean >= 10ms, got %f", histogram.Mean())
	}

	timer.TimeFunc(func() {
		time.Sleep(5 * time.Millisecond)
	})

	if histogram.Count() != 2 {
		t.Errorf("Expected 2 timing measurements, got %d", histogram.Count())
	}
}

func TestMetricsCollector(t *testing.T) {
	collector := NewMetricsCollector()

	counter1 := collector.Counter("test_counter", nil)
	counter2 := collector.Counter("test_counter", nil)
	if counter1 != counter2 {
		t.Error("Expected same counter instance for same name")
	}

	counter1.Inc()
	if counter2.Value() != 1 {
		t.Error("Expected shared counter state")
	}

	gauge := collector.Gauge("test_gauge", map[string]string{"tag": "value"})
	gauge.Set(42.0)

	timer := collector.Timer("test_timer", nil)
	done := timer.Time()
	time.Sleep(1 * time.Millisecond)
	done()

	metrics := collector.GetAllMetrics()
	if len(metrics) < 3 {
		t.Errorf("Expected at least 3 metrics (counter, gauge, timer histogram), got %d", len(metrics))
	}

	var sawTimerCount bool
	for _, m := range metrics {
		if m.Name == "test_timer_count" {
			sawTimerCount = true
		}
	}
	if !sawTimerCount {
		t.Error("Expected GetAllMetrics to include the timer's histogram")
	}

	systemMetrics := collector.GetSystemMetrics()
	if len(systemMetrics) < 5 {
		t.Errorf("Expected at least 5 system metrics, got %d", len(systemMetrics))
	}
}

func TestPerformanceMonitor(t *testing.T) {
	monitor := NewPerformanceMonitor()

	if !monitor.IsEnabled() {
		t.Error("Expected monitor to be enabled by default")
	}

	monitor.RecordQuery(10*time.Millisecond, 5, false)
	monitor.RecordQuery(5*time.Millisecond, 3, true)
	monitor.RecordRebuild(100*time.Millisecond, 42, true)
	monitor.RecordMemoryUsage()

	report := monitor.GetPerformanceReport()

	if report.Timestamp.IsZero() {
		t.Error("Expected non-zero timestamp in report")
	}
	if len(report.ApplicationMetrics) == 0 {
		t.Error("Expected application metrics in report")
	}
	if len(report.SystemMetrics) == 0 {
		t.Error("Expected system metrics in report")
	}

	monitor.Enable(false)
	if monitor.IsEnabled() {
		t.Error("Expected monitor to be disabled")
	}
}

func TestPerformanceMonitorDisabledSkipsRecording(t *testing.T) {
	monitor := NewPerformanceMonitor()
	monitor.Enable(false)

	monitor.RecordQuery(time.Millisecond, 1, false)
	report := monitor.GetPerformanceReport()
	if len(report.ApplicationMetrics) != 0 {
		t.Errorf("expected no metrics while disabled, got %d", len(report.ApplicationMetrics))
	}
}

func BenchmarkCounter(b *testing.B) {
	counter := NewCounter("bench_counter", nil)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		counter.Inc()
	}
}

func BenchmarkGauge(b *testing.B) {
	gauge := NewGauge("bench_gauge", nil)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		gauge.Set(float64(i))
	}
}

func BenchmarkHistogram(b *testing.B) {
	histogram := NewHistogram("bench_histogram", nil)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		histogram.Observe(float64(i % 100))
	}
}

func BenchmarkPerformanceMonitor(b *testing.B) {
	monitor := NewPerformanceMonitor()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		monitor.RecordQuery(time.Millisecond, 5, false)
	}
}
