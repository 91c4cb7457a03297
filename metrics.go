package molfp

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like
// Prometheus.
//
// Example Prometheus integration:
//
//	type PrometheusCollector struct {
//	    computeCounter   *prometheus.CounterVec
//	    computeHistogram prometheus.Histogram
//	}
//
//	func (p *PrometheusCollector) RecordCompute(t molfp.Type, duration time.Duration, err error) {
//	    p.computeCounter.WithLabelValues(string(t)).Inc()
//	    // ... record error state, duration, etc.
//	}
type MetricsCollector interface {
	// RecordCompute is called after each fingerprint computation.
	// duration is the total time taken, err is nil if successful.
	RecordCompute(t Type, duration time.Duration, err error)

	// RecordBatch is called after each batch featurization.
	// count is the number of molecules attempted, failed is the number that
	// failed, duration is the total time taken.
	RecordBatch(t Type, count, failed int, duration time.Duration)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordCompute(Type, time.Duration, error)  {}
func (NoopMetricsCollector) RecordBatch(Type, int, int, time.Duration) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	ComputeCount      atomic.Int64
	ComputeErrors     atomic.Int64
	ComputeTotalNanos atomic.Int64
	BatchCount        atomic.Int64
	BatchItems        atomic.Int64
	BatchFailed       atomic.Int64
}

// RecordCompute implements MetricsCollector.
func (b *BasicMetricsCollector) RecordCompute(t Type, duration time.Duration, err error) {
	b.ComputeCount.Add(1)
	b.ComputeTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.ComputeErrors.Add(1)
	}
}

// RecordBatch implements MetricsCollector.
func (b *BasicMetricsCollector) RecordBatch(t Type, count, failed int, duration time.Duration) {
	b.BatchCount.Add(1)
	b.BatchItems.Add(int64(count))
	b.BatchFailed.Add(int64(failed))
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector counters.
type BasicMetricsStats struct {
	ComputeCount    int64
	ComputeErrors   int64
	ComputeAvgNanos int64
	BatchCount      int64
	BatchItems      int64
	BatchFailed     int64
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		ComputeCount:    b.ComputeCount.Load(),
		ComputeErrors:   b.ComputeErrors.Load(),
		ComputeAvgNanos: b.getAvgComputeNanos(),
		BatchCount:      b.BatchCount.Load(),
		BatchItems:      b.BatchItems.Load(),
		BatchFailed:     b.BatchFailed.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgComputeNanos() int64 {
	count := b.ComputeCount.Load()
	if count == 0 {
		return 0
	}
	return b.ComputeTotalNanos.Load() / count
}
