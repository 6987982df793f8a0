package simtrack

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordEmbed is called after each batch embedding operation.
	// count is the number of samples embedded, duration is the total time
	// taken, err is nil if successful.
	RecordEmbed(count int, duration time.Duration, err error)

	// RecordAssociate is called after each cross-frame association.
	// detections is the number of frame-1 detections, duration is the total
	// time taken, err is nil if successful.
	RecordAssociate(detections int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordEmbed(int, time.Duration, error)     {}
func (NoopMetricsCollector) RecordAssociate(int, time.Duration, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	EmbedCount          atomic.Int64
	EmbedSamples        atomic.Int64
	EmbedErrors         atomic.Int64
	EmbedTotalNanos     atomic.Int64
	AssociateCount      atomic.Int64
	AssociateErrors     atomic.Int64
	AssociateTotalNanos atomic.Int64
}

// RecordEmbed implements MetricsCollector.
func (b *BasicMetricsCollector) RecordEmbed(count int, duration time.Duration, err error) {
	b.EmbedCount.Add(1)
	b.EmbedSamples.Add(int64(count))
	b.EmbedTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.EmbedErrors.Add(1)
	}
}

// RecordAssociate implements MetricsCollector.
func (b *BasicMetricsCollector) RecordAssociate(detections int, duration time.Duration, err error) {
	b.AssociateCount.Add(1)
	b.AssociateTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.AssociateErrors.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		EmbedCount:        b.EmbedCount.Load(),
		EmbedSamples:      b.EmbedSamples.Load(),
		EmbedErrors:       b.EmbedErrors.Load(),
		EmbedAvgNanos:     avg(b.EmbedTotalNanos.Load(), b.EmbedCount.Load()),
		AssociateCount:    b.AssociateCount.Load(),
		AssociateErrors:   b.AssociateErrors.Load(),
		AssociateAvgNanos: avg(b.AssociateTotalNanos.Load(), b.AssociateCount.Load()),
	}
}

func avg(total, count int64) int64 {
	if count == 0 {
		return 0
	}
	return total / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	EmbedCount        int64
	EmbedSamples      int64
	EmbedErrors       int64
	EmbedAvgNanos     int64
	AssociateCount    int64
	AssociateErrors   int64
	AssociateAvgNanos int64
}
