package seqgo

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordAlign is called after each pairwise alignment.
	RecordAlign(duration time.Duration)

	// RecordRank is called after each ranking operation.
	// refs is the number of reference rows scored, err is nil if successful.
	RecordRank(refs int, duration time.Duration, err error)

	// RecordExport is called after each score-table export.
	RecordExport(duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordAlign(time.Duration)            {}
func (NoopMetricsCollector) RecordRank(int, time.Duration, error) {}
func (NoopMetricsCollector) RecordExport(time.Duration, error)    {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	AlignCount      atomic.Int64
	AlignTotalNanos atomic.Int64
	RankCount       atomic.Int64
	RankErrors      atomic.Int64
	RankRefs        atomic.Int64
	RankTotalNanos  atomic.Int64
	ExportCount     atomic.Int64
	ExportErrors    atomic.Int64
}

// RecordAlign implements MetricsCollector.
func (b *BasicMetricsCollector) RecordAlign(duration time.Duration) {
	b.AlignCount.Add(1)
	b.AlignTotalNanos.Add(duration.Nanoseconds())
}

// RecordRank implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRank(refs int, duration time.Duration, err error) {
	b.RankCount.Add(1)
	b.RankRefs.Add(int64(refs))
	b.RankTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.RankErrors.Add(1)
	}
}

// RecordExport implements MetricsCollector.
func (b *BasicMetricsCollector) RecordExport(duration time.Duration, err error) {
	b.ExportCount.Add(1)
	if err != nil {
		b.ExportErrors.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		AlignCount:    b.AlignCount.Load(),
		AlignAvgNanos: b.getAvgAlignNanos(),
		RankCount:     b.RankCount.Load(),
		RankErrors:    b.RankErrors.Load(),
		RankRefs:      b.RankRefs.Load(),
		RankAvgNanos:  b.getAvgRankNanos(),
		ExportCount:   b.ExportCount.Load(),
		ExportErrors:  b.ExportErrors.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgAlignNanos() int64 {
	count := b.AlignCount.Load()
	if count == 0 {
		return 0
	}
	return b.AlignTotalNanos.Load() / count
}

func (b *BasicMetricsCollector) getAvgRankNanos() int64 {
	count := b.RankCount.Load()
	if count == 0 {
		return 0
	}
	return b.RankTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	AlignCount    int64
	AlignAvgNanos int64
	RankCount     int64
	RankErrors    int64
	RankRefs      int64
	RankAvgNanos  int64
	ExportCount   int64
	ExportErrors  int64
}
