package memtag

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Collectors are called synchronously on the calling goroutine after the
// operation has finished; they must not call back into the engine.
type MetricsCollector interface {
	// RecordTagWrite is called after each tagging or zeroing operation.
	// bytes is the region length.
	RecordTagWrite(op Op, bytes int, duration time.Duration)

	// RecordModeChange is called after the platform accepted a new mode.
	RecordModeChange(mode Mode, included TagMask)

	// RecordMigration is called after each migration. bytes is the source
	// length.
	RecordMigration(op Op, bytes int, duration time.Duration)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordTagWrite(Op, int, time.Duration)  {}
func (NoopMetricsCollector) RecordModeChange(Mode, TagMask)         {}
func (NoopMetricsCollector) RecordMigration(Op, int, time.Duration) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	TagWriteCount   atomic.Int64
	TagWriteBytes   atomic.Int64
	TagWriteNanos   atomic.Int64
	ModeChangeCount atomic.Int64
	MigrationCount  atomic.Int64
	MigrationBytes  atomic.Int64
	MigrationNanos  atomic.Int64
}

// RecordTagWrite implements MetricsCollector.
func (b *BasicMetricsCollector) RecordTagWrite(_ Op, bytes int, duration time.Duration) {
	b.TagWriteCount.Add(1)
	b.TagWriteBytes.Add(int64(bytes))
	b.TagWriteNanos.Add(duration.Nanoseconds())
}

// RecordModeChange implements MetricsCollector.
func (b *BasicMetricsCollector) RecordModeChange(Mode, TagMask) {
	b.ModeChangeCount.Add(1)
}

// RecordMigration implements MetricsCollector.
func (b *BasicMetricsCollector) RecordMigration(_ Op, bytes int, duration time.Duration) {
	b.MigrationCount.Add(1)
	b.MigrationBytes.Add(int64(bytes))
	b.MigrationNanos.Add(duration.Nanoseconds())
}

// Stats returns a snapshot of the collected metrics.
func (b *BasicMetricsCollector) Stats() MetricsStats {
	return MetricsStats{
		TagWriteCount:   b.TagWriteCount.Load(),
		TagWriteBytes:   b.TagWriteBytes.Load(),
		TagWriteTime:    time.Duration(b.TagWriteNanos.Load()),
		ModeChangeCount: b.ModeChangeCount.Load(),
		MigrationCount:  b.MigrationCount.Load(),
		MigrationBytes:  b.MigrationBytes.Load(),
		MigrationTime:   time.Duration(b.MigrationNanos.Load()),
	}
}

// MetricsStats is a point-in-time snapshot of BasicMetricsCollector.
type MetricsStats struct {
	TagWriteCount   int64
	TagWriteBytes   int64
	TagWriteTime    time.Duration
	ModeChangeCount int64
	MigrationCount  int64
	MigrationBytes  int64
	MigrationTime   time.Duration
}
