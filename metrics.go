package singine

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems; the
// metrics/prom subpackage ships a Prometheus implementation.
type MetricsCollector interface {
	// RecordLoad is called after each edge-snapshot load.
	// count is the number of edges loaded, err is nil if successful.
	RecordLoad(count int, duration time.Duration, err error)

	// RecordSearch is called after each shortest-path search.
	// found is false when the frontier exhausted without reaching dst.
	RecordSearch(duration time.Duration, found bool, err error)

	// RecordMint is called after each identifier mint.
	RecordMint(duration time.Duration, err error)

	// RecordPersist is called after each path-result write.
	RecordPersist(duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordLoad(int, time.Duration, error)    {}
func (NoopMetricsCollector) RecordSearch(time.Duration, bool, error) {}
func (NoopMetricsCollector) RecordMint(time.Duration, error)         {}
func (NoopMetricsCollector) RecordPersist(time.Duration, error)      {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	LoadCount        atomic.Int64
	LoadErrors       atomic.Int64
	EdgesLoaded      atomic.Int64
	SearchCount      atomic.Int64
	SearchMisses     atomic.Int64
	SearchErrors     atomic.Int64
	SearchTotalNanos atomic.Int64
	MintCount        atomic.Int64
	MintErrors       atomic.Int64
	PersistCount     atomic.Int64
	PersistErrors    atomic.Int64
}

// RecordLoad implements MetricsCollector.
func (b *BasicMetricsCollector) RecordLoad(count int, _ time.Duration, err error) {
	b.LoadCount.Add(1)
	b.EdgesLoaded.Add(int64(count))
	if err != nil {
		b.LoadErrors.Add(1)
	}
}

// RecordSearch implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSearch(duration time.Duration, found bool, err error) {
	b.SearchCount.Add(1)
	b.SearchTotalNanos.Add(duration.Nanoseconds())
	if !found {
		b.SearchMisses.Add(1)
	}
	if err != nil {
		b.SearchErrors.Add(1)
	}
}

// RecordMint implements MetricsCollector.
func (b *BasicMetricsCollector) RecordMint(_ time.Duration, err error) {
	b.MintCount.Add(1)
	if err != nil {
		b.MintErrors.Add(1)
	}
}

// RecordPersist implements MetricsCollector.
func (b *BasicMetricsCollector) RecordPersist(_ time.Duration, err error) {
	b.PersistCount.Add(1)
	if err != nil {
		b.PersistErrors.Add(1)
	}
}
