package hasharray

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus;
// see package metrics/prom for a ready-made implementation.
type MetricsCollector interface {
	// RecordAdd is called after each Add, AddAll or AddMap call.
	// accepted items entered the collection, rejected items were dropped by
	// the ignore-duplicates policy.
	RecordAdd(kind EventKind, accepted, rejected int, duration time.Duration)

	// RecordRemove is called after each Remove, RemoveByKey or RemoveAll call.
	RecordRemove(kind EventKind, removed int, duration time.Duration)

	// RecordLookup is called after each key lookup. hit reports whether the
	// key had a bucket.
	RecordLookup(hit bool)

	// RecordDerive is called after a derived collection (intersection,
	// complement, filter) has been built.
	RecordDerive(op string, size int, duration time.Duration)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordAdd(EventKind, int, int, time.Duration) {}
func (NoopMetricsCollector) RecordRemove(EventKind, int, time.Duration)   {}
func (NoopMetricsCollector) RecordLookup(bool)                            {}
func (NoopMetricsCollector) RecordDerive(string, int, time.Duration)      {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	AddCalls         atomic.Int64
	ItemsAccepted    atomic.Int64
	ItemsRejected    atomic.Int64
	AddTotalNanos    atomic.Int64
	RemoveCalls      atomic.Int64
	ItemsRemoved     atomic.Int64
	RemoveTotalNanos atomic.Int64
	LookupHits       atomic.Int64
	LookupMisses     atomic.Int64
	DeriveCalls      atomic.Int64
	DerivedItems     atomic.Int64
}

// RecordAdd implements MetricsCollector.
func (b *BasicMetricsCollector) RecordAdd(_ EventKind, accepted, rejected int, duration time.Duration) {
	b.AddCalls.Add(1)
	b.ItemsAccepted.Add(int64(accepted))
	b.ItemsRejected.Add(int64(rejected))
	b.AddTotalNanos.Add(duration.Nanoseconds())
}

// RecordRemove implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRemove(_ EventKind, removed int, duration time.Duration) {
	b.RemoveCalls.Add(1)
	b.ItemsRemoved.Add(int64(removed))
	b.RemoveTotalNanos.Add(duration.Nanoseconds())
}

// RecordLookup implements MetricsCollector.
func (b *BasicMetricsCollector) RecordLookup(hit bool) {
	if hit {
		b.LookupHits.Add(1)
		return
	}
	b.LookupMisses.Add(1)
}

// RecordDerive implements MetricsCollector.
func (b *BasicMetricsCollector) RecordDerive(_ string, size int, _ time.Duration) {
	b.DeriveCalls.Add(1)
	b.DerivedItems.Add(int64(size))
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		AddCalls:       b.AddCalls.Load(),
		ItemsAccepted:  b.ItemsAccepted.Load(),
		ItemsRejected:  b.ItemsRejected.Load(),
		AddAvgNanos:    avg(b.AddTotalNanos.Load(), b.AddCalls.Load()),
		RemoveCalls:    b.RemoveCalls.Load(),
		ItemsRemoved:   b.ItemsRemoved.Load(),
		RemoveAvgNanos: avg(b.RemoveTotalNanos.Load(), b.RemoveCalls.Load()),
		LookupHits:     b.LookupHits.Load(),
		LookupMisses:   b.LookupMisses.Load(),
		DeriveCalls:    b.DeriveCalls.Load(),
		DerivedItems:   b.DerivedItems.Load(),
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
	AddCalls       int64
	ItemsAccepted  int64
	ItemsRejected  int64
	AddAvgNanos    int64
	RemoveCalls    int64
	ItemsRemoved   int64
	RemoveAvgNanos int64
	LookupHits     int64
	LookupMisses   int64
	DeriveCalls    int64
	DerivedItems   int64
}
