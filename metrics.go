package ndslice

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting slicer metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordSetup is called after each setup. rows is the dataset size,
	// bins the resulting bin count (zero on failure).
	RecordSetup(rows, bins int, duration time.Duration, err error)

	// RecordDiagnostic is called for every non-fatal setup diagnostic.
	RecordDiagnostic(code DiagnosticCode)

	// RecordLookup is called after each random-access bin read.
	RecordLookup(duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordSetup(int, int, time.Duration, error) {}
func (NoopMetricsCollector) RecordDiagnostic(DiagnosticCode)            {}
func (NoopMetricsCollector) RecordLookup(time.Duration, error)          {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	SetupCount       atomic.Int64
	SetupErrors      atomic.Int64
	SetupTotalNanos  atomic.Int64
	RowsProcessed    atomic.Int64
	DegenerateRanges atomic.Int64
	ConstantColumns  atomic.Int64
	ClampedRows      atomic.Int64
	LookupCount      atomic.Int64
	LookupErrors     atomic.Int64
}

// RecordSetup implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSetup(rows, bins int, duration time.Duration, err error) {
	b.SetupCount.Add(1)
	b.SetupTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.SetupErrors.Add(1)
		return
	}
	b.RowsProcessed.Add(int64(rows))
}

// RecordDiagnostic implements MetricsCollector.
func (b *BasicMetricsCollector) RecordDiagnostic(code DiagnosticCode) {
	switch code {
	case DiagDegenerateRange:
		b.DegenerateRanges.Add(1)
	case DiagConstantColumn:
		b.ConstantColumns.Add(1)
	case DiagClampedRows:
		b.ClampedRows.Add(1)
	}
}

// RecordLookup implements MetricsCollector.
func (b *BasicMetricsCollector) RecordLookup(duration time.Duration, err error) {
	b.LookupCount.Add(1)
	if err != nil {
		b.LookupErrors.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		SetupCount:       b.SetupCount.Load(),
		SetupErrors:      b.SetupErrors.Load(),
		SetupAvgNanos:    b.getAvgSetupNanos(),
		RowsProcessed:    b.RowsProcessed.Load(),
		DegenerateRanges: b.DegenerateRanges.Load(),
		ConstantColumns:  b.ConstantColumns.Load(),
		ClampedRows:      b.ClampedRows.Load(),
		LookupCount:      b.LookupCount.Load(),
		LookupErrors:     b.LookupErrors.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgSetupNanos() int64 {
	count := b.SetupCount.Load()
	if count == 0 {
		return 0
	}
	return b.SetupTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	SetupCount       int64
	SetupErrors      int64
	SetupAvgNanos    int64
	RowsProcessed    int64
	DegenerateRanges int64
	ConstantColumns  int64
	ClampedRows      int64
	LookupCount      int64
	LookupErrors     int64
}
