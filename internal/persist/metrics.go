package persist

import (
	"sync/atomic"
	"time"
)

// Metrics tracks saver statistics using atomic operations for thread-safety
type Metrics struct {
	SnapshotsQueued    atomic.Int64
	SnapshotsWritten   atomic.Int64
	SnapshotsCoalesced atomic.Int64
	WriteErrors        atomic.Int64
	StartTime          time.Time
}

// NewMetrics creates a new Metrics instance
func NewMetrics() *Metrics {
	return &Metrics{
		StartTime: time.Now(),
	}
}

// IncQueued increments the queued snapshot counter
func (m *Metrics) IncQueued() {
	m.SnapshotsQueued.Add(1)
}

// IncWritten increments the written snapshot counter
func (m *Metrics) IncWritten() {
	m.SnapshotsWritten.Add(1)
}

// IncCoalesced counts a snapshot superseded by a newer one before it was written
func (m *Metrics) IncCoalesced() {
	m.SnapshotsCoalesced.Add(1)
}

// IncWriteErrors increments the failed write counter
func (m *Metrics) IncWriteErrors() {
	m.WriteErrors.Add(1)
}

// MetricsSnapshot represents a point-in-time snapshot of metrics
type MetricsSnapshot struct {
	SnapshotsQueued    int64     `json:"snapshots_queued"`
	SnapshotsWritten   int64     `json:"snapshots_written"`
	SnapshotsCoalesced int64     `json:"snapshots_coalesced"`
	WriteErrors        int64     `json:"write_errors"`
	StartTime          time.Time `json:"start_time"`
	Uptime             string    `json:"uptime"`
}

// GetSnapshot returns a point-in-time copy of all metrics
func (m *Metrics) GetSnapshot() MetricsSnapshot {
	return MetricsSnapshot{
		SnapshotsQueued:    m.SnapshotsQueued.Load(),
		SnapshotsWritten:   m.SnapshotsWritten.Load(),
		SnapshotsCoalesced: m.SnapshotsCoalesced.Load(),
		WriteErrors:        m.WriteErrors.Load(),
		StartTime:          m.StartTime,
		Uptime:             time.Since(m.StartTime).Round(time.Second).String(),
	}
}
