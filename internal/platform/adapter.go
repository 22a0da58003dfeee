package platform

import (
	"context"
	"errors"
)

// ErrNoSuchProcess is reported by ProcessInfo when the requested PID has no
// corresponding live process, as opposed to the lookup itself failing.
var ErrNoSuchProcess = errors.New("no such process")

// MemoryStat holds raw memory readings in bytes.
type MemoryStat struct {
	Total uint64
	Used  uint64
	Free  uint64
}

// SystemMetrics is a raw system-wide reading produced by an Adapter.
type SystemMetrics struct {
	CPUUsage     float64
	Memory       MemoryStat
	LoadAverage  []float64
	Uptime       uint64
	ProcessCount int
}

// ProcessInfo is a raw per-process reading produced by an Adapter.
type ProcessInfo struct {
	CPU    float64
	Memory uint64
}

// Adapter is the platform-specific metrics source. It is a read-only
// capability: implementations require no teardown.
type Adapter interface {
	SystemMetrics(ctx context.Context) (*SystemMetrics, error)
	ProcessInfo(ctx context.Context, pid int) (*ProcessInfo, error)
}
