package monitor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hostwatch/hostwatch/internal/platform"
)

// SystemWidePID is the reserved PID denoting a system-wide aggregate sample
// rather than a real process.
const SystemWidePID = 0

// ProcessMetrics is a single resource usage sample.
type ProcessMetrics struct {
	PID       int       `json:"pid"`
	CPU       float64   `json:"cpu"`
	Memory    uint64    `json:"memory"`
	Timestamp time.Time `json:"timestamp"`
}

// GetProcessMetrics captures the current resource usage of a single process.
func (monitor *Monitor) GetProcessMetrics(ctx context.Context, pid int) (*ProcessMetrics, error) {
	adapter, err := monitor.ensureAdapter()
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create a platform adapter: %v", ErrSystemCall, err)
	}

	info, err := adapter.ProcessInfo(ctx, pid)
	if err != nil {
		if errors.Is(err, platform.ErrNoSuchProcess) {
			return nil, fmt.Errorf("%w: PID %d", ErrProcessNotFound, pid)
		}

		return nil, fmt.Errorf("%w: failed to retrieve metrics for PID %d: %v", ErrSystemCall, pid, err)
	}

	return &ProcessMetrics{
		PID:       pid,
		CPU:       info.CPU,
		Memory:    info.Memory,
		Timestamp: monitor.clock.Now(),
	}, nil
}
