package monitor

import (
	"context"
	"fmt"
	"runtime"
)

// MemoryUsage holds system-wide memory readings in bytes. Percent is always
// derived from Used and Total at snapshot time.
type MemoryUsage struct {
	Total   uint64  `json:"total"`
	Used    uint64  `json:"used"`
	Free    uint64  `json:"free"`
	Percent float64 `json:"percentage"`
}

// SystemInfo is a point-in-time capture of system-wide metrics.
type SystemInfo struct {
	Platform     string      `json:"platform"`
	Arch         string      `json:"arch"`
	CPUUsage     float64     `json:"cpuUsage"`
	Memory       MemoryUsage `json:"memoryUsage"`
	LoadAverage  []float64   `json:"loadAverage"`
	Uptime       uint64      `json:"uptime"`
	ProcessCount int         `json:"processCount"`
}

// GetSystemInfo assembles a fresh system snapshot. Platform and architecture
// are read from the execution environment on every call; the memory
// percentage is recomputed from the raw readings and never cached. On any
// failure no partial snapshot is returned.
func (monitor *Monitor) GetSystemInfo(ctx context.Context) (*SystemInfo, error) {
	adapter, err := monitor.ensureAdapter()
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create a platform adapter: %v", ErrSystemCall, err)
	}

	metrics, err := adapter.SystemMetrics(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to retrieve system metrics: %v", ErrSystemCall, err)
	}

	info := &SystemInfo{
		Platform: runtime.GOOS,
		Arch:     runtime.GOARCH,
		CPUUsage: metrics.CPUUsage,
		Memory: MemoryUsage{
			Total: metrics.Memory.Total,
			Used:  metrics.Memory.Used,
			Free:  metrics.Memory.Free,
		},
		LoadAverage:  metrics.LoadAverage,
		Uptime:       metrics.Uptime,
		ProcessCount: metrics.ProcessCount,
	}

	if info.Memory.Total > 0 {
		info.Memory.Percent = float64(info.Memory.Used) / float64(info.Memory.Total) * 100
	}

	return info, nil
}
