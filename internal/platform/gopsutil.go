package platform

import (
	"context"
	"time"

	"github.com/avast/retry-go"
	"github.com/shirou/gopsutil/cpu"
	"github.com/shirou/gopsutil/host"
	"github.com/shirou/gopsutil/load"
	"github.com/shirou/gopsutil/mem"
	"github.com/shirou/gopsutil/process"
	"github.com/sirupsen/logrus"
)

type gopsutilAdapter struct {
	logger logrus.FieldLogger
}

// New creates a gopsutil-backed adapter. Creation probes the metrics source
// and fails if the host cannot be read; the probe also primes the CPU usage
// counter, which reports deltas since its previous invocation.
func New(logger logrus.FieldLogger) (Adapter, error) {
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	adapter := &gopsutilAdapter{logger: logger}

	err := retry.Do(
		func() error {
			if _, err := mem.VirtualMemory(); err != nil {
				return err
			}
			_, err := cpu.Percent(0, false)
			return err
		},
		retry.Attempts(3), retry.Delay(100*time.Millisecond),
		retry.LastErrorOnly(true),
	)
	if err != nil {
		return nil, err
	}

	return adapter, nil
}

func (adapter *gopsutilAdapter) SystemMetrics(ctx context.Context) (*SystemMetrics, error) {
	percentages, err := cpu.PercentWithContext(ctx, 0, false)
	if err != nil {
		return nil, err
	}

	var cpuUsage float64
	if len(percentages) > 0 {
		cpuUsage = percentages[0]
	}

	virtualMemoryStat, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return nil, err
	}

	metrics := &SystemMetrics{
		CPUUsage: cpuUsage,
		Memory: MemoryStat{
			Total: virtualMemoryStat.Total,
			Used:  virtualMemoryStat.Used,
			Free:  virtualMemoryStat.Free,
		},
	}

	// Load average is unavailable on some platforms (e.g. Windows),
	// in which case it's simply left empty.
	if avgStat, err := load.AvgWithContext(ctx); err == nil {
		metrics.LoadAverage = []float64{avgStat.Load1, avgStat.Load5, avgStat.Load15}
	} else {
		adapter.logger.Debugf("load average is not available: %v", err)
	}

	uptime, err := host.UptimeWithContext(ctx)
	if err != nil {
		return nil, err
	}
	metrics.Uptime = uptime

	pids, err := process.PidsWithContext(ctx)
	if err != nil {
		return nil, err
	}
	metrics.ProcessCount = len(pids)

	return metrics, nil
}

func (adapter *gopsutilAdapter) ProcessInfo(ctx context.Context, pid int) (*ProcessInfo, error) {
	exists, err := process.PidExistsWithContext(ctx, int32(pid))
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrNoSuchProcess
	}

	proc, err := process.NewProcess(int32(pid))
	if err != nil {
		return nil, err
	}

	info := &ProcessInfo{}

	// Individual readings may be unavailable without the whole lookup
	// failing (e.g. due to permissions), so they default to zero.
	if cpuPercent, err := proc.CPUPercentWithContext(ctx); err == nil {
		info.CPU = cpuPercent
	} else {
		adapter.logger.Debugf("CPU usage of PID %d is not available: %v", pid, err)
	}

	if memoryInfoStat, err := proc.MemoryInfoWithContext(ctx); err == nil {
		info.Memory = memoryInfoStat.RSS
	} else {
		adapter.logger.Debugf("memory usage of PID %d is not available: %v", pid, err)
	}

	return info, nil
}
