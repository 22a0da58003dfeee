package monitor

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ResourceUsageReport summarizes the samples collected over one tracking
// window. Averages and peaks are derived strictly from Samples, which are
// kept in capture order.
type ResourceUsageReport struct {
	Duration      time.Duration    `json:"duration"`
	Samples       []ProcessMetrics `json:"samples"`
	AverageCPU    float64          `json:"averageCpu"`
	AverageMemory float64          `json:"averageMemory"`
	PeakCPU       float64          `json:"peakCpu"`
	PeakMemory    uint64           `json:"peakMemory"`
}

// TrackResourceUsage samples system-wide resource usage until the requested
// wall-clock window closes, then reduces the samples into a report. One
// sample is captured per sample interval, stamped with the system-wide
// sentinel PID. A failed capture is logged and the loop continues after the
// same interval.
//
// A window that closes with zero samples is an error: durations shorter than
// the sample interval can legitimately end up here. Cancelling ctx stops
// sampling early and reduces whatever was collected so far.
func (monitor *Monitor) TrackResourceUsage(ctx context.Context, duration time.Duration) (*ResourceUsageReport, error) {
	if duration < 0 {
		return nil, fmt.Errorf("%w: tracking duration %v is negative", ErrSystemCall, duration)
	}

	if _, err := monitor.ensureAdapter(); err != nil {
		return nil, fmt.Errorf("%w: failed to create a platform adapter: %v", ErrSystemCall, err)
	}

	logger := monitor.logger.WithField("track_session", uuid.New().String())

	var samples []ProcessMetrics

	deadline := monitor.clock.Now().Add(duration)

	for monitor.clock.Now().Before(deadline) {
		if snapshot, err := monitor.GetSystemInfo(ctx); err != nil {
			logger.Warnf("failed to capture a sample: %v", err)
		} else {
			samples = append(samples, ProcessMetrics{
				PID:       SystemWidePID,
				CPU:       snapshot.CPUUsage,
				Memory:    snapshot.Memory.Used,
				Timestamp: monitor.clock.Now(),
			})
		}

		monitor.clock.Sleep(ctx, monitor.sampleInterval)

		if ctx.Err() != nil {
			break
		}
	}

	if len(samples) == 0 {
		return nil, fmt.Errorf("%w: no samples were collected in %v", ErrSystemCall, duration)
	}

	report := &ResourceUsageReport{
		Duration: duration,
		Samples:  samples,
	}

	var totalCPU, totalMemory float64

	for _, sample := range samples {
		totalCPU += sample.CPU
		totalMemory += float64(sample.Memory)

		if sample.CPU > report.PeakCPU {
			report.PeakCPU = sample.CPU
		}
		if sample.Memory > report.PeakMemory {
			report.PeakMemory = sample.Memory
		}
	}

	report.AverageCPU = totalCPU / float64(len(samples))
	report.AverageMemory = totalMemory / float64(len(samples))

	return report, nil
}
