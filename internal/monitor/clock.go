package monitor

import (
	"context"
	"time"
)

// Clock is the time source of the polling loops, abstracted so that the
// loops can be driven deterministically in tests.
type Clock interface {
	Now() time.Time
	Sleep(ctx context.Context, duration time.Duration)
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

func (systemClock) Sleep(ctx context.Context, duration time.Duration) {
	timer := time.NewTimer(duration)
	defer timer.Stop()

	select {
	case <-timer.C:
	case <-ctx.Done():
	}
}
