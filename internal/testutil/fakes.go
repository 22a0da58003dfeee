package testutil

import (
	"context"

	"github.com/hostwatch/hostwatch/internal/platform"
	"github.com/hostwatch/hostwatch/internal/proclist"
)

// Adapter is a function-backed platform adapter for tests.
type Adapter struct {
	SystemMetricsFunc func(ctx context.Context) (*platform.SystemMetrics, error)
	ProcessInfoFunc   func(ctx context.Context, pid int) (*platform.ProcessInfo, error)
}

func (a *Adapter) SystemMetrics(ctx context.Context) (*platform.SystemMetrics, error) {
	return a.SystemMetricsFunc(ctx)
}

func (a *Adapter) ProcessInfo(ctx context.Context, pid int) (*platform.ProcessInfo, error) {
	return a.ProcessInfoFunc(ctx, pid)
}

// ListerFunc adapts a function into a process lister.
type ListerFunc func(ctx context.Context, filters *proclist.Filters) ([]proclist.Process, error)

func (f ListerFunc) List(ctx context.Context, filters *proclist.Filters) ([]proclist.Process, error) {
	return f(ctx, filters)
}
