package monitor

import (
	"context"

	"github.com/google/uuid"
	"github.com/hostwatch/hostwatch/internal/proclist"
	"github.com/sirupsen/logrus"
)

// StartWatchMode starts an unbounded stream of process listings, one capture
// per watch interval. Filters are passed through to the lister verbatim.
//
// The stream never terminates on its own: a failed iteration is logged and
// retried after the same interval, so transient failures do not end
// observability. Cancelling ctx is the only way to stop it, after which the
// channel is closed.
//
// The channel is unbuffered, so captures stay strictly sequential and no
// iteration runs ahead of the consumer.
func (monitor *Monitor) StartWatchMode(ctx context.Context, filters *proclist.Filters) <-chan []proclist.Process {
	updates := make(chan []proclist.Process)

	logger := monitor.logger.WithField("watch_session", uuid.New().String())

	go func() {
		defer close(updates)

		for {
			if processes, ok := monitor.captureProcessList(ctx, logger, filters); ok {
				select {
				case updates <- processes:
				case <-ctx.Done():
					return
				}
			}

			monitor.clock.Sleep(ctx, monitor.watchInterval)

			if ctx.Err() != nil {
				return
			}
		}
	}()

	return updates
}

func (monitor *Monitor) captureProcessList(
	ctx context.Context,
	logger logrus.FieldLogger,
	filters *proclist.Filters,
) ([]proclist.Process, bool) {
	if _, err := monitor.ensureAdapter(); err != nil {
		logger.Warnf("failed to create a platform adapter: %v", err)
		return nil, false
	}

	processes, err := monitor.lister.List(ctx, filters)
	if err != nil {
		logger.Warnf("failed to list processes: %v", err)
		return nil, false
	}

	return processes, true
}
