package monitor

import (
	"sync"
	"time"

	"github.com/hostwatch/hostwatch/internal/platform"
	"github.com/hostwatch/hostwatch/internal/proclist"
	"github.com/sirupsen/logrus"
)

// Polling intervals used when the configuration leaves them unset.
const (
	DefaultWatchInterval  = 2 * time.Second
	DefaultSampleInterval = 1 * time.Second
)

// AdapterFactory produces the platform adapter that backs a Monitor.
type AdapterFactory func(logger logrus.FieldLogger) (platform.Adapter, error)

// Config tunes a Monitor. The zero value is usable: intervals fall back to
// the defaults above, the adapter factory to the gopsutil-backed one and the
// lister to the go-ps-backed one.
type Config struct {
	WatchInterval  time.Duration
	SampleInterval time.Duration
	AdapterFactory AdapterFactory
	Lister         proclist.Lister
	Clock          Clock
}

// Monitor composes the platform adapter and the process lister into the four
// observation operations: system snapshot, live watch stream, per-process
// metrics and timed resource tracking.
//
// Operations may overlap freely: each one only holds its own loop state plus
// the shared adapter handle, which is initialized at most once.
type Monitor struct {
	watchInterval  time.Duration
	sampleInterval time.Duration
	adapterFactory AdapterFactory
	lister         proclist.Lister
	clock          Clock
	logger         logrus.FieldLogger

	adapterOnce sync.Once
	adapter     platform.Adapter
	adapterErr  error
}

func New(config *Config, logger logrus.FieldLogger) *Monitor {
	if config == nil {
		config = &Config{}
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	monitor := &Monitor{
		watchInterval:  config.WatchInterval,
		sampleInterval: config.SampleInterval,
		adapterFactory: config.AdapterFactory,
		lister:         config.Lister,
		clock:          config.Clock,
		logger:         logger,
	}

	if monitor.watchInterval <= 0 {
		monitor.watchInterval = DefaultWatchInterval
	}
	if monitor.sampleInterval <= 0 {
		monitor.sampleInterval = DefaultSampleInterval
	}
	if monitor.adapterFactory == nil {
		monitor.adapterFactory = func(logger logrus.FieldLogger) (platform.Adapter, error) {
			return platform.New(logger)
		}
	}
	if monitor.lister == nil {
		monitor.lister = proclist.NewLister(logger)
	}
	if monitor.clock == nil {
		monitor.clock = systemClock{}
	}

	return monitor
}

// ensureAdapter lazily obtains the platform adapter. The factory runs at
// most once per Monitor even across concurrent first calls; its outcome,
// failure included, is memoized and resurfaces on every dependent operation.
func (monitor *Monitor) ensureAdapter() (platform.Adapter, error) {
	monitor.adapterOnce.Do(func() {
		monitor.adapter, monitor.adapterErr = monitor.adapterFactory(monitor.logger)
	})

	return monitor.adapter, monitor.adapterErr
}
