package proclist

import (
	"context"
	"strings"

	"github.com/mitchellh/go-ps"
	"github.com/shirou/gopsutil/process"
	"github.com/sirupsen/logrus"
)

// Process is a single entry of a process listing.
type Process struct {
	PID    int     `json:"pid"`
	PPID   int     `json:"ppid"`
	Name   string  `json:"name"`
	User   string  `json:"user,omitempty"`
	CPU    float64 `json:"cpu"`
	Memory uint64  `json:"memory"`
}

// Filters narrows down a process listing. A zero value matches everything.
type Filters struct {
	Name      string  `yaml:"name"`
	User      string  `yaml:"user"`
	MinCPU    float64 `yaml:"min_cpu"`
	MinMemory uint64  `yaml:"min_memory"`
}

// Lister enumerates currently running processes.
type Lister interface {
	List(ctx context.Context, filters *Filters) ([]Process, error)
}

type lister struct {
	logger logrus.FieldLogger
}

func NewLister(logger logrus.FieldLogger) Lister {
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	return &lister{logger: logger}
}

func (lister *lister) List(ctx context.Context, filters *Filters) ([]Process, error) {
	if filters == nil {
		filters = &Filters{}
	}

	processes, err := ps.Processes()
	if err != nil {
		return nil, err
	}

	result := make([]Process, 0, len(processes))

	for _, proc := range processes {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		entry := Process{
			PID:  proc.Pid(),
			PPID: proc.PPid(),
			Name: proc.Executable(),
		}

		if filters.Name != "" &&
			!strings.Contains(strings.ToLower(entry.Name), strings.ToLower(filters.Name)) {
			continue
		}

		if filters.needsUsage() {
			// A process may terminate between enumeration and lookup,
			// in which case it's simply skipped.
			if !lister.enrich(ctx, &entry) {
				continue
			}
		}

		if filters.User != "" && !strings.EqualFold(entry.User, filters.User) {
			continue
		}
		if entry.CPU < filters.MinCPU {
			continue
		}
		if entry.Memory < filters.MinMemory {
			continue
		}

		result = append(result, entry)
	}

	return result, nil
}

// needsUsage tells whether the filters can only be evaluated after a per-PID
// resource lookup, which is much more expensive than bare enumeration.
func (filters *Filters) needsUsage() bool {
	return filters.User != "" || filters.MinCPU > 0 || filters.MinMemory > 0
}

func (lister *lister) enrich(ctx context.Context, entry *Process) bool {
	proc, err := process.NewProcess(int32(entry.PID))
	if err != nil {
		return false
	}

	if username, err := proc.UsernameWithContext(ctx); err == nil {
		entry.User = username
	}

	if cpuPercent, err := proc.CPUPercentWithContext(ctx); err == nil {
		entry.CPU = cpuPercent
	}

	if memoryInfoStat, err := proc.MemoryInfoWithContext(ctx); err == nil {
		entry.Memory = memoryInfoStat.RSS
	}

	return true
}
