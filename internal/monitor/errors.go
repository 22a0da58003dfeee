package monitor

import "errors"

// Error kinds surfaced by Monitor operations. Failures carry the original
// cause and context (PID, duration) in their message and are matchable with
// errors.Is.
var (
	// ErrSystemCall indicates that an adapter or lister invocation, or the
	// aggregation built on top of one, has failed (code SYSTEM_CALL_FAILED).
	ErrSystemCall = errors.New("system call failed")

	// ErrProcessNotFound indicates that the requested PID has no
	// corresponding live process (code PROCESS_NOT_FOUND).
	ErrProcessNotFound = errors.New("process not found")
)

// Code returns the machine-readable code of an error produced by a Monitor
// operation, or an empty string for foreign errors.
func Code(err error) string {
	switch {
	case errors.Is(err, ErrProcessNotFound):
		return "PROCESS_NOT_FOUND"
	case errors.Is(err, ErrSystemCall):
		return "SYSTEM_CALL_FAILED"
	default:
		return ""
	}
}
