package version

import "fmt"

// Version is set at build time via -ldflags.
var Version = "dev"

// UserAgent returns a human-readable identification string.
func UserAgent() string {
	return fmt.Sprintf("hostwatch/%s", Version)
}
