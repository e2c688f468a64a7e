// Package version exposes build metadata stamped in at link time.
package version

import "fmt"

// Populated via -ldflags at release build time.
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// GetVersion returns the short version string.
func GetVersion() string {
	return Version
}

// GetFullVersion returns the version plus commit and build date.
func GetFullVersion() string {
	return fmt.Sprintf("%s (commit %s, built %s)", Version, GitCommit, BuildDate)
}
