// Package version carries build metadata stamped in via -ldflags.
package version

import "fmt"

var (
	// Version is the release version, "dev" for local builds.
	Version = "dev"
	// GitSHA is the git commit the binary was built from.
	GitSHA = "unknown"
)

// String returns a one-line human-readable version string.
func String() string {
	return fmt.Sprintf("paretoviz %s (%s)", Version, GitSHA)
}
