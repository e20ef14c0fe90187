// Package version holds build metadata injected at link time:
//
//	go build -ldflags "-X github.com/HerbHall/shadetree/internal/version.Version=v0.3.0 \
//	  -X github.com/HerbHall/shadetree/internal/version.Commit=$(git rev-parse --short HEAD) \
//	  -X github.com/HerbHall/shadetree/internal/version.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
package version

import "fmt"

var (
	// Version is the semantic version of this build.
	Version = "dev"
	// Commit is the git commit the binary was built from.
	Commit = "none"
	// Date is the UTC build timestamp.
	Date = "unknown"
)

// Short returns just the version string, e.g. "v0.3.0" or "dev".
func Short() string {
	return Version
}

// Info returns a one-line human-readable description for --version output.
func Info() string {
	return fmt.Sprintf("shadetree %s (commit %s, built %s)", Version, Commit, Date)
}

// Map returns the build metadata as fields for JSON responses.
func Map() map[string]string {
	return map[string]string{
		"version": Version,
		"commit":  Commit,
		"date":    Date,
	}
}
