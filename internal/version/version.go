// Package version exposes build metadata injected at link time.
package version

// Set via -ldflags at build time.
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

// Full returns a human-readable version string for logs.
func Full() string {
	return Version + " (commit: " + GitCommit + ", built: " + BuildTime + ")"
}
