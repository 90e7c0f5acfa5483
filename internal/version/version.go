// Package version exposes the build stamp, set through -ldflags at
// release time.
package version

var (
	// Version is the release version, "dev" for local builds.
	Version = "dev"
	// Commit is the git commit the binary was built from.
	Commit = "unknown"
	// Date is the UTC build timestamp.
	Date = "unknown"
)
