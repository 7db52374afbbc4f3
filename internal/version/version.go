// Package version holds the build version of floralgen.
package version

// Version and Commit can be overridden at build time:
//
//	go build -ldflags "-X github.com/manash/floralgen/internal/version.Version=x.y.z -X github.com/manash/floralgen/internal/version.Commit=abc123"
var (
	Version = "1.0.0"
	Commit  = "none"
)

// String returns the version with its commit, as shown by --version.
func String() string {
	return Version + " (commit: " + Commit + ")"
}
