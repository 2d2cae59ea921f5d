// Package buildinfo reports the version of the smartedge binary.
//
// Release builds set the variables via ldflags:
//
//	go build -ldflags "-X github.com/matzehuels/smartedge/pkg/buildinfo.Version=v1.0.0 \
//	    -X github.com/matzehuels/smartedge/pkg/buildinfo.Commit=$(git rev-parse HEAD) \
//	    -X github.com/matzehuels/smartedge/pkg/buildinfo.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
//
// Any variable left unset is filled from the module and VCS data the Go
// toolchain embeds, so `go install` builds still report a version and commit.
package buildinfo

import (
	"fmt"
	"runtime/debug"
)

const (
	unsetVersion = "dev"
	unsetCommit  = "none"
	unsetDate    = "unknown"
)

var (
	// Version is the semantic version (e.g., "v1.2.3").
	Version = unsetVersion

	// Commit is the git commit SHA, suffixed with "-dirty" for modified trees.
	Commit = unsetCommit

	// Date is the build or commit timestamp.
	Date = unsetDate

	// GoVersion is the toolchain that built the binary.
	GoVersion = "unknown"
)

func init() {
	if bi, ok := debug.ReadBuildInfo(); ok {
		fill(bi)
	}
}

// fill sets the variables still at their unset values from bi.
func fill(bi *debug.BuildInfo) {
	GoVersion = bi.GoVersion
	if Version == unsetVersion && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		Version = bi.Main.Version
	}

	var revision, modified string
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			revision = s.Value
		case "vcs.modified":
			modified = s.Value
		case "vcs.time":
			if Date == unsetDate {
				Date = s.Value
			}
		}
	}
	if Commit == unsetCommit && revision != "" {
		Commit = revision
		if modified == "true" {
			Commit += "-dirty"
		}
	}
}

// String returns the formatted build information.
func String() string {
	return fmt.Sprintf("version: %s\ncommit: %s\nbuilt: %s\ngo: %s", Version, Commit, Date, GoVersion)
}

// Template returns the version template string for cobra.
func Template() string {
	return fmt.Sprintf("{{.Name}} version %s\ncommit: %s\nbuilt: %s\n", Version, Commit, Date)
}
