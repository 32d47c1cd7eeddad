package pngme

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Version is the semantic version of the pngme library and CLI.
const Version = "0.1.0"

// VersionInfo describes the running build.
type VersionInfo struct {
	Version   string
	GitCommit string
	BuildTime string
	GoVersion string
}

// String renders the build description printed by "pngme version".
func (v VersionInfo) String() string {
	return fmt.Sprintf("pngme %s (commit %s, built %s, %s)", v.Version, v.GitCommit, v.BuildTime, v.GoVersion)
}

// GetVersionInfo returns version information for the running binary.
//
// GitCommit and BuildTime come from -ldflags when set:
//
//	go build -ldflags="-X github.com/simonhull/pngme.gitCommit=$(git rev-parse HEAD) \
//	  -X github.com/simonhull/pngme.buildTime=$(date -u +%Y-%m-%dT%H:%M:%SZ)" ./cmd/pngme
//
// Otherwise the VCS stamp embedded by the Go toolchain is used, and
// "unknown" when neither is available.
func GetVersionInfo() VersionInfo {
	info := VersionInfo{
		Version:   Version,
		GitCommit: gitCommit,
		BuildTime: buildTime,
		GoVersion: runtime.Version(),
	}

	if bi, ok := debug.ReadBuildInfo(); ok {
		for _, s := range bi.Settings {
			switch {
			case s.Key == "vcs.revision" && info.GitCommit == "unknown":
				info.GitCommit = s.Value
			case s.Key == "vcs.time" && info.BuildTime == "unknown":
				info.BuildTime = s.Value
			}
		}
	}

	return info
}

// Set at build time via -ldflags.
var (
	gitCommit = "unknown"
	buildTime = "unknown"
)
