// Package version exposes build metadata for the codebundle CLI.
package version

import (
	"fmt"
	"runtime"
)

// Populated at release time via -ldflags -X; a plain `go build` yields a
// dev binary.
var (
	Version   = "dev"
	Commit    = "none"
	BuildTime = "unknown"
)

// Info is a snapshot of the build and runtime metadata.
type Info struct {
	Version   string
	GitCommit string
	BuildTime string
	GoVersion string
	Platform  string
}

// Get returns the current version information.
func Get() Info {
	return Info{
		Version:   Version,
		GitCommit: Commit,
		BuildTime: BuildTime,
		GoVersion: runtime.Version(),
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
}

// String renders the info as a single line suitable for `codebundle version`.
func (i Info) String() string {
	return fmt.Sprintf("codebundle version %s (commit: %s) built at %s with %s on %s",
		i.Version, i.GitCommit, i.BuildTime, i.GoVersion, i.Platform)
}
