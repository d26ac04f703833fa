// Package version reports how the chtools binary was built. The values are
// injected with ldflags:
//
//	go build -ldflags="-X github.com/jpl-au/chtools/internal/version.Version=v1.0.0 \
//	  -X github.com/jpl-au/chtools/internal/version.GitCommit=abc123 \
//	  -X github.com/jpl-au/chtools/internal/version.BuildTime=2026-01-15T10:30:00Z"
//
// The version also names the client to Companies House through UserAgent.
package version

import (
	"fmt"
	"runtime"
	"strings"
)

var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

// Info is the output of "chtools version".
type Info struct {
	BuildTag  string `json:"build_tag"`
	BuildTime string `json:"build_time"`
	GitCommit string `json:"git_commit"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
	UserAgent string `json:"user_agent"` // sent on every upstream request
}

// Get collects the build values and runtime details.
func Get() Info {
	return Info{
		BuildTag:  Version,
		BuildTime: BuildTime,
		GitCommit: GitCommit,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
		UserAgent: UserAgent(),
	}
}

func (i Info) String() string {
	rows := [][2]string{
		{"Build Tag", i.BuildTag},
		{"Build Time", i.BuildTime},
		{"Git Commit", i.GitCommit},
		{"Go Version", i.GoVersion},
		{"Platform", i.Platform},
		{"User Agent", i.UserAgent},
	}
	var b strings.Builder
	for _, r := range rows {
		fmt.Fprintf(&b, "%-12s %s\n", r[0]+":", r[1])
	}
	return b.String()
}

// Short returns the bare version, "dev" for local builds.
func Short() string {
	return Version
}

// UserAgent identifies chtools to the Companies House API.
func UserAgent() string {
	return "chtools/" + Version
}
