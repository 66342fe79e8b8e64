// Package version reports build metadata injected with -ldflags or read
// from the module's embedded build info.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
	"time"
)

// Name is the program name used in version output.
const Name = "mayura"

// Set at build time:
//
//	go build -ldflags "-X github.com/mayura-ui/mayura/internal/version.Version=v1.2.0"
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

// BuildInfo contains version and build information
type BuildInfo struct {
	Version   string    `json:"version" yaml:"version"`
	GitCommit string    `json:"git_commit" yaml:"git_commit"`
	BuildTime time.Time `json:"build_time" yaml:"build_time"`
	GoVersion string    `json:"go_version" yaml:"go_version"`
	Platform  string    `json:"platform" yaml:"platform"`
	Dirty     bool      `json:"dirty,omitempty" yaml:"dirty,omitempty"`
}

// Get collects the build information of the running binary.
func Get() BuildInfo {
	info := BuildInfo{
		Version:   Version,
		GitCommit: GitCommit,
		BuildTime: parseBuildTime(BuildTime),
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}

	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return info
	}
	if info.Version == "dev" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		info.Version = bi.Main.Version
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			if info.GitCommit == "unknown" {
				info.GitCommit = s.Value
			}
		case "vcs.time":
			if info.BuildTime.IsZero() {
				info.BuildTime = parseBuildTime(s.Value)
			}
		case "vcs.modified":
			info.Dirty = s.Value == "true"
		}
	}
	return info
}

// ShortCommit returns the first seven characters of the commit hash, or ""
// when it is unknown.
func (b BuildInfo) ShortCommit() string {
	if b.GitCommit == "unknown" || len(b.GitCommit) < 7 {
		return ""
	}
	return b.GitCommit[:7]
}

// IsRelease reports whether the binary was built from a tagged version.
func (b BuildInfo) IsRelease() bool {
	return b.Version != "dev" && !strings.HasPrefix(b.Version, "dev-")
}

// Short returns "v1.2.0 (abc1234)", "dev-abc1234" or just the version.
func (b BuildInfo) Short() string {
	commit := b.ShortCommit()
	switch {
	case commit == "":
		return b.Version
	case b.IsRelease():
		return fmt.Sprintf("%s (%s)", b.Version, commit)
	default:
		return "dev-" + commit
	}
}

// String is the one-line form printed by `mayura version`.
func (b BuildInfo) String() string {
	s := Name + " " + b.Short()
	if b.Dirty {
		s += " (dirty)"
	}
	return s
}

// Detailed returns one "Key: value" line per known field.
func (b BuildInfo) Detailed() string {
	lines := []string{"Version: " + b.Version}
	if b.GitCommit != "unknown" {
		lines = append(lines, "Commit: "+b.GitCommit)
	}
	if !b.BuildTime.IsZero() {
		lines = append(lines, "Built: "+b.BuildTime.Format(time.RFC3339))
	}
	lines = append(lines, "Go: "+b.GoVersion, "Platform: "+b.Platform)
	return strings.Join(lines, "\n")
}

func parseBuildTime(s string) time.Time {
	if s == "" || s == "unknown" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02 15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
