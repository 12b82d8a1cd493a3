package app

import (
	"fmt"
	"runtime/debug"
)

// Overridden with -ldflags "-X github.com/heartmarshall/formcheck-backend/internal/app.Version=v1.2.0".
var (
	Version   = "dev"
	Commit    = ""
	BuildTime = ""
)

// BuildVersion describes the running binary for the version command, the
// startup log and /health. Commit and build time fall back to the VCS stamp
// that go install embeds when ldflags did not set them.
func BuildVersion() string {
	return formatVersion(Version, Commit, BuildTime, readBuildInfo)
}

func readBuildInfo() (*debug.BuildInfo, bool) { return debug.ReadBuildInfo() }

func formatVersion(version, commit, built string, info func() (*debug.BuildInfo, bool)) string {
	if commit == "" || built == "" {
		if bi, ok := info(); ok {
			for _, s := range bi.Settings {
				switch {
				case s.Key == "vcs.revision" && commit == "":
					commit = s.Value
				case s.Key == "vcs.time" && built == "":
					built = s.Value
				}
			}
		}
	}
	if len(commit) > 12 {
		commit = commit[:12]
	}
	if commit == "" {
		return version
	}
	if built == "" {
		return fmt.Sprintf("%s (%s)", version, commit)
	}
	return fmt.Sprintf("%s (%s, %s)", version, commit, built)
}
