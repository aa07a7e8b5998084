package version

import (
	"fmt"
	"runtime/debug"
)

// shortCommitLength is the number of revision characters shown.
const shortCommitLength = 8

var (
	// Version is the semantic version of the tool. It can be overridden via ldflags.
	Version = "dev"
	// Commit is the short git SHA embedded at build time (or "none").
	Commit = ""
	// BuildTime is the UTC build timestamp embedded at build time.
	BuildTime = ""
)

// Short returns only the semantic version string.
func Short() string {
	return Version
}

// Full returns a human-readable version string with commit and build time.
func Full() string {
	commit, buildTime := Commit, BuildTime
	if commit == "" || buildTime == "" {
		vcsCommit, vcsTime := vcsStamp()
		commit = firstNonEmpty(commit, vcsCommit, "none")
		buildTime = firstNonEmpty(buildTime, vcsTime, "unknown")
	}

	return fmt.Sprintf("version: %s, commit: %s, built at: %s", Version, commit, buildTime)
}

// vcsStamp reads the revision and commit time recorded by the Go toolchain.
func vcsStamp() (string, string) {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "", ""
	}

	var revision, committed string

	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			revision = s.Value
		case "vcs.time":
			committed = s.Value
		}
	}

	if len(revision) > shortCommitLength {
		revision = revision[:shortCommitLength]
	}

	return revision, committed
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}

	return ""
}
