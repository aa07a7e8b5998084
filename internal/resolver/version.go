package resolver

import "github.com/alcatrazescapee/epsilon-publish/internal/environment"

const (
	// VersionVariable holds the build version.
	VersionVariable = "VERSION"
	// DefaultVersion is used when VersionVariable is unset or empty.
	DefaultVersion = "indev"
)

// ResolveVersion returns the build version from env, or DefaultVersion.
// The value is not validated.
func ResolveVersion(env environment.Snapshot) string {
	return env.GetOr(VersionVariable, DefaultVersion)
}
