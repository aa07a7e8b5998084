package publication

import (
	"fmt"
	"strings"
)

const (
	// DefaultGroupID is the build-wide group id of the published artifact.
	DefaultGroupID = "com.alcatrazescapee"
	// DefaultArtifactID is the build-wide artifact id of the published artifact.
	DefaultArtifactID = "epsilon"
)

// Identity is the group/artifact/version triple naming a published artifact.
type Identity struct {
	// GroupID is the reverse-domain group, e.g. "com.alcatrazescapee".
	GroupID string `yaml:"group_id" json:"groupId"`
	// ArtifactID is the artifact name within the group.
	ArtifactID string `yaml:"artifact_id" json:"artifactId"`
	// Version is the resolved build version.
	Version string `yaml:"version" json:"version"`
}

// NewIdentity returns the identity for the default group and artifact at the given version.
func NewIdentity(version string) Identity {
	return Identity{
		GroupID:    DefaultGroupID,
		ArtifactID: DefaultArtifactID,
		Version:    version,
	}
}

// String renders the identity in Maven coordinate form.
func (i Identity) String() string {
	return fmt.Sprintf("%s:%s:%s", i.GroupID, i.ArtifactID, i.Version)
}

// Directory returns the repository directory holding this version,
// e.g. "com/alcatrazescapee/epsilon/2.1.0".
func (i Identity) Directory() string {
	return strings.Join([]string{
		strings.ReplaceAll(i.GroupID, ".", "/"),
		i.ArtifactID,
		i.Version,
	}, "/")
}
