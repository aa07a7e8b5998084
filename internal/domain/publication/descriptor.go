package publication

import (
	"net/url"
	"path"
	"path/filepath"
	"strings"
)

// LocalRepositoryDir is the Maven local repository below the user's home.
const LocalRepositoryDir = ".m2/repository"

// Artifact is one file of the publication with its repository placement.
type Artifact struct {
	// Name is the file name, e.g. "epsilon-2.1.0-sources.jar".
	Name string `yaml:"name" json:"name"`
	// Classifier distinguishes secondary files such as "sources".
	Classifier string `yaml:"classifier,omitempty" json:"classifier,omitempty"`
	// Extension is the file extension without the leading dot.
	Extension string `yaml:"extension" json:"extension"`
	// Path is the location relative to the repository root.
	Path string `yaml:"path" json:"path"`
	// Location is the absolute upload URL or local file path.
	Location string `yaml:"location" json:"location"`
	// Present is true when the file was found in the artifacts directory.
	Present bool `yaml:"present" json:"present"`
	// Checksums maps algorithm names to hex digests of the local file.
	Checksums map[string]string `yaml:"checksums,omitempty" json:"checksums,omitempty"`
}

// Descriptor is the complete value handed to the external publisher.
type Descriptor struct {
	Strategy  Strategy   `yaml:"strategy" json:"strategy"`
	Identity  Identity   `yaml:"identity" json:"identity"`
	Target    Target     `yaml:"target" json:"target"`
	Artifacts []Artifact `yaml:"artifacts" json:"artifacts"`
}

// artifactKind describes a file every publication carries.
type artifactKind struct {
	classifier string
	extension  string
}

// publishedKinds mirrors a java component with a sources jar and its POM.
//
//nolint:gochecknoglobals // Fixed publication layout.
var publishedKinds = []artifactKind{
	{extension: "jar"},
	{classifier: "sources", extension: "jar"},
	{extension: "pom"},
}

// PlanArtifacts lays out the publication files for id under target.
// home is used only for local targets to locate the Maven local repository.
func PlanArtifacts(id Identity, target Target, home string) []Artifact {
	artifacts := make([]Artifact, 0, len(publishedKinds))

	for _, kind := range publishedKinds {
		name := fileName(id, kind)
		repoPath := path.Join(id.Directory(), name)

		artifacts = append(artifacts, Artifact{
			Name:       name,
			Classifier: kind.classifier,
			Extension:  kind.extension,
			Path:       repoPath,
			Location:   location(target, repoPath, home),
		})
	}

	return artifacts
}

func fileName(id Identity, kind artifactKind) string {
	var builder strings.Builder

	builder.WriteString(id.ArtifactID)
	builder.WriteString("-")
	builder.WriteString(id.Version)

	if kind.classifier != "" {
		builder.WriteString("-")
		builder.WriteString(kind.classifier)
	}

	builder.WriteString(".")
	builder.WriteString(kind.extension)

	return builder.String()
}

// location resolves where a repository path lands for the given target.
// Unparseable URLs are joined textually; rejecting them is the publisher's job.
func location(target Target, repoPath, home string) string {
	if target.IsLocal() {
		return filepath.Join(home, filepath.FromSlash(LocalRepositoryDir), filepath.FromSlash(repoPath))
	}

	elems := make([]string, 0, 2)
	if target.RepositoryKey != "" {
		elems = append(elems, target.RepositoryKey)
	}

	elems = append(elems, repoPath)

	joined, err := url.JoinPath(target.URL, elems...)
	if err != nil {
		return strings.TrimSuffix(target.URL, "/") + "/" + strings.Join(elems, "/")
	}

	return joined
}
