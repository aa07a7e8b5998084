package publication

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestPlanArtifacts_RegistryBucket lays out files under a repository key.
func TestPlanArtifacts_RegistryBucket(t *testing.T) {
	t.Parallel()

	target := Target{
		URL:           "https://alcatrazescapee.jfrog.io/artifactory",
		RepositoryKey: "mods",
	}

	artifacts := PlanArtifacts(NewIdentity("2.1.0"), target, "/home/ci")
	require.Len(t, artifacts, 3)

	require.Equal(t, "epsilon-2.1.0.jar", artifacts[0].Name)
	require.Empty(t, artifacts[0].Classifier)
	require.Equal(t,
		"https://alcatrazescapee.jfrog.io/artifactory/mods/com/alcatrazescapee/epsilon/2.1.0/epsilon-2.1.0.jar",
		artifacts[0].Location)

	require.Equal(t, "epsilon-2.1.0-sources.jar", artifacts[1].Name)
	require.Equal(t, "sources", artifacts[1].Classifier)
	require.Equal(t, "com/alcatrazescapee/epsilon/2.1.0/epsilon-2.1.0-sources.jar", artifacts[1].Path)

	require.Equal(t, "epsilon-2.1.0.pom", artifacts[2].Name)
	require.Equal(t, "pom", artifacts[2].Extension)
}

// TestPlanArtifacts_GenericRegistry joins paths directly onto the URL.
func TestPlanArtifacts_GenericRegistry(t *testing.T) {
	t.Parallel()

	target := Target{URL: "https://repo.example.com/releases/"}

	artifacts := PlanArtifacts(NewIdentity("indev"), target, "")
	require.Equal(t,
		"https://repo.example.com/releases/com/alcatrazescapee/epsilon/indev/epsilon-indev.pom",
		artifacts[2].Location)
}

// TestPlanArtifacts_LocalRepository places files below the Maven local repository.
func TestPlanArtifacts_LocalRepository(t *testing.T) {
	t.Parallel()

	home := t.TempDir()

	artifacts := PlanArtifacts(NewIdentity("indev"), Target{}, home)

	want := filepath.Join(home, ".m2", "repository", "com", "alcatrazescapee", "epsilon", "indev", "epsilon-indev.jar")
	require.Equal(t, want, artifacts[0].Location)
}
