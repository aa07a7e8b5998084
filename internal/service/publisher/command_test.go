package publisher

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/alcatrazescapee/epsilon-publish/internal/config"
	"github.com/alcatrazescapee/epsilon-publish/internal/domain/publication"
	"github.com/alcatrazescapee/epsilon-publish/internal/environment"
	"github.com/alcatrazescapee/epsilon-publish/internal/repository/descriptor"
)

func snapshot(vars map[string]string) *environment.Snapshot {
	env := environment.FromMap(vars)

	return &env
}

// missingConfig returns a settings path that does not exist.
func missingConfig(t *testing.T) string {
	t.Helper()

	return filepath.Join(t.TempDir(), config.DefaultConfigFilename)
}

// TestRun_DefaultStrategyToStdout resolves the fixed registry and prints YAML.
func TestRun_DefaultStrategyToStdout(t *testing.T) {
	t.Parallel()

	var stdout bytes.Buffer

	desc, err := Run(context.Background(), &Options{
		ConfigPath: missingConfig(t),
		Env:        snapshot(map[string]string{"VERSION": "2.1.0", "ARTIFACTORY_USERNAME": "bot"}),
		Stdout:     &stdout,
	})
	require.NoError(t, err)

	require.Equal(t, publication.StrategyArtifactory, desc.Strategy)
	require.Equal(t, "com.alcatrazescapee:epsilon:2.1.0", desc.Identity.String())
	require.Equal(t, "mods", desc.Target.RepositoryKey)
	require.Equal(t, "bot", *desc.Target.Credentials.Username)
	require.Nil(t, desc.Target.Credentials.Password)
	require.Len(t, desc.Artifacts, 3)

	var printed publication.Descriptor
	require.NoError(t, yaml.Unmarshal(stdout.Bytes(), &printed))
	require.Equal(t, *desc, printed)
}

// TestRun_MavenToFile writes a JSON descriptor for the generic registry.
func TestRun_MavenToFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	out := filepath.Join(dir, "publication.json")

	desc, err := Run(context.Background(), &Options{
		ConfigPath: missingConfig(t),
		Strategy:   "maven",
		Output:     out,
		Format:     "json",
		Env: snapshot(map[string]string{
			"MAVEN_URL":      "https://repo.example.com",
			"MAVEN_USERNAME": "ci",
		}),
		Stdout: new(bytes.Buffer),
	})
	require.NoError(t, err)
	require.Equal(t, "indev", desc.Identity.Version)
	require.Equal(t, "<password>", *desc.Target.Credentials.Password)

	loaded, err := descriptor.NewFileRepository(out, "").Load(context.Background())
	require.NoError(t, err)
	require.Equal(t, desc, loaded)
}

// TestRun_ConfigFileSelectsStrategy lets the settings file pick the variant.
func TestRun_ConfigFileSelectsStrategy(t *testing.T) {
	t.Parallel()

	cfgPath := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, config.Save(cfgPath, &config.Config{
		Strategy:   publication.StrategyMaven,
		ArtifactID: "epsilon-core",
	}))

	home := t.TempDir()

	desc, err := Run(context.Background(), &Options{
		ConfigPath:     cfgPath,
		ConfigExplicit: true,
		Env:            snapshot(map[string]string{"HOME": home}),
		Stdout:         new(bytes.Buffer),
	})
	require.NoError(t, err)
	require.Equal(t, publication.StrategyMaven, desc.Strategy)
	require.Equal(t, "epsilon-core", desc.Identity.ArtifactID)
	require.True(t, desc.Target.IsLocal())
	require.Equal(t,
		filepath.Join(home, ".m2", "repository", "com", "alcatrazescapee", "epsilon-core", "indev", "epsilon-core-indev.jar"),
		desc.Artifacts[0].Location)
}

// TestRun_Errors covers unknown strategies and missing explicit settings.
func TestRun_Errors(t *testing.T) {
	t.Parallel()

	_, err := Run(context.Background(), &Options{
		ConfigPath: missingConfig(t),
		Strategy:   "ivy",
		Env:        snapshot(nil),
		Stdout:     new(bytes.Buffer),
	})
	require.Error(t, err)

	_, err = Run(context.Background(), &Options{
		ConfigPath:     missingConfig(t),
		ConfigExplicit: true,
		Env:            snapshot(nil),
		Stdout:         new(bytes.Buffer),
	})
	require.ErrorIs(t, err, config.ErrNotFound)
}

// TestRun_Redact masks the password in emitted output only.
func TestRun_Redact(t *testing.T) {
	t.Parallel()

	var stdout bytes.Buffer

	desc, err := Run(context.Background(), &Options{
		ConfigPath: missingConfig(t),
		Format:     "json",
		Redact:     true,
		Env: snapshot(map[string]string{
			"ARTIFACTORY_USERNAME": "bot",
			"ARTIFACTORY_PASSWORD": "hunter2",
		}),
		Stdout: &stdout,
	})
	require.NoError(t, err)
	require.Equal(t, "hunter2", *desc.Target.Credentials.Password)
	require.NotContains(t, stdout.String(), "hunter2")
	require.Contains(t, stdout.String(), "******")
}

// TestRun_Checksums attaches digests for built files only.
func TestRun_Checksums(t *testing.T) {
	t.Parallel()

	artifacts := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(artifacts, "epsilon-2.1.0.jar"), []byte("abc"), 0o600))

	desc, err := Run(context.Background(), &Options{
		ConfigPath:   missingConfig(t),
		ArtifactsDir: artifacts,
		Env:          snapshot(map[string]string{"VERSION": "2.1.0"}),
		Stdout:       new(bytes.Buffer),
	})
	require.NoError(t, err)

	jar := desc.Artifacts[0]
	require.True(t, jar.Present)
	require.Equal(t, "a9993e364706816aba3e25717850c26c9cd0d89d", jar.Checksums["sha1"])
	require.Equal(t, "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad", jar.Checksums["sha256"])

	require.False(t, desc.Artifacts[1].Present)
	require.Empty(t, desc.Artifacts[1].Checksums)
}

// TestSummary renders a redacted overview.
func TestSummary(t *testing.T) {
	t.Parallel()

	password := "secret"
	desc := &publication.Descriptor{
		Strategy: publication.StrategyMaven,
		Identity: publication.NewIdentity("2.1.0"),
		Target: publication.Target{
			Credentials: publication.Credentials{Password: &password},
		},
	}

	s := Summary(desc)
	require.Contains(t, s, "com.alcatrazescapee:epsilon:2.1.0 via maven")
	require.Contains(t, s, "(local repository)")
	require.Contains(t, s, "username: <absent>")
	require.NotContains(t, s, "secret")
}
