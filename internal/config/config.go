package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/alcatrazescapee/epsilon-publish/internal/domain/publication"
)

// Format selects the encoding of the written descriptor.
type Format string

const (
	// FormatYAML writes the descriptor as YAML.
	FormatYAML Format = "yaml"
	// FormatJSON writes the descriptor as JSON.
	FormatJSON Format = "json"
)

// Config holds the settings of a publish resolution run.
type Config struct {
	// Strategy selects the publication target variant.
	Strategy publication.Strategy `yaml:"strategy"`
	// GroupID overrides the published group id.
	GroupID string `yaml:"group_id"`
	// ArtifactID overrides the published artifact id.
	ArtifactID string `yaml:"artifact_id"`
	// Output is the descriptor path. Empty writes to stdout.
	Output string `yaml:"output,omitempty"`
	// Format is the descriptor encoding.
	Format Format `yaml:"format"`
	// ArtifactsDir is an optional directory holding the built files to checksum.
	ArtifactsDir string `yaml:"artifacts_dir,omitempty"`
	// LogLevel is the minimum level written to stderr.
	LogLevel string `yaml:"log_level,omitempty"`
}

const (
	// DefaultConfigFilename is the default filename for publisher settings.
	DefaultConfigFilename = "epsilon-publish.yaml"

	// DefaultStrategy is used when no strategy is configured.
	DefaultStrategy = publication.StrategyArtifactory

	// DefaultFormat is used when no format is configured.
	DefaultFormat = FormatYAML

	// DefaultFilePermissions is the permission for files that may hold credentials.
	DefaultFilePermissions = 0o600
)

var (
	// ErrNotFound is returned when the settings file does not exist.
	ErrNotFound = errors.New("settings file not found")

	// errConfigIsNotSet is returned when a nil configuration is provided.
	errConfigIsNotSet = errors.New("configuration is not set")
	// errUnknownStrategy is returned for unsupported strategy names.
	errUnknownStrategy = errors.New("unknown strategy")
	// errUnknownFormat is returned for unsupported descriptor formats.
	errUnknownFormat = errors.New("unknown format")
)

// Default returns the settings used when no file is present.
func Default() *Config {
	return &Config{
		Strategy:   DefaultStrategy,
		GroupID:    publication.DefaultGroupID,
		ArtifactID: publication.DefaultArtifactID,
		Format:     DefaultFormat,
	}
}

// Load reads configuration from the provided path and validates it.
// A missing file yields an error wrapping ErrNotFound.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultConfigFilename
	}

	contents, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}

		return nil, fmt.Errorf("read settings: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(contents, cfg); err != nil {
		return nil, fmt.Errorf("unmarshal settings: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadOrDefault behaves like Load, but returns Default when the file is
// missing and the path was not explicitly requested.
func LoadOrDefault(path string, explicit bool) (*Config, error) {
	cfg, err := Load(path)
	if err == nil {
		return cfg, nil
	}

	if !explicit && errors.Is(err, ErrNotFound) {
		return Default(), nil
	}

	return nil, err
}

// Save writes Config to the provided path.
func Save(path string, cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if path == "" {
		path = DefaultConfigFilename
	}

	if err := Validate(cfg); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}

	if err := os.WriteFile(filepath.Clean(path), data, DefaultFilePermissions); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}

	return nil
}

// Validate checks the settings and fills defaults for empty fields.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	cfg.Strategy = publication.Strategy(strings.ToLower(strings.TrimSpace(string(cfg.Strategy))))
	if cfg.Strategy == "" {
		cfg.Strategy = DefaultStrategy
	}

	if !cfg.Strategy.Valid() {
		return fmt.Errorf("%w: %q", errUnknownStrategy, cfg.Strategy)
	}

	cfg.Format = Format(strings.ToLower(strings.TrimSpace(string(cfg.Format))))
	switch cfg.Format {
	case "":
		cfg.Format = DefaultFormat
	case FormatYAML, FormatJSON:
	default:
		return fmt.Errorf("%w: %q", errUnknownFormat, cfg.Format)
	}

	if cfg.GroupID == "" {
		cfg.GroupID = publication.DefaultGroupID
	}

	if cfg.ArtifactID == "" {
		cfg.ArtifactID = publication.DefaultArtifactID
	}

	return nil
}
