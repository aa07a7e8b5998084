package publisher

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/alcatrazescapee/epsilon-publish/internal/config"
	"github.com/alcatrazescapee/epsilon-publish/internal/domain/publication"
	"github.com/alcatrazescapee/epsilon-publish/internal/environment"
	"github.com/alcatrazescapee/epsilon-publish/internal/logger"
	"github.com/alcatrazescapee/epsilon-publish/internal/repository/descriptor"
	"github.com/alcatrazescapee/epsilon-publish/internal/resolver"
)

// homeVariable locates the user's home for the Maven local repository.
const homeVariable = "HOME"

// Options contains inputs for the publisher entry point.
// Empty override fields keep the value from the settings file.
type Options struct {
	// ConfigPath is the settings file path.
	ConfigPath string
	// ConfigExplicit makes a missing settings file an error instead of using defaults.
	ConfigExplicit bool
	// Strategy overrides the configured publication strategy.
	Strategy string
	// Output overrides the descriptor path; "-" forces stdout.
	Output string
	// Format overrides the descriptor encoding.
	Format string
	// ArtifactsDir overrides the directory holding built artifacts.
	ArtifactsDir string
	// LogLevel overrides the configured log level.
	LogLevel string
	// Redact masks the password in the emitted descriptor.
	Redact bool
	// Env is the environment to resolve from. Nil captures the process environment.
	Env *environment.Snapshot
	// Stdout receives the descriptor when no output file is set. Nil means os.Stdout.
	Stdout io.Writer
}

// publisher resolves and emits a single publication descriptor.
// It is unexported; callers should use Run, which encapsulates setup and validation.
type publisher struct {
	// cfg holds the effective settings after overrides.
	cfg *config.Config
	// env is the snapshot every resolver reads from.
	env environment.Snapshot
	// target resolves the publication target for the configured strategy.
	target resolver.TargetResolver
	// redact masks secrets in the emitted descriptor.
	redact bool
	// stdout receives the descriptor when cfg.Output is empty.
	stdout io.Writer
}

// Run executes the resolution workflow and returns the emitted descriptor.
func Run(ctx context.Context, opts *Options) (*publication.Descriptor, error) {
	ctx = logger.WithName(ctx, "epsilon-publish")

	cfg, err := effectiveConfig(opts)
	if err != nil {
		return nil, err
	}

	applyLogLevel(ctx, cfg.LogLevel)

	pub, err := newPublisher(cfg, opts)
	if err != nil {
		return nil, fmt.Errorf("initialize publisher: %w", err)
	}

	desc, err := pub.Run(ctx)
	if err != nil {
		return nil, fmt.Errorf("publisher failed: %w", err)
	}

	return desc, nil
}

// effectiveConfig loads settings and applies the option overrides.
func effectiveConfig(opts *Options) (*config.Config, error) {
	cfg, err := config.LoadOrDefault(opts.ConfigPath, opts.ConfigExplicit)
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}

	if opts.Strategy != "" {
		cfg.Strategy = publication.Strategy(opts.Strategy)
	}

	if opts.Format != "" {
		cfg.Format = config.Format(opts.Format)
	}

	switch opts.Output {
	case "":
	case "-":
		cfg.Output = ""
	default:
		cfg.Output = opts.Output
	}

	if opts.ArtifactsDir != "" {
		cfg.ArtifactsDir = opts.ArtifactsDir
	}

	if opts.LogLevel != "" {
		cfg.LogLevel = opts.LogLevel
	}

	if err = config.Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyLogLevel sets the global level; unknown names keep the current one.
func applyLogLevel(ctx context.Context, name string) {
	if name == "" {
		return
	}

	level, ok := logger.ParseLogLevel(name)
	if !ok {
		logger.WarnKV(ctx, "Unknown log level, keeping the current one", "level", name)
		return
	}

	logger.SetLevel(level)
}

// newPublisher binds the configured strategy and the environment snapshot.
func newPublisher(cfg *config.Config, opts *Options) (*publisher, error) {
	target, err := resolver.NewTargetResolver(cfg.Strategy)
	if err != nil {
		return nil, err
	}

	var env environment.Snapshot
	if opts.Env != nil {
		env = *opts.Env
	} else {
		env = environment.Capture()
	}

	stdout := opts.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}

	return &publisher{
		cfg:    cfg,
		env:    env,
		target: target,
		redact: opts.Redact,
		stdout: stdout,
	}, nil
}

// Run resolves the descriptor and writes it out.
func (p *publisher) Run(ctx context.Context) (*publication.Descriptor, error) {
	ctx = logger.WithKV(ctx, "strategy", p.cfg.Strategy)

	desc, err := p.resolve(ctx)
	if err != nil {
		return nil, err
	}

	p.warnOnCredentials(ctx, desc.Target)

	out := desc
	if p.redact {
		redacted := *desc
		redacted.Target = desc.Target.Redacted()
		out = &redacted
	}

	if err = p.emit(ctx, out); err != nil {
		return nil, err
	}

	p.printSummary(ctx, desc)

	return desc, nil
}

// resolve builds the descriptor from the snapshot.
func (p *publisher) resolve(ctx context.Context) (*publication.Descriptor, error) {
	identity := publication.Identity{
		GroupID:    p.cfg.GroupID,
		ArtifactID: p.cfg.ArtifactID,
		Version:    resolver.ResolveVersion(p.env),
	}

	target := p.target.Resolve(p.env)

	logger.DebugKV(ctx, "Resolved publication target",
		"url", target.URL,
		"repository_key", target.RepositoryKey,
		"username", publication.RedactUsername(target.Credentials.Username),
		"password", publication.RedactPassword(target.Credentials.Password),
	)

	artifacts := publication.PlanArtifacts(identity, target, p.env.Get(homeVariable))

	if p.cfg.ArtifactsDir != "" {
		logger.InfoKV(ctx, "Computing artifact checksums", "dir", p.cfg.ArtifactsDir)

		if err := attachChecksums(ctx, p.cfg.ArtifactsDir, artifacts); err != nil {
			return nil, err
		}
	}

	return &publication.Descriptor{
		Strategy:  p.target.Strategy(),
		Identity:  identity,
		Target:    target,
		Artifacts: artifacts,
	}, nil
}

// emit writes the descriptor to the configured file or to stdout.
func (p *publisher) emit(ctx context.Context, desc *publication.Descriptor) error {
	if p.cfg.Output == "" {
		return descriptor.Write(p.stdout, desc, p.cfg.Format)
	}

	logger.InfoKV(ctx, "Saving publication descriptor", "path", p.cfg.Output, "format", p.cfg.Format)

	repo := descriptor.NewFileRepository(p.cfg.Output, p.cfg.Format)
	if err := repo.Save(ctx, desc); err != nil {
		return fmt.Errorf("save descriptor: %w", err)
	}

	return nil
}
