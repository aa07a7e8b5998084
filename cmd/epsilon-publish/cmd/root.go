package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/alcatrazescapee/epsilon-publish/internal/config"
	"github.com/alcatrazescapee/epsilon-publish/internal/service/publisher"
	"github.com/alcatrazescapee/epsilon-publish/internal/version"
)

var (
	// configPath to the configuration YAML file.
	configPath string
	// strategy overrides the configured publication strategy.
	strategy string
	// output overrides the descriptor path.
	output string
	// format overrides the descriptor encoding.
	format string
	// artifactsDir overrides the directory holding built artifacts.
	artifactsDir string
	// logLevel overrides the configured log level.
	logLevel string
	// redact masks the password in the emitted descriptor.
	redact bool

	// rootCmd resolves the version and publication target and emits the descriptor.
	rootCmd = newRootCommand()
)

func newRootCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "epsilon-publish",
		Short: "Resolve the artifact version and publication target from the environment.",
		Long: `Resolve build metadata for publishing com.alcatrazescapee:epsilon.

The version comes from VERSION (fallback "indev"). The publication target
depends on the configured strategy:

  artifactory  fixed registry bucket, credentials from ARTIFACTORY_USERNAME
               and ARTIFACTORY_PASSWORD (left absent when unset)
  maven        endpoint from MAVEN_URL (empty means the local repository),
               credentials from MAVEN_USERNAME and MAVEN_PASSWORD
               (placeholders when unset)

The resulting descriptor is written to stdout or to --output for the
publishing step to consume. Nothing is uploaded.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			options := &publisher.Options{
				ConfigPath:     configPath,
				ConfigExplicit: cmd.Flags().Changed("config"),
				Strategy:       strategy,
				Output:         output,
				Format:         format,
				ArtifactsDir:   artifactsDir,
				LogLevel:       logLevel,
				Redact:         redact,
				Stdout:         cmd.OutOrStdout(),
			}

			_, err := publisher.Run(ctx, options)

			return err
		},
	}
}

// Execute runs the epsilon-publish CLI and exits with non-zero status on error.
func Execute() {
	rootCmd.Version = version.Short()
	version.AttachCobraVersionCommand(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", config.DefaultConfigFilename, "path to configuration file")

	flags := rootCmd.Flags()
	flags.StringVarP(&strategy, "strategy", "s", "", "publication strategy: artifactory or maven")
	flags.StringVarP(&output, "output", "o", "", `descriptor path ("-" for stdout)`)
	flags.StringVarP(&format, "format", "f", "", "descriptor format: yaml or json")
	flags.StringVar(&artifactsDir, "artifacts-dir", "", "directory with built artifacts to checksum")
	flags.StringVar(&logLevel, "log-level", "", "log level: debug, info, warn or error")
	flags.BoolVar(&redact, "redact", false, "mask the password in the emitted descriptor")

	rootCmd.AddCommand(newInitCommand(), newInspectCommand(), newEnvCommand())
}
