package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/alcatrazescapee/epsilon-publish/internal/config"
	"github.com/alcatrazescapee/epsilon-publish/internal/domain/publication"
)

var errConfigExists = errors.New("configuration file already exists, use --force to overwrite")

func newInitCommand() *cobra.Command {
	var (
		initStrategy string
		force        bool
	)

	command := &cobra.Command{
		Use:   "init",
		Short: "Write a default configuration file.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := os.Stat(configPath); err == nil && !force {
				return fmt.Errorf("%s: %w", configPath, errConfigExists)
			}

			cfg := config.Default()
			cfg.Strategy = publication.Strategy(initStrategy)

			if err := config.Save(configPath, cfg); err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (strategy %s)\n", configPath, cfg.Strategy)

			return nil
		},
	}

	command.Flags().StringVarP(&initStrategy, "strategy", "s", string(config.DefaultStrategy), "publication strategy: artifactory or maven")
	command.Flags().BoolVar(&force, "force", false, "overwrite an existing file")

	return command
}
