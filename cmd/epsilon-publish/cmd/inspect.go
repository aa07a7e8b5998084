package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alcatrazescapee/epsilon-publish/internal/repository/descriptor"
	"github.com/alcatrazescapee/epsilon-publish/internal/service/publisher"
)

func newInspectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect [descriptor]",
		Short: "Print a redacted summary of a written descriptor.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			desc, err := descriptor.NewFileRepository(args[0], "").Load(cmd.Context())
			if err != nil {
				return fmt.Errorf("load %s: %w", args[0], err)
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), publisher.Summary(desc))

			return nil
		},
	}
}
