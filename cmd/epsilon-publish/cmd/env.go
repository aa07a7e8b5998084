package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alcatrazescapee/epsilon-publish/internal/environment"
	"github.com/alcatrazescapee/epsilon-publish/internal/resolver"
)

// tabPadding separates columns of the variable table.
const tabPadding = 2

const (
	statusSet   = "set"
	statusUnset = "unset"
	statusEmpty = "empty (fallback applies)"
)

func newEnvCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "env",
		Short: "List the environment variables read during resolution.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			env := environment.Capture()

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, tabPadding, ' ', 0)
			_, _ = fmt.Fprintln(w, "VARIABLE\tSTRATEGY\tSTATUS\tFALLBACK")

			for _, v := range resolver.Variables() {
				strategy := string(v.Strategy)
				if strategy == "" {
					strategy = "all"
				}

				_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", v.Name, strategy, variableStatus(env, v.Name), v.Fallback)
			}

			return w.Flush()
		},
	}
}

// variableStatus describes how a variable is seen by the resolvers.
// Empty values are treated like unset ones.
func variableStatus(env environment.Snapshot, name string) string {
	value, ok := env.Lookup(name)

	switch {
	case !ok:
		return statusUnset
	case value == "":
		return statusEmpty
	default:
		return statusSet
	}
}
