package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/dgouldin/timequery/timequery"
)

// NewListCommand creates the list command, which prints every transform name
// followed by the aliases.
func NewListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List transform and alias names",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			for _, step := range timequery.Transforms() {
				if _, err := fmt.Fprintln(out, step); err != nil {
					return err
				}
			}

			aliases := timequery.Aliases()
			names := make([]string, 0, len(aliases))
			for name := range aliases {
				names = append(names, name)
			}
			sort.Strings(names)
			for _, name := range names {
				if _, err := fmt.Fprintf(out, "%s -> %s\n", name, aliases[name]); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
