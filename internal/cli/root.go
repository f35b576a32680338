package cli

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/dgouldin/timequery/logger"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	LogLevel string

	logger logger.Logger
}

// NewRootCommand creates the root command for the timequery CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:           "timequery",
		Short:         "Compute relative points in time",
		Long:          "Evaluate chains of calendar transforms such as last_month beginning_of_month.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			level, err := logger.ParseLevel(opts.LogLevel)
			if err != nil {
				return fmt.Errorf("invalid --log-level: %w", err)
			}
			opts.logger = logger.NewSimpleLogger(log.New(cmd.ErrOrStderr(), "", log.LstdFlags), level)
			return nil
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.LogLevel, "log-level", "l", "off",
		"log level (trace|debug|info|warn|error|off)")

	cmd.AddCommand(NewEvalCommand(opts))
	cmd.AddCommand(NewListCommand())

	return cmd
}
