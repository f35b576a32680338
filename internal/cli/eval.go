package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cast"
	"github.com/spf13/cobra"

	"github.com/dgouldin/timequery/timequery"
)

// Output modes of the eval command.
const (
	OutputDateTime = "datetime"
	OutputDate     = "date"
	OutputTime     = "time"
)

// EvalOptions holds flags for the eval command.
type EvalOptions struct {
	AsOf     string
	Location string
	Output   string
	Layout   string
}

// NewEvalCommand creates the eval command, which applies the transforms
// named by its arguments in order and prints the result.
func NewEvalCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &EvalOptions{}

	cmd := &cobra.Command{
		Use:   "eval [transform...]",
		Short: "Evaluate a chain of transforms",
		Example: `  timequery eval last_month beginning_of_month
  timequery eval --as-of "2024-01-15 13:45:30" --tz UTC next_week
  timequery eval --output date yesterday`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			q, err := buildQuery(rootOpts, opts)
			if err != nil {
				return err
			}
			q, err = q.Chain(args...)
			if err != nil {
				return err
			}

			switch opts.Output {
			case OutputDateTime:
				_, err = fmt.Fprintln(cmd.OutOrStdout(), q.Time().Format(opts.Layout))
			case OutputDate:
				_, err = fmt.Fprintln(cmd.OutOrStdout(), q.Date())
			case OutputTime:
				_, err = fmt.Fprintln(cmd.OutOrStdout(), q.Clock())
			}
			return err
		},
	}

	cmd.Flags().StringVar(&opts.AsOf, "as-of", "", "reference instant (default now)")
	cmd.Flags().StringVar(&opts.Location, "tz", "Local", "time zone of the reference instant")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", OutputDateTime, "output (datetime|date|time)")
	cmd.Flags().StringVar(&opts.Layout, "layout", time.RFC3339, "Go time layout for datetime output")

	return cmd
}

func buildQuery(rootOpts *RootOptions, opts *EvalOptions) (*timequery.Query, error) {
	switch opts.Output {
	case OutputDateTime, OutputDate, OutputTime:
	default:
		return nil, fmt.Errorf("invalid output %q: must be one of %s, %s, %s",
			opts.Output, OutputDateTime, OutputDate, OutputTime)
	}

	loc, err := time.LoadLocation(opts.Location)
	if err != nil {
		return nil, fmt.Errorf("invalid --tz: %w", err)
	}

	queryOpts := []timequery.Option{
		timequery.WithClock(func() time.Time { return time.Now().In(loc) }),
	}
	if rootOpts.logger != nil {
		queryOpts = append(queryOpts, timequery.WithLogger(rootOpts.logger))
	}
	if opts.AsOf != "" {
		asOf, err := cast.ToTimeInDefaultLocationE(opts.AsOf, loc)
		if err != nil {
			return nil, fmt.Errorf("invalid --as-of: %w", err)
		}
		queryOpts = append(queryOpts, timequery.WithAsOf(asOf.In(loc)))
	}

	return timequery.New(queryOpts...), nil
}
