package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/calligan/stepwise/internal/sim"
)

// RunOptions holds flags for the run command.
type RunOptions struct {
	*RootOptions
	Database string
}

// NewRunCommand creates the run command.
func NewRunCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RunOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "run <scenario.yaml>",
		Short: "Execute a scenario against the simulated runtime",
		Long: `Execute a scenario end to end: the demo block graph is ticked at the
scenario's fundamental timestep and every traced signal is recorded.

Without --db the trace is written to stdout as CSV. With --db it is
recorded in a SQLite database under a fresh run ID.

Example:
  stepwise run demo.yaml
  stepwise run demo.yaml --db traces.db`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScenario(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "path to SQLite trace database")

	return cmd
}

func runScenario(opts *RunOptions, path string, cmd *cobra.Command) error {
	sc, err := sim.LoadScenario(path)
	if err != nil {
		return err
	}
	opts.Logger.Info().Str("scenario", sc.Name).Int("ticks", sc.Ticks).Msg("starting run")

	if opts.Database == "" {
		sink, err := sim.NewCSVSink(cmd.OutOrStdout())
		if err != nil {
			return fmt.Errorf("create csv sink: %w", err)
		}
		if err := sim.Run(sc, sink, opts.Logger); err != nil {
			return err
		}
		return sink.Flush()
	}

	store, err := sim.OpenStore(opts.Database)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := store.Close(); closeErr != nil {
			opts.Logger.Error().Err(closeErr).Msg("error closing trace database")
		}
	}()

	sink, err := store.BeginRun(cmd.Context(), sc.Name)
	if err != nil {
		return err
	}
	if err := sim.Run(sc, sink, opts.Logger); err != nil {
		return err
	}
	opts.Logger.Info().Str("run_id", sink.RunID()).Msg("run recorded")
	fmt.Fprintln(cmd.OutOrStdout(), sink.RunID())
	return nil
}
