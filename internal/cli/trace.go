package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/calligan/stepwise/internal/sim"
)

// TraceOptions holds flags for the trace command.
type TraceOptions struct {
	*RootOptions
	Database string
}

// NewTraceCommand creates the trace command.
func NewTraceCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &TraceOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "trace [run-id]",
		Short: "Inspect recorded trace databases",
		Long: `List recorded runs, or dump one run's samples.

Example:
  stepwise trace --db traces.db
  stepwise trace --db traces.db 3f1c...`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runID := ""
			if len(args) == 1 {
				runID = args[0]
			}
			return showTrace(opts, runID, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "path to SQLite trace database (required)")
	_ = cmd.MarkFlagRequired("db")

	return cmd
}

func showTrace(opts *TraceOptions, runID string, cmd *cobra.Command) error {
	store, err := sim.OpenStore(opts.Database)
	if err != nil {
		return err
	}
	defer store.Close()

	out := cmd.OutOrStdout()
	w := tabwriter.NewWriter(out, 0, 8, 2, ' ', 0)

	if runID == "" {
		runs, err := store.Runs(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprintln(w, "RUN\tSCENARIO\tSTARTED")
		for _, r := range runs {
			fmt.Fprintf(w, "%s\t%s\t%s\n", r.ID, r.Scenario, r.StartedAt)
		}
		return w.Flush()
	}

	samples, err := store.Samples(cmd.Context(), runID)
	if err != nil {
		return err
	}
	if len(samples) == 0 {
		return fmt.Errorf("no samples for run %s", runID)
	}
	fmt.Fprintln(w, "TICK\tTIME\tSIGNAL\tVALUE")
	for _, s := range samples {
		fmt.Fprintf(w, "%d\t%v\t%s\t%g\n", s.Tick, s.Time, s.Signal, s.Value)
	}
	return w.Flush()
}
