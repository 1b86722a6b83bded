package cli

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/roach88/scalekit/internal/store"
)

// HistoryOptions holds flags for the history command.
type HistoryOptions struct {
	*RootOptions
	Database string
	Limit    int
	Run      string // show one run with its scenario results
}

// RunSummary is the JSON form of a recorded run.
type RunSummary struct {
	ID        string           `json:"id"`
	StartedAt string           `json:"started_at"`
	Dir       string           `json:"scenarios_dir"`
	Passed    int              `json:"passed"`
	Failed    int              `json:"failed"`
	Total     int              `json:"total"`
	Scenarios []ScenarioResult `json:"scenarios,omitempty"`
}

// NewHistoryCommand creates the history command.
func NewHistoryCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &HistoryOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded test runs",
		Long: `List runs recorded by "scalekit test --db", newest first.

Examples:
  scalekit history --db runs.db
  scalekit history --db runs.db --limit 5 --format json
  scalekit history --db runs.db --run 0190a1b2-...`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistory(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "path to SQLite database (required)")
	cmd.Flags().IntVar(&opts.Limit, "limit", 20, "maximum number of runs to list (0 for all)")
	cmd.Flags().StringVar(&opts.Run, "run", "", "show the scenario results of one run")
	cmd.MarkFlagRequired("db")

	return cmd
}

func runHistory(opts *HistoryOptions, cmd *cobra.Command) error {
	if _, err := os.Stat(opts.Database); os.IsNotExist(err) {
		return NewExitError(ExitCommandError, fmt.Sprintf("database not found: %s", opts.Database))
	}

	st, err := store.Open(opts.Database)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to open database", err)
	}
	defer st.Close()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	var runs []store.Run
	if opts.Run != "" {
		run, err := st.GetRun(ctx, opts.Run)
		if err != nil {
			return WrapExitError(ExitCommandError, "failed to load run", err)
		}
		runs = []store.Run{run}
	} else {
		runs, err = st.ListRuns(ctx, opts.Limit)
		if err != nil {
			return WrapExitError(ExitCommandError, "failed to list runs", err)
		}
	}

	summaries := make([]RunSummary, len(runs))
	for i, r := range runs {
		summaries[i] = summarize(r)
	}

	if opts.Format == "json" {
		out := &OutputFormatter{Format: "json", Writer: cmd.OutOrStdout()}
		return out.Success(summaries)
	}
	return outputHistoryText(cmd, summaries)
}

func summarize(r store.Run) RunSummary {
	s := RunSummary{
		ID:        r.ID,
		StartedAt: r.StartedAt.UTC().Format(time.RFC3339),
		Dir:       r.Dir,
		Passed:    r.Passed,
		Failed:    r.Failed,
		Total:     r.Total,
	}
	for _, res := range r.Results {
		sr := ScenarioResult{Name: res.Name, Pass: res.Pass}
		if len(res.Errors) > 0 {
			sr.Errors = res.Errors
		}
		s.Scenarios = append(s.Scenarios, sr)
	}
	return s
}

func outputHistoryText(cmd *cobra.Command, runs []RunSummary) error {
	w := cmd.OutOrStdout()
	if len(runs) == 0 {
		fmt.Fprintln(w, "No runs recorded.")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "RUN\tSTARTED\tPASSED\tFAILED\tTOTAL\tDIR")
	for _, r := range runs {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%d\t%s\n", r.ID, r.StartedAt, r.Passed, r.Failed, r.Total, r.Dir)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	for _, r := range runs {
		for _, sc := range r.Scenarios {
			mark := "✓"
			if !sc.Pass {
				mark = "✗"
			}
			fmt.Fprintf(w, "%s %s\n", mark, sc.Name)
			for _, e := range sc.Errors {
				fmt.Fprintf(w, "  %s\n", e)
			}
		}
	}
	return nil
}
