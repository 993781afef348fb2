package cli

import (
	"context"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/roach88/wordtally/internal/history"
)

// HistoryOptions holds flags for the history command.
type HistoryOptions struct {
	*RootOptions
	Database string
	Limit    int
}

// NewHistoryCommand creates the history command.
func NewHistoryCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &HistoryOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded sessions",
		Long: `List sessions recorded by "wordtally run --history-db", most recent first.

Examples:
  wordtally history --db ./history.db
  wordtally history --db ./history.db --limit 5 --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return listHistory(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "path to SQLite history database (required)")
	cmd.Flags().IntVarP(&opts.Limit, "limit", "n", 20, "maximum sessions to show (0 for all)")
	_ = cmd.MarkFlagRequired("db")

	return cmd
}

func listHistory(opts *HistoryOptions, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}
	configureLogging(cmd.ErrOrStderr(), opts.Verbose)

	hist, err := history.Open(opts.Database)
	if err != nil {
		return formatter.Fail(ExitCommandError, ErrCodeHistory, "failed to open history database", err)
	}
	defer hist.Close()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	sessions, err := hist.ListSessions(ctx, opts.Limit)
	if err != nil {
		return formatter.Fail(ExitCommandError, ErrCodeHistory, "failed to list sessions", err)
	}

	if formatter.IsJSON() {
		return formatter.Success(sessions)
	}

	if len(sessions) == 0 {
		fmt.Fprintln(formatter.Writer, "No sessions recorded.")
		return nil
	}

	tw := tabwriter.NewWriter(formatter.Writer, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "SESSION\tSTARTED\tENDED\tWORDS\tDISTINCT\tFOUND\tDIGEST")
	for _, s := range sessions {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%d\t%d/%d\t%s\n",
			s.ID,
			s.StartedAt.UTC().Format(time.RFC3339),
			s.Ended,
			s.Accepted,
			s.Distinct,
			s.Found,
			s.Lookups,
			shortDigest(s.Digest),
		)
	}
	return tw.Flush()
}

func shortDigest(d string) string {
	if len(d) > 12 {
		return d[:12]
	}
	return d
}
