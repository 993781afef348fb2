package cli

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/roach88/wordtally/internal/config"
	"github.com/roach88/wordtally/internal/history"
	"github.com/roach88/wordtally/internal/lineread"
	"github.com/roach88/wordtally/internal/lookup"
	"github.com/roach88/wordtally/internal/metrics"
	"github.com/roach88/wordtally/internal/pipeline"
	"github.com/roach88/wordtally/internal/report"
)

// RunOptions holds flags for the run command.
type RunOptions struct {
	*RootOptions
	Input       string
	ConfigPath  string
	HistoryDB   string
	MetricsFile string
	Sentinel    string

	// IDGenerator allows overriding the session ID generator (for testing).
	// If nil, defaults to history.UUIDv7Generator.
	IDGenerator history.IDGenerator

	// Clock allows overriding session timestamps (for testing).
	// If nil, defaults to history.SystemClock.
	Clock history.Clock
}

// NewRunCommand creates the run command.
func NewRunCommand(rootOpts *RootOptions) *cobra.Command {
	return newRunCommand(&RunOptions{RootOptions: rootOpts})
}

func newRunCommand(opts *RunOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Tally words from input, then answer lookups",
		Long: `Run one wordtally session over a single input stream.

Phases:
  1. Ingest: the first field of each line is counted if it is made only of
     letters. Ingestion stops at the sentinel word (default "end") or at end
     of input. The sentinel itself is never counted.
  2. List: every word and its count, in byte order.
  3. Lookup: every following line is looked up verbatim until end of input.
  4. Report: the number of successful lookups.

Example:
  wordtally run < words.txt
  wordtally run --input words.txt --history-db ./history.db
  wordtally run --config wordtally.yaml --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSession(opts, cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Input, "input", "i", "", "read input from file instead of stdin")
	cmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", "", "path to YAML config file")
	cmd.Flags().StringVar(&opts.HistoryDB, "history-db", "", "record the session in this SQLite database")
	cmd.Flags().StringVar(&opts.MetricsFile, "metrics-file", "", "write Prometheus metrics to this textfile")
	cmd.Flags().StringVar(&opts.Sentinel, "sentinel", "end", "word that ends ingestion")

	return cmd
}

// resolveConfig merges the config file with flags. Flags the user set
// explicitly win over file values.
func resolveConfig(opts *RunOptions, cmd *cobra.Command) (config.Config, error) {
	cfg := config.Default()
	if opts.ConfigPath != "" {
		loaded, err := config.Load(opts.ConfigPath)
		if err != nil {
			return config.Config{}, err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("sentinel") {
		cfg.Sentinel = opts.Sentinel
	}
	if flags.Changed("history-db") {
		cfg.HistoryDB = opts.HistoryDB
	}
	if flags.Changed("metrics-file") {
		cfg.MetricsFile = opts.MetricsFile
	}
	cfg.Verbose = cfg.Verbose || opts.Verbose

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func runSession(opts *RunOptions, cmd *cobra.Command) error {
	cfg, err := resolveConfig(opts, cmd)

	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose || cfg.Verbose,
	}
	if err != nil {
		return formatter.Fail(ExitCommandError, ErrCodeConfig, "failed to load config", err)
	}

	configureLogging(cmd.ErrOrStderr(), cfg.Verbose)

	in := cmd.InOrStdin()
	if opts.Input != "" {
		f, err := os.Open(opts.Input)
		if err != nil {
			return formatter.Fail(ExitCommandError, ErrCodeInput, "failed to open input", err)
		}
		defer f.Close()
		in = f
	}

	// Open history before any input is consumed so a bad path fails fast.
	var hist *history.Store
	if cfg.HistoryDB != "" {
		hist, err = history.Open(cfg.HistoryDB)
		if err != nil {
			return formatter.Fail(ExitCommandError, ErrCodeHistory, "failed to open history database", err)
		}
		defer func() {
			if closeErr := hist.Close(); closeErr != nil {
				slog.Error("error closing history database", "error", closeErr)
			}
		}()
	}

	clock := opts.Clock
	if clock == nil {
		clock = history.SystemClock{}
	}
	idGen := opts.IDGenerator
	if idGen == nil {
		idGen = history.UUIDv7Generator{}
	}

	m := metrics.New()
	startedAt := clock.Now()

	// One source for both phases: lookups continue where ingestion stopped.
	src := lineread.NewSource(in)

	ingested, err := pipeline.NewReader(src,
		pipeline.WithSentinel(cfg.Sentinel),
		pipeline.WithMetrics(m),
	).Run()
	if err != nil {
		return formatter.Fail(ExitFailure, ErrCodeReadFailed, "ingestion failed", err)
	}

	rep := report.New(formatter.TranscriptWriter())
	if err := rep.WordList(ingested.Tally); err != nil {
		return formatter.Fail(ExitFailure, ErrCodeOutput, "failed to write word list", err)
	}

	looked := lookup.New(ingested.Tally, rep, m).Run(src)

	if err := rep.TotalFound(looked.Found); err != nil {
		return formatter.Fail(ExitFailure, ErrCodeOutput, "failed to write report", err)
	}

	summary := report.NewSummary(ingested.Tally)
	summary.Ended = ingested.Ended.String()
	summary.Lines = ingested.Lines
	summary.Accepted = ingested.Accepted
	summary.Discarded = ingested.Discarded
	summary.Lookups = looked.Lookups
	summary.TotalFound = looked.Found

	if hist != nil {
		summary.SessionID = idGen.Generate()
		if err := recordSession(cmd.Context(), hist, summary, startedAt, clock.Now()); err != nil {
			return formatter.Fail(ExitCommandError, ErrCodeHistory, "failed to record session", err)
		}
		formatter.VerboseLog("Recorded session %s in %s", summary.SessionID, cfg.HistoryDB)
	}

	if cfg.MetricsFile != "" {
		if err := m.WriteTextfile(cfg.MetricsFile); err != nil {
			return formatter.Fail(ExitCommandError, ErrCodeMetrics, "failed to write metrics", err)
		}
		formatter.VerboseLog("Wrote metrics to %s", cfg.MetricsFile)
	}

	if formatter.IsJSON() {
		return formatter.Success(summary)
	}
	return nil
}

func recordSession(ctx context.Context, hist *history.Store, s *report.Summary, startedAt, finishedAt time.Time) error {
	if ctx == nil {
		ctx = context.Background()
	}
	return hist.WriteSession(ctx, history.Session{
		ID:         s.SessionID,
		StartedAt:  startedAt,
		FinishedAt: finishedAt,
		Ended:      s.Ended,
		Lines:      s.Lines,
		Accepted:   s.Accepted,
		Discarded:  s.Discarded,
		Distinct:   len(s.Words),
		Digest:     s.Digest,
		Lookups:    s.Lookups,
		Found:      s.TotalFound,
	})
}
