// Package lookup runs the interactive query loop against a finished tally.
//
// The loop is strictly sequential and only reads the tally, so it must not
// start before ingestion has joined its worker.
package lookup

import (
	"log/slog"

	"github.com/roach88/wordtally/internal/lineread"
	"github.com/roach88/wordtally/internal/metrics"
	"github.com/roach88/wordtally/internal/report"
	"github.com/roach88/wordtally/internal/tally"
)

// Result summarizes one lookup run.
type Result struct {
	Lookups int    // lines used as lookup keys
	Found   uint64 // lookups that hit the tally
}

// Service answers lookups for one tally.
type Service struct {
	tally   *tally.Tally
	out     *report.Reporter
	metrics *metrics.Metrics
}

// New creates a Service. m may be nil.
func New(t *tally.Tally, out *report.Reporter, m *metrics.Metrics) *Service {
	return &Service{tally: t, out: out, metrics: m}
}

// Run prompts for and answers lookups until src is exhausted.
//
// Each whole line, internal whitespace included, is a lookup key. The line
// terminator is not part of the key and a CRLF terminator counts as one, so
// "bow\r\n" looks up "bow".
//
// A read failure ends the loop the same way end of input does: it is logged
// and Run returns normally, so callers cannot tell the two apart.
func (s *Service) Run(src *lineread.Source) Result {
	var res Result

	for {
		if err := s.out.Prompt(); err != nil {
			slog.Warn("lookup stopped: write failed", "error", err)
			return res
		}

		line := src.Next()
		switch line.Status {
		case lineread.StatusEndOfInput:
			slog.Debug("lookup finished", "lookups", res.Lookups, "found", res.Found)
			return res
		case lineread.StatusFailed:
			slog.Warn("lookup stopped: read failed",
				"lookups", res.Lookups,
				"found", res.Found,
				"error", line.Err,
			)
			return res
		}

		res.Lookups++
		s.metrics.LineRead(metrics.PhaseLookup)

		var err error
		if n, ok := s.tally.Count(line.Line); ok {
			res.Found++
			s.metrics.Lookup(true)
			err = s.out.Found(line.Line, n)
		} else {
			s.metrics.Lookup(false)
			err = s.out.NotFound(line.Line)
		}
		if err != nil {
			slog.Warn("lookup stopped: write failed", "error", err)
			return res
		}
	}
}
