package pipeline

import (
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/roach88/wordtally/internal/lineread"
	"github.com/roach88/wordtally/internal/metrics"
	"github.com/roach88/wordtally/internal/tally"
)

// EndReason records how ingestion finished without error.
type EndReason int

const (
	// EndSentinel means the sentinel word was read.
	EndSentinel EndReason = iota + 1
	// EndOfInput means the input ran out before the sentinel.
	EndOfInput
)

func (r EndReason) String() string {
	switch r {
	case EndSentinel:
		return "sentinel"
	case EndOfInput:
		return "end_of_input"
	default:
		return "unknown"
	}
}

// Result is the outcome of a successful ingestion.
type Result struct {
	// Tally is final: the worker that built it has been joined.
	Tally *tally.Tally

	Ended     EndReason
	Lines     int // lines read, including the sentinel line
	Accepted  int // tokens handed to the worker
	Discarded int // candidate fields rejected as non-words
}

// Reader is the foreground side of the ingestion pipeline.
type Reader struct {
	src      *lineread.Source
	sentinel string
	metrics  *metrics.Metrics
}

// ReaderOption configures a Reader.
type ReaderOption func(*Reader)

// WithSentinel sets the word that ends ingestion.
//
// Default: tally.DefaultSentinel ("end").
// The sentinel is never counted.
func WithSentinel(word string) ReaderOption {
	return func(r *Reader) {
		r.sentinel = word
	}
}

// WithMetrics records line and token counts in m.
func WithMetrics(m *metrics.Metrics) ReaderOption {
	return func(r *Reader) {
		r.metrics = m
	}
}

// NewReader creates a Reader over src.
func NewReader(src *lineread.Source, opts ...ReaderOption) *Reader {
	r := &Reader{
		src:      src,
		sentinel: tally.DefaultSentinel,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run ingests input until the sentinel word, end of input, or a read
// failure, and returns the finished tally.
//
// A read failure yields an *InputReadError. In every case the worker has
// received Shutdown and has been joined before Run returns.
func (r *Reader) Run() (*Result, error) {
	t := tally.New()
	q := newHandoffQueue()
	w := newWorker(q, t)

	var g errgroup.Group
	g.Go(w.Run)

	// stop delivers Shutdown and joins the worker exactly once. The deferred
	// call covers panics on the reader side.
	stop := sync.OnceValue(func() error {
		q.Enqueue(Shutdown())
		return g.Wait()
	})
	defer stop()

	slog.Debug("ingestion starting", "sentinel", r.sentinel)

	res := &Result{}
	for res.Ended == 0 {
		line := r.src.Next()

		switch line.Status {
		case lineread.StatusEndOfInput:
			res.Ended = EndOfInput
			continue
		case lineread.StatusFailed:
			joinErr := stop()
			slog.Debug("ingestion aborted",
				"line", r.src.Lines()+1,
				"error", line.Err,
				"join_error", joinErr,
			)
			return nil, &InputReadError{Line: r.src.Lines() + 1, Err: line.Err}
		}

		res.Lines++
		r.metrics.LineRead(metrics.PhaseIngest)

		token, ok := tally.ExtractToken(line.Line)
		if !ok {
			slog.Debug("discarding field", "field", token)
			res.Discarded++
			r.metrics.Token(false)
			continue
		}

		if token == r.sentinel {
			// stop() below enqueues the Shutdown that this word stands for.
			res.Ended = EndSentinel
			continue
		}

		q.Enqueue(Token(token))
		res.Accepted++
		r.metrics.Token(true)
	}

	if err := stop(); err != nil {
		return nil, err
	}

	res.Tally = t
	r.metrics.SetDistinctWords(t.Len())

	slog.Debug("ingestion finished",
		"ended", res.Ended.String(),
		"lines", res.Lines,
		"accepted", res.Accepted,
		"discarded", res.Discarded,
		"distinct", t.Len(),
	)

	return res, nil
}
