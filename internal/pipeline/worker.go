package pipeline

import (
	"fmt"
	"log/slog"

	"github.com/roach88/wordtally/internal/tally"
)

// worker is the single writer of a tally during ingestion.
//
// States: waiting (blocked on the queue signal), processing (one message),
// terminated (after Shutdown). Terminated is absorbing: Run returns and the
// worker never touches the tally again.
type worker struct {
	queue *handoffQueue
	tally *tally.Tally

	processed int // Token messages applied
}

func newWorker(q *handoffQueue, t *tally.Tally) *worker {
	return &worker{queue: q, tally: t}
}

// Run drains the queue until a Shutdown message arrives.
// CRITICAL: Must be called from exactly ONE goroutine.
func (w *worker) Run() error {
	slog.Debug("tally worker starting")

	for {
		msg := w.queue.Dequeue()

		switch msg.Kind {
		case MessageToken:
			w.tally.Add(msg.Word)
			w.processed++
		case MessageShutdown:
			slog.Debug("tally worker stopping",
				"processed", w.processed,
				"distinct", w.tally.Len(),
			)
			return nil
		default:
			return fmt.Errorf("unknown message kind: %d", msg.Kind)
		}
	}
}
