// Package pipeline implements the ingestion stage of wordtally: a foreground
// reader that extracts tokens from input and a background worker that folds
// them into a tally.
//
// ARCHITECTURE:
//
// Two roles, no pool:
//   - Reader (foreground): reads lines, keeps the first field when it is a
//     word, and enqueues it.
//   - worker (background goroutine): drains the queue one message at a time
//     and is the only writer of the tally.
//
// Handoff:
// The queue is an unbounded, mutex-guarded FIFO with a coalescing signal
// channel. The producer never blocks on capacity; the worker blocks only on
// the signal channel while the queue is empty. With one producer and one
// consumer, consumption order equals production order.
//
// Shutdown:
// The worker stops only when it dequeues a Shutdown message. There is no
// context or timeout. Every way out of Reader.Run (sentinel word, end of
// input, read failure, panic) enqueues Shutdown and joins the worker before
// returning, so the tally handed back is final and no goroutine outlives the
// call.
package pipeline
