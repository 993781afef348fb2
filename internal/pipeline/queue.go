package pipeline

import (
	"sync"
)

// MessageKind distinguishes data from control on the handoff queue.
type MessageKind int

const (
	// MessageToken carries a word to be counted.
	MessageToken MessageKind = iota + 1
	// MessageShutdown tells the worker to stop.
	MessageShutdown
)

func (k MessageKind) String() string {
	switch k {
	case MessageToken:
		return "token"
	case MessageShutdown:
		return "shutdown"
	default:
		return "unknown"
	}
}

// Message is one item on the handoff queue.
type Message struct {
	Kind MessageKind
	Word string // set only for MessageToken
}

// Token returns a message carrying word.
func Token(word string) Message {
	return Message{Kind: MessageToken, Word: word}
}

// Shutdown returns the control message that terminates the worker.
func Shutdown() Message {
	return Message{Kind: MessageShutdown}
}

// handoffQueue is a thread-safe FIFO queue of messages.
//
// The queue is unbounded: Enqueue never blocks on capacity.
//
// The queue uses a channel for signaling so the consumer can block without
// holding the mutex. The buffer of 1 coalesces signals; a consumer must drain
// with TryDequeue until empty before waiting again.
type handoffQueue struct {
	mu     sync.Mutex
	msgs   []Message
	signal chan struct{} // Signals message availability (buffered, size 1)
}

// newHandoffQueue creates an empty queue.
func newHandoffQueue() *handoffQueue {
	return &handoffQueue{
		msgs:   make([]Message, 0, 64),
		signal: make(chan struct{}, 1),
	}
}

// Enqueue adds a message to the back of the queue and wakes the consumer.
// Thread-safe: may be called from any goroutine.
func (q *handoffQueue) Enqueue(m Message) {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.msgs = append(q.msgs, m)

	// Non-blocking: a pending signal already covers this message.
	select {
	case q.signal <- struct{}{}:
	default:
	}
}

// TryDequeue removes and returns the front message without blocking.
// Returns (Message{}, false) if the queue is empty.
func (q *handoffQueue) TryDequeue() (Message, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.msgs) == 0 {
		return Message{}, false
	}

	m := q.msgs[0]
	q.msgs[0] = Message{}

	if len(q.msgs) == 1 {
		q.msgs = q.msgs[:0]
	} else {
		q.msgs = q.msgs[1:]
	}

	return m, true
}

// Dequeue removes and returns the front message, blocking until one is
// available. The wait on the signal channel is the consumer's only
// suspension point.
func (q *handoffQueue) Dequeue() Message {
	for {
		if m, ok := q.TryDequeue(); ok {
			return m
		}
		<-q.signal
	}
}

// Len returns the current queue length.
func (q *handoffQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.msgs)
}
