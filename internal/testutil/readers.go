package testutil

import (
	"errors"
	"io"
	"sync"
)

// ErrInjected is the default failure returned by FailingReader.
var ErrInjected = errors.New("injected read failure")

// FailingReader serves Data and then fails with Err instead of io.EOF.
//
// This simulates a broken input stream (closed terminal, I/O error on a pipe)
// part-way through a phase.
type FailingReader struct {
	Data string
	Err  error // defaults to ErrInjected
	off  int
}

// NewFailingReader returns a reader that yields data then fails with err.
func NewFailingReader(data string, err error) *FailingReader {
	return &FailingReader{Data: data, Err: err}
}

// Read implements io.Reader.
func (r *FailingReader) Read(p []byte) (int, error) {
	if r.off < len(r.Data) {
		n := copy(p, r.Data[r.off:])
		r.off += n
		return n, nil
	}
	if r.Err == nil {
		return 0, ErrInjected
	}
	return 0, r.Err
}

// GatedReader releases its input one chunk at a time.
//
// Each call to Release makes one more chunk readable; Read blocks until a
// chunk is available or Close is called. Tests use it to control exactly when
// the producer side of a pipeline sees new input.
//
// Thread-safety: Release and Close may be called from any goroutine.
type GatedReader struct {
	mu      sync.Mutex
	cond    *sync.Cond
	pending []string
	closed  bool
}

// NewGatedReader creates an empty, open GatedReader.
func NewGatedReader() *GatedReader {
	g := &GatedReader{}
	g.cond = sync.NewCond(&g.mu)
	return g
}

// Release makes chunk available to the next Read.
func (g *GatedReader) Release(chunk string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.pending = append(g.pending, chunk)
	g.cond.Broadcast()
}

// Close signals end of input once pending chunks are consumed.
func (g *GatedReader) Close() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.closed = true
	g.cond.Broadcast()
}

// Read implements io.Reader.
func (g *GatedReader) Read(p []byte) (int, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	for len(g.pending) == 0 && !g.closed {
		g.cond.Wait()
	}
	if len(g.pending) == 0 {
		return 0, io.EOF
	}

	n := copy(p, g.pending[0])
	if n < len(g.pending[0]) {
		g.pending[0] = g.pending[0][n:]
	} else {
		g.pending = g.pending[1:]
	}
	return n, nil
}
