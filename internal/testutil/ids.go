package testutil

import (
	"sync"
	"time"
)

// FixedIDGenerator generates the same session ID every time.
//
// This enables deterministic history rows and golden snapshot comparison.
//
// Thread-safety: FixedIDGenerator is stateless and safe for concurrent use.
type FixedIDGenerator struct {
	id string
}

// NewFixedIDGenerator creates a new fixed session ID generator.
//
// If id is empty, Generate() returns "test-session-default".
func NewFixedIDGenerator(id string) *FixedIDGenerator {
	if id == "" {
		id = "test-session-default"
	}
	return &FixedIDGenerator{id: id}
}

// Generate returns the fixed session ID.
//
// Implements history.IDGenerator.
func (g *FixedIDGenerator) Generate() string {
	return g.id
}

// StepClock is a deterministic wall clock for tests.
//
// Each call to Now returns the start time advanced by one more Step.
// Thread-safety: All methods are safe for concurrent use via internal mutex.
type StepClock struct {
	mu    sync.Mutex
	start time.Time
	step  time.Duration
	ticks int64
}

// NewStepClock creates a clock whose first Now() returns start.
func NewStepClock(start time.Time, step time.Duration) *StepClock {
	return &StepClock{start: start, step: step}
}

// Now returns the next instant.
func (c *StepClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := c.start.Add(time.Duration(c.ticks) * c.step)
	c.ticks++
	return t
}

// Reset rewinds the clock so the next Now() returns start again.
func (c *StepClock) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ticks = 0
}
