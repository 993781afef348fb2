package report

import (
	"github.com/roach88/wordtally/internal/tally"
)

// Summary is the machine-readable result of one run.
type Summary struct {
	SessionID  string        `json:"session_id,omitempty"`
	Ended      string        `json:"ended"`
	Lines      int           `json:"lines"`
	Accepted   int           `json:"accepted"`
	Discarded  int           `json:"discarded"`
	Words      []tally.Entry `json:"words"`
	Digest     string        `json:"digest"`
	Lookups    int           `json:"lookups"`
	TotalFound uint64        `json:"total_found"`
}

// NewSummary builds a Summary from a finished tally.
// Counters and identifiers are filled in by the caller.
func NewSummary(t *tally.Tally) *Summary {
	return &Summary{
		Words:  t.Entries(),
		Digest: t.Digest(),
	}
}
