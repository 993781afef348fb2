// Package lineread turns a byte stream into a sequence of line reads with an
// explicit outcome for each call.
//
// A read either yields a line (StatusOK), reports that the stream is
// exhausted (StatusEndOfInput), or reports a failure of the underlying reader
// (StatusFailed). End of input is never reported as an error; callers decide
// per phase what a failure means.
package lineread

import (
	"bufio"
	"errors"
	"io"
	"strings"
)

// Status is the outcome of a single line read.
type Status int

const (
	// StatusOK means Result.Line holds the next line.
	StatusOK Status = iota + 1
	// StatusEndOfInput means the stream has no more lines.
	StatusEndOfInput
	// StatusFailed means the underlying reader returned an error other than io.EOF.
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusEndOfInput:
		return "end_of_input"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Result is the outcome of Source.Next.
type Result struct {
	Line   string
	Status Status
	Err    error // set only when Status is StatusFailed
}

// Source reads newline-terminated lines from an io.Reader.
//
// The line terminator ("\n" or "\r\n") is stripped. A final line without a
// terminator is still returned as a line before end of input is reported.
// Source is not safe for concurrent use.
type Source struct {
	r     *bufio.Reader
	lines int
}

// NewSource wraps r.
func NewSource(r io.Reader) *Source {
	return &Source{r: bufio.NewReader(r)}
}

// Next reads the next line.
func (s *Source) Next() Result {
	line, err := s.r.ReadString('\n')
	switch {
	case err == nil:
		s.lines++
		return Result{Line: trimTerminator(line), Status: StatusOK}
	case errors.Is(err, io.EOF):
		if line == "" {
			return Result{Status: StatusEndOfInput}
		}
		s.lines++
		return Result{Line: trimTerminator(line), Status: StatusOK}
	default:
		return Result{Status: StatusFailed, Err: err}
	}
}

// Lines returns the number of lines successfully read so far.
func (s *Source) Lines() int {
	return s.lines
}

func trimTerminator(line string) string {
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r")
}
