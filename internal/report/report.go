// Package report renders tally listings and lookup results as the
// human-readable lines wordtally prints.
package report

import (
	"fmt"
	"io"

	"github.com/roach88/wordtally/internal/tally"
)

// Output lines.
const (
	WordListHeader = "\n=== Word list:\n"
	LookupPrompt   = "\nEnter a word for lookup:"
	totalFoundFmt  = "\n\n=== Total words found: %d\n"
	foundFmt       = "Success: %s was present %d times in the initial word list\n"
	notFoundFmt    = "%s was NOT found in the initial word list\n"
)

// Reporter writes report lines to an io.Writer.
// Each method issues its writes immediately so prompts appear before the
// next blocking read.
type Reporter struct {
	w io.Writer
}

// New creates a Reporter writing to w.
func New(w io.Writer) *Reporter {
	return &Reporter{w: w}
}

// WordList writes the header and one "word count" line per entry in byte
// order. An empty tally produces only the header.
func (r *Reporter) WordList(t *tally.Tally) error {
	if _, err := io.WriteString(r.w, WordListHeader); err != nil {
		return fmt.Errorf("write word list: %w", err)
	}
	for _, e := range t.Entries() {
		if _, err := fmt.Fprintf(r.w, "%s %d\n", e.Word, e.Count); err != nil {
			return fmt.Errorf("write word list: %w", err)
		}
	}
	return nil
}

// Prompt writes the lookup prompt.
func (r *Reporter) Prompt() error {
	_, err := io.WriteString(r.w, LookupPrompt)
	return err
}

// Found reports a successful lookup.
func (r *Reporter) Found(word string, count uint64) error {
	_, err := fmt.Fprintf(r.w, foundFmt, word, count)
	return err
}

// NotFound reports a failed lookup.
func (r *Reporter) NotFound(word string) error {
	_, err := fmt.Fprintf(r.w, notFoundFmt, word)
	return err
}

// TotalFound writes the cumulative hit count of a lookup run.
func (r *Reporter) TotalFound(n uint64) error {
	_, err := fmt.Fprintf(r.w, totalFoundFmt, n)
	return err
}
