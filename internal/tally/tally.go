package tally

import (
	"slices"
)

// Entry is one word and its occurrence count.
type Entry struct {
	Word  string `json:"word"`
	Count uint64 `json:"count"`
}

// Tally maps words to occurrence counts.
type Tally struct {
	counts map[string]uint64
}

// New creates an empty tally.
func New() *Tally {
	return &Tally{counts: make(map[string]uint64)}
}

// Add records one occurrence of word and returns its new count.
// The first occurrence yields 1.
func (t *Tally) Add(word string) uint64 {
	t.counts[word]++
	return t.counts[word]
}

// Count returns the count for word and whether it is present.
func (t *Tally) Count(word string) (uint64, bool) {
	n, ok := t.counts[word]
	return n, ok
}

// Len returns the number of distinct words.
func (t *Tally) Len() int {
	return len(t.counts)
}

// Total returns the sum of all counts.
func (t *Tally) Total() uint64 {
	var total uint64
	for _, n := range t.counts {
		total += n
	}
	return total
}

// Entries returns all entries sorted by the byte order of the word.
// The returned slice is freshly allocated; callers may modify it.
func (t *Tally) Entries() []Entry {
	words := make([]string, 0, len(t.counts))
	for w := range t.counts {
		words = append(words, w)
	}
	slices.Sort(words)

	entries := make([]Entry, len(words))
	for i, w := range words {
		entries[i] = Entry{Word: w, Count: t.counts[w]}
	}
	return entries
}
