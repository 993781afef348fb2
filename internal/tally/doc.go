// Package tally holds the word tally produced by ingestion and the token
// rules that decide which input fields are words.
//
// A Tally is not safe for concurrent use. During ingestion exactly one
// goroutine (the pipeline's worker) owns it; once that goroutine has been
// joined the tally is read-only and may be shared freely.
//
// Listing order is always the byte order of the word, so "Bow" sorts before
// "arrow" and the listing never depends on map iteration order.
package tally
