// Package history provides an optional SQLite log of wordtally runs.
//
// Each run appends one session row: how ingestion ended, line and token
// counts, the tally digest, and the lookup totals. The log is write-mostly
// and is never used to rebuild a tally; every run starts from an empty one.
//
// # Database Configuration
//
//   - WAL mode: Concurrent reads during writes
//   - synchronous=NORMAL: Balance durability/performance
//   - busy_timeout=5000: Wait for locks up to 5 seconds
//
// Listing order is deterministic: ORDER BY started_at DESC, id ASC COLLATE BINARY.
package history
