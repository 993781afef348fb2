package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ErrSessionNotFound is returned by ReadSession for an unknown ID.
var ErrSessionNotFound = errors.New("session not found")

// Session is one recorded run.
type Session struct {
	ID         string    `json:"id"`
	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`
	Ended      string    `json:"ended"`
	Lines      int       `json:"lines"`
	Accepted   int       `json:"accepted"`
	Discarded  int       `json:"discarded"`
	Distinct   int       `json:"distinct"`
	Digest     string    `json:"digest"`
	Lookups    int       `json:"lookups"`
	Found      uint64    `json:"found"`
}

// IDGenerator generates session IDs.
// Implemented by UUIDv7Generator (production) and testutil.FixedIDGenerator (tests).
type IDGenerator interface {
	Generate() string
}

// UUIDv7Generator generates time-sortable UUIDv7 session IDs.
//
// Thread-safety: UUIDv7Generator is stateless and safe for concurrent use.
type UUIDv7Generator struct{}

// Generate creates a new UUIDv7 and returns it as a hyphenated string.
//
// Panics if UUID generation fails (should never happen in practice).
func (g UUIDv7Generator) Generate() string {
	return uuid.Must(uuid.NewV7()).String()
}

// Clock supplies wall-clock timestamps for session rows.
type Clock interface {
	Now() time.Time
}

// SystemClock is the real wall clock.
type SystemClock struct{}

// Now returns time.Now().
func (SystemClock) Now() time.Time {
	return time.Now()
}

// storedTimeLayout always writes nine fractional digits so that stored
// timestamps sort correctly as text.
const storedTimeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// WriteSession appends a session row.
// Writing the same ID twice is an error.
func (s *Store) WriteSession(ctx context.Context, sess Session) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO sessions
		(id, started_at, finished_at, ended, lines, accepted, discarded, distinct_words, digest, lookups, found)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		sess.ID,
		sess.StartedAt.UTC().Format(storedTimeLayout),
		sess.FinishedAt.UTC().Format(storedTimeLayout),
		sess.Ended,
		sess.Lines,
		sess.Accepted,
		sess.Discarded,
		sess.Distinct,
		sess.Digest,
		sess.Lookups,
		int64(sess.Found),
	)
	if err != nil {
		return fmt.Errorf("write session %s: %w", sess.ID, err)
	}
	return nil
}

// ReadSession returns the session with the given ID.
func (s *Store) ReadSession(ctx context.Context, id string) (Session, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, started_at, finished_at, ended, lines, accepted, discarded, distinct_words, digest, lookups, found
		FROM sessions
		WHERE id = ?
	`, id)

	sess, err := scanSession(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Session{}, fmt.Errorf("read session %s: %w", id, ErrSessionNotFound)
	}
	if err != nil {
		return Session{}, fmt.Errorf("read session %s: %w", id, err)
	}
	return sess, nil
}

// ListSessions returns up to limit sessions, most recent first.
// A limit <= 0 returns all sessions.
//
// Returns an empty slice (not nil) if no sessions exist.
func (s *Store) ListSessions(ctx context.Context, limit int) ([]Session, error) {
	if limit <= 0 {
		limit = -1
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, started_at, finished_at, ended, lines, accepted, discarded, distinct_words, digest, lookups, found
		FROM sessions
		ORDER BY started_at DESC, id COLLATE BINARY ASC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("query sessions: %w", err)
	}
	defer rows.Close()

	sessions := []Session{}
	for rows.Next() {
		sess, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, sess)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate sessions: %w", err)
	}

	return sessions, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSession(row rowScanner) (Session, error) {
	var (
		sess              Session
		started, finished string
		found             int64
	)
	err := row.Scan(
		&sess.ID,
		&started,
		&finished,
		&sess.Ended,
		&sess.Lines,
		&sess.Accepted,
		&sess.Discarded,
		&sess.Distinct,
		&sess.Digest,
		&sess.Lookups,
		&found,
	)
	if err != nil {
		return Session{}, err
	}

	if sess.StartedAt, err = time.Parse(time.RFC3339Nano, started); err != nil {
		return Session{}, fmt.Errorf("parse started_at: %w", err)
	}
	if sess.FinishedAt, err = time.Parse(time.RFC3339Nano, finished); err != nil {
		return Session{}, fmt.Errorf("parse finished_at: %w", err)
	}
	sess.Found = uint64(found)

	return sess, nil
}
