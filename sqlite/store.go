package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/fwojciec/definer"
)

// Compile-time interface verification.
var _ definer.Store = (*Store)(nil)

// Store implements definer.Store using SQLite.
// Values live in the entries table and counters in the counters table, so
// a key may hold both without conflict.
type Store struct {
	db *DB
}

// NewStore creates a new Store.
func NewStore(db *DB) *Store {
	return &Store{db: db}
}

// Entry describes a stored value.
type Entry struct {
	Key       string
	Hash      string
	UpdatedAt time.Time
}

// Get returns the value under key.
func (s *Store) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM entries WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", definer.Errorf(definer.ENOTFOUND, "key not found")
	}
	if err != nil {
		return "", err
	}
	return value, nil
}

// Set stores value under key. Rewriting an identical value leaves the
// entry untouched.
func (s *Store) Set(ctx context.Context, key, value string) error {
	if key == "" {
		return definer.Errorf(definer.EINVALID, "key required")
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO entries (key, value, value_hash, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			value = excluded.value,
			value_hash = excluded.value_hash,
			updated_at = excluded.updated_at
		WHERE entries.value_hash != excluded.value_hash
	`, key, value, hashValue(value), time.Now().UTC().Format(time.RFC3339))
	return err
}

// Exists reports whether key holds a value.
func (s *Store) Exists(ctx context.Context, key string) (bool, error) {
	var exists bool
	err := s.db.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM entries WHERE key = ?)`, key).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

// Incr increments the counter under key and returns the new value.
func (s *Store) Incr(ctx context.Context, key string) (int64, error) {
	if key == "" {
		return 0, definer.Errorf(definer.EINVALID, "key required")
	}

	var n int64
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO counters (key, value) VALUES (?, 1)
		ON CONFLICT(key) DO UPDATE SET value = value + 1
		RETURNING value
	`, key).Scan(&n)
	if err != nil {
		return 0, err
	}
	return n, nil
}

// Count returns the counter under key, or zero.
func (s *Store) Count(ctx context.Context, key string) (int64, error) {
	var n int64
	err := s.db.QueryRowContext(ctx, `SELECT value FROM counters WHERE key = ?`, key).Scan(&n)
	if err == sql.ErrNoRows {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return n, nil
}

// FindEntry returns metadata for the value under key.
func (s *Store) FindEntry(ctx context.Context, key string) (*Entry, error) {
	entry := Entry{Key: key}
	var updatedAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT value_hash, updated_at FROM entries WHERE key = ?
	`, key).Scan(&entry.Hash, &updatedAt)
	if err == sql.ErrNoRows {
		return nil, definer.Errorf(definer.ENOTFOUND, "key not found")
	}
	if err != nil {
		return nil, err
	}

	entry.UpdatedAt, err = parseRFC3339(updatedAt, "updated_at")
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// CountEntries returns the number of stored values whose key starts with prefix.
func (s *Store) CountEntries(ctx context.Context, prefix string) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM entries WHERE substr(key, 1, length(?)) = ?
	`, prefix, prefix).Scan(&n)
	return n, err
}
