package definer

import "context"

// Store is a string key-value store with integer counters.
type Store interface {
	// Get returns the value under key.
	// Returns ENOTFOUND if the key does not exist.
	Get(ctx context.Context, key string) (string, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error

	// Exists reports whether key holds a value.
	Exists(ctx context.Context, key string) (bool, error)

	// Incr increments the counter under key by one and returns the new value.
	// Missing counters start at zero.
	Incr(ctx context.Context, key string) (int64, error)

	// Count returns the counter under key, or zero if it was never incremented.
	Count(ctx context.Context, key string) (int64, error)
}
