package definer

import "context"

// Aggregator builds a fresh Word from all configured sources.
type Aggregator interface {
	// Aggregate returns ENOTFOUND when no source has a definition.
	Aggregate(ctx context.Context, word string) (*Word, error)
}

// WordService answers lookups, serving cached words while they are fresh.
type WordService interface {
	// Lookup returns ENOTFOUND when no source has data for word.
	Lookup(ctx context.Context, word string) (*Word, error)

	// Lookups returns how many times word has been looked up.
	Lookups(ctx context.Context, word string) (int64, error)
}
