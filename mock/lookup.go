package mock

import (
	"context"

	"github.com/fwojciec/definer"
)

var (
	_ definer.Aggregator  = (*Aggregator)(nil)
	_ definer.WordService = (*WordService)(nil)
)

// Aggregator is a mock implementation of definer.Aggregator.
type Aggregator struct {
	AggregateFn func(ctx context.Context, word string) (*definer.Word, error)
}

func (a *Aggregator) Aggregate(ctx context.Context, word string) (*definer.Word, error) {
	return a.AggregateFn(ctx, word)
}

// WordService is a mock implementation of definer.WordService.
type WordService struct {
	LookupFn  func(ctx context.Context, word string) (*definer.Word, error)
	LookupsFn func(ctx context.Context, word string) (int64, error)
}

func (s *WordService) Lookup(ctx context.Context, word string) (*definer.Word, error) {
	return s.LookupFn(ctx, word)
}

func (s *WordService) Lookups(ctx context.Context, word string) (int64, error) {
	return s.LookupsFn(ctx, word)
}
