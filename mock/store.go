package mock

import (
	"context"

	"github.com/fwojciec/definer"
)

var _ definer.Store = (*Store)(nil)

// Store is a mock implementation of definer.Store.
type Store struct {
	GetFn    func(ctx context.Context, key string) (string, error)
	SetFn    func(ctx context.Context, key, value string) error
	ExistsFn func(ctx context.Context, key string) (bool, error)
	IncrFn   func(ctx context.Context, key string) (int64, error)
	CountFn  func(ctx context.Context, key string) (int64, error)
}

func (s *Store) Get(ctx context.Context, key string) (string, error) {
	return s.GetFn(ctx, key)
}

func (s *Store) Set(ctx context.Context, key, value string) error {
	return s.SetFn(ctx, key, value)
}

func (s *Store) Exists(ctx context.Context, key string) (bool, error) {
	return s.ExistsFn(ctx, key)
}

func (s *Store) Incr(ctx context.Context, key string) (int64, error) {
	return s.IncrFn(ctx, key)
}

func (s *Store) Count(ctx context.Context, key string) (int64, error) {
	return s.CountFn(ctx, key)
}
