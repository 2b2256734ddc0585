package lookup

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/fwojciec/definer"
)

// DefaultStaleness is the age after which a cached word is rebuilt.
const DefaultStaleness = 7 * 24 * time.Hour

// DefaultCounterTimeout bounds the detached lookup counter update.
const DefaultCounterTimeout = 2 * time.Second

var _ definer.WordService = (*Service)(nil)

// Service serves words from a Store, rebuilding missing, unreadable or
// stale entries through an Aggregator.
//
// Concurrent refreshes of one word are not coordinated; the last write wins.
type Service struct {
	Aggregator definer.Aggregator
	Store      definer.Store

	// Staleness defaults to DefaultStaleness.
	Staleness time.Duration

	// CounterTimeout defaults to DefaultCounterTimeout.
	CounterTimeout time.Duration

	// Now defaults to time.Now.
	Now func() time.Time

	// Logger receives store failures. Defaults to slog.Default().
	Logger *slog.Logger

	counters sync.WaitGroup
}

// Lookup returns the cached word when it is fresh and rebuilds it otherwise.
// Every call counts as a lookup, whatever its outcome.
func (s *Service) Lookup(ctx context.Context, word string) (*definer.Word, error) {
	s.count(word)

	key := definer.WordKey(word)
	cached, err := s.Store.Get(ctx, key)
	switch {
	case err == nil:
		w, err := definer.UnmarshalWord(cached)
		if err != nil {
			s.logger().Warn("discarding cached word", "word", word, "error", err)
			break
		}
		if !w.IsStale(s.now(), s.staleness()) {
			return w, nil
		}
	case definer.ErrorCode(err) != definer.ENOTFOUND:
		s.logger().Error("cache read failed", "word", word, "error", err)
	}

	return s.refresh(ctx, word)
}

// refresh builds a new word and replaces the stored one. The write is
// detached from ctx so a completed word is kept when the caller is gone.
func (s *Service) refresh(ctx context.Context, word string) (*definer.Word, error) {
	w, err := s.Aggregator.Aggregate(ctx, word)
	if err != nil {
		return nil, err
	}

	data, err := definer.MarshalWord(w)
	if err != nil {
		s.logger().Error("cache encode failed", "word", word, "error", err)
		return w, nil
	}
	if err := s.Store.Set(context.WithoutCancel(ctx), definer.WordKey(word), data); err != nil {
		s.logger().Error("cache write failed", "word", word, "error", err)
	}
	return w, nil
}

// Lookups returns how many times word has been looked up.
func (s *Service) Lookups(ctx context.Context, word string) (int64, error) {
	return s.Store.Count(ctx, definer.LookupsKey(word))
}

// Close waits for pending counter updates.
func (s *Service) Close() error {
	s.counters.Wait()
	return nil
}

// count increments the lookup counter in the background, detached from the
// request context.
func (s *Service) count(word string) {
	s.counters.Add(1)
	go func() {
		defer s.counters.Done()

		ctx, cancel := context.WithTimeout(context.Background(), s.counterTimeout())
		defer cancel()

		if _, err := s.Store.Incr(ctx, definer.LookupsKey(word)); err != nil {
			s.logger().Warn("lookup counter update failed", "word", word, "error", err)
		}
	}()
}

func (s *Service) staleness() time.Duration {
	if s.Staleness <= 0 {
		return DefaultStaleness
	}
	return s.Staleness
}

func (s *Service) counterTimeout() time.Duration {
	if s.CounterTimeout <= 0 {
		return DefaultCounterTimeout
	}
	return s.CounterTimeout
}

func (s *Service) now() time.Time {
	if s.Now == nil {
		return time.Now()
	}
	return s.Now()
}

func (s *Service) logger() *slog.Logger {
	if s.Logger == nil {
		return slog.Default()
	}
	return s.Logger
}
