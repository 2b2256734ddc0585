package prometheus

import (
	"context"
	"time"

	"github.com/fwojciec/definer"
)

var _ definer.WordService = (*WordService)(nil)

// WordService wraps a definer.WordService, counting lookups by outcome.
type WordService struct {
	next    definer.WordService
	metrics *Metrics
}

// NewWordService creates an instrumented WordService.
func NewWordService(next definer.WordService, metrics *Metrics) *WordService {
	return &WordService{next: next, metrics: metrics}
}

// Lookup delegates to the wrapped service and records the outcome.
func (s *WordService) Lookup(ctx context.Context, word string) (*definer.Word, error) {
	begin := time.Now()
	w, err := s.next.Lookup(ctx, word)
	s.metrics.LookupDuration.Observe(time.Since(begin).Seconds())
	s.metrics.Lookups.WithLabelValues(outcome(err)).Inc()
	return w, err
}

// Lookups delegates to the wrapped service.
func (s *WordService) Lookups(ctx context.Context, word string) (int64, error) {
	return s.next.Lookups(ctx, word)
}
