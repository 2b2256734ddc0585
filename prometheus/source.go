package prometheus

import (
	"time"

	"github.com/fwojciec/definer"
)

var _ definer.Source = (*Source)(nil)

// Source wraps a definer.Source, counting extractions by outcome so markup
// drift at one site shows up as a rising "markup" rate.
type Source struct {
	next    definer.Source
	metrics *Metrics
}

// NewSource creates an instrumented Source.
func NewSource(next definer.Source, metrics *Metrics) *Source {
	return &Source{next: next, metrics: metrics}
}

// Name delegates to the wrapped source.
func (s *Source) Name() string {
	return s.next.Name()
}

// URL delegates to the wrapped source and counts refusals.
func (s *Source) URL(word string) (string, error) {
	u, err := s.next.URL(word)
	if err != nil {
		s.metrics.SourceRefusals.WithLabelValues(s.next.Name(), outcome(err)).Inc()
	}
	return u, err
}

// Extract delegates to the wrapped source and records the outcome.
func (s *Source) Extract(word, html string) (*definer.Result, error) {
	begin := time.Now()
	result, err := s.next.Extract(word, html)
	s.metrics.ExtractDuration.WithLabelValues(s.next.Name()).Observe(time.Since(begin).Seconds())
	s.metrics.Extractions.WithLabelValues(s.next.Name(), outcome(err)).Inc()
	return result, err
}
