package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/definer"
)

// Ensure LoggingWordService implements definer.WordService.
var _ definer.WordService = (*LoggingWordService)(nil)

// LoggingWordService wraps a WordService with request logging.
type LoggingWordService struct {
	next   definer.WordService
	logger *slog.Logger
}

// NewLoggingWordService creates a new LoggingWordService.
func NewLoggingWordService(next definer.WordService, logger *slog.Logger) *LoggingWordService {
	return &LoggingWordService{next: next, logger: logger}
}

// Lookup logs the contributing sources and delegates to the wrapped service.
// A word with no data is not an error.
func (s *LoggingWordService) Lookup(ctx context.Context, word string) (w *definer.Word, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"word", word,
			"duration", time.Since(begin),
		}
		switch {
		case err == nil:
			attrs = append(attrs, "sources", w.Sources, "last_updated", w.LastUpdated)
			s.logger.InfoContext(ctx, "lookup", attrs...)
		case definer.ErrorCode(err) == definer.ENOTFOUND:
			attrs = append(attrs, "sources", []string{})
			s.logger.InfoContext(ctx, "lookup", attrs...)
		default:
			attrs = append(attrs, "err", err)
			s.logger.ErrorContext(ctx, "lookup", attrs...)
		}
	}(time.Now())
	return s.next.Lookup(ctx, word)
}

// Lookups delegates to the wrapped service.
func (s *LoggingWordService) Lookups(ctx context.Context, word string) (int64, error) {
	return s.next.Lookups(ctx, word)
}
