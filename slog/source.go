package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/definer"
)

// Ensure LoggingSource implements definer.Source.
var _ definer.Source = (*LoggingSource)(nil)

// LoggingSource wraps a Source with extraction logging.
// Structural mismatches are logged at Warn so markup drift is visible;
// ordinary absence is logged at Debug.
type LoggingSource struct {
	next   definer.Source
	logger *slog.Logger
}

// NewLoggingSource creates a new LoggingSource.
func NewLoggingSource(next definer.Source, logger *slog.Logger) *LoggingSource {
	return &LoggingSource{next: next, logger: logger}
}

// Name delegates to the wrapped source.
func (s *LoggingSource) Name() string {
	return s.next.Name()
}

// URL delegates to the wrapped source and logs refusals.
func (s *LoggingSource) URL(word string) (u string, err error) {
	u, err = s.next.URL(word)
	if err != nil {
		s.logger.Log(context.Background(), level(err), "source url",
			"source", s.next.Name(),
			"word", word,
			"code", definer.ErrorCode(err),
			"err", err,
		)
	}
	return u, err
}

// Extract logs the outcome of extraction and delegates to the wrapped source.
func (s *LoggingSource) Extract(word, html string) (result *definer.Result, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"source", s.next.Name(),
			"word", word,
			"duration", time.Since(begin),
		}
		if err != nil {
			attrs = append(attrs, "code", definer.ErrorCode(err), "err", err)
		} else if result != nil {
			attrs = append(attrs, "kind", result.Kind.String())
		}
		s.logger.Log(context.Background(), level(err), "extract", attrs...)
	}(time.Now())
	return s.next.Extract(word, html)
}

// level maps an extraction error to its log level.
func level(err error) slog.Level {
	switch definer.ErrorCode(err) {
	case "":
		return slog.LevelDebug
	case definer.ENOTFOUND, definer.ERESTRICTED:
		return slog.LevelDebug
	case definer.EMARKUP:
		return slog.LevelWarn
	default:
		return slog.LevelError
	}
}
