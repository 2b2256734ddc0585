package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/definer"
	"github.com/fwojciec/definer/mock"
	definerslog "github.com/fwojciec/definer/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingWordService_Lookup(t *testing.T) {
	t.Parallel()

	t.Run("logs contributing sources", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.WordService{
			LookupFn: func(ctx context.Context, word string) (*definer.Word, error) {
				return &definer.Word{Sources: []string{"www.vocabulary.com"}, LastUpdated: 42}, nil
			},
		}

		svc := definerslog.NewLoggingWordService(inner, logger)
		w, err := svc.Lookup(context.Background(), "dog")

		require.NoError(t, err)
		assert.Equal(t, int64(42), w.LastUpdated)
		output := buf.String()
		assert.Contains(t, output, "level=INFO")
		assert.Contains(t, output, "word=dog")
		assert.Contains(t, output, "sources=[www.vocabulary.com]")
		assert.Contains(t, output, "last_updated=42")
	})

	t.Run("logs no data at info", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.WordService{
			LookupFn: func(ctx context.Context, word string) (*definer.Word, error) {
				return nil, definer.Errorf(definer.ENOTFOUND, "no data")
			},
		}

		svc := definerslog.NewLoggingWordService(inner, logger)
		_, err := svc.Lookup(context.Background(), "qwxz")

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "level=INFO")
		assert.NotContains(t, output, "err=")
	})

	t.Run("logs failures at error", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.WordService{
			LookupFn: func(ctx context.Context, word string) (*definer.Word, error) {
				return nil, errors.New("store down")
			},
		}

		svc := definerslog.NewLoggingWordService(inner, logger)
		_, err := svc.Lookup(context.Background(), "dog")

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "level=ERROR")
		assert.Contains(t, output, "err=\"store down\"")
	})
}

func TestLoggingWordService_Lookups(t *testing.T) {
	t.Parallel()

	t.Run("delegates to inner service", func(t *testing.T) {
		t.Parallel()

		inner := &mock.WordService{
			LookupsFn: func(ctx context.Context, word string) (int64, error) {
				return 7, nil
			},
		}

		svc := definerslog.NewLoggingWordService(inner, slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))
		n, err := svc.Lookups(context.Background(), "dog")

		require.NoError(t, err)
		assert.Equal(t, int64(7), n)
	})
}
