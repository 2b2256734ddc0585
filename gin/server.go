// Package gin serves definer lookups over HTTP using the gin router.
package gin

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/fwojciec/definer"
	definerprom "github.com/fwojciec/definer/prometheus"
	"github.com/gin-gonic/gin"
)

// DefaultShutdownTimeout bounds graceful shutdown.
const DefaultShutdownTimeout = 10 * time.Second

// Server exposes a WordService as a JSON API.
type Server struct {
	words   definer.WordService
	metrics *definerprom.Metrics
	logger  *slog.Logger

	corsOrigins []string
	clientRate  RateLimitConfig

	engine *gin.Engine
}

// Option configures a Server.
type Option func(*Server)

// WithMetrics records request metrics and serves them on /metrics.
func WithMetrics(m *definerprom.Metrics) Option {
	return func(s *Server) {
		s.metrics = m
	}
}

// WithLogger sets the request logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithCORSOrigins enables CORS for the given origins.
func WithCORSOrigins(origins ...string) Option {
	return func(s *Server) {
		s.corsOrigins = origins
	}
}

// WithClientRateLimit limits requests per client IP.
func WithClientRateLimit(cfg RateLimitConfig) Option {
	return func(s *Server) {
		s.clientRate = cfg
	}
}

// NewServer creates a Server and registers its routes.
func NewServer(words definer.WordService, opts ...Option) *Server {
	s := &Server{
		words:  words,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}

	router := gin.New()
	router.Use(requestID())
	router.Use(accessLog(s.logger))
	if s.metrics != nil {
		router.Use(observe(s.metrics))
	}
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		s.logger.Error("panic serving request", "path", c.Request.URL.Path, "panic", recovered)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{})
	}))
	if len(s.corsOrigins) > 0 {
		router.Use(CORS(s.corsOrigins))
	}
	if s.clientRate.RequestsPerSecond > 0 {
		router.Use(RateLimit(s.clientRate))
	}

	router.GET("/healthz", s.handleHealth)
	router.GET("/api/:word", s.handleWord)
	router.GET("/api/:word/lookups", s.handleLookups)
	if s.metrics != nil {
		router.GET("/metrics", gin.WrapH(s.metrics.Handler()))
	}

	s.engine = router
	return s
}

// Handler returns the HTTP handler serving all routes.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// ListenAndServe serves on addr until ctx is canceled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), DefaultShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
