package main

import (
	"os"
	"os/signal"
	"syscall"

	definergin "github.com/fwojciec/definer/gin"
	"github.com/gin-gonic/gin"
)

// Run executes the serve command until interrupted.
func (c *ServeCmd) Run(deps *Dependencies) error {
	ctx, stop := signal.NotifyContext(deps.Ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	gin.SetMode(gin.ReleaseMode)

	opts := []definergin.Option{
		definergin.WithLogger(deps.Logger),
		definergin.WithMetrics(deps.Metrics),
		definergin.WithClientRateLimit(definergin.RateLimitConfig{
			RequestsPerSecond: c.ClientRate,
			Burst:             c.ClientBurst,
		}),
	}
	if len(c.CORSOrigins) > 0 {
		opts = append(opts, definergin.WithCORSOrigins(c.CORSOrigins...))
	}

	return definergin.NewServer(deps.Words, opts...).ListenAndServe(ctx, c.Addr)
}
