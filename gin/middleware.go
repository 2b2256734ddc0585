package gin

import (
	"log/slog"
	"net/http"
	"sync"
	"time"

	definerprom "github.com/fwojciec/definer/prometheus"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

// RequestIDHeader carries the request ID in both directions.
const RequestIDHeader = "X-Request-ID"

// RequestIDKey stores the request ID in the gin context.
const RequestIDKey = "request_id"

// requestID propagates an incoming request ID or generates one.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}
		c.Set(RequestIDKey, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

// accessLog logs each request once it completes.
func accessLog(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		begin := time.Now()
		c.Next()
		logger.Info("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(begin),
			"request_id", c.GetString(RequestIDKey),
		)
	}
}

// observe records request metrics by route template.
func observe(m *definerprom.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		begin := time.Now()
		c.Next()
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.RecordHTTPRequest(c.Request.Method, route, c.Writer.Status(), time.Since(begin))
	}
}

// CORS allows read-only cross-origin requests from origins.
func CORS(origins []string) gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowOrigins:  origins,
		AllowMethods:  []string{http.MethodGet, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Accept", "If-None-Match", RequestIDHeader},
		ExposeHeaders: []string{"ETag", RequestIDHeader},
		MaxAge:        12 * time.Hour,
	})
}

// DefaultClientIdleTimeout is how long an idle client's limiter is kept.
const DefaultClientIdleTimeout = 10 * time.Minute

// RateLimitConfig defines per-client rate limiting.
type RateLimitConfig struct {
	RequestsPerSecond float64
	Burst             int

	// IdleTimeout evicts clients not seen for this long.
	// Defaults to DefaultClientIdleTimeout.
	IdleTimeout time.Duration

	// Now defaults to time.Now.
	Now func() time.Time
}

type client struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimit creates a per-IP rate limiting middleware. Every uncached
// lookup fans out to several sites, so clients are throttled before that.
// Clients idle for longer than IdleTimeout are forgotten, swept at most once
// per IdleTimeout.
func RateLimit(cfg RateLimitConfig) gin.HandlerFunc {
	var (
		mu        sync.Mutex
		clients   = make(map[string]*client)
		lastSweep time.Time
	)
	burst := max(cfg.Burst, 1)
	idle := cfg.IdleTimeout
	if idle <= 0 {
		idle = DefaultClientIdleTimeout
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}

	return func(c *gin.Context) {
		ip := c.ClientIP()

		mu.Lock()
		t := now()
		if t.Sub(lastSweep) >= idle {
			for key, cl := range clients {
				if t.Sub(cl.lastSeen) >= idle {
					delete(clients, key)
				}
			}
			lastSweep = t
		}
		cl, ok := clients[ip]
		if !ok {
			cl = &client{limiter: rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), burst)}
			clients[ip] = cl
		}
		cl.lastSeen = t
		limiter := cl.limiter
		mu.Unlock()

		if !limiter.Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{})
			return
		}
		c.Next()
	}
}
