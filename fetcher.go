package definer

import "context"

// Fetcher retrieves document bodies from URLs.
type Fetcher interface {
	// Fetch retrieves the body at url as text.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (body string, err error)

	// Close releases resources held by the fetcher.
	Close() error
}

// HostLimiter paces outbound requests per host.
type HostLimiter interface {
	// Wait blocks until a request to host is allowed.
	// Returns an error if the context is canceled first.
	Wait(ctx context.Context, host string) error
}
