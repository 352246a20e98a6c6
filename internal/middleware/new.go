package middleware

import (
	"examprep-backend/pkg/log"
)

// Middleware bundles the cross-cutting gin handlers.
type Middleware struct {
	l       log.Logger
	limiter *rateLimiter
}

// New creates the middleware set. requestsPerMin bounds each client IP on the
// rate-limited routes.
func New(l log.Logger, requestsPerMin int) Middleware {
	return Middleware{
		l:       l,
		limiter: newRateLimiter(requestsPerMin),
	}
}
