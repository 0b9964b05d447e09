package middleware

import (
	"hr-recommendation/config"
	"hr-recommendation/pkg/log"
)

type Middleware struct {
	l       log.Logger
	limiter *rateLimiter
}

// New creates the shared middleware set. Rate limiting is skipped when
// cfg.Enabled is false.
func New(l log.Logger, cfg config.RateLimitConfig) Middleware {
	mw := Middleware{l: l}
	if cfg.Enabled && cfg.RequestsPerMin > 0 {
		mw.limiter = newRateLimiter(cfg.RequestsPerMin, cfg.Burst, cfg.MaxTrackedPeers)
	}
	return mw
}
