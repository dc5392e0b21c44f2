package middleware

import (
	"item-gallery/pkg/log"
)

// Config holds middleware settings.
type Config struct {
	RateLimitPerMin int // Requests per minute per client IP; <= 0 disables limiting
}

type Middleware struct {
	l       log.Logger
	limiter *rateLimiter
}

func New(l log.Logger, cfg Config) Middleware {
	mw := Middleware{l: l}
	if cfg.RateLimitPerMin > 0 {
		mw.limiter = newRateLimiter(cfg.RateLimitPerMin)
	}
	return mw
}
