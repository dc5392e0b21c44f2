package transport

import (
	"fmt"
	"strings"
)

// New builds the Transport named by cfg.Kind. An empty kind selects net/http.
func New(cfg Config) (Transport, error) {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultUserAgent
	}

	switch strings.ToLower(strings.TrimSpace(cfg.Kind)) {
	case "", KindNetHTTP:
		return NewNetHTTP(cfg), nil
	case KindFastHTTP:
		return NewFastHTTP(cfg), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, cfg.Kind)
	}
}
