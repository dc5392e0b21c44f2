package transport

import "context"

// Transport performs a single HTTP round trip. Implementations are safe for concurrent use.
type Transport interface {
	Do(ctx context.Context, req Request) (Response, error)
	Name() string
}
