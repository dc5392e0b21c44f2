package transport

import (
	"errors"
	"net/http"
	"time"
)

const (
	KindNetHTTP  = "nethttp"
	KindFastHTTP = "fasthttp"

	DefaultTimeout   = 10 * time.Second
	DefaultUserAgent = "item-gallery/1.0"
)

var ErrUnknownKind = errors.New("unknown transport kind")

// Config selects and tunes a Transport.
type Config struct {
	Kind      string
	Timeout   time.Duration
	UserAgent string
}

// Request is a fully buffered outbound request.
type Request struct {
	Method string
	URL    string
	Header http.Header
	Body   []byte
}

// Response is a fully buffered response.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// OK reports whether the status code is in the 2xx range.
func (r Response) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}
