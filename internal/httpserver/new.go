package httpserver

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"item-gallery/pkg/log"
	"item-gallery/pkg/transport"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin             *gin.Engine
	l               log.Logger
	port            int
	mode            string
	environment     string
	rateLimitPerMin int

	// Item domain
	apiURL         string
	baseURL        string
	transport      transport.Transport
	refreshTimeout time.Duration
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger          log.Logger
	Port            int
	Mode            string
	Environment     string
	RateLimitPerMin int

	// Item domain
	APIURL         string
	BaseURL        string
	Transport      transport.Transport
	RefreshTimeout time.Duration
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		rateLimitPerMin: cfg.RateLimitPerMin,
		apiURL:          cfg.APIURL,
		baseURL:         cfg.BaseURL,
		transport:       cfg.Transport,
		refreshTimeout:  cfg.RefreshTimeout,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.apiURL == "" {
		return errors.New("items API url is required")
	}
	if srv.transport == nil {
		return errors.New("transport is required")
	}
	return nil
}
