package transport

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/valyala/fasthttp"
)

type fastHTTP struct {
	client  *fasthttp.Client
	timeout time.Duration
}

// NewFastHTTP creates a Transport backed by valyala/fasthttp.
func NewFastHTTP(cfg Config) Transport {
	return &fastHTTP{
		client: &fasthttp.Client{
			Name:         cfg.UserAgent,
			ReadTimeout:  cfg.Timeout,
			WriteTimeout: cfg.Timeout,
		},
		timeout: cfg.Timeout,
	}
}

func (t *fastHTTP) Name() string { return KindFastHTTP }

type fastResult struct {
	resp Response
	err  error
}

// Do runs the request on its own goroutine; a cancelled ctx abandons it.
func (t *fastHTTP) Do(ctx context.Context, req Request) (Response, error) {
	if err := ctx.Err(); err != nil {
		return Response{}, err
	}

	timeout := t.timeout
	if deadline, ok := ctx.Deadline(); ok {
		if until := time.Until(deadline); timeout <= 0 || until < timeout {
			timeout = until
		}
	}

	done := make(chan fastResult, 1)
	go func() {
		done <- t.do(req, timeout)
	}()

	select {
	case <-ctx.Done():
		return Response{}, ctx.Err()
	case r := <-done:
		return r.resp, r.err
	}
}

func (t *fastHTTP) do(req Request, timeout time.Duration) fastResult {
	fReq := fasthttp.AcquireRequest()
	fResp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(fReq)
	defer fasthttp.ReleaseResponse(fResp)

	fReq.SetRequestURI(req.URL)
	fReq.Header.SetMethod(req.Method)
	for k, vs := range req.Header {
		for _, v := range vs {
			fReq.Header.Add(k, v)
		}
	}
	if len(req.Body) > 0 {
		fReq.SetBody(req.Body)
	}

	var err error
	if timeout > 0 {
		err = t.client.DoTimeout(fReq, fResp, timeout)
	} else {
		err = t.client.Do(fReq, fResp)
	}
	if err != nil {
		return fastResult{err: fmt.Errorf("failed to call %s %s: %w", req.Method, req.URL, err)}
	}

	header := make(http.Header)
	fResp.Header.VisitAll(func(k, v []byte) {
		header.Add(string(k), string(v))
	})

	return fastResult{resp: Response{
		StatusCode: fResp.StatusCode(),
		Header:     header,
		Body:       append([]byte(nil), fResp.Body()...),
	}}
}
