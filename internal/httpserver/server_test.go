package httpserver

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"item-gallery/pkg/response"
	"item-gallery/pkg/transport"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

func newTestServer(t *testing.T, apiURL string) *HTTPServer {
	t.Helper()
	srv, err := New(&mockLogger{}, Config{
		Port:           8080,
		Mode:           "test",
		Environment:    "development",
		APIURL:         apiURL,
		BaseURL:        "http://localhost:8000",
		Transport:      transport.NewNetHTTP(transport.Config{Timeout: 2 * time.Second}),
		RefreshTimeout: 2 * time.Second,
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return srv
}

func TestNew(t *testing.T) {
	tr := transport.NewNetHTTP(transport.Config{})
	tests := []struct {
		name string
		cfg  Config
	}{
		{"missing mode", Config{Port: 1, APIURL: "http://x", Transport: tr}},
		{"missing port", Config{Mode: "test", APIURL: "http://x", Transport: tr}},
		{"missing api url", Config{Mode: "test", Port: 1, Transport: tr}},
		{"missing transport", Config{Mode: "test", Port: 1, APIURL: "http://x"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(&mockLogger{}, tt.cfg); err == nil {
				t.Errorf("expected validation error")
			}
		})
	}
}

func TestRoutes(t *testing.T) {
	api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet && r.URL.Path == "/api/v1/items/" {
			w.Write([]byte(`[{"id":1,"name":"Chair","description":"Wooden chair","image_path":"uploads/20240101_120000_chair.png"}]`))
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	defer api.Close()

	srv := newTestServer(t, api.URL+"/api/v1")
	if err := srv.mapHandlers(context.Background()); err != nil {
		t.Fatalf("mapHandlers: %v", err)
	}

	get := func(path string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		srv.gin.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		return w
	}

	t.Run("Health", func(t *testing.T) {
		for _, path := range []string{"/health", "/ready", "/live"} {
			w := get(path)
			if w.Code != http.StatusOK {
				t.Errorf("%s: expected 200, got %d", path, w.Code)
			}
			var resp response.Resp
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("%s: unmarshal: %v", path, err)
			}
			data, _ := resp.Data.(map[string]any)
			if data["service"] != ServiceName {
				t.Errorf("%s: unexpected body %v", path, resp.Data)
			}
		}
	})

	t.Run("Ready reports items API", func(t *testing.T) {
		var resp response.Resp
		json.Unmarshal(get("/ready").Body.Bytes(), &resp)
		data, _ := resp.Data.(map[string]any)
		if data["items_api"] != api.URL+"/api/v1" || data["transport"] != transport.KindNetHTTP {
			t.Errorf("unexpected ready body: %v", resp.Data)
		}
	})

	t.Run("Initial load renders", func(t *testing.T) {
		w := get("/")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		body := w.Body.String()
		if !strings.Contains(body, "Chair") || !strings.Contains(body, "http://localhost:8000/uploads/20240101_120000_chair.png") {
			t.Errorf("initial items not rendered")
		}
		if w.Header().Get("X-Request-ID") == "" {
			t.Errorf("expected request id header")
		}
	})

	t.Run("State", func(t *testing.T) {
		w := get("/api/v1/state")
		if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"name":"Chair"`) {
			t.Errorf("unexpected state response: %d %s", w.Code, w.Body.String())
		}
	})
}

func TestInitialLoadFailure(t *testing.T) {
	srv := newTestServer(t, "http://localhost:59999/api/v1")
	if err := srv.mapHandlers(context.Background()); err != nil {
		t.Fatalf("mapHandlers should not fail when the API is down: %v", err)
	}

	w := httptest.NewRecorder()
	srv.gin.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	if w.Code != http.StatusOK {
		t.Errorf("expected page to render, got %d", w.Code)
	}
}

func TestRunShutdown(t *testing.T) {
	api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer api.Close()

	srv := newTestServer(t, api.URL)
	srv.port = 0 // any free port

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	case <-time.After(15 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
