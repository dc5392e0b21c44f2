package api_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"sync"

	"item-gallery/internal/item/repository/api"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

// fakeAPI is an in-memory stand-in for the external items API.
type fakeAPI struct {
	mu        sync.Mutex
	nextID    int
	order     []int
	items     map[int]api.ItemPayload
	files     map[string][]byte
	fileParts int
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{
		nextID: 1,
		items:  make(map[int]api.ItemPayload),
		files:  make(map[string][]byte),
	}
}

func (f *fakeAPI) storedFile(path string) []byte {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.files[path]
}

func (f *fakeAPI) filePartCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fileParts
}

func (f *fakeAPI) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/items/{$}", f.list)
	mux.HandleFunc("POST /api/v1/items/{$}", f.create)
	mux.HandleFunc("GET /api/v1/items/{id}", f.get)
	mux.HandleFunc("PUT /api/v1/items/{id}", f.update)
	mux.HandleFunc("DELETE /api/v1/items/{id}", f.delete)
	return mux
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func detail(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"detail": msg})
}

func (f *fakeAPI) list(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	skip, _ := strconv.Atoi(r.URL.Query().Get("skip"))
	limit := 100
	if l, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil {
		limit = l
	}

	out := make([]api.ItemPayload, 0, len(f.order))
	for i, id := range f.order {
		if i < skip || len(out) >= limit {
			continue
		}
		out = append(out, f.items[id])
	}
	writeJSON(w, http.StatusOK, out)
}

func (f *fakeAPI) lookup(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		detail(w, http.StatusUnprocessableEntity, "invalid id")
		return 0, false
	}
	if _, ok := f.items[id]; !ok {
		detail(w, http.StatusNotFound, "Item not found")
		return 0, false
	}
	return id, true
}

func (f *fakeAPI) get(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	id, ok := f.lookup(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, f.items[id])
}

// parseForm returns name, description and the saved image path ("" without a file).
func (f *fakeAPI) parseForm(w http.ResponseWriter, r *http.Request) (string, string, string, bool) {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		detail(w, http.StatusUnprocessableEntity, err.Error())
		return "", "", "", false
	}
	names, okName := r.MultipartForm.Value["name"]
	descs, okDesc := r.MultipartForm.Value["description"]
	if !okName || !okDesc {
		detail(w, http.StatusUnprocessableEntity, "field required")
		return "", "", "", false
	}

	path := ""
	file, header, err := r.FormFile("file")
	if err == nil {
		defer file.Close()
		f.fileParts++
		switch header.Header.Get("Content-Type") {
		case "image/png", "image/jpeg", "image/bmp":
		default:
			detail(w, http.StatusBadRequest, "File type not allowed")
			return "", "", "", false
		}
		data, _ := io.ReadAll(file)
		path = "uploads/20240101_120000_" + header.Filename
		f.files[path] = data
	}
	return names[0], descs[0], path, true
}

func (f *fakeAPI) create(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	name, desc, path, ok := f.parseForm(w, r)
	if !ok {
		return
	}

	id := f.nextID
	f.nextID++
	p := api.ItemPayload{
		ID:          &id,
		Name:        name,
		Description: desc,
		CreatedAt:   "2024-01-01T12:00:00",
	}
	if path != "" {
		p.ImagePath = &path
	}
	f.items[id] = p
	f.order = append(f.order, id)
	writeJSON(w, http.StatusOK, p)
}

func (f *fakeAPI) update(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	id, ok := f.lookup(w, r)
	if !ok {
		return
	}
	name, desc, path, ok := f.parseForm(w, r)
	if !ok {
		return
	}

	p := f.items[id]
	p.Name = name
	p.Description = desc
	if path != "" {
		p.ImagePath = &path
	}
	updated := "2024-01-02T08:30:00"
	p.UpdatedAt = &updated
	f.items[id] = p
	writeJSON(w, http.StatusOK, p)
}

func (f *fakeAPI) delete(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	id, ok := f.lookup(w, r)
	if !ok {
		return
	}
	delete(f.items, id)
	for i, v := range f.order {
		if v == id {
			f.order = append(f.order[:i], f.order[i+1:]...)
			break
		}
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Item deleted successfully"})
}
