package usecase

import (
	"context"
	"net/http"
	"sync"

	"item-gallery/internal/item/repository"
	"item-gallery/internal/model"
)

// Mock logger for testing
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

// mockRepository keeps items in memory. Hooks run before the default behaviour
// and may block or fail a call; call is the 1-based call number for that method.
type mockRepository struct {
	mu     sync.Mutex
	nextID int
	items  []model.Item

	listHook   func(ctx context.Context, call int) ([]model.Item, bool, error)
	createErr  error
	updateErr  error
	updateHook func(ctx context.Context, call int) (model.Item, bool, error)
	deleteHook func(ctx context.Context, call int) error

	listCalls   int
	createCalls int
	updateCalls int
	deleteCalls int
	lastDraft   model.Draft
	lastUpdated int
}

func newMockRepository(items ...model.Item) *mockRepository {
	m := &mockRepository{nextID: 1}
	for _, it := range items {
		m.items = append(m.items, it)
		if it.ID >= m.nextID {
			m.nextID = it.ID + 1
		}
	}
	return m
}

func (m *mockRepository) List(ctx context.Context, opt repository.ListOptions) ([]model.Item, error) {
	m.mu.Lock()
	m.listCalls++
	call := m.listCalls
	hook := m.listHook
	m.mu.Unlock()

	if hook != nil {
		if items, handled, err := hook(ctx, call); handled {
			if err != nil {
				return nil, repository.NewRequestFailure(repository.OpList, 0, err)
			}
			return items, nil
		}
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]model.Item(nil), m.items...), nil
}

func (m *mockRepository) Get(ctx context.Context, id int) (model.Item, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, it := range m.items {
		if it.ID == id {
			return it, nil
		}
	}
	return model.Item{}, repository.NewRequestFailure(repository.OpGet, http.StatusNotFound, nil)
}

func (m *mockRepository) Create(ctx context.Context, draft model.Draft) (model.Item, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.createCalls++
	m.lastDraft = draft
	if m.createErr != nil {
		return model.Item{}, repository.NewRequestFailure(repository.OpCreate, http.StatusInternalServerError, m.createErr)
	}

	it := model.Item{ID: m.nextID, Name: draft.Name, Description: draft.Description}
	if !draft.File.Empty() {
		it.ImagePath = "uploads/20240101_120000_" + draft.File.Name
	}
	m.nextID++
	m.items = append(m.items, it)
	return it, nil
}

func (m *mockRepository) Update(ctx context.Context, id int, draft model.Draft) (model.Item, error) {
	m.mu.Lock()
	m.updateCalls++
	call := m.updateCalls
	hook := m.updateHook
	m.lastDraft = draft
	m.lastUpdated = id
	m.mu.Unlock()

	if hook != nil {
		if it, handled, err := hook(ctx, call); handled {
			if err != nil {
				return model.Item{}, repository.NewRequestFailure(repository.OpUpdate, 0, err)
			}
			return it, nil
		}
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.updateErr != nil {
		return model.Item{}, repository.NewRequestFailure(repository.OpUpdate, http.StatusInternalServerError, m.updateErr)
	}

	for i, it := range m.items {
		if it.ID == id {
			it.Name = draft.Name
			it.Description = draft.Description
			if !draft.File.Empty() {
				it.ImagePath = "uploads/20240101_120000_" + draft.File.Name
			}
			m.items[i] = it
			return it, nil
		}
	}
	return model.Item{}, repository.NewRequestFailure(repository.OpUpdate, http.StatusNotFound, nil)
}

func (m *mockRepository) Delete(ctx context.Context, id int) error {
	m.mu.Lock()
	m.deleteCalls++
	call := m.deleteCalls
	hook := m.deleteHook
	m.mu.Unlock()

	if hook != nil {
		if err := hook(ctx, call); err != nil {
			return repository.NewRequestFailure(repository.OpDelete, 0, err)
		}
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	for i, it := range m.items {
		if it.ID == id {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return nil
		}
	}
	return repository.NewRequestFailure(repository.OpDelete, http.StatusNotFound, nil)
}

// running reports how many tasks are in flight.
func (s *taskSet) running() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tasks)
}

func (m *mockRepository) counts() (list, create, update, del int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.listCalls, m.createCalls, m.updateCalls, m.deleteCalls
}
