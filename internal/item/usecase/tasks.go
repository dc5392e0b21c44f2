package usecase

import (
	"context"
	"errors"
	"sync"

	"item-gallery/internal/item"
)

// taskSet tracks the in-flight mutation per item id. Create uses key 0.
type taskSet struct {
	mu    sync.Mutex
	seq   uint64
	tasks map[int]task
}

type task struct {
	seq    uint64
	cancel context.CancelCauseFunc
}

func newTaskSet() *taskSet {
	return &taskSet{tasks: make(map[int]task)}
}

// start cancels any running task on key and registers a new one.
// The returned func must be called when the task finishes.
func (s *taskSet) start(ctx context.Context, key int) (context.Context, func()) {
	tctx, cancel := context.WithCancelCause(ctx)

	s.mu.Lock()
	if prev, ok := s.tasks[key]; ok {
		prev.cancel(item.ErrSuperseded)
	}
	s.seq++
	seq := s.seq
	s.tasks[key] = task{seq: seq, cancel: cancel}
	s.mu.Unlock()

	return tctx, func() {
		s.mu.Lock()
		if t, ok := s.tasks[key]; ok && t.seq == seq {
			delete(s.tasks, key)
		}
		s.mu.Unlock()
		cancel(nil)
	}
}

func superseded(ctx context.Context) bool {
	return errors.Is(context.Cause(ctx), item.ErrSuperseded)
}
