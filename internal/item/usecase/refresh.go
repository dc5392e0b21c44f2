package usecase

import (
	"context"
	"slices"
	"strconv"

	"item-gallery/internal/item/repository"
	"item-gallery/internal/model"
)

// Refresh replaces the held items with the server's list.
// Concurrent calls within the same mutation generation share one request.
// On failure the previous list is kept.
func (uc *implUseCase) Refresh(ctx context.Context) error {
	uc.mu.Lock()
	gen := uc.mutationGen
	uc.mu.Unlock()

	ch := uc.refreshGroup.DoChan(strconv.FormatUint(gen, 10), func() (any, error) {
		rctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), uc.refreshTimeout)
		defer cancel()

		items, err := uc.repo.List(rctx, repository.ListOptions{})
		if err != nil {
			return nil, err
		}
		uc.applyItems(gen, items)
		return len(items), nil
	})

	select {
	case <-ctx.Done():
		return ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			uc.l.Errorf(ctx, "uc.Refresh List: %v", res.Err)
			return res.Err
		}
		if res.Shared {
			uc.l.Debugf(ctx, "uc.Refresh: joined in-flight list (gen=%d, items=%v)", gen, res.Val)
		}
		return nil
	}
}

// applyItems stores items unless a list from a newer generation is already held.
func (uc *implUseCase) applyItems(gen uint64, items []model.Item) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if gen < uc.appliedGen {
		return
	}
	uc.appliedGen = gen
	if items == nil {
		items = []model.Item{}
	}
	uc.items = items
}

// markMutated records a server-acknowledged mutation.
func (uc *implUseCase) markMutated() {
	uc.mu.Lock()
	uc.mutationGen++
	uc.mu.Unlock()
}

func (uc *implUseCase) Items() []model.Item {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return slices.Clone(uc.items)
}

func (uc *implUseCase) ImageURL(it model.Item) string {
	return it.ImageURL(uc.baseURL)
}
