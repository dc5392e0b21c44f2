package usecase

import (
	"context"

	"item-gallery/internal/item"
	"item-gallery/internal/item/repository"
	"item-gallery/internal/model"
	pkgLog "item-gallery/pkg/log"
)

// Submit sends the open draft: Update in edit mode, Create otherwise.
// On failure the form and draft stay as they were. A call that the server
// acknowledged counts as saved even if a newer action on the item started meanwhile.
func (uc *implUseCase) Submit(ctx context.Context) error {
	uc.mu.Lock()
	form := uc.form
	formGen := uc.formGen
	uc.mu.Unlock()

	if !form.Open() {
		return item.ErrFormClosed
	}
	if form.Draft.Name == "" {
		return item.ErrEmptyName
	}

	key := 0
	if form.Mode == item.FormEdit {
		key = form.EditingID
	}
	ctx = pkgLog.WithFields(ctx, "op", "submit", "mode", form.Mode.String(), "item_id", key)

	tctx, done := uc.tasks.start(ctx, key)
	defer done()

	var (
		saved model.Item
		err   error
	)
	if form.Mode == item.FormEdit {
		saved, err = uc.repo.Update(tctx, form.EditingID, form.Draft)
	} else {
		saved, err = uc.repo.Create(tctx, form.Draft)
	}
	if err != nil {
		if superseded(tctx) {
			uc.l.Infof(ctx, "uc.Submit: superseded by a newer action")
			return item.ErrSuperseded
		}
		uc.l.Errorf(ctx, "uc.Submit %s: %v", form.Mode, err)
		return err
	}
	uc.markMutated()

	uc.l.Infof(ctx, "uc.Submit: saved item %d", saved.ID)
	uc.closeFormIf(formGen)
	// Refresh failures are logged by Refresh; the mutation itself succeeded.
	_ = uc.Refresh(ctx)
	return nil
}

// Remove deletes the item with id and refreshes the list.
// A 404 still refreshes since the item is gone either way.
func (uc *implUseCase) Remove(ctx context.Context, id int) error {
	if id <= 0 {
		return item.ErrItemNotPersisted
	}
	ctx = pkgLog.WithFields(ctx, "op", "delete", "item_id", id)

	tctx, done := uc.tasks.start(ctx, id)
	defer done()

	err := uc.repo.Delete(tctx, id)
	if err != nil {
		if superseded(tctx) {
			uc.l.Infof(ctx, "uc.Remove: superseded by a newer action")
			return item.ErrSuperseded
		}
		uc.l.Errorf(ctx, "uc.Remove Delete: %v", err)
		if repository.IsNotFound(err) {
			_ = uc.Refresh(ctx)
		}
		return err
	}

	uc.markMutated()
	_ = uc.Refresh(ctx)
	return nil
}
