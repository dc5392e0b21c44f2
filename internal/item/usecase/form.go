package usecase

import (
	"slices"

	"item-gallery/internal/imaging"
	"item-gallery/internal/item"
	"item-gallery/internal/model"
)

// OpenCreate opens an empty create form, replacing any open draft.
func (uc *implUseCase) OpenCreate() {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	uc.form = item.Form{Mode: item.FormCreate}
	uc.formGen++
}

// OpenEdit opens the edit form pre-filled from it. The image is not pre-filled.
func (uc *implUseCase) OpenEdit(it model.Item) error {
	if !it.Persisted() {
		return item.ErrItemNotPersisted
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	uc.form = item.Form{
		Mode:      item.FormEdit,
		EditingID: it.ID,
		Draft:     model.DraftFrom(it),
	}
	uc.formGen++
	return nil
}

// Cancel discards the draft. No request is made.
func (uc *implUseCase) Cancel() {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.closeFormLocked()
}

func (uc *implUseCase) SetDraft(name, description string) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if !uc.form.Open() {
		return item.ErrFormClosed
	}
	uc.form.Draft.Name = name
	uc.form.Draft.Description = description
	return nil
}

// SelectFile attaches file to the open draft. Only picker-accepted media types are taken.
func (uc *implUseCase) SelectFile(file model.File) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if !uc.form.Open() {
		return item.ErrFormClosed
	}
	if !imaging.Accept(file.MediaType) {
		return imaging.ErrUnsupportedFormat
	}
	uc.form.Draft.File = &file
	return nil
}

func (uc *implUseCase) Form() item.Form {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return copyForm(uc.form)
}

func (uc *implUseCase) Snapshot() item.State {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return item.State{
		Items: slices.Clone(uc.items),
		Form:  copyForm(uc.form),
	}
}

// closeFormIf closes the form only if it has not been reopened or closed since gen.
func (uc *implUseCase) closeFormIf(gen uint64) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if uc.formGen == gen {
		uc.closeFormLocked()
	}
}

func (uc *implUseCase) closeFormLocked() {
	uc.form = item.Form{}
	uc.formGen++
}

func copyForm(f item.Form) item.Form {
	if f.Draft.File != nil {
		file := *f.Draft.File
		file.Data = slices.Clone(file.Data)
		f.Draft.File = &file
	}
	return f
}
