package item

import (
	"context"

	"item-gallery/internal/model"
)

// UseCase is the view state controller: it owns the item list and the single open form.
type UseCase interface {
	// Item list
	Refresh(ctx context.Context) error
	Items() []model.Item
	ImageURL(it model.Item) string

	// Form
	OpenCreate()
	OpenEdit(it model.Item) error
	Cancel()
	SetDraft(name, description string) error
	SelectFile(file model.File) error
	Form() Form

	// Mutations
	Submit(ctx context.Context) error
	Remove(ctx context.Context, id int) error

	Snapshot() State
}
