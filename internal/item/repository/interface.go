package repository

import (
	"context"

	"item-gallery/internal/model"
)

// Repository is the item repository client. Each call is exactly one round trip.
type Repository interface {
	List(ctx context.Context, opt ListOptions) ([]model.Item, error)
	Get(ctx context.Context, id int) (model.Item, error)
	Create(ctx context.Context, draft model.Draft) (model.Item, error)
	Update(ctx context.Context, id int, draft model.Draft) (model.Item, error)
	Delete(ctx context.Context, id int) error
}
