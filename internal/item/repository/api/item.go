package api

import (
	"context"
	"errors"

	"item-gallery/internal/item/repository"
	"item-gallery/internal/model"
	pkgLog "item-gallery/pkg/log"
)

type implRepository struct {
	client *Client
	l      pkgLog.Logger
}

// New creates the items repository backed by the items REST API.
func New(client *Client, l pkgLog.Logger) repository.Repository {
	return &implRepository{
		client: client,
		l:      l,
	}
}

func (r *implRepository) List(ctx context.Context, opt repository.ListOptions) ([]model.Item, error) {
	payloads, err := r.client.ListItems(ctx, opt.Skip, opt.Limit)
	if err != nil {
		return nil, r.fail(ctx, repository.OpList, 0, err)
	}

	items := make([]model.Item, 0, len(payloads))
	for _, p := range payloads {
		items = append(items, payloadToItem(p))
	}
	return items, nil
}

func (r *implRepository) Get(ctx context.Context, id int) (model.Item, error) {
	p, err := r.client.GetItem(ctx, id)
	if err != nil {
		return model.Item{}, r.fail(ctx, repository.OpGet, id, err)
	}
	return payloadToItem(*p), nil
}

func (r *implRepository) Create(ctx context.Context, draft model.Draft) (model.Item, error) {
	p, err := r.client.CreateItem(ctx, draftToForm(draft))
	if err != nil {
		return model.Item{}, r.fail(ctx, repository.OpCreate, 0, err)
	}
	return payloadToItem(*p), nil
}

func (r *implRepository) Update(ctx context.Context, id int, draft model.Draft) (model.Item, error) {
	p, err := r.client.UpdateItem(ctx, id, draftToForm(draft))
	if err != nil {
		return model.Item{}, r.fail(ctx, repository.OpUpdate, id, err)
	}
	return payloadToItem(*p), nil
}

func (r *implRepository) Delete(ctx context.Context, id int) error {
	if err := r.client.DeleteItem(ctx, id); err != nil {
		return r.fail(ctx, repository.OpDelete, id, err)
	}
	return nil
}

// fail logs the detailed cause and returns the fixed-message RequestFailure.
func (r *implRepository) fail(ctx context.Context, op repository.Operation, id int, err error) error {
	status := 0
	var se *StatusError
	if errors.As(err, &se) {
		status = se.StatusCode
	}
	if id > 0 {
		r.l.Errorf(ctx, "items repository: %s item %d failed (status=%d): %v", op, id, status, err)
	} else {
		r.l.Errorf(ctx, "items repository: %s failed (status=%d): %v", op, status, err)
	}
	return repository.NewRequestFailure(op, status, err)
}

// payloadToItem converts an API ItemPayload to the internal model.Item.
func payloadToItem(p ItemPayload) model.Item {
	it := model.Item{
		Name:        p.Name,
		Description: p.Description,
		CreatedAt:   p.CreatedAt,
	}
	if p.ID != nil {
		it.ID = *p.ID
	}
	if p.ImagePath != nil {
		it.ImagePath = *p.ImagePath
	}
	if p.UpdatedAt != nil {
		it.UpdatedAt = *p.UpdatedAt
	}
	return it
}

// draftToForm drops empty files so the server keeps the stored image.
func draftToForm(d model.Draft) ItemForm {
	form := ItemForm{
		Name:        d.Name,
		Description: d.Description,
	}
	if !d.File.Empty() {
		form.File = &FormFile{
			Filename:    d.File.Name,
			ContentType: d.File.MediaType,
			Data:        d.File.Data,
		}
	}
	return form
}
