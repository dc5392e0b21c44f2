package http

import (
	"errors"

	"item-gallery/internal/imaging"
	"item-gallery/internal/item"
	"item-gallery/internal/item/repository"
	"item-gallery/pkg/response"
)

var (
	errInvalidID    = errors.New("invalid item id")
	errItemNotFound = errors.New("item not found")
)

// mapError translates controller and request errors into flash text.
// Superseded actions map to "" since the newer action reports its own outcome.
func (h *handler) mapError(err error) string {
	var rf *repository.RequestFailure
	switch {
	case errors.Is(err, item.ErrSuperseded):
		return ""
	case errors.As(err, &rf):
		return rf.Error()
	case errors.Is(err, item.ErrFormClosed):
		return "The form is no longer open"
	case errors.Is(err, item.ErrEmptyName):
		return "Name is required"
	case errors.Is(err, item.ErrItemNotPersisted):
		return "Item has not been saved yet"
	case errors.Is(err, imaging.ErrUnsupportedFormat):
		return "Only PNG, JPEG and BMP images are accepted"
	case errors.Is(err, imaging.ErrTooLarge):
		return "Image is too large"
	case errors.Is(err, errInvalidID):
		return "Invalid item id"
	case errors.Is(err, errItemNotFound):
		return "Item not found"
	default:
		return response.DefaultErrorMessage
	}
}
