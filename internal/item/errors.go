package item

import "errors"

var (
	ErrFormClosed       = errors.New("no item form is open")
	ErrEmptyName        = errors.New("item name is required")
	ErrItemNotPersisted = errors.New("item has not been created yet")
	ErrSuperseded       = errors.New("action superseded by a newer action on the same item")
)
