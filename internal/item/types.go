package item

import "item-gallery/internal/model"

// FormMode is the state of the create/edit form.
type FormMode int

const (
	FormClosed FormMode = iota
	FormCreate
	FormEdit
)

func (m FormMode) String() string {
	switch m {
	case FormCreate:
		return "create"
	case FormEdit:
		return "edit"
	default:
		return "closed"
	}
}

// Form is a copy of the form state. EditingID is set only in FormEdit.
type Form struct {
	Mode      FormMode
	EditingID int
	Draft     model.Draft
}

// Open reports whether a draft is in progress.
func (f Form) Open() bool {
	return f.Mode != FormClosed
}

// State is a point-in-time copy of everything the presentation layer renders.
type State struct {
	Items []model.Item
	Form  Form
}
