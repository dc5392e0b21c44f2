package http

import (
	"item-gallery/internal/imaging"
	"item-gallery/internal/item"
)

// --- Request DTOs ---

type submitReq struct {
	Name        string `form:"name"`
	Description string `form:"description"`
}

type stateReq struct {
	Refresh bool `form:"refresh"`
}

// --- Page view models ---

type itemView struct {
	ID          int
	Name        string
	Description string
	ImageURL    string
}

type formView struct {
	Open        bool
	Title       string
	SubmitLabel string
	Name        string
	Description string
	FileName    string
}

type indexPage struct {
	Flash  string
	Accept string
	Items  []itemView
	Form   formView
}

func (h *handler) newIndexPage(s item.State, flash string) indexPage {
	items := make([]itemView, len(s.Items))
	for i, it := range s.Items {
		items[i] = itemView{
			ID:          it.ID,
			Name:        it.Name,
			Description: it.Description,
			ImageURL:    h.uc.ImageURL(it),
		}
	}

	form := formView{
		Open:        s.Form.Open(),
		Title:       "Add New Item",
		SubmitLabel: "Create",
		Name:        s.Form.Draft.Name,
		Description: s.Form.Draft.Description,
	}
	if s.Form.Mode == item.FormEdit {
		form.Title = "Edit Item"
		form.SubmitLabel = "Update"
	}
	if !s.Form.Draft.File.Empty() {
		form.FileName = s.Form.Draft.File.Name
	}

	return indexPage{
		Flash:  flash,
		Accept: imaging.AcceptAttr(),
		Items:  items,
		Form:   form,
	}
}

// --- Response DTOs ---

type itemResp struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	ImagePath   *string `json:"image_path"`
	ImageURL    string  `json:"image_url,omitempty"`
	CreatedAt   string  `json:"created_at,omitempty"`
	UpdatedAt   string  `json:"updated_at,omitempty"`
}

type formResp struct {
	Mode        string `json:"mode"`
	EditingID   int    `json:"editing_id,omitempty"`
	Name        string `json:"name"`
	Description string `json:"description"`
	FileName    string `json:"file_name,omitempty"`
}

type stateResp struct {
	Items []itemResp `json:"items"`
	Form  formResp   `json:"form"`
}

func (h *handler) newStateResp(s item.State) stateResp {
	items := make([]itemResp, len(s.Items))
	for i, it := range s.Items {
		r := itemResp{
			ID:          it.ID,
			Name:        it.Name,
			Description: it.Description,
			ImageURL:    h.uc.ImageURL(it),
			CreatedAt:   it.CreatedAt,
			UpdatedAt:   it.UpdatedAt,
		}
		if it.HasImage() {
			path := it.ImagePath
			r.ImagePath = &path
		}
		items[i] = r
	}

	form := formResp{
		Mode:        s.Form.Mode.String(),
		EditingID:   s.Form.EditingID,
		Name:        s.Form.Draft.Name,
		Description: s.Form.Draft.Description,
	}
	if !s.Form.Draft.File.Empty() {
		form.FileName = s.Form.Draft.File.Name
	}
	return stateResp{Items: items, Form: form}
}
