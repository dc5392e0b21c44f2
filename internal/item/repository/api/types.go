package api

import "fmt"

// ItemPayload is the items API item object.
type ItemPayload struct {
	ID          *int    `json:"id,omitempty"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	ImagePath   *string `json:"image_path"`
	CreatedAt   string  `json:"created_at,omitempty"`
	UpdatedAt   *string `json:"updated_at,omitempty"`
}

// ItemForm is the multipart body for create and update.
type ItemForm struct {
	Name        string
	Description string
	File        *FormFile
}

// FormFile is the optional file part of an ItemForm.
type FormFile struct {
	Filename    string
	ContentType string
	Data        []byte
}

// StatusError is returned for any response outside the 2xx range.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("items API error %d: %s", e.StatusCode, e.Body)
}
