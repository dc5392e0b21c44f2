package model

import "strings"

// Item is an item persisted by the external items API.
type Item struct {
	ID          int    // Server-assigned ID; 0 until the item has been created
	Name        string // Non-empty label
	Description string
	ImagePath   string // Server-side path of the uploaded image; empty when no image is attached
	CreatedAt   string // Server timestamp as sent, not parsed
	UpdatedAt   string
}

// Persisted reports whether the item has been created on the server.
func (i Item) Persisted() bool {
	return i.ID > 0
}

// HasImage reports whether the server has an image stored for the item.
func (i Item) HasImage() bool {
	return i.ImagePath != ""
}

// ImageURL returns the static upload URL for the item's image, or "" without an image.
// Only the final path segment of ImagePath is used.
func (i Item) ImageURL(baseURL string) string {
	if !i.HasImage() {
		return ""
	}
	name := i.ImagePath
	if idx := strings.LastIndex(name, "/"); idx >= 0 {
		name = name[idx+1:]
	}
	return strings.TrimRight(baseURL, "/") + "/uploads/" + name
}

// File is a locally selected blob that has not been uploaded yet.
type File struct {
	Name      string
	MediaType string
	Data      []byte
}

// Empty reports whether there is nothing to upload.
func (f *File) Empty() bool {
	return f == nil || len(f.Data) == 0
}

// Draft is the editable form representation of an Item before submission.
type Draft struct {
	Name        string
	Description string
	File        *File
}

// DraftFrom returns a draft pre-filled from item. The image is never pre-filled.
func DraftFrom(item Item) Draft {
	return Draft{
		Name:        item.Name,
		Description: item.Description,
	}
}
