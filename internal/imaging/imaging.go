package imaging

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"io"
	"path/filepath"
	"strings"

	// Registered decoders double as the picker's accept filter.
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"

	"item-gallery/internal/model"
)

// DefaultMaxBytes bounds how much of a selected file is read into memory.
const DefaultMaxBytes = 10 << 20

var (
	ErrUnsupportedFormat = errors.New("unsupported image format (only PNG, JPEG and BMP accepted)")
	ErrTooLarge          = errors.New("image file too large")
)

// AcceptedMediaTypes maps decoder format names to the media types the picker accepts.
var AcceptedMediaTypes = map[string]string{
	"png":  "image/png",
	"jpeg": "image/jpeg",
	"bmp":  "image/bmp",
}

// Accept reports whether mediaType passes the picker's accept filter.
func Accept(mediaType string) bool {
	mediaType = strings.ToLower(strings.TrimSpace(mediaType))
	for _, mt := range AcceptedMediaTypes {
		if mt == mediaType {
			return true
		}
	}
	return false
}

// AcceptAttr returns the value for an HTML file input's accept attribute.
func AcceptAttr() string {
	return "image/png,image/jpeg,image/bmp"
}

// Detect sniffs the image header and returns its media type.
func Detect(data []byte) (string, error) {
	_, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnsupportedFormat, err)
	}
	mediaType, ok := AcceptedMediaTypes[format]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
	return mediaType, nil
}

// Load reads a selected file, up to maxBytes, and returns it with its sniffed media type.
func Load(name string, r io.Reader, maxBytes int64) (model.File, error) {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}
	data, err := io.ReadAll(io.LimitReader(r, maxBytes+1))
	if err != nil {
		return model.File{}, fmt.Errorf("reading image data: %w", err)
	}
	if int64(len(data)) > maxBytes {
		return model.File{}, ErrTooLarge
	}

	mediaType, err := Detect(data)
	if err != nil {
		return model.File{}, err
	}

	return model.File{
		Name:      filepath.Base(name),
		MediaType: mediaType,
		Data:      data,
	}, nil
}
