package http

import (
	"embed"
	"html/template"

	"item-gallery/internal/imaging"
	"item-gallery/internal/item"
	"item-gallery/pkg/log"
)

//go:embed templates/*.html
var templatesFS embed.FS

type handler struct {
	l         log.Logger
	uc        item.UseCase
	tmpl      *template.Template
	maxUpload int64
}

// New creates the HTTP handler for the item gallery pages.
func New(l log.Logger, uc item.UseCase) (*handler, error) {
	tmpl, err := template.ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &handler{
		l:         l,
		uc:        uc,
		tmpl:      tmpl,
		maxUpload: imaging.DefaultMaxBytes,
	}, nil
}
