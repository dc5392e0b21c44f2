package http

import (
	"github.com/gin-gonic/gin"

	"item-gallery/internal/middleware"
)

// RegisterRoutes maps the gallery page and its form actions.
// Every mutating route is rate limited per client IP.
func RegisterRoutes(r gin.IRouter, h *handler, mw middleware.Middleware) {
	r.GET("/", h.Index)
	r.POST("/refresh", mw.RateLimit(), h.Refresh)

	items := r.Group("/items", mw.RateLimit())
	{
		items.POST("/new", h.OpenCreate)
		items.POST("/:id/edit", h.OpenEdit)
		items.POST("/:id/delete", h.Delete)
	}

	form := r.Group("/form", mw.RateLimit())
	{
		form.POST("/cancel", h.Cancel)
		form.POST("/submit", h.Submit)
	}

	r.GET("/api/v1/state", h.State)
}
