package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/render"

	"item-gallery/pkg/response"
)

// Index renders the item grid and, when open, the item form.
func (h *handler) Index(c *gin.Context) {
	h.render(c, "")
}

// Refresh reloads the item list.
func (h *handler) Refresh(c *gin.Context) {
	ctx := c.Request.Context()
	if err := h.uc.Refresh(ctx); err != nil {
		h.fail(c, "uc.Refresh", err)
		return
	}
	h.back(c)
}

// OpenCreate opens an empty item form.
func (h *handler) OpenCreate(c *gin.Context) {
	h.uc.OpenCreate()
	h.back(c)
}

// OpenEdit opens the form for an item in the current list.
func (h *handler) OpenEdit(c *gin.Context) {
	id, err := h.processIDParam(c)
	if err != nil {
		h.fail(c, "processIDParam", err)
		return
	}

	for _, it := range h.uc.Items() {
		if it.ID == id {
			if err := h.uc.OpenEdit(it); err != nil {
				h.fail(c, "uc.OpenEdit", err)
				return
			}
			h.back(c)
			return
		}
	}
	h.fail(c, "uc.OpenEdit", errItemNotFound)
}

// Cancel closes the form without saving.
func (h *handler) Cancel(c *gin.Context) {
	h.uc.Cancel()
	h.back(c)
}

// Submit copies the posted fields into the draft and saves it.
func (h *handler) Submit(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSubmitReq(c)
	if err != nil {
		h.fail(c, "processSubmitReq", err)
		return
	}

	// The typed fields are kept even when the image is rejected.
	if err := h.uc.SetDraft(req.Name, req.Description); err != nil {
		h.fail(c, "uc.SetDraft", err)
		return
	}

	file, err := h.processSubmitFile(c)
	if err != nil {
		h.fail(c, "processSubmitFile", err)
		return
	}
	if file != nil {
		if err := h.uc.SelectFile(*file); err != nil {
			h.fail(c, "uc.SelectFile", err)
			return
		}
	}
	if err := h.uc.Submit(ctx); err != nil {
		h.fail(c, "uc.Submit", err)
		return
	}
	h.back(c)
}

// Delete removes an item.
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processIDParam(c)
	if err != nil {
		h.fail(c, "processIDParam", err)
		return
	}
	if err := h.uc.Remove(ctx, id); err != nil {
		h.fail(c, "uc.Remove", err)
		return
	}
	h.back(c)
}

// State godoc
// @Summary     Current gallery state
// @Description Returns the held item list and form. With refresh=true the list is reloaded first;
// @Description a failed reload returns 502 with the stale state in data.
// @Tags        Items
// @Produce     json
// @Param       refresh query bool false "Reload the list before responding"
// @Success     200 {object} stateResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     502 {object} response.Resp "Items API unavailable"
// @Router      /api/v1/state [GET]
func (h *handler) State(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processStateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	if req.Refresh {
		if err := h.uc.Refresh(ctx); err != nil {
			h.l.Warnf(ctx, "http.State uc.Refresh: %v", err)
			response.ErrorWithStatus(c, http.StatusBadGateway, err, map[string]any{
				"state": h.newStateResp(h.uc.Snapshot()),
			})
			return
		}
	}

	response.OK(c, h.newStateResp(h.uc.Snapshot()))
}

// back redirects to the gallery page after a successful action.
func (h *handler) back(c *gin.Context) {
	c.Redirect(http.StatusSeeOther, "/")
}

// fail renders the gallery page with the error as flash text.
func (h *handler) fail(c *gin.Context, op string, err error) {
	flash := h.mapError(err)
	if flash == "" {
		h.back(c)
		return
	}
	h.l.Warnf(c.Request.Context(), "http %s: %v", op, err)
	h.render(c, flash)
}

func (h *handler) render(c *gin.Context, flash string) {
	c.Render(http.StatusOK, render.HTML{
		Template: h.tmpl,
		Name:     "index.html",
		Data:     h.newIndexPage(h.uc.Snapshot(), flash),
	})
}
