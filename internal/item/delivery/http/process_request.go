package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"item-gallery/internal/imaging"
	"item-gallery/internal/model"
)

// processIDParam parses the :id path parameter.
func (h *handler) processIDParam(c *gin.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return 0, errInvalidID
	}
	return id, nil
}

// processSubmitReq binds the text fields of the multipart form.
func (h *handler) processSubmitReq(c *gin.Context) (submitReq, error) {
	var req submitReq
	if err := c.ShouldBind(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processSubmitFile loads the file part. An empty or missing part yields nil.
func (h *handler) processSubmitFile(c *gin.Context) (*model.File, error) {
	header, err := c.FormFile("file")
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if header.Size == 0 {
		return nil, nil
	}
	if header.Size > h.maxUpload {
		return nil, imaging.ErrTooLarge
	}

	f, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	file, err := imaging.Load(header.Filename, f, h.maxUpload)
	if err != nil {
		return nil, err
	}
	return &file, nil
}

// processStateReq binds the state query parameters.
func (h *handler) processStateReq(c *gin.Context) (stateReq, error) {
	var req stateReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, nil
}
