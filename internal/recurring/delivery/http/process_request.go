package http

import (
	"errors"

	"github.com/gin-gonic/gin"
)

var errIDRequired = errors.New("id is required")

// processListReq binds and validates the list query parameters.
func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processUpdateReq binds and validates the update request body + URI param.
func (h *handler) processUpdateReq(c *gin.Context) (updateReq, error) {
	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.ID = c.Param("id")
	if req.ID == "" {
		return req, errIDRequired
	}
	return req, req.validate()
}

// processPreviewReq binds and validates the preview request body.
func (h *handler) processPreviewReq(c *gin.Context) (previewReq, error) {
	var req previewReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}
