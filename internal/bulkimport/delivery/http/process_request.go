package http

import (
	"github.com/gin-gonic/gin"
)

// processPreviewReq binds and validates the preview request body.
func (h *handler) processPreviewReq(c *gin.Context) (previewReq, error) {
	var req previewReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processConfirmReq binds and validates the confirm request body.
func (h *handler) processConfirmReq(c *gin.Context) (confirmReq, error) {
	var req confirmReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}
