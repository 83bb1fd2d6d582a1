package http

import (
	"github.com/gin-gonic/gin"

	"agency-content-ops/internal/middleware"
	"agency-content-ops/pkg/response"
)

// Preview godoc
// @Summary     Preview a bulk import
// @Description Parses pasted text into tasks and spreads them across consecutive days at the given rate. Nothing is persisted.
// @Tags        Imports
// @Accept      json
// @Produce     json
// @Param       body body previewReq true "Import to preview"
// @Success     200 {object} previewResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/imports/preview [POST]
func (h *handler) Preview(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.ScopeFromContext(c)

	req, err := h.processPreviewReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	input, err := req.toInput()
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Preview(ctx, sc, input)
	if err != nil {
		h.l.Errorf(ctx, "uc.Preview: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newPreviewResp(output))
}

// Confirm godoc
// @Summary     Confirm a bulk import
// @Description Revalidates the import and forwards the confirmation payload to the platform for persistence.
// @Tags        Imports
// @Accept      json
// @Produce     json
// @Param       body body confirmReq true "Import to confirm"
// @Success     200 {object} confirmResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     502 {object} response.Resp "Platform import failed"
// @Router      /api/v1/imports [POST]
func (h *handler) Confirm(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.ScopeFromContext(c)

	req, err := h.processConfirmReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	input, err := req.toInput()
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Confirm(ctx, sc, input)
	if err != nil {
		h.l.Errorf(ctx, "uc.Confirm: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newConfirmResp(output))
}
