package http

import (
	"github.com/gin-gonic/gin"

	"agency-content-ops/internal/middleware"
	"agency-content-ops/pkg/response"
)

// List godoc
// @Summary     List recurring tasks
// @Description Returns the workspace's recurring task templates with computed cadence descriptions and next run times.
// @Tags        Recurring
// @Accept      json
// @Produce     json
// @Param       active query bool false "Only active templates"
// @Param       limit  query int  false "Page size (default: 20)"
// @Param       offset query int  false "Page offset (default: 0)"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/recurring [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.ScopeFromContext(c)

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.List(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newListResp(output))
}

// Detail godoc
// @Summary     Get recurring task detail
// @Description Returns a single recurring task template by its ID.
// @Tags        Recurring
// @Accept      json
// @Produce     json
// @Param       id path string true "Template ID"
// @Success     200 {object} detailResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/recurring/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.ScopeFromContext(c)

	id := c.Param("id")
	if id == "" {
		response.Error(c, errIDRequired, nil)
		return
	}

	output, err := h.uc.Detail(ctx, sc, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.Detail: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newDetailResp(output))
}

// Update godoc
// @Summary     Update a recurring task
// @Description Applies pause/resume and schedule changes. All fields are optional (partial update).
// @Tags        Recurring
// @Accept      json
// @Produce     json
// @Param       id   path string    true "Template ID"
// @Param       body body updateReq true "Fields to update"
// @Success     200 {object} detailResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/recurring/{id} [PATCH]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.ScopeFromContext(c)

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Update(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Update: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newDetailResp(output))
}

// Preview godoc
// @Summary     Preview a schedule
// @Description Computes the cadence description and next occurrence for an unsaved schedule.
// @Tags        Recurring
// @Accept      json
// @Produce     json
// @Param       body body previewReq true "Schedule to preview"
// @Success     200 {object} previewResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/recurring/preview [POST]
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
