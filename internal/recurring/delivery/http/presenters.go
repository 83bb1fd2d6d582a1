package http

import (
	"time"

	"agency-content-ops/internal/recurring"
	"agency-content-ops/pkg/recurrence"
)

// --- Request DTOs ---

type listReq struct {
	Active bool `form:"active"`
	Limit  int  `form:"limit"`
	Offset int  `form:"offset"`
}

func (r listReq) validate() error { return nil }

func (r listReq) toInput() recurring.ListInput {
	limit := r.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if r.Offset < 0 {
		r.Offset = 0
	}
	return recurring.ListInput{
		ActiveOnly: r.Active,
		Limit:      limit,
		Offset:     r.Offset,
	}
}

// ---

type updateReq struct {
	ID         string  `json:"-"` // populated from URI param
	IsActive   *bool   `json:"is_active"`
	Frequency  *string `json:"frequency"  binding:"omitempty,oneof=daily weekly biweekly monthly"`
	DayOfWeek  *int    `json:"day_of_week"  binding:"omitempty,min=0,max=6"`
	DayOfMonth *int    `json:"day_of_month" binding:"omitempty,min=1,max=31"`
}

func (r updateReq) validate() error { return nil }

func (r updateReq) toInput() recurring.UpdateInput {
	return recurring.UpdateInput{
		ID:         r.ID,
		IsActive:   r.IsActive,
		Frequency:  r.Frequency,
		DayOfWeek:  r.DayOfWeek,
		DayOfMonth: r.DayOfMonth,
	}
}

// ---

type previewReq struct {
	Frequency        string  `json:"frequency" binding:"required"`
	DayOfWeek        *int    `json:"day_of_week"  binding:"omitempty,min=0,max=6"`
	DayOfMonth       *int    `json:"day_of_month" binding:"omitempty,min=1,max=31"`
	IsActive         *bool   `json:"is_active"`
	NextGenerationAt *string `json:"next_generation_at"` // ISO-8601 or null
}

func (r previewReq) validate() error { return nil }

func (r previewReq) toInput() (recurring.PreviewInput, error) {
	input := recurring.PreviewInput{
		Frequency:  r.Frequency,
		DayOfWeek:  r.DayOfWeek,
		DayOfMonth: r.DayOfMonth,
		IsActive:   true,
	}
	if r.IsActive != nil {
		input.IsActive = *r.IsActive
	}
	if r.NextGenerationAt != nil && *r.NextGenerationAt != "" {
		at, err := time.Parse(time.RFC3339, *r.NextGenerationAt)
		if err != nil {
			return recurring.PreviewInput{}, err
		}
		input.NextGenerationAt = &at
	}
	return input, nil
}

// --- Response DTOs ---

type templateResp struct {
	ID          string  `json:"id"`
	ClientID    string  `json:"client_id"`
	Title       string  `json:"title"`
	Frequency   string  `json:"frequency"`
	DayOfWeek   *int    `json:"day_of_week"`
	DayOfMonth  *int    `json:"day_of_month"`
	IsActive    bool    `json:"is_active"`
	Description string  `json:"description"`
	NextRun     string  `json:"next_run"`        // date, "Paused" or "Unknown"
	NextRunAt   *string `json:"next_run_at"`     // RFC3339, null unless scheduled
	CreateTime  string  `json:"create_time"`
	UpdateTime  string  `json:"update_time"`
}

func newTemplateResp(v recurring.TemplateView) templateResp {
	resp := templateResp{
		ID:          v.Template.ID,
		ClientID:    v.Template.ClientID,
		Title:       v.Template.Title,
		Frequency:   string(v.Template.Frequency),
		DayOfWeek:   v.Template.DayOfWeek,
		DayOfMonth:  v.Template.DayOfMonth,
		IsActive:    v.Template.IsActive,
		Description: v.Description,
		NextRun:     v.NextRun.String(),
		CreateTime:  v.Template.CreateTime,
		UpdateTime:  v.Template.UpdateTime,
	}
	if v.NextRun.Status == recurrence.StatusScheduled {
		at := v.NextRun.At.Format(time.RFC3339)
		resp.NextRunAt = &at
	}
	return resp
}

type listResp struct {
	RecurringTasks []templateResp `json:"recurring_tasks"`
	Count          int            `json:"count"`
}

func (h *handler) newListResp(out recurring.ListOutput) listResp {
	templates := make([]templateResp, len(out.Templates))
	for i, v := range out.Templates {
		templates[i] = newTemplateResp(v)
	}
	return listResp{
		RecurringTasks: templates,
		Count:          out.Count,
	}
}

type detailResp struct {
	RecurringTask templateResp `json:"recurring_task"`
}

func (h *handler) newDetailResp(out recurring.DetailOutput) detailResp {
	return detailResp{RecurringTask: newTemplateResp(out.Template)}
}

type previewResp struct {
	Description string  `json:"description"`
	NextRun     string  `json:"next_run"`
	NextRunAt   *string `json:"next_run_at"`
}

func (h *handler) newPreviewResp(out recurring.PreviewOutput) previewResp {
	resp := previewResp{
		Description: out.Description,
		NextRun:     out.NextRun.String(),
	}
	if out.NextRun.Status == recurrence.StatusScheduled {
		at := out.NextRun.At.Format(time.RFC3339)
		resp.NextRunAt = &at
	}
	return resp
}
