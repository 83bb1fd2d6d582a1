package http

import (
	"time"

	"agency-content-ops/internal/bulkimport"
	"agency-content-ops/pkg/response"
)

// --- Request DTOs ---

type previewReq struct {
	RawText        string `json:"raw_text"      binding:"required"`
	TasksPerDay    int    `json:"tasks_per_day" binding:"required,min=1,max=10"`
	ExcludeIndices []int  `json:"exclude_indices"`
	StartDate      string `json:"start_date"` // "2006-01-02", optional
}

func (r previewReq) validate() error { return nil }

func (r previewReq) toInput() (bulkimport.PreviewInput, error) {
	input := bulkimport.PreviewInput{
		RawText:        r.RawText,
		TasksPerDay:    r.TasksPerDay,
		ExcludeIndices: r.ExcludeIndices,
	}
	if r.StartDate != "" {
		start, err := time.Parse(response.DateFormat, r.StartDate)
		if err != nil {
			return bulkimport.PreviewInput{}, err
		}
		input.StartDate = &start
	}
	return input, nil
}

type confirmReq struct {
	RawText        string `json:"raw_text"      binding:"required"`
	TasksPerDay    int    `json:"tasks_per_day" binding:"required,min=1,max=10"`
	ExcludeIndices []int  `json:"exclude_indices"`
	StartDate      string `json:"start_date"`
}

func (r confirmReq) validate() error { return nil }

func (r confirmReq) toInput() (bulkimport.ConfirmInput, error) {
	input := bulkimport.ConfirmInput{
		RawText:        r.RawText,
		TasksPerDay:    r.TasksPerDay,
		ExcludeIndices: r.ExcludeIndices,
	}
	if r.StartDate != "" {
		start, err := time.Parse(response.DateFormat, r.StartDate)
		if err != nil {
			return bulkimport.ConfirmInput{}, err
		}
		input.StartDate = &start
	}
	return input, nil
}

// --- Response DTOs ---

type taskPreviewResp struct {
	Title         string        `json:"title"`
	ProjectTag    string        `json:"project_tag,omitempty"`
	OriginalIndex int           `json:"original_index"`
	DueDate       response.Date `json:"due_date"`
}

type previewResp struct {
	Tasks     []taskPreviewResp `json:"tasks"`
	TaskCount int               `json:"task_count"`
	DayCount  int               `json:"day_count"`
	StartDate response.Date     `json:"start_date"`
	EndDate   response.Date     `json:"end_date"`
}

func (h *handler) newPreviewResp(out bulkimport.PreviewOutput) previewResp {
	tasks := make([]taskPreviewResp, len(out.Tasks))
	for i, t := range out.Tasks {
		tasks[i] = taskPreviewResp{
			Title:         t.Title,
			ProjectTag:    t.ProjectTag,
			OriginalIndex: t.OriginalIndex,
			DueDate:       response.Date(t.DueDate),
		}
	}
	return previewResp{
		Tasks:     tasks,
		TaskCount: out.TaskCount,
		DayCount:  out.DayCount,
		StartDate: response.Date(out.StartDate),
		EndDate:   response.Date(out.EndDate),
	}
}

type confirmResp struct {
	ImportID  string `json:"import_id"`
	TaskCount int    `json:"task_count"`
}

func (h *handler) newConfirmResp(out bulkimport.ConfirmOutput) confirmResp {
	return confirmResp{
		ImportID:  out.ImportID,
		TaskCount: out.TaskCount,
	}
}
