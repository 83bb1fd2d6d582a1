package platform

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Client is the HTTP wrapper for the platform REST API's recurring-task
// endpoints.
type Client struct {
	baseURL     string
	accessToken string
	httpClient  *http.Client
}

// NewClient creates a new platform HTTP client.
func NewClient(baseURL, accessToken string) *Client {
	return &Client{
		baseURL:     baseURL,
		accessToken: accessToken,
		httpClient:  &http.Client{},
	}
}

// recurringTaskDTO mirrors the platform API's recurring task record.
type recurringTaskDTO struct {
	ID               string  `json:"id"`
	WorkspaceID      string  `json:"workspace_id"`
	ClientID         string  `json:"client_id"`
	Title            string  `json:"title"`
	Frequency        string  `json:"frequency"`
	DayOfWeek        *int    `json:"day_of_week"`
	DayOfMonth       *int    `json:"day_of_month"`
	IsActive         bool    `json:"is_active"`
	NextGenerationAt *string `json:"next_generation_at"` // ISO-8601 or null
	CreateTime       string  `json:"create_time"`
	UpdateTime       string  `json:"update_time"`
}

// updateRecurringRequest is the PATCH body for a partial template update.
type updateRecurringRequest struct {
	IsActive         *bool   `json:"is_active,omitempty"`
	Frequency        *string `json:"frequency,omitempty"`
	DayOfWeek        *int    `json:"day_of_week,omitempty"`
	DayOfMonth       *int    `json:"day_of_month,omitempty"`
	NextGenerationAt *string `json:"next_generation_at,omitempty"`
}

// createTaskRequest is the POST body for materializing one occurrence.
type createTaskRequest struct {
	RecurringTaskID string `json:"recurring_task_id"`
	WorkspaceID     string `json:"workspace_id"`
	ClientID        string `json:"client_id"`
	Title           string `json:"title"`
	DueDate         string `json:"due_date"` // "2006-01-02"
	Source          string `json:"source"`
}

// taskDTO mirrors the platform API's task record.
type taskDTO struct {
	ID          string `json:"id"`
	WorkspaceID string `json:"workspace_id"`
	ClientID    string `json:"client_id"`
	Title       string `json:"title"`
	DueDate     string `json:"due_date"`
	Source      string `json:"source"`
	CreateTime  string `json:"create_time"`
}

// ListRecurring lists a workspace's recurring templates via
// GET /api/v1/workspaces/{id}/recurring-tasks.
func (c *Client) ListRecurring(ctx context.Context, workspaceID string, activeOnly bool, limit, offset int) ([]recurringTaskDTO, error) {
	u := fmt.Sprintf("%s/api/v1/workspaces/%s/recurring-tasks?pageSize=%d&offset=%d",
		c.baseURL, url.PathEscape(workspaceID), limit, offset)
	if activeOnly {
		u += "&active=true"
	}

	var listResp struct {
		RecurringTasks []recurringTaskDTO `json:"recurring_tasks"`
	}
	if err := c.do(ctx, http.MethodGet, u, nil, "", &listResp); err != nil {
		return nil, err
	}
	return listResp.RecurringTasks, nil
}

// GetRecurring fetches a single recurring template by ID.
func (c *Client) GetRecurring(ctx context.Context, workspaceID, id string) (*recurringTaskDTO, error) {
	u := fmt.Sprintf("%s/api/v1/workspaces/%s/recurring-tasks/%s",
		c.baseURL, url.PathEscape(workspaceID), url.PathEscape(id))

	var dto recurringTaskDTO
	if err := c.do(ctx, http.MethodGet, u, nil, "", &dto); err != nil {
		return nil, err
	}
	return &dto, nil
}

// UpdateRecurring applies a partial update via PATCH and returns the updated
// record.
func (c *Client) UpdateRecurring(ctx context.Context, workspaceID, id string, req updateRecurringRequest) (*recurringTaskDTO, error) {
	u := fmt.Sprintf("%s/api/v1/workspaces/%s/recurring-tasks/%s",
		c.baseURL, url.PathEscape(workspaceID), url.PathEscape(id))

	var dto recurringTaskDTO
	if err := c.do(ctx, http.MethodPatch, u, req, "", &dto); err != nil {
		return nil, err
	}
	return &dto, nil
}

// ListDue lists active templates due at or before the given instant across
// all workspaces.
func (c *Client) ListDue(ctx context.Context, before time.Time) ([]recurringTaskDTO, error) {
	u := fmt.Sprintf("%s/api/v1/recurring-tasks?active=true&due_before=%s",
		c.baseURL, url.QueryEscape(before.Format(time.RFC3339)))

	var listResp struct {
		RecurringTasks []recurringTaskDTO `json:"recurring_tasks"`
	}
	if err := c.do(ctx, http.MethodGet, u, nil, "", &listResp); err != nil {
		return nil, err
	}
	return listResp.RecurringTasks, nil
}

// CreateTask creates a concrete task via POST /api/v1/tasks. The idempotency
// key lets the platform drop duplicate generations on worker retries.
func (c *Client) CreateTask(ctx context.Context, req createTaskRequest, idempotencyKey string) (*taskDTO, error) {
	u := fmt.Sprintf("%s/api/v1/tasks", c.baseURL)

	var dto taskDTO
	if err := c.do(ctx, http.MethodPost, u, req, idempotencyKey, &dto); err != nil {
		return nil, err
	}
	return &dto, nil
}

// do performs one JSON round trip against the platform API.
func (c *Client) do(ctx context.Context, method, url string, body any, idempotencyKey string, out any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal platform request: %w", err)
		}
		reader = bytes.NewBuffer(raw)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return fmt.Errorf("failed to build platform request: %w", err)
	}
	httpReq.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.accessToken))
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	if idempotencyKey != "" {
		httpReq.Header.Set("Idempotency-Key", idempotencyKey)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("failed to call platform API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return errNotFound
	}
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("platform API error %d: %s", resp.StatusCode, string(raw))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode platform response: %w", err)
	}
	return nil
}
