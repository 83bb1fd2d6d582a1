package platform

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// Client is the HTTP wrapper for the platform REST API's bulk-import
// endpoint.
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

// confirmImportRequest is the wire shape the platform import endpoint
// expects; field names are fixed by the existing API contract.
type confirmImportRequest struct {
	RawText        string `json:"rawText"`
	TasksPerDay    int    `json:"tasksPerDay"`
	ExcludeIndices []int  `json:"excludeIndices"`
	StartDate      string `json:"startDate,omitempty"` // "2006-01-02"
}

// confirmImportResponse is the platform's import receipt.
type confirmImportResponse struct {
	ImportID  string `json:"import_id"`
	TaskCount int    `json:"task_count"`
}

// ConfirmImport posts the confirmation payload via
// POST /api/v1/workspaces/{id}/task-imports.
func (c *Client) ConfirmImport(ctx context.Context, workspaceID string, req confirmImportRequest) (*confirmImportResponse, error) {
	u := fmt.Sprintf("%s/api/v1/workspaces/%s/task-imports", c.baseURL, url.PathEscape(workspaceID))

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal import request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build import request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.accessToken))

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to call platform import API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("platform import API error %d: %s", resp.StatusCode, string(raw))
	}

	var receipt confirmImportResponse
	if err := json.NewDecoder(resp.Body).Decode(&receipt); err != nil {
		return nil, fmt.Errorf("failed to decode import response: %w", err)
	}
	return &receipt, nil
}
