// Package client provides an HTTP client for the wealthtrack pipeline API,
// used by external schedulers to trigger the daily snapshot.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"wealthtrack/internal/services"
)

// PipelineClient calls the pipeline endpoints of a running API.
type PipelineClient struct {
	baseURL    string
	secret     string
	httpClient *http.Client
}

// NewPipelineClient creates a new pipeline API client. secret is sent as a
// bearer token.
func NewPipelineClient(baseURL, secret string, httpClient *http.Client) *PipelineClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &PipelineClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		secret:     secret,
		httpClient: httpClient,
	}
}

// StatusError is returned when the API answers with a non-200 status.
type StatusError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *StatusError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("unexpected status %d: %s: %s", e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("unexpected status %d", e.StatusCode)
}

// TriggerSnapshot asks the API to record today's snapshot.
func (c *PipelineClient) TriggerSnapshot(ctx context.Context) (*services.SnapshotResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/v1/pipeline/snapshots", http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.secret)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("triggering snapshot: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("triggering snapshot: %w", decodeStatusError(resp))
	}

	var result services.SnapshotResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decoding snapshot response: %w", err)
	}
	return &result, nil
}

func decodeStatusError(resp *http.Response) *StatusError {
	statusErr := &StatusError{StatusCode: resp.StatusCode}
	var body struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	raw, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err == nil && json.Unmarshal(raw, &body) == nil {
		statusErr.Code = body.Error.Code
		statusErr.Message = body.Error.Message
	}
	return statusErr
}
