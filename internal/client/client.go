// Package client is a typed JSON client for the task REST API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/roy-bentley/todo/internal/dto"
	apierrors "github.com/roy-bentley/todo/internal/errors"
)

// StatusError is returned for any non-2xx response
type StatusError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("unexpected status %d", e.StatusCode)
	}
	return fmt.Sprintf("%s (status %d)", e.Message, e.StatusCode)
}

// IsNotFound reports whether err is a 404 from the API
func IsNotFound(err error) bool {
	var se *StatusError
	return errors.As(err, &se) && se.StatusCode == http.StatusNotFound
}

// IsValidation reports whether err is a 400 from the API
func IsValidation(err error) bool {
	var se *StatusError
	return errors.As(err, &se) && se.StatusCode == http.StatusBadRequest
}

// Client wraps http.Client with the task endpoints.
// BaseURL includes the API prefix, e.g. http://localhost:8080/api.
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

// New creates a new Client; a nil httpClient uses http.DefaultClient
func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{BaseURL: strings.TrimRight(baseURL, "/"), HTTP: httpClient}
}

// ListTasks fetches all tasks ordered by order_index
func (c *Client) ListTasks(ctx context.Context) ([]dto.TaskDTO, error) {
	var tasks []dto.TaskDTO
	if err := c.do(ctx, http.MethodGet, "/tasks", nil, &tasks); err != nil {
		return nil, err
	}
	if tasks == nil {
		tasks = []dto.TaskDTO{}
	}
	return tasks, nil
}

// GetTask fetches a single task
func (c *Client) GetTask(ctx context.Context, id uint64) (dto.TaskDTO, error) {
	var task dto.TaskDTO
	err := c.do(ctx, http.MethodGet, taskPath(id), nil, &task)
	return task, err
}

// CreateTask creates a task at the end of the list
func (c *Client) CreateTask(ctx context.Context, req dto.CreateTaskRequest) (dto.TaskDTO, error) {
	var task dto.TaskDTO
	err := c.do(ctx, http.MethodPost, "/tasks", req, &task)
	return task, err
}

// UpdateTask sends a partial update
func (c *Client) UpdateTask(ctx context.Context, id uint64, req dto.UpdateTaskRequest) (dto.TaskDTO, error) {
	var task dto.TaskDTO
	err := c.do(ctx, http.MethodPut, taskPath(id), req, &task)
	return task, err
}

// DeleteTask removes a task
func (c *Client) DeleteTask(ctx context.Context, id uint64) error {
	return c.do(ctx, http.MethodDelete, taskPath(id), nil, nil)
}

func taskPath(id uint64) string {
	return fmt.Sprintf("/tasks/%d", id)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		buf := new(bytes.Buffer)
		if err := json.NewEncoder(buf).Encode(body); err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = buf
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		se := &StatusError{StatusCode: resp.StatusCode}
		var apiErr apierrors.APIError
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil {
			se.Code = apiErr.Code
			se.Message = apiErr.Message
		}
		return se
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
