package lifeos

import (
	"context"
	"fmt"
	"net/http"

	"lifeos/dashboard/types"
)

// FetchTasks returns the active tasks plus the stats, next-action and
// analytics blocks the backend computes with them.
func (c *Client) FetchTasks(ctx context.Context) (types.TasksPayload, error) {
	var payload types.TasksPayload
	if err := c.do(ctx, http.MethodGet, "/api/tasks", nil, &payload); err != nil {
		return types.TasksPayload{}, fmt.Errorf("failed to fetch tasks: %w", err)
	}
	return payload, nil
}

// CreateTask creates a general task and returns the server-assigned id.
func (c *Client) CreateTask(ctx context.Context, fields types.TaskFields) (int, error) {
	var resp types.MutationResponse
	if err := c.do(ctx, http.MethodPost, "/api/tasks", fields, &resp); err != nil {
		return 0, fmt.Errorf("failed to create task: %w", err)
	}
	return resp.ID, nil
}

func (c *Client) UpdateTask(ctx context.Context, id int, fields types.TaskFields) error {
	var resp types.MutationResponse
	path := fmt.Sprintf("/api/tasks/%d", id)
	if err := c.do(ctx, http.MethodPut, path, fields, &resp); err != nil {
		return fmt.Errorf("failed to update task %d: %w", id, err)
	}
	if !resp.Success {
		return fmt.Errorf("backend rejected update of task %d", id)
	}
	return nil
}

func (c *Client) DeleteTask(ctx context.Context, id int) error {
	var resp types.MutationResponse
	path := fmt.Sprintf("/api/tasks/%d", id)
	if err := c.do(ctx, http.MethodDelete, path, nil, &resp); err != nil {
		return fmt.Errorf("failed to delete task %d: %w", id, err)
	}
	if !resp.Success {
		return fmt.Errorf("backend rejected delete of task %d", id)
	}
	return nil
}
