package lifeos

import (
	"context"
	"fmt"
	"net/http"

	"lifeos/dashboard/types"
)

// FetchRequests returns the open V2G queue with its stats block.
func (c *Client) FetchRequests(ctx context.Context) (types.RequestsPayload, error) {
	var payload types.RequestsPayload
	if err := c.do(ctx, http.MethodGet, "/api/v2g/requests", nil, &payload); err != nil {
		return types.RequestsPayload{}, fmt.Errorf("failed to fetch v2g requests: %w", err)
	}
	return payload, nil
}

// CreateRequest files a V2G request. The backend builds the title from
// requester and summary and files it under the avl context.
func (c *Client) CreateRequest(ctx context.Context, fields types.V2GFields) (int, error) {
	var resp types.MutationResponse
	if err := c.do(ctx, http.MethodPost, "/api/v2g/requests", fields, &resp); err != nil {
		return 0, fmt.Errorf("failed to create v2g request: %w", err)
	}
	return resp.ID, nil
}

func (c *Client) UpdateRequest(ctx context.Context, id int, fields types.V2GFields) error {
	var resp types.MutationResponse
	path := fmt.Sprintf("/api/v2g/requests/%d", id)
	if err := c.do(ctx, http.MethodPut, path, fields, &resp); err != nil {
		return fmt.Errorf("failed to update v2g request %d: %w", id, err)
	}
	if !resp.Success {
		return fmt.Errorf("backend rejected update of v2g request %d", id)
	}
	return nil
}

func (c *Client) DeleteRequest(ctx context.Context, id int) error {
	var resp types.MutationResponse
	path := fmt.Sprintf("/api/v2g/requests/%d", id)
	if err := c.do(ctx, http.MethodDelete, path, nil, &resp); err != nil {
		return fmt.Errorf("failed to delete v2g request %d: %w", id, err)
	}
	if !resp.Success {
		return fmt.Errorf("backend rejected delete of v2g request %d", id)
	}
	return nil
}
