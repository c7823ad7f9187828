package lifeos

import (
	"context"
	"fmt"
	"net/http"

	"lifeos/dashboard/types"
)

// FetchTimeAnalytics returns the today/week hour buckets.
func (c *Client) FetchTimeAnalytics(ctx context.Context) (types.TimeAnalytics, error) {
	var analytics types.TimeAnalytics
	if err := c.do(ctx, http.MethodGet, "/api/time-analytics", nil, &analytics); err != nil {
		return types.TimeAnalytics{}, fmt.Errorf("failed to fetch time analytics: %w", err)
	}
	return analytics, nil
}

// LogTime attributes elapsed minutes to a context. The response body is not
// consumed beyond the status check.
func (c *Client) LogTime(ctx context.Context, lifeContext string, minutes int) error {
	entry := types.TimeLogEntry{Context: lifeContext, DurationMinutes: minutes}
	if err := c.do(ctx, http.MethodPost, "/api/time-log", entry, nil); err != nil {
		return fmt.Errorf("failed to log time: %w", err)
	}
	return nil
}
