package state

import (
	"context"
	"time"

	"lifeos/dashboard/config"
	"lifeos/dashboard/lifeos"
)

// Controller orchestrates fetch-and-dispatch: tab switches fetch that tab's
// data, filter changes only re-render from the held snapshot, and a
// background ticker refreshes the active tab. Fetch failures are logged and
// leave the previous snapshot intact.
type Controller struct {
	store           *Store
	client          *lifeos.Client
	refreshInterval time.Duration
}

func NewController(store *Store, client *lifeos.Client, refreshInterval time.Duration) *Controller {
	return &Controller{
		store:           store,
		client:          client,
		refreshInterval: refreshInterval,
	}
}

// SwitchTab activates a tab and fetches its data. The fetch is synchronous;
// the caller renders from the store afterwards, stale or not.
func (c *Controller) SwitchTab(ctx context.Context, tab Tab) {
	c.store.Dispatch(SwitchTab{Tab: tab})
	c.loadTab(ctx, tab)
}

func (c *Controller) loadTab(ctx context.Context, tab Tab) {
	switch tab {
	case TabDashboard, TabTasks:
		c.LoadTasks(ctx)
	case TabV2G:
		c.LoadRequests(ctx)
	case TabAnalytics:
		c.LoadAnalytics(ctx)
	}
}

// LoadTasks fetches the task snapshot. A load begun under generation N is
// discarded by the reducer if another load began since.
func (c *Controller) LoadTasks(ctx context.Context) {
	gen := c.store.BeginTaskLoad()
	payload, err := c.client.FetchTasks(ctx)
	if err != nil {
		config.Logger.Error("Failed to load tasks:", err)
		return
	}
	c.store.Dispatch(TasksLoaded{Gen: gen, Payload: payload})
}

func (c *Controller) LoadRequests(ctx context.Context) {
	gen := c.store.BeginRequestLoad()
	payload, err := c.client.FetchRequests(ctx)
	if err != nil {
		config.Logger.Error("Failed to load v2g requests:", err)
		return
	}
	c.store.Dispatch(RequestsLoaded{Gen: gen, Payload: payload})
}

func (c *Controller) LoadAnalytics(ctx context.Context) {
	gen := c.store.BeginAnalyticsLoad()
	analytics, err := c.client.FetchTimeAnalytics(ctx)
	if err != nil {
		config.Logger.Error("Failed to load time analytics:", err)
		return
	}
	c.store.Dispatch(AnalyticsLoaded{Gen: gen, Analytics: analytics})
}

// Filter setters re-render from the held snapshot; no refetch.

func (c *Controller) SetContextFilter(contextID string) AppState {
	return c.store.Dispatch(SetContextFilter{Context: contextID})
}

func (c *Controller) SetTaskView(view string) AppState {
	return c.store.Dispatch(SetTaskView{View: view})
}

func (c *Controller) SetV2GView(view string) AppState {
	return c.store.Dispatch(SetV2GView{View: view})
}

// RefreshActive re-fetches whatever tab is current.
func (c *Controller) RefreshActive(ctx context.Context) {
	c.loadTab(ctx, c.store.State().ActiveTab)
}

// Run ticks RefreshActive until the context is done. Overlap with
// user-triggered fetches is resolved by the load generations.
func (c *Controller) Run(ctx context.Context) {
	ticker := time.NewTicker(c.refreshInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.RefreshActive(ctx)
		case <-ctx.Done():
			config.Logger.Info("Background refresh stopped")
			return
		}
	}
}
