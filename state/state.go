// Package state holds the dashboard's transient mirror of the backend and
// the active filters. All transitions go through the pure Reduce function;
// the Store is the single mutable cell.
package state

import (
	"lifeos/dashboard/render"
	"lifeos/dashboard/types"
)

// Tab is one of the four dashboard views.
type Tab string

const (
	TabDashboard Tab = render.TabDashboard
	TabTasks     Tab = render.TabTasks
	TabV2G       Tab = render.TabV2G
	TabAnalytics Tab = render.TabAnalytics
)

// ParseTab validates a tab identifier from a request path or event.
func ParseTab(s string) (Tab, bool) {
	switch Tab(s) {
	case TabDashboard, TabTasks, TabV2G, TabAnalytics:
		return Tab(s), true
	}
	return "", false
}

// AppState is the full application state: active tab, filters, and the
// last successfully fetched snapshot per resource. Snapshots are replaced
// wholesale, never patched.
type AppState struct {
	ActiveTab     Tab
	ContextFilter string
	TaskView      string
	V2GView       string

	Tasks      []types.Task
	TaskStats  types.TaskStats
	NextAction *types.Task

	Requests []types.V2GRequest
	V2GStats types.V2GStats

	Analytics    types.TimeAnalytics
	HasAnalytics bool

	// Load generations. A fetch begun under an older generation is stale
	// and its result is discarded by the reducer.
	TaskGen      uint64
	RequestGen   uint64
	AnalyticsGen uint64
}

func New() AppState {
	return AppState{
		ActiveTab:     TabDashboard,
		ContextFilter: render.ContextAll,
		TaskView:      render.ViewAll,
		V2GView:       render.ViewAll,
	}
}

// TaskByID finds a task in the held snapshot. There is no fetch-by-id; an
// edit for an id the mirror does not hold is a 404.
func (s AppState) TaskByID(id int) (types.Task, bool) {
	for _, t := range s.Tasks {
		if t.ID == id {
			return t, true
		}
	}
	return types.Task{}, false
}

func (s AppState) RequestByID(id int) (types.V2GRequest, bool) {
	for _, r := range s.Requests {
		if r.ID == id {
			return r, true
		}
	}
	return types.V2GRequest{}, false
}
