package render

import (
	"time"

	"lifeos/dashboard/types"
)

// View filter values. Anything else behaves like ViewAll.
const (
	ViewAll    = "all"
	ViewUrgent = "urgent"
)

// ContextAll disables the context filter on the task table.
const ContextAll = "all"

const dashboardPreviewLimit = 10

// FilterTasks applies the task-table rules: general tasks only, then the
// context filter, then the view filter. Done tasks never survive.
func FilterTasks(tasks []types.Task, contextFilter, view string, now time.Time) []types.Task {
	out := make([]types.Task, 0, len(tasks))
	for _, t := range tasks {
		if !t.IsGeneral() || t.IsDone() {
			continue
		}
		if contextFilter != "" && contextFilter != ContextAll && t.Context != contextFilter {
			continue
		}
		if view == ViewUrgent && !urgentTask(t, now) {
			continue
		}
		out = append(out, t)
	}
	return out
}

func urgentTask(t types.Task, now time.Time) bool {
	return t.Priority == types.PriorityHigh || t.Priority == types.PriorityCritical ||
		IsOverdue(t, now) || IsDueToday(t, now)
}

// FilterRequests applies the V2G-table rules. No context filter here.
func FilterRequests(requests []types.V2GRequest, view string, now time.Time) []types.V2GRequest {
	out := make([]types.V2GRequest, 0, len(requests))
	for _, r := range requests {
		if r.IsDone() {
			continue
		}
		if view == ViewUrgent && !urgentRequest(r, now) {
			continue
		}
		out = append(out, r)
	}
	return out
}

func urgentRequest(r types.V2GRequest, now time.Time) bool {
	return r.Priority == types.PriorityHigh || r.Priority == types.PriorityUrgent ||
		IsOverdue(r.Task, now) || IsDueToday(r.Task, now)
}

// PreviewTasks returns the first non-Done tasks for the dashboard preview,
// ignoring the context and view filters.
func PreviewTasks(tasks []types.Task) []types.Task {
	out := make([]types.Task, 0, dashboardPreviewLimit)
	for _, t := range tasks {
		if t.IsDone() {
			continue
		}
		out = append(out, t)
		if len(out) == dashboardPreviewLimit {
			break
		}
	}
	return out
}
