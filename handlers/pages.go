package handlers

import (
	"net/http"
	"time"

	"lifeos/dashboard/config"
	"lifeos/dashboard/render"
	"lifeos/dashboard/state"
	"lifeos/dashboard/types"
)

func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/dashboard", http.StatusFound)
}

// DashboardPage activates the dashboard tab: fetch, then render whatever
// the store holds (stale on fetch failure, never an error page).
func (h *Handler) DashboardPage(w http.ResponseWriter, r *http.Request) {
	h.Controller.SwitchTab(r.Context(), state.TabDashboard)
	st := h.Store.State()

	var analytics *types.TimeAnalytics
	if st.HasAnalytics {
		analytics = &st.Analytics
	}
	body, err := h.Renderer.DashboardBody(st.Tasks, st.TaskStats, st.NextAction, analytics, time.Now())
	if err != nil {
		config.Logger.Error("Failed to render dashboard:", err)
		writeError(w, "Failed to render dashboard", http.StatusInternalServerError)
		return
	}
	h.writePage(w, render.TabDashboard, body)
}

// TasksPage activates the tasks tab. Filter query params, when present,
// update the held filters before rendering.
func (h *Handler) TasksPage(w http.ResponseWriter, r *http.Request) {
	h.applyTaskFilters(r)
	h.Controller.SwitchTab(r.Context(), state.TabTasks)
	st := h.Store.State()

	body, err := h.Renderer.TasksBody(st.Tasks, st.ContextFilter, st.TaskView, time.Now())
	if err != nil {
		config.Logger.Error("Failed to render tasks tab:", err)
		writeError(w, "Failed to render tasks", http.StatusInternalServerError)
		return
	}
	h.writePage(w, render.TabTasks, body)
}

func (h *Handler) V2GPage(w http.ResponseWriter, r *http.Request) {
	if view := r.URL.Query().Get("view"); view != "" {
		h.Controller.SetV2GView(view)
	}
	h.Controller.SwitchTab(r.Context(), state.TabV2G)
	st := h.Store.State()

	body, err := h.Renderer.V2GBody(st.Requests, st.V2GStats, st.V2GView, time.Now())
	if err != nil {
		config.Logger.Error("Failed to render v2g tab:", err)
		writeError(w, "Failed to render v2g queue", http.StatusInternalServerError)
		return
	}
	h.writePage(w, render.TabV2G, body)
}

func (h *Handler) AnalyticsPage(w http.ResponseWriter, r *http.Request) {
	h.Controller.SwitchTab(r.Context(), state.TabAnalytics)
	st := h.Store.State()

	body, err := h.Renderer.AnalyticsBody(st.Analytics)
	if err != nil {
		config.Logger.Error("Failed to render analytics:", err)
		writeError(w, "Failed to render analytics", http.StatusInternalServerError)
		return
	}
	h.writePage(w, render.TabAnalytics, body)
}

func (h *Handler) applyTaskFilters(r *http.Request) {
	q := r.URL.Query()
	if ctx := q.Get("context"); ctx != "" {
		h.Controller.SetContextFilter(ctx)
	}
	if view := q.Get("view"); view != "" {
		h.Controller.SetTaskView(view)
	}
}
