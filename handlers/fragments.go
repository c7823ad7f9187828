package handlers

import (
	"net/http"
	"time"

	"lifeos/dashboard/config"
)

// TaskTableFragment is the filter-change path: update the held filters and
// re-render from the snapshot without refetching.
func (h *Handler) TaskTableFragment(w http.ResponseWriter, r *http.Request) {
	h.applyTaskFilters(r)
	st := h.Store.State()

	table, err := h.Renderer.TaskTable(st.Tasks, st.ContextFilter, st.TaskView, time.Now())
	if err != nil {
		config.Logger.Error("Failed to render task table:", err)
		writeError(w, "Failed to render task table", http.StatusInternalServerError)
		return
	}
	writeHTML(w, http.StatusOK, table)
}

func (h *Handler) V2GTableFragment(w http.ResponseWriter, r *http.Request) {
	if view := r.URL.Query().Get("view"); view != "" {
		h.Controller.SetV2GView(view)
	}
	st := h.Store.State()

	table, err := h.Renderer.V2GTable(st.Requests, st.V2GView, time.Now())
	if err != nil {
		config.Logger.Error("Failed to render v2g table:", err)
		writeError(w, "Failed to render v2g table", http.StatusInternalServerError)
		return
	}
	writeHTML(w, http.StatusOK, table)
}
