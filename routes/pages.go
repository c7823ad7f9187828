package routes

import (
	"net/http"

	"lifeos/dashboard/handlers"
)

// RegisterPageRoutes registers the tab pages, the SSE stream and the
// stylesheet.
func RegisterPageRoutes(mux *http.ServeMux, h *handlers.Handler) {
	mux.HandleFunc("GET /{$}", h.Index)
	mux.HandleFunc("GET /dashboard", h.DashboardPage)
	mux.HandleFunc("GET /tasks", h.TasksPage)
	mux.HandleFunc("GET /v2g", h.V2GPage)
	mux.HandleFunc("GET /analytics", h.AnalyticsPage)
	mux.HandleFunc("GET /events", h.Events)
	mux.HandleFunc("GET /static/dashboard.css", h.Stylesheet)
}
