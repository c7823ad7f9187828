package routes

import (
	"net/http"

	"lifeos/dashboard/handlers"
)

// RegisterTimeCheckRoutes registers the reminder prompt endpoints and the
// notification permission report.
func RegisterTimeCheckRoutes(mux *http.ServeMux, h *handlers.Handler) {
	mux.HandleFunc("GET /time-check/prompt", h.TimeCheckPrompt)
	mux.HandleFunc("POST /time-check/dismiss", h.DismissTimeCheck)
	mux.HandleFunc("POST /notifications/permission", h.ReportPermission)
}
