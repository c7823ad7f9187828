package routes

import (
	"net/http"

	"lifeos/dashboard/handlers"
)

// RegisterAllRoutes registers all application routes
func RegisterAllRoutes(mux *http.ServeMux, h *handlers.Handler) {
	RegisterPageRoutes(mux, h)
	RegisterTaskRoutes(mux, h)
	RegisterV2GRoutes(mux, h)
	RegisterTimeCheckRoutes(mux, h)
}
