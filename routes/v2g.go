package routes

import (
	"net/http"

	"lifeos/dashboard/handlers"
)

// RegisterV2GRoutes registers the V2G queue fragment and form flows.
func RegisterV2GRoutes(mux *http.ServeMux, h *handlers.Handler) {
	mux.HandleFunc("GET /v2g/table", h.V2GTableFragment)
	mux.HandleFunc("GET /v2g/requests/new", h.NewV2GForm)
	mux.HandleFunc("GET /v2g/requests/{id}/edit", h.EditV2GForm)
	mux.HandleFunc("GET /v2g/requests/{id}/confirm-delete", h.ConfirmDeleteV2GRequest)
	mux.HandleFunc("POST /v2g/requests", h.CreateV2GRequest)
	mux.HandleFunc("POST /v2g/requests/{id}", h.V2GSubmit)
	mux.HandleFunc("PUT /v2g/requests/{id}", h.UpdateV2GRequest)
	mux.HandleFunc("DELETE /v2g/requests/{id}", h.DeleteV2GRequest)
}
