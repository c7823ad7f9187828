// Package handlers is the HTTP surface of the dashboard: full pages per
// tab, table fragments for filter changes, form flows proxied to the
// backend, and the time-check endpoints.
package handlers

import (
	"net/http"

	"lifeos/dashboard/config"
	"lifeos/dashboard/lifeos"
	"lifeos/dashboard/notify"
	"lifeos/dashboard/reminder"
	"lifeos/dashboard/render"
	"lifeos/dashboard/state"
)

type Handler struct {
	Store       *state.Store
	Controller  *state.Controller
	Client      *lifeos.Client
	Renderer    *render.Renderer
	Scheduler   *reminder.Scheduler
	Hub         *notify.Hub
	Permissions *notify.Permissions
}

func New(store *state.Store, controller *state.Controller, client *lifeos.Client, renderer *render.Renderer, scheduler *reminder.Scheduler, hub *notify.Hub, permissions *notify.Permissions) *Handler {
	return &Handler{
		Store:       store,
		Controller:  controller,
		Client:      client,
		Renderer:    renderer,
		Scheduler:   scheduler,
		Hub:         hub,
		Permissions: permissions,
	}
}

func writeHTML(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	w.Write([]byte(body))
}

func writeError(w http.ResponseWriter, message string, status int) {
	http.Error(w, message, status)
}

// writePage wraps a tab body in the shell and writes it.
func (h *Handler) writePage(w http.ResponseWriter, tab, body string) {
	page, err := h.Renderer.Page(tab, body)
	if err != nil {
		config.Logger.Error("Failed to render page:", err)
		writeError(w, "Failed to render page", http.StatusInternalServerError)
		return
	}
	writeHTML(w, http.StatusOK, page)
}
