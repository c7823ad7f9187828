package routes

import (
	"net/http"

	"lifeos/dashboard/handlers"
)

// RegisterTaskRoutes registers the task table fragment and form flows.
// POST /tasks/{id} carries the browser's _method override for PUT/DELETE.
func RegisterTaskRoutes(mux *http.ServeMux, h *handlers.Handler) {
	mux.HandleFunc("GET /tasks/table", h.TaskTableFragment)
	mux.HandleFunc("GET /tasks/new", h.NewTaskForm)
	mux.HandleFunc("GET /tasks/{id}/edit", h.EditTaskForm)
	mux.HandleFunc("GET /tasks/{id}/confirm-delete", h.ConfirmDeleteTask)
	mux.HandleFunc("POST /tasks", h.CreateTask)
	mux.HandleFunc("POST /tasks/{id}", h.TaskSubmit)
	mux.HandleFunc("PUT /tasks/{id}", h.UpdateTask)
	mux.HandleFunc("DELETE /tasks/{id}", h.DeleteTask)
}
