package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"lifeos/dashboard/config"
	"lifeos/dashboard/render"
)

func pathID(r *http.Request) (int, error) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid id %q", r.PathValue("id"))
	}
	return id, nil
}

func (h *Handler) NewTaskForm(w http.ResponseWriter, r *http.Request) {
	frag, err := h.Renderer.TaskFormFragment(h.Renderer.BlankTaskForm())
	if err != nil {
		config.Logger.Error("Failed to render task form:", err)
		writeError(w, "Failed to render form", http.StatusInternalServerError)
		return
	}
	h.writePage(w, render.TabTasks, frag)
}

// EditTaskForm populates the form from the held snapshot. There is no
// fetch-by-id: an id the mirror does not hold is a 404.
func (h *Handler) EditTaskForm(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, "Invalid task id", http.StatusBadRequest)
		return
	}
	task, ok := h.Store.State().TaskByID(id)
	if !ok {
		writeError(w, "Task not found", http.StatusNotFound)
		return
	}
	frag, err := h.Renderer.TaskFormFragment(h.Renderer.TaskFormFromTask(task))
	if err != nil {
		config.Logger.Error("Failed to render task form:", err)
		writeError(w, "Failed to render form", http.StatusInternalServerError)
		return
	}
	h.writePage(w, render.TabTasks, frag)
}

func (h *Handler) CreateTask(w http.ResponseWriter, r *http.Request) {
	form, err := parseTaskForm(r)
	if err != nil {
		config.Logger.Error("Failed to parse task form:", err)
		writeError(w, "Invalid form body", http.StatusBadRequest)
		return
	}
	if err := form.Validate(); err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	if _, err := h.Client.CreateTask(r.Context(), form.Fields()); err != nil {
		config.Logger.Error("Failed to create task:", err)
		writeError(w, "Failed to create task", http.StatusBadGateway)
		return
	}

	h.Controller.LoadTasks(r.Context())
	http.Redirect(w, r, "/tasks", http.StatusSeeOther)
}

func (h *Handler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, "Invalid task id", http.StatusBadRequest)
		return
	}
	form, err := parseTaskForm(r)
	if err != nil {
		config.Logger.Error("Failed to parse task form:", err)
		writeError(w, "Invalid form body", http.StatusBadRequest)
		return
	}
	if err := form.Validate(); err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.Client.UpdateTask(r.Context(), id, form.Fields()); err != nil {
		config.Logger.Error("Failed to update task:", err)
		writeError(w, "Failed to update task", http.StatusBadGateway)
		return
	}

	h.Controller.LoadTasks(r.Context())
	http.Redirect(w, r, "/tasks", http.StatusSeeOther)
}

// ConfirmDeleteTask is the explicit confirmation step every delete goes
// through before anything is dispatched.
func (h *Handler) ConfirmDeleteTask(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, "Invalid task id", http.StatusBadRequest)
		return
	}
	task, ok := h.Store.State().TaskByID(id)
	if !ok {
		writeError(w, "Task not found", http.StatusNotFound)
		return
	}
	frag, err := h.Renderer.ConfirmDelete("task", fmt.Sprintf("/tasks/%d", id), id, task.Title)
	if err != nil {
		config.Logger.Error("Failed to render confirmation:", err)
		writeError(w, "Failed to render confirmation", http.StatusInternalServerError)
		return
	}
	h.writePage(w, render.TabTasks, frag)
}

func (h *Handler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, "Invalid task id", http.StatusBadRequest)
		return
	}
	if r.FormValue("confirm") != "true" {
		writeError(w, "Delete requires confirmation", http.StatusBadRequest)
		return
	}

	if err := h.Client.DeleteTask(r.Context(), id); err != nil {
		config.Logger.Error("Failed to delete task:", err)
		writeError(w, "Failed to delete task", http.StatusBadGateway)
		return
	}

	h.Controller.LoadTasks(r.Context())
	http.Redirect(w, r, "/tasks", http.StatusSeeOther)
}

// TaskSubmit routes a browser form POST to update or delete via the
// _method override field, since HTML forms only speak POST.
func (h *Handler) TaskSubmit(w http.ResponseWriter, r *http.Request) {
	switch r.PostFormValue("_method") {
	case http.MethodPut:
		h.UpdateTask(w, r)
	case http.MethodDelete:
		h.DeleteTask(w, r)
	default:
		writeError(w, "Unsupported method override", http.StatusBadRequest)
	}
}
