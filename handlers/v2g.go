package handlers

import (
	"fmt"
	"net/http"

	"lifeos/dashboard/config"
	"lifeos/dashboard/render"
)

func (h *Handler) NewV2GForm(w http.ResponseWriter, r *http.Request) {
	frag, err := h.Renderer.V2GFormFragment(h.Renderer.BlankV2GForm())
	if err != nil {
		config.Logger.Error("Failed to render v2g form:", err)
		writeError(w, "Failed to render form", http.StatusInternalServerError)
		return
	}
	h.writePage(w, render.TabV2G, frag)
}

func (h *Handler) EditV2GForm(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, "Invalid request id", http.StatusBadRequest)
		return
	}
	req, ok := h.Store.State().RequestByID(id)
	if !ok {
		writeError(w, "Request not found", http.StatusNotFound)
		return
	}
	frag, err := h.Renderer.V2GFormFragment(h.Renderer.V2GFormFromRequest(req))
	if err != nil {
		config.Logger.Error("Failed to render v2g form:", err)
		writeError(w, "Failed to render form", http.StatusInternalServerError)
		return
	}
	h.writePage(w, render.TabV2G, frag)
}

func (h *Handler) CreateV2GRequest(w http.ResponseWriter, r *http.Request) {
	form, err := parseV2GForm(r)
	if err != nil {
		config.Logger.Error("Failed to parse v2g form:", err)
		writeError(w, "Invalid form body", http.StatusBadRequest)
		return
	}
	if err := form.Validate(); err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	if _, err := h.Client.CreateRequest(r.Context(), form.Fields()); err != nil {
		config.Logger.Error("Failed to create v2g request:", err)
		writeError(w, "Failed to create request", http.StatusBadGateway)
		return
	}

	h.Controller.LoadRequests(r.Context())
	http.Redirect(w, r, "/v2g", http.StatusSeeOther)
}

func (h *Handler) UpdateV2GRequest(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, "Invalid request id", http.StatusBadRequest)
		return
	}
	form, err := parseV2GForm(r)
	if err != nil {
		config.Logger.Error("Failed to parse v2g form:", err)
		writeError(w, "Invalid form body", http.StatusBadRequest)
		return
	}
	if err := form.Validate(); err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.Client.UpdateRequest(r.Context(), id, form.Fields()); err != nil {
		config.Logger.Error("Failed to update v2g request:", err)
		writeError(w, "Failed to update request", http.StatusBadGateway)
		return
	}

	h.Controller.LoadRequests(r.Context())
	http.Redirect(w, r, "/v2g", http.StatusSeeOther)
}

func (h *Handler) ConfirmDeleteV2GRequest(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, "Invalid request id", http.StatusBadRequest)
		return
	}
	req, ok := h.Store.State().RequestByID(id)
	if !ok {
		writeError(w, "Request not found", http.StatusNotFound)
		return
	}
	frag, err := h.Renderer.ConfirmDelete("request", fmt.Sprintf("/v2g/requests/%d", id), id, req.RequestText())
	if err != nil {
		config.Logger.Error("Failed to render confirmation:", err)
		writeError(w, "Failed to render confirmation", http.StatusInternalServerError)
		return
	}
	h.writePage(w, render.TabV2G, frag)
}

func (h *Handler) DeleteV2GRequest(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, "Invalid request id", http.StatusBadRequest)
		return
	}
	if r.FormValue("confirm") != "true" {
		writeError(w, "Delete requires confirmation", http.StatusBadRequest)
		return
	}

	if err := h.Client.DeleteRequest(r.Context(), id); err != nil {
		config.Logger.Error("Failed to delete v2g request:", err)
		writeError(w, "Failed to delete request", http.StatusBadGateway)
		return
	}

	h.Controller.LoadRequests(r.Context())
	http.Redirect(w, r, "/v2g", http.StatusSeeOther)
}

func (h *Handler) V2GSubmit(w http.ResponseWriter, r *http.Request) {
	switch r.PostFormValue("_method") {
	case http.MethodPut:
		h.UpdateV2GRequest(w, r)
	case http.MethodDelete:
		h.DeleteV2GRequest(w, r)
	default:
		writeError(w, "Unsupported method override", http.StatusBadRequest)
	}
}
