package handlers

import (
	"net/http"

	"lifeos/dashboard/config"
)

// TimeCheckPrompt serves the open prompt's fragment. The page fetches it
// when the time-check event arrives; a token that no longer matches the
// open prompt is gone.
func (h *Handler) TimeCheckPrompt(w http.ResponseWriter, r *http.Request) {
	prompt, open := h.Scheduler.CurrentPrompt()
	if !open || r.URL.Query().Get("token") != prompt.Token {
		writeError(w, "No open time check", http.StatusGone)
		return
	}
	frag, err := h.Renderer.TimeCheckPrompt(prompt.Token)
	if err != nil {
		config.Logger.Error("Failed to render time check:", err)
		writeError(w, "Failed to render time check", http.StatusInternalServerError)
		return
	}
	writeHTML(w, http.StatusOK, frag)
}

// DismissTimeCheck closes the prompt, attributing the elapsed time to the
// chosen context.
func (h *Handler) DismissTimeCheck(w http.ResponseWriter, r *http.Request) {
	token := r.PostFormValue("token")
	lifeContext := r.PostFormValue("context")
	if token == "" || lifeContext == "" {
		writeError(w, "Missing token or context", http.StatusBadRequest)
		return
	}

	minutes, err := h.Scheduler.Dismiss(r.Context(), token, lifeContext)
	if err != nil {
		config.Logger.Warn("Rejected time check dismissal: ", err)
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}
	config.Logger.Info("Logged ", minutes, " minutes to ", lifeContext)

	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

// ReportPermission records the notification permission the page observed.
func (h *Handler) ReportPermission(w http.ResponseWriter, r *http.Request) {
	if err := h.Permissions.Report(r.PostFormValue("state")); err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Events is the SSE stream feeding the page.
func (h *Handler) Events(w http.ResponseWriter, r *http.Request) {
	h.Hub.ServeHTTP(w, r)
}
