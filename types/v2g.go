package types

import "strings"

// V2GRequest is a task row carrying the V2G triage fields. The backend
// stores requests in the tasks table, so the common columns come through
// the embedded Task.
type V2GRequest struct {
	Task
	Requester       string `json:"v2g_requester,omitempty"`
	Source          string `json:"v2g_source,omitempty"`
	NeedsGabriel    string `json:"v2g_needs_gabriel,omitempty"` // "YES" or "NO"
	GabrielQuestion string `json:"v2g_gabriel_question,omitempty"`
}

// RequestText recovers the request summary from the conventional
// "V2G: {requester} - {summary}" title.
func (r V2GRequest) RequestText() string {
	text := strings.TrimPrefix(r.Title, "V2G: ")
	if r.Requester != "" {
		text = strings.TrimPrefix(text, r.Requester+" - ")
	}
	return text
}

// V2GFields is the create/update body for the V2G endpoints. The backend
// assembles the title from requester and request_summary and pins the
// context to avl.
type V2GFields struct {
	Requester       string `json:"requester"`
	RequestSummary  string `json:"request_summary"`
	Source          string `json:"source"`
	Priority        string `json:"priority"`
	Status          string `json:"status"`
	TargetDate      string `json:"target_date"`
	NeedsGabriel    string `json:"needs_gabriel"`
	GabrielQuestion string `json:"gabriel_question"`
	Notes           string `json:"notes"`
}
