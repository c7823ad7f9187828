package handlers

import (
	"fmt"
	"net/http"

	"lifeos/dashboard/types"
)

// TaskForm is the typed view-model parsed from the task modal's POST.
type TaskForm struct {
	Title    string
	Context  string
	Priority string
	Status   string
	DueDate  string
	Energy   string
	Estimate string
	Project  string
	Notes    string
}

func parseTaskForm(r *http.Request) (TaskForm, error) {
	if err := r.ParseForm(); err != nil {
		return TaskForm{}, fmt.Errorf("failed to parse form: %w", err)
	}
	return TaskForm{
		Title:    r.PostFormValue("title"),
		Context:  r.PostFormValue("context"),
		Priority: r.PostFormValue("priority"),
		Status:   r.PostFormValue("status"),
		DueDate:  r.PostFormValue("due_date"),
		Energy:   r.PostFormValue("energy_needed"),
		Estimate: r.PostFormValue("estimated_time"),
		Project:  r.PostFormValue("project"),
		Notes:    r.PostFormValue("notes"),
	}, nil
}

func (f TaskForm) Validate() error {
	if f.Title == "" {
		return fmt.Errorf("title is required")
	}
	return nil
}

// Fields maps the form onto the backend's flat editable field set.
func (f TaskForm) Fields() types.TaskFields {
	return types.TaskFields{
		Title:         f.Title,
		Context:       f.Context,
		Priority:      f.Priority,
		Status:        f.Status,
		DueDate:       f.DueDate,
		EnergyNeeded:  f.Energy,
		EstimatedTime: f.Estimate,
		Project:       f.Project,
		Notes:         f.Notes,
	}
}

// V2GForm is the typed view-model parsed from the V2G request modal.
type V2GForm struct {
	Requester    string
	Summary      string
	Source       string
	Priority     string
	Status       string
	TargetDate   string
	NeedsGabriel string
	Question     string
	Notes        string
}

func parseV2GForm(r *http.Request) (V2GForm, error) {
	if err := r.ParseForm(); err != nil {
		return V2GForm{}, fmt.Errorf("failed to parse form: %w", err)
	}
	return V2GForm{
		Requester:    r.PostFormValue("requester"),
		Summary:      r.PostFormValue("request_summary"),
		Source:       r.PostFormValue("source"),
		Priority:     r.PostFormValue("priority"),
		Status:       r.PostFormValue("status"),
		TargetDate:   r.PostFormValue("target_date"),
		NeedsGabriel: r.PostFormValue("needs_gabriel"),
		Question:     r.PostFormValue("gabriel_question"),
		Notes:        r.PostFormValue("notes"),
	}, nil
}

func (f V2GForm) Validate() error {
	if f.Requester == "" || f.Summary == "" {
		return fmt.Errorf("requester and request summary are required")
	}
	return nil
}

func (f V2GForm) Fields() types.V2GFields {
	return types.V2GFields{
		Requester:       f.Requester,
		RequestSummary:  f.Summary,
		Source:          f.Source,
		Priority:        f.Priority,
		Status:          f.Status,
		TargetDate:      f.TargetDate,
		NeedsGabriel:    f.NeedsGabriel,
		GabrielQuestion: f.Question,
		Notes:           f.Notes,
	}
}
