package render

import (
	"lifeos/dashboard/config"
	"lifeos/dashboard/types"
)

// Create-form defaults, mirroring the backend's.
const (
	defaultContext  = "personal"
	defaultPriority = types.PriorityMedium
	defaultStatus   = types.StatusToDo
	defaultEnergy   = types.EnergyMedium
	defaultEstimate = "1hour"
	defaultSource   = "Email"
)

// TaskFormView carries every field of the task modal. ID zero means create.
type TaskFormView struct {
	ID       int
	Title    string
	Context  string
	Priority string
	Status   string
	DueDate  string
	Energy   string
	Estimate string
	Project  string
	Notes    string
	Contexts []config.LifeContext
}

// BlankTaskForm is the create form with the backend's defaults filled in.
func (r *Renderer) BlankTaskForm() TaskFormView {
	return TaskFormView{
		Context:  defaultContext,
		Priority: defaultPriority,
		Status:   defaultStatus,
		Energy:   defaultEnergy,
		Estimate: defaultEstimate,
		Contexts: r.catalog.TaskContexts(),
	}
}

// TaskFormFromTask populates the edit form from the held record. Missing
// optionals come through as empty strings.
func (r *Renderer) TaskFormFromTask(t types.Task) TaskFormView {
	return TaskFormView{
		ID:       t.ID,
		Title:    t.Title,
		Context:  t.Context,
		Priority: t.Priority,
		Status:   t.Status,
		DueDate:  t.DueDate,
		Energy:   t.EnergyNeeded,
		Estimate: t.EstimatedTime,
		Project:  t.Project,
		Notes:    t.Notes,
		Contexts: r.catalog.TaskContexts(),
	}
}

func (r *Renderer) TaskFormFragment(form TaskFormView) (string, error) {
	return r.render("task-form", form)
}

// V2GFormView carries the request modal fields. ID zero means create.
type V2GFormView struct {
	ID           int
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

func (r *Renderer) BlankV2GForm() V2GFormView {
	return V2GFormView{
		Source:       defaultSource,
		Priority:     defaultPriority,
		Status:       defaultStatus,
		NeedsGabriel: "NO",
	}
}

func (r *Renderer) V2GFormFromRequest(req types.V2GRequest) V2GFormView {
	needs := req.NeedsGabriel
	if needs == "" {
		needs = "NO"
	}
	return V2GFormView{
		ID:           req.ID,
		Requester:    req.Requester,
		Summary:      req.RequestText(),
		Source:       req.Source,
		Priority:     req.Priority,
		Status:       req.Status,
		TargetDate:   req.DueDate,
		NeedsGabriel: needs,
		Question:     req.GabrielQuestion,
		Notes:        req.Notes,
	}
}

func (r *Renderer) V2GFormFragment(form V2GFormView) (string, error) {
	return r.render("v2g-form", form)
}

type confirmView struct {
	Kind   string
	Action string
	ID     int
	Title  string
}

// ConfirmDelete renders the explicit confirmation step a delete requires.
func (r *Renderer) ConfirmDelete(kind, action string, id int, title string) (string, error) {
	return r.render("confirm-delete", confirmView{Kind: kind, Action: action, ID: id, Title: title})
}

type timeCheckView struct {
	Token    string
	Contexts []config.LifeContext
}

// TimeCheckPrompt renders the periodic "where did the time go" prompt with
// one button per context, the time-only ones included.
func (r *Renderer) TimeCheckPrompt(token string) (string, error) {
	return r.render("time-check", timeCheckView{Token: token, Contexts: r.catalog.Contexts})
}
