package render

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"github.com/dustin/go-humanize"

	"lifeos/dashboard/config"
	"lifeos/dashboard/types"
)

// Renderer turns snapshots into HTML fragments. It is safe for concurrent
// use; the catalog and parsed templates are read-only after New.
type Renderer struct {
	catalog config.Catalog
	tmpl    *template.Template
}

func New(catalog config.Catalog) (*Renderer, error) {
	tmpl, err := template.New("dashboard").Parse(templates)
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return &Renderer{catalog: catalog, tmpl: tmpl}, nil
}

func (r *Renderer) render(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("failed to render %s: %w", name, err)
	}
	return buf.String(), nil
}

// contextBadge is the display form of a context tag. Unknown contexts get
// the generic badge rather than failing the render.
type contextBadge struct {
	Name  string
	Icon  string
	Color string
}

func (r *Renderer) badge(id string) contextBadge {
	if ctx, ok := r.catalog.ByID(id); ok {
		return contextBadge{Name: ctx.Name, Icon: ctx.Icon, Color: ctx.Color}
	}
	name := id
	if name == "" {
		name = "—"
	}
	return contextBadge{Name: name, Icon: "📌", Color: "#6b7280"}
}

func priorityClass(priority string) string {
	switch priority {
	case types.PriorityLow, types.PriorityMedium, types.PriorityHigh,
		types.PriorityCritical, types.PriorityUrgent:
		return "priority-" + toSlug(priority)
	default:
		return "priority-generic"
	}
}

func statusClass(status string) string {
	switch status {
	case types.StatusToDo, types.StatusInProgress, types.StatusBlocked,
		types.StatusWaiting, types.StatusDone:
		return "status-" + toSlug(status)
	default:
		return "status-generic"
	}
}

func toSlug(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'A' && c <= 'Z':
			out = append(out, c+'a'-'A')
		case c == ' ':
			out = append(out, '-')
		default:
			out = append(out, c)
		}
	}
	return string(out)
}

func orDash(s string) string {
	if s == "" {
		return "—"
	}
	return s
}

// lastUpdateLabel humanizes the backend's last_update timestamp. Unparseable
// values degrade to a dash.
func lastUpdateLabel(raw string, now time.Time) string {
	if raw == "" {
		return "—"
	}
	layouts := []string{
		"2006-01-02 15:04:05",
		time.RFC3339,
		"2006-01-02T15:04:05",
		"2006-01-02",
	}
	for _, layout := range layouts {
		if t, err := time.ParseInLocation(layout, raw, time.Local); err == nil {
			return humanize.RelTime(t, now, "ago", "from now")
		}
	}
	return "—"
}

type taskRow struct {
	ID            int
	Title         string
	Context       contextBadge
	Priority      string
	PriorityClass string
	Status        string
	StatusClass   string
	Due           string
	Energy        string
	Estimate      string
	Project       string
	RowClass      string
}

func (r *Renderer) taskRow(t types.Task, now time.Time) taskRow {
	return taskRow{
		ID:            t.ID,
		Title:         t.Title,
		Context:       r.badge(t.Context),
		Priority:      orDash(t.Priority),
		PriorityClass: priorityClass(t.Priority),
		Status:        orDash(t.Status),
		StatusClass:   statusClass(t.Status),
		Due:           orDash(t.DueDate),
		Energy:        EnergyIcon(t.EnergyNeeded),
		Estimate:      orDash(t.EstimatedTime),
		Project:       orDash(t.Project),
		RowClass:      RowClass(t, now),
	}
}

type v2gRow struct {
	ID            int
	Requester     string
	Request       string
	Source        string
	NeedsGabriel  bool
	Priority      string
	PriorityClass string
	Status        string
	StatusClass   string
	Due           string
	Updated       string
	RowClass      string
}

func (r *Renderer) v2gRow(req types.V2GRequest, now time.Time) v2gRow {
	return v2gRow{
		ID:            req.ID,
		Requester:     orDash(req.Requester),
		Request:       req.RequestText(),
		Source:        orDash(req.Source),
		NeedsGabriel:  req.NeedsGabriel == "YES",
		Priority:      orDash(req.Priority),
		PriorityClass: priorityClass(req.Priority),
		Status:        orDash(req.Status),
		StatusClass:   statusClass(req.Status),
		Due:           orDash(req.DueDate),
		Updated:       lastUpdateLabel(req.LastUpdate, now),
		RowClass:      RowClass(req.Task, now),
	}
}

// TaskTable renders the filtered task table, or the empty-state message
// when nothing survives the filters.
func (r *Renderer) TaskTable(tasks []types.Task, contextFilter, view string, now time.Time) (string, error) {
	filtered := FilterTasks(tasks, contextFilter, view, now)
	if len(filtered) == 0 {
		return r.render("empty-state", "No tasks match the current filters")
	}
	rows := make([]taskRow, len(filtered))
	for i, t := range filtered {
		rows[i] = r.taskRow(t, now)
	}
	return r.render("task-table", rows)
}

// V2GTable renders the filtered request queue.
func (r *Renderer) V2GTable(requests []types.V2GRequest, view string, now time.Time) (string, error) {
	filtered := FilterRequests(requests, view, now)
	if len(filtered) == 0 {
		return r.render("empty-state", "No open V2G requests")
	}
	rows := make([]v2gRow, len(filtered))
	for i, req := range filtered {
		rows[i] = r.v2gRow(req, now)
	}
	return r.render("v2g-table", rows)
}
