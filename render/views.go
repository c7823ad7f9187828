package render

import (
	"time"

	"lifeos/dashboard/config"
	"lifeos/dashboard/types"
)

// Tab identifiers, shared with the page shell's nav.
const (
	TabDashboard = "dashboard"
	TabTasks     = "tasks"
	TabV2G       = "v2g"
	TabAnalytics = "analytics"
)

type statCard struct {
	Label string
	Value int
	Class string
}

type nextActionView struct {
	Title   string
	Context contextBadge
	Energy  string
	Due     string
	Class   string
}

type dashboardView struct {
	Cards      []statCard
	NextAction *nextActionView
	Preview    htmlFragment
	Today      analyticsBucket
}

// DashboardBody renders the stat cards, next-action widget, task preview
// and today's time summary.
func (r *Renderer) DashboardBody(tasks []types.Task, stats types.TaskStats, next *types.Task, analytics *types.TimeAnalytics, now time.Time) (string, error) {
	preview, err := r.previewTable(tasks, now)
	if err != nil {
		return "", err
	}

	view := dashboardView{
		Cards: []statCard{
			{Label: "Active", Value: stats.TotalActive, Class: "stat-active"},
			{Label: "Overdue", Value: stats.Overdue, Class: "stat-overdue"},
			{Label: "Due Today", Value: stats.DueToday, Class: "stat-due-today"},
			{Label: "Due This Week", Value: stats.DueWeek, Class: "stat-due-week"},
			{Label: "Done Today", Value: stats.CompletedToday, Class: "stat-done"},
			{Label: "Done This Week", Value: stats.CompletedWeek, Class: "stat-done"},
		},
		Preview: htmlFragment(preview),
	}
	if next != nil {
		view.NextAction = &nextActionView{
			Title:   next.Title,
			Context: r.badge(next.Context),
			Energy:  EnergyIcon(next.EnergyNeeded),
			Due:     orDash(next.DueDate),
			Class:   RowClass(*next, now),
		}
	}
	if analytics != nil {
		view.Today = r.bucket("Today", analytics.Today, analytics.TodayLogs)
	}
	return r.render("dashboard", view)
}

func (r *Renderer) previewTable(tasks []types.Task, now time.Time) (string, error) {
	preview := PreviewTasks(tasks)
	if len(preview) == 0 {
		return r.render("empty-state", "Nothing open. Enjoy the quiet.")
	}
	rows := make([]taskRow, len(preview))
	for i, t := range preview {
		rows[i] = r.taskRow(t, now)
	}
	return r.render("task-table", rows)
}

type tasksView struct {
	Contexts      []config.LifeContext
	ContextFilter string
	View          string
	Table         htmlFragment
}

// TasksBody renders the filter controls plus the task table.
func (r *Renderer) TasksBody(tasks []types.Task, contextFilter, view string, now time.Time) (string, error) {
	table, err := r.TaskTable(tasks, contextFilter, view, now)
	if err != nil {
		return "", err
	}
	return r.render("tasks-tab", tasksView{
		Contexts:      r.catalog.TaskContexts(),
		ContextFilter: contextFilter,
		View:          view,
		Table:         htmlFragment(table),
	})
}

type v2gView struct {
	Cards []statCard
	View  string
	Table htmlFragment
}

// V2GBody renders the request-queue stat cards, view filter and table.
func (r *Renderer) V2GBody(requests []types.V2GRequest, stats types.V2GStats, view string, now time.Time) (string, error) {
	table, err := r.V2GTable(requests, view, now)
	if err != nil {
		return "", err
	}
	return r.render("v2g-tab", v2gView{
		Cards: []statCard{
			{Label: "Open", Value: stats.Total, Class: "stat-active"},
			{Label: "Overdue", Value: stats.Overdue, Class: "stat-overdue"},
			{Label: "Due Today", Value: stats.Today, Class: "stat-due-today"},
			{Label: "Needs Gabriel", Value: stats.Gabriel, Class: "stat-gabriel"},
			{Label: "Stale", Value: stats.Stale, Class: "stat-stale"},
		},
		View:  view,
		Table: htmlFragment(table),
	})
}

type analyticsRow struct {
	Context contextBadge
	Hours   float64
}

type analyticsBucket struct {
	Label string
	Rows  []analyticsRow
	Total float64
	Logs  int
}

type analyticsView struct {
	Buckets []analyticsBucket
}

// AnalyticsBody renders the today and week hour buckets per context.
func (r *Renderer) AnalyticsBody(analytics types.TimeAnalytics) (string, error) {
	return r.render("analytics", analyticsView{
		Buckets: []analyticsBucket{
			r.bucket("Today", analytics.Today, analytics.TodayLogs),
			r.bucket("This Week", analytics.Week, analytics.WeekLogs),
		},
	})
}

func (r *Renderer) bucket(label string, period map[string]float64, logs int) analyticsBucket {
	b := analyticsBucket{Label: label, Logs: logs}
	for _, ctx := range r.catalog.Contexts {
		b.Rows = append(b.Rows, analyticsRow{
			Context: r.badge(ctx.ID),
			Hours:   period[ctx.ID],
		})
	}
	b.Total = period["total"]
	return b
}

type pageView struct {
	Tab  string
	Body htmlFragment
}

// Page wraps a tab body in the minimal shell: nav, modal host, event wiring.
func (r *Renderer) Page(tab, body string) (string, error) {
	return r.render("page", pageView{Tab: tab, Body: htmlFragment(body)})
}
