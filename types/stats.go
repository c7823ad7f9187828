package types

// TaskStats is the server-computed aggregate block embedded in the tasks
// payload. Opaque display values; nothing is recomputed here.
type TaskStats struct {
	TotalActive     int            `json:"total_active"`
	Overdue         int            `json:"overdue"`
	DueToday        int            `json:"due_today"`
	DueWeek         int            `json:"due_week"`
	Blocked         int            `json:"blocked"`
	ByContext       map[string]int `json:"by_context,omitempty"`
	CompletedToday  int            `json:"completed_today"`
	CompletedWeek   int            `json:"completed_week"`
	V2GNeedsGabriel int            `json:"v2g_needs_gabriel"`
	V2GOverdue      int            `json:"v2g_overdue"`
}

type V2GStats struct {
	Total   int `json:"total"`
	Overdue int `json:"overdue"`
	Today   int `json:"today"`
	Week    int `json:"week"`
	Gabriel int `json:"gabriel"`
	Stale   int `json:"stale"`
}

// TimeAnalytics buckets logged hours per context, keyed by context id plus
// a "total" entry, for today and the trailing week.
type TimeAnalytics struct {
	Today     map[string]float64 `json:"today"`
	Week      map[string]float64 `json:"week"`
	TodayLogs int                `json:"today_logs"`
	WeekLogs  int                `json:"week_logs"`
}
