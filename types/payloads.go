package types

// TasksPayload is the GET /api/tasks response: the active tasks plus the
// server-computed extras the dashboard renders alongside them.
type TasksPayload struct {
	Tasks         []Task         `json:"tasks"`
	Stats         TaskStats      `json:"stats"`
	NextAction    *Task          `json:"next_action,omitempty"`
	TimeAnalytics *TimeAnalytics `json:"time_analytics,omitempty"`
}

// RequestsPayload is the GET /api/v2g/requests response.
type RequestsPayload struct {
	Requests []V2GRequest `json:"requests"`
	Stats    V2GStats     `json:"stats"`
}

// MutationResponse is what create/update/delete calls return.
type MutationResponse struct {
	Success bool `json:"success"`
	ID      int  `json:"id,omitempty"`
}

// TimeLogEntry is the POST /api/time-log body.
type TimeLogEntry struct {
	Context         string `json:"context"`
	DurationMinutes int    `json:"duration_minutes"`
}
