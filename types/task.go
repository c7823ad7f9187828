package types

// Task type discriminator values. A missing type means a general task.
const (
	TypeGeneral    = "general"
	TypeV2GRequest = "v2g_request"
)

// Statuses the backend assigns. Status is free text otherwise; only Done
// and Blocked carry behavior on this side.
const (
	StatusToDo       = "To Do"
	StatusInProgress = "In Progress"
	StatusBlocked    = "Blocked"
	StatusWaiting    = "Waiting"
	StatusDone       = "Done"
)

const (
	PriorityLow      = "Low"
	PriorityMedium   = "Medium"
	PriorityHigh     = "High"
	PriorityCritical = "Critical"
	PriorityUrgent   = "Urgent" // V2G requests only
)

const (
	EnergyLow    = "Low"
	EnergyMedium = "Medium"
	EnergyHigh   = "High"
)

// Task mirrors one row of the backend's tasks resource. Dates are the
// backend's YYYY-MM-DD strings; empty means unset.
type Task struct {
	ID            int    `json:"id,omitempty"`
	Type          string `json:"type,omitempty"`
	Title         string `json:"title"`
	Context       string `json:"context"`
	Priority      string `json:"priority"`
	Status        string `json:"status"`
	DueDate       string `json:"due_date,omitempty"`
	EnergyNeeded  string `json:"energy_needed,omitempty"`
	EstimatedTime string `json:"estimated_time,omitempty"`
	Project       string `json:"project,omitempty"`
	Notes         string `json:"notes,omitempty"`
	CreatedDate   string `json:"created_date,omitempty"`
	CompletedDate string `json:"completed_date,omitempty"`
	LastUpdate    string `json:"last_update,omitempty"`
}

// IsGeneral reports whether the record belongs in the task views (as
// opposed to the V2G queue).
func (t Task) IsGeneral() bool {
	return t.Type == "" || t.Type == TypeGeneral
}

func (t Task) IsDone() bool {
	return t.Status == StatusDone
}

// TaskFields is the flat editable field set sent on create and update.
// Fields are always present so an update can clear a value; the backend
// treats empty strings as unset.
type TaskFields struct {
	Title         string `json:"title"`
	Context       string `json:"context"`
	Priority      string `json:"priority"`
	Status        string `json:"status"`
	DueDate       string `json:"due_date"`
	EnergyNeeded  string `json:"energy_needed"`
	EstimatedTime string `json:"estimated_time"`
	Project       string `json:"project"`
	Notes         string `json:"notes"`
}
