package render

import (
	"testing"

	"lifeos/dashboard/types"
)

func openTask(t *testing.T, id int, mutate func(*types.Task)) types.Task {
	t.Helper()
	task := types.Task{
		ID:       id,
		Title:    "task",
		Context:  "phd",
		Priority: types.PriorityMedium,
		Status:   types.StatusToDo,
	}
	if mutate != nil {
		mutate(&task)
	}
	return task
}

func ids(tasks []types.Task) []int {
	out := make([]int, len(tasks))
	for i, t := range tasks {
		out[i] = t.ID
	}
	return out
}

func TestFilterTasks_UrgentView(t *testing.T) {
	critical := openTask(t, 1, func(task *types.Task) {
		task.Priority = types.PriorityCritical
		task.DueDate = "2026-08-24" // yesterday
	})
	lowFarFuture := openTask(t, 2, func(task *types.Task) {
		task.Priority = types.PriorityLow
		task.DueDate = "2027-12-31"
	})
	tasks := []types.Task{critical, lowFarFuture}

	urgent := FilterTasks(tasks, ContextAll, ViewUrgent, testNow)
	if len(urgent) != 1 || urgent[0].ID != 1 {
		t.Errorf("urgent view kept %v, want [1]", ids(urgent))
	}

	all := FilterTasks(tasks, ContextAll, ViewAll, testNow)
	if len(all) != 2 {
		t.Errorf("all view kept %v, want both", ids(all))
	}
}

func TestFilterTasks_UrgentByDueDateOnly(t *testing.T) {
	dueToday := openTask(t, 1, func(task *types.Task) { task.DueDate = "2026-08-25" })
	overdue := openTask(t, 2, func(task *types.Task) { task.DueDate = "2026-08-01" })
	calm := openTask(t, 3, nil)

	got := FilterTasks([]types.Task{dueToday, overdue, calm}, ContextAll, ViewUrgent, testNow)
	if len(got) != 2 {
		t.Fatalf("urgent view kept %v, want due-today and overdue", ids(got))
	}
}

func TestFilterTasks_ContextFilter(t *testing.T) {
	tasks := []types.Task{
		openTask(t, 1, nil),
		openTask(t, 2, func(task *types.Task) { task.Context = "avl" }),
	}

	tests := []struct {
		context string
		want    int
	}{
		{"phd", 1},
		{"avl", 1},
		{ContextAll, 2},
		{"", 2},
		{"gardening", 0}, // unknown context: no match, no failure
	}

	for _, tt := range tests {
		t.Run("context "+tt.context, func(t *testing.T) {
			got := FilterTasks(tasks, tt.context, ViewAll, testNow)
			if len(got) != tt.want {
				t.Errorf("kept %d tasks, want %d", len(got), tt.want)
			}
		})
	}
}

func TestFilterTasks_ExcludesDoneAndNonGeneral(t *testing.T) {
	tasks := []types.Task{
		openTask(t, 1, func(task *types.Task) { task.Status = types.StatusDone }),
		openTask(t, 2, func(task *types.Task) { task.Type = types.TypeV2GRequest }),
		openTask(t, 3, func(task *types.Task) { task.Type = types.TypeGeneral }),
		openTask(t, 4, nil), // missing type counts as general
	}

	got := FilterTasks(tasks, ContextAll, ViewAll, testNow)
	if len(got) != 2 || got[0].ID != 3 || got[1].ID != 4 {
		t.Errorf("kept %v, want [3 4]", ids(got))
	}
}

func TestFilterRequests(t *testing.T) {
	req := func(id int, priority, status, due string) types.V2GRequest {
		return types.V2GRequest{Task: types.Task{ID: id, Priority: priority, Status: status, DueDate: due}}
	}
	requests := []types.V2GRequest{
		req(1, types.PriorityUrgent, types.StatusToDo, ""),
		req(2, types.PriorityHigh, types.StatusToDo, ""),
		req(3, types.PriorityLow, types.StatusToDo, "2026-08-24"),
		req(4, types.PriorityLow, types.StatusToDo, "2028-01-01"),
		req(5, types.PriorityUrgent, types.StatusDone, ""),
	}

	urgent := FilterRequests(requests, ViewUrgent, testNow)
	if len(urgent) != 3 {
		t.Errorf("urgent view kept %d requests, want 3 (urgent, high, overdue)", len(urgent))
	}

	all := FilterRequests(requests, ViewAll, testNow)
	if len(all) != 4 {
		t.Errorf("all view kept %d requests, want 4 (done excluded)", len(all))
	}
}

func TestPreviewTasks(t *testing.T) {
	var tasks []types.Task
	for i := 1; i <= 15; i++ {
		task := openTask(t, i, nil)
		if i%3 == 0 {
			task.Status = types.StatusDone
		}
		tasks = append(tasks, task)
	}

	got := PreviewTasks(tasks)
	if len(got) != 10 {
		t.Fatalf("preview holds %d tasks, want 10", len(got))
	}
	for _, task := range got {
		if task.IsDone() {
			t.Errorf("preview includes done task %d", task.ID)
		}
	}
}
