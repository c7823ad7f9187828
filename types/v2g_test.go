package types

import "testing"

func TestRequestText(t *testing.T) {
	tests := []struct {
		name      string
		title     string
		requester string
		want      string
	}{
		{"conventional title", "V2G: Alice - Fix invoice", "Alice", "Fix invoice"},
		{"no requester set", "V2G: Alice - Fix invoice", "", "Alice - Fix invoice"},
		{"requester mismatch", "V2G: Bob - Fix invoice", "Alice", "Bob - Fix invoice"},
		{"plain title", "Just a task", "", "Just a task"},
		{"dash inside summary", "V2G: Alice - Fix - urgent", "Alice", "Fix - urgent"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := V2GRequest{Task: Task{Title: tt.title}, Requester: tt.requester}
			if got := r.RequestText(); got != tt.want {
				t.Errorf("RequestText() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTaskIsGeneral(t *testing.T) {
	tests := []struct {
		taskType string
		want     bool
	}{
		{"", true},
		{TypeGeneral, true},
		{TypeV2GRequest, false},
	}
	for _, tt := range tests {
		if got := (Task{Type: tt.taskType}).IsGeneral(); got != tt.want {
			t.Errorf("IsGeneral with type %q = %v, want %v", tt.taskType, got, tt.want)
		}
	}
}
