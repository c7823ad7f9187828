package lifeos

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"lifeos/dashboard/types"
)

func TestFetchTasks(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/api/tasks" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		io.WriteString(w, `{
			"tasks": [{"id": 1, "title": "Write intro", "context": "phd", "priority": "High", "status": "To Do", "due_date": "2026-08-26"}],
			"stats": {"total_active": 1, "overdue": 0, "due_today": 0, "due_week": 1, "completed_today": 2, "completed_week": 5},
			"next_action": {"id": 1, "title": "Write intro", "context": "phd", "priority": "High", "status": "To Do"},
			"time_analytics": {"today": {"phd": 1.5, "total": 1.5}, "week": {"total": 9.0}, "today_logs": 3, "week_logs": 12}
		}`)
	}))
	defer server.Close()

	payload, err := New(server.URL).FetchTasks(context.Background())
	if err != nil {
		t.Fatalf("FetchTasks failed: %v", err)
	}
	if len(payload.Tasks) != 1 || payload.Tasks[0].Title != "Write intro" {
		t.Errorf("tasks = %+v", payload.Tasks)
	}
	if payload.Stats.CompletedWeek != 5 {
		t.Errorf("stats = %+v", payload.Stats)
	}
	if payload.NextAction == nil || payload.NextAction.ID != 1 {
		t.Errorf("next action = %+v", payload.NextAction)
	}
	if payload.TimeAnalytics == nil || payload.TimeAnalytics.Today["phd"] != 1.5 {
		t.Errorf("analytics = %+v", payload.TimeAnalytics)
	}
}

func TestCreateTask(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/tasks" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("content type = %q", ct)
		}
		var fields map[string]any
		if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
			t.Fatalf("bad body: %v", err)
		}
		if fields["title"] != "New task" || fields["context"] != "avl" {
			t.Errorf("body = %+v", fields)
		}
		io.WriteString(w, `{"success": true, "id": 42}`)
	}))
	defer server.Close()

	id, err := New(server.URL).CreateTask(context.Background(), types.TaskFields{
		Title:   "New task",
		Context: "avl",
	})
	if err != nil {
		t.Fatalf("CreateTask failed: %v", err)
	}
	if id != 42 {
		t.Errorf("id = %d, want 42", id)
	}
}

func TestUpdateAndDeletePaths(t *testing.T) {
	var gotMethod, gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod, gotPath = r.Method, r.URL.Path
		io.WriteString(w, `{"success": true}`)
	}))
	defer server.Close()
	client := New(server.URL)

	if err := client.UpdateTask(context.Background(), 7, types.TaskFields{Title: "x"}); err != nil {
		t.Fatalf("UpdateTask failed: %v", err)
	}
	if gotMethod != http.MethodPut || gotPath != "/api/tasks/7" {
		t.Errorf("update sent %s %s", gotMethod, gotPath)
	}

	if err := client.DeleteRequest(context.Background(), 9); err != nil {
		t.Fatalf("DeleteRequest failed: %v", err)
	}
	if gotMethod != http.MethodDelete || gotPath != "/api/v2g/requests/9" {
		t.Errorf("delete sent %s %s", gotMethod, gotPath)
	}
}

func TestLogTime(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/time-log" {
			t.Errorf("path = %s", r.URL.Path)
		}
		var entry types.TimeLogEntry
		if err := json.NewDecoder(r.Body).Decode(&entry); err != nil {
			t.Fatalf("bad body: %v", err)
		}
		if entry.Context != "wasting" || entry.DurationMinutes != 15 {
			t.Errorf("entry = %+v", entry)
		}
		// The backend's response body is not consumed.
		io.WriteString(w, `{"success": true, "message": "ignored"}`)
	}))
	defer server.Close()

	if err := New(server.URL).LogTime(context.Background(), "wasting", 15); err != nil {
		t.Fatalf("LogTime failed: %v", err)
	}
}

func TestNon2xxIsError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": "task not found"}`, http.StatusNotFound)
	}))
	defer server.Close()
	client := New(server.URL)

	if _, err := client.FetchTasks(context.Background()); err == nil {
		t.Error("expected an error for a 404 response")
	}
	if err := client.DeleteTask(context.Background(), 1); err == nil {
		t.Error("expected an error for a 404 response")
	}
}

func TestBackendUnreachable(t *testing.T) {
	client := New("http://127.0.0.1:1")
	if _, err := client.FetchRequests(context.Background()); err == nil {
		t.Error("expected an error when the backend is unreachable")
	}
}

func TestRejectedMutation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"success": false}`)
	}))
	defer server.Close()

	if err := New(server.URL).UpdateRequest(context.Background(), 3, types.V2GFields{}); err == nil {
		t.Error("success=false should surface as an error")
	}
}
