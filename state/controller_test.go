package state

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"lifeos/dashboard/lifeos"
)

type pathRecorder struct {
	mu    sync.Mutex
	paths []string
	fail  bool
}

func (p *pathRecorder) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	p.mu.Lock()
	p.paths = append(p.paths, r.URL.Path)
	fail := p.fail
	p.mu.Unlock()

	if fail {
		http.Error(w, "backend down", http.StatusInternalServerError)
		return
	}
	switch r.URL.Path {
	case "/api/tasks":
		io.WriteString(w, `{"tasks": [{"id": 1, "title": "t", "context": "phd", "priority": "Low", "status": "To Do"}], "stats": {"total_active": 1}}`)
	case "/api/v2g/requests":
		io.WriteString(w, `{"requests": [], "stats": {"total": 0}}`)
	case "/api/time-analytics":
		io.WriteString(w, `{"today": {"total": 1.0}, "week": {"total": 4.0}}`)
	}
}

func (p *pathRecorder) last(t *testing.T) string {
	t.Helper()
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.paths) == 0 {
		t.Fatal("no backend call recorded")
	}
	return p.paths[len(p.paths)-1]
}

func testController(t *testing.T) (*Controller, *Store, *pathRecorder) {
	t.Helper()
	backend := &pathRecorder{}
	server := httptest.NewServer(backend)
	t.Cleanup(server.Close)
	store := NewStore()
	return NewController(store, lifeos.New(server.URL), time.Minute), store, backend
}

func TestSwitchTab_FetchesTabData(t *testing.T) {
	tests := []struct {
		tab  Tab
		path string
	}{
		{TabDashboard, "/api/tasks"},
		{TabTasks, "/api/tasks"},
		{TabV2G, "/api/v2g/requests"},
		{TabAnalytics, "/api/time-analytics"},
	}

	for _, tt := range tests {
		t.Run(string(tt.tab), func(t *testing.T) {
			c, store, backend := testController(t)
			c.SwitchTab(context.Background(), tt.tab)
			if got := backend.last(t); got != tt.path {
				t.Errorf("fetched %s, want %s", got, tt.path)
			}
			if store.State().ActiveTab != tt.tab {
				t.Errorf("active tab = %q", store.State().ActiveTab)
			}
		})
	}
}

func TestFetchFailureKeepsSnapshot(t *testing.T) {
	c, store, backend := testController(t)

	c.LoadTasks(context.Background())
	if len(store.State().Tasks) != 1 {
		t.Fatalf("initial load failed: %+v", store.State().Tasks)
	}

	backend.mu.Lock()
	backend.fail = true
	backend.mu.Unlock()

	c.LoadTasks(context.Background())
	if len(store.State().Tasks) != 1 {
		t.Error("failed fetch must leave the previous snapshot intact")
	}
}

func TestRefreshActive(t *testing.T) {
	c, store, backend := testController(t)
	store.Dispatch(SwitchTab{Tab: TabV2G})

	c.RefreshActive(context.Background())
	if got := backend.last(t); got != "/api/v2g/requests" {
		t.Errorf("refresh fetched %s, want the active tab's endpoint", got)
	}
}
