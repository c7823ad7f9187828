// Package notify pushes server events to the open page over SSE and tracks
// the browser's notification permission so the dashboard never re-asks a
// user who said no.
package notify

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"lifeos/dashboard/config"
)

// Event types sent over /events.
const (
	EventTimeCheck         = "time-check"
	EventNotification      = "notification"
	EventRequestPermission = "request-permission"
	EventRefresh           = "refresh"
)

const heartbeatInterval = 30 * time.Second

// Hub fans events out to every connected page. Slow clients are skipped,
// not waited on.
type Hub struct {
	mu      sync.RWMutex
	clients map[chan string]bool
}

func NewHub() *Hub {
	return &Hub{clients: make(map[chan string]bool)}
}

// Broadcast sends one event to all connected clients.
func (h *Hub) Broadcast(eventType string, data any) {
	payload, err := json.Marshal(data)
	if err != nil {
		config.Logger.Error("Failed to encode SSE event:", err)
		return
	}
	event := fmt.Sprintf("event: %s\ndata: %s\n\n", eventType, payload)

	h.mu.RLock()
	defer h.mu.RUnlock()
	for client := range h.clients {
		select {
		case client <- event:
		default:
			// Client buffer full, skip
		}
	}
}

// ClientCount reports how many pages are connected.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// ServeHTTP handles one SSE connection until the client goes away.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	clientChan := make(chan string, 10)
	h.mu.Lock()
	h.clients[clientChan] = true
	h.mu.Unlock()

	defer func() {
		h.mu.Lock()
		delete(h.clients, clientChan)
		close(clientChan)
		h.mu.Unlock()
	}()

	fmt.Fprint(w, "event: connected\ndata: {\"status\":\"connected\"}\n\n")
	flusher.Flush()

	heartbeat := time.NewTicker(heartbeatInterval)
	defer heartbeat.Stop()

	for {
		select {
		case event := <-clientChan:
			fmt.Fprint(w, event)
			flusher.Flush()
		case <-heartbeat.C:
			fmt.Fprint(w, ": heartbeat\n\n")
			flusher.Flush()
		case <-r.Context().Done():
			return
		}
	}
}
