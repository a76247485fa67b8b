package server

import (
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/plateaulabs/menuscan/internal/pipeline"
)

// ProgressEvent is pushed to websocket subscribers whenever an
// extraction run for their slot changes stage.
type ProgressEvent struct {
	Slot  string         `json:"slot"`
	Stage pipeline.Stage `json:"stage"`
	Time  time.Time      `json:"time"`
}

// progressHub fans extraction stage changes out to websocket clients
// subscribed by slot ID.
type progressHub struct {
	mu       sync.Mutex
	clients  map[string]map[*websocket.Conn]struct{}
	upgrader websocket.Upgrader
}

func newProgressHub(corsOrigin string) *progressHub {
	return &progressHub{
		clients: make(map[string]map[*websocket.Conn]struct{}),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				if corsOrigin == "" || corsOrigin == "*" {
					return true
				}
				return r.Header.Get("Origin") == corsOrigin
			},
		},
	}
}

// serve upgrades the request and keeps the connection registered for
// the requested slot until the client disconnects.
func (h *progressHub) serve(w http.ResponseWriter, r *http.Request) {
	slot := r.URL.Query().Get("slot")
	if slot == "" {
		http.Error(w, "missing slot query parameter", http.StatusBadRequest)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Warn("websocket upgrade failed", "error", err)
		return
	}

	h.register(slot, conn)
	defer h.unregister(slot, conn)

	// Drain control frames; we never expect client messages.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *progressHub) register(slot string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.clients[slot] == nil {
		h.clients[slot] = make(map[*websocket.Conn]struct{})
	}
	h.clients[slot][conn] = struct{}{}
}

func (h *progressHub) unregister(slot string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.clients[slot], conn)
	if len(h.clients[slot]) == 0 {
		delete(h.clients, slot)
	}
	conn.Close()
}

// broadcast sends a stage event to every client watching the slot.
// Write errors drop the client.
func (h *progressHub) broadcast(slot string, stage pipeline.Stage) {
	h.mu.Lock()
	defer h.mu.Unlock()

	event := ProgressEvent{Slot: slot, Stage: stage, Time: time.Now()}
	for conn := range h.clients[slot] {
		conn.SetWriteDeadline(time.Now().Add(5 * time.Second))
		if err := conn.WriteJSON(event); err != nil {
			conn.Close()
			delete(h.clients[slot], conn)
		}
	}
}

// closeAll drops every registered connection, used on server shutdown.
func (h *progressHub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for slot, conns := range h.clients {
		for conn := range conns {
			conn.Close()
		}
		delete(h.clients, slot)
	}
}
