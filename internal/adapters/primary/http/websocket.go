package http

import (
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// reloadMessage is pushed to every connected client when the deck changes
type reloadMessage struct {
	Type      string `json:"type"`
	Timestamp int64  `json:"timestamp"`
}

// Hub tracks live-reload websocket clients
type Hub struct {
	mu      sync.Mutex
	clients map[string]*websocket.Conn
	closed  bool
}

// NewHub creates a new websocket hub
func NewHub() *Hub {
	return &Hub{clients: make(map[string]*websocket.Conn)}
}

// Register adds a connection and returns its client ID
func (h *Hub) Register(conn *websocket.Conn) string {
	id := uuid.NewString()

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		_ = conn.Close()
		return id
	}
	h.clients[id] = conn
	return id
}

// Unregister removes and closes a connection
func (h *Hub) Unregister(id string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if conn, ok := h.clients[id]; ok {
		_ = conn.Close()
		delete(h.clients, id)
	}
}

// ClientCount returns the number of connected clients
func (h *Hub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// BroadcastReload tells every connected client to reload. Clients that
// fail the write are dropped.
func (h *Hub) BroadcastReload() {
	msg := reloadMessage{Type: "reload", Timestamp: time.Now().UnixMilli()}

	h.mu.Lock()
	defer h.mu.Unlock()

	for id, conn := range h.clients {
		_ = conn.SetWriteDeadline(time.Now().Add(5 * time.Second))
		if err := conn.WriteJSON(msg); err != nil {
			_ = conn.Close()
			delete(h.clients, id)
		}
	}
}

// Close drops every client and rejects further registrations
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.closed = true
	for id, conn := range h.clients {
		_ = conn.Close()
		delete(h.clients, id)
	}
}

// upgrader accepts preview-page websocket connections. The preview server
// binds to localhost; origin enforcement happens in the CORS layer.
var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// handleWebSocket upgrades a request and parks it in the hub until the
// client disconnects.
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade failed: %v", err)
		return
	}

	id := s.hub.Register(conn)
	s.logger.Debug("client %s connected (%d total)", id, s.hub.ClientCount())

	// Drain reads so pings and close frames are processed
	go func() {
		defer s.hub.Unregister(id)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
