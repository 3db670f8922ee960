package bridge

import (
	"sync"

	"github.com/gorilla/websocket"
	"github.com/rileyhilliard/vitals/internal/errors"
	"github.com/rileyhilliard/vitals/internal/logger"
)

// Hub tracks connected host connections and broadcasts outbound action
// payloads to them. It is safe for concurrent use: connection goroutines
// register and unregister themselves while the dashboard posts.
type Hub struct {
	log logger.Logger

	mu    sync.Mutex
	conns map[*websocket.Conn]bool
}

// NewHub creates an empty hub.
func NewHub(log logger.Logger) *Hub {
	if log == nil {
		log = logger.Noop()
	}
	return &Hub{
		log:   log,
		conns: make(map[*websocket.Conn]bool),
	}
}

// add registers a host connection.
func (h *Hub) add(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.conns[conn] = true
}

// remove unregisters a host connection.
func (h *Hub) remove(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.conns, conn)
}

// Count returns the number of connected hosts.
func (h *Hub) Count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.conns)
}

// Post sends an action payload verbatim as a text frame to every
// connected host. With no connection it returns an error so the caller
// can log and drop the action; it never retries and never blocks on a
// missing host.
func (h *Hub) Post(payload string) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.conns) == 0 {
		return errors.New(errors.ErrBridge,
			"No host connected",
			"Connect the embedding host to the bridge endpoint")
	}

	for conn := range h.conns {
		if err := conn.WriteMessage(websocket.TextMessage, []byte(payload)); err != nil {
			// A dead connection is cleaned up by its read loop; the
			// action is simply dropped for that host.
			h.log.Debug("post to host failed: %v", err)
		}
	}
	return nil
}
