package events

import (
	"sync"

	"github.com/gorilla/websocket"
)

// listener wraps a connection with a write lock. Sibling uploads finish
// concurrently and each completion publishes from its own goroutine, while
// gorilla/websocket permits only one writer on a connection at a time.
type listener struct {
	conn    *websocket.Conn
	writeMu sync.Mutex
}

func (l *listener) write(event Event) error {
	l.writeMu.Lock()
	defer l.writeMu.Unlock()
	return l.conn.WriteJSON(event)
}

func (l *listener) close() {
	_ = l.conn.Close()
}

// Hub tracks at most one listener connection per composer session.
type Hub struct {
	connections map[string]*listener
	mutex       sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		connections: make(map[string]*listener),
	}
}

func (h *Hub) Register(sessionID string, conn *websocket.Conn) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if old, exists := h.connections[sessionID]; exists && old != nil {
		old.close()
	}

	h.connections[sessionID] = &listener{conn: conn}
}

func (h *Hub) Unregister(sessionID string) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if l, exists := h.connections[sessionID]; exists {
		if l != nil {
			l.close()
		}
		delete(h.connections, sessionID)
	}
}

// Publish sends one event to the session's listener, if any. Writes to a
// connection are serialized; a write failure drops the connection, and the
// event itself is never queued or retried.
func (h *Hub) Publish(sessionID string, event Event) bool {
	h.mutex.RLock()
	l, exists := h.connections[sessionID]
	h.mutex.RUnlock()

	if !exists || l == nil {
		return false
	}

	if err := l.write(event); err != nil {
		h.Unregister(sessionID)
		return false
	}

	return true
}

func (h *Hub) ListenerCount() int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	return len(h.connections)
}

func (h *Hub) Close() {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	for sessionID, l := range h.connections {
		if l != nil {
			l.close()
		}
		delete(h.connections, sessionID)
	}
}
