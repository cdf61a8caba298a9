package notification

import (
	"sync"

	"github.com/gorilla/websocket"
)

// Hub fans newly dispatched reminders out to every connected client.
type Hub struct {
	connections map[string]*websocket.Conn
	mutex       sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		connections: make(map[string]*websocket.Conn),
	}
}

func (h *Hub) Register(connID string, conn *websocket.Conn) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if oldConn, exists := h.connections[connID]; exists && oldConn != nil {
		_ = oldConn.Close()
	}

	h.connections[connID] = conn
}

func (h *Hub) Unregister(connID string) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if conn, exists := h.connections[connID]; exists && conn != nil {
		_ = conn.Close()
		delete(h.connections, connID)
	}
}

// Broadcast writes the message to every connection, dropping the ones that
// fail. Returns the number of clients reached.
func (h *Hub) Broadcast(message interface{}) int {
	h.mutex.RLock()
	ids := make([]string, 0, len(h.connections))
	conns := make([]*websocket.Conn, 0, len(h.connections))
	for id, conn := range h.connections {
		ids = append(ids, id)
		conns = append(conns, conn)
	}
	h.mutex.RUnlock()

	sent := 0
	for i, conn := range conns {
		if conn == nil {
			continue
		}
		if err := conn.WriteJSON(message); err != nil {
			h.Unregister(ids[i])
			continue
		}
		sent++
	}
	return sent
}

func (h *Hub) ConnectionCount() int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	return len(h.connections)
}

func (h *Hub) Close() {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	for id, conn := range h.connections {
		if conn != nil {
			_ = conn.Close()
		}
		delete(h.connections, id)
	}
}
