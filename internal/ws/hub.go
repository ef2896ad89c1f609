package ws

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/gorilla/websocket"
)

type WSMessage struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

// Hub fans completion events out to connected research monitors.
// Broadcasting is best-effort; a failed write just drops that client.
type Hub struct {
	mu       sync.RWMutex
	monitors map[*websocket.Conn]bool
}

func NewHub() *Hub {
	return &Hub{
		monitors: make(map[*websocket.Conn]bool),
	}
}

func (h *Hub) AddConnection(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.monitors[conn] = true
	log.Printf("ws: monitor connected (total: %d)", len(h.monitors))
}

func (h *Hub) RemoveConnection(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.monitors[conn]; ok {
		delete(h.monitors, conn)
		conn.Close()
		log.Printf("ws: monitor disconnected (total: %d)", len(h.monitors))
	}
}

func (h *Hub) Broadcast(message WSMessage) {
	h.mu.Lock()
	defer h.mu.Unlock()

	data, err := json.Marshal(message)
	if err != nil {
		log.Printf("ws: marshal error: %v", err)
		return
	}

	for conn := range h.monitors {
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			log.Printf("ws: write error: %v", err)
			conn.Close()
			delete(h.monitors, conn)
		}
	}
}
