package websocket

import (
	"encoding/json"
	"sync"

	"github.com/DhairyaS450/personal-website-sub000/internal/pkg/logger"
)

// Hub tracks open page connections and pushes a refresh notice after every
// content commit. Connections are anonymous; a visitor with an open page and
// the admin with a second tab get the same frame.
type Hub struct {
	clients map[*Client]struct{}

	register   chan *Client
	unregister chan *Client

	mu sync.RWMutex

	logger logger.ILogger
}

func NewHub(log logger.ILogger) *Hub {
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		clients:    make(map[*Client]struct{}),
		logger:     log,
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = struct{}{}
			h.mu.Unlock()
			h.logger.Info("Hub", "Client registered", map[string]interface{}{"clients": h.ClientCount()})

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.Send)
			}
			h.mu.Unlock()
			h.logger.Info("Hub", "Client unregistered", map[string]interface{}{"clients": h.ClientCount()})
		}
	}
}

func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// BroadcastContentUpdated sends a content_updated frame to every connection.
// Clients that can't keep up are dropped.
func (h *Hub) BroadcastContentUpdated(payload []byte) {
	data, _ := json.Marshal(map[string]interface{}{
		"type": "content_updated",
		"data": json.RawMessage(payload),
	})

	h.mu.RLock()
	defer h.mu.RUnlock()
	for client := range h.clients {
		select {
		case client.Send <- data:
		default:
			go func(c *Client) { h.unregister <- c }(client)
		}
	}
}
