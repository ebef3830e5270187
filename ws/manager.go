package ws

import (
	"sync"

	"github.com/kamranshamim45/ai-job-portal/internal/logger"
)

const sendBufferSize = 16

// Hub tracks connected clients keyed by account id and fans events out to
// them. Delivery is best effort: publishing never blocks the caller, and a
// client whose send buffer is full is dropped.
type Hub struct {
	clients    map[string]*Client
	register   chan *Client
	unregister chan *Client
	broadcast  chan Event
	mu         sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[string]*Client),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan Event, 64),
	}
}

// Run processes register/unregister/broadcast traffic. Start it once in a
// goroutine at startup.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			if old, ok := h.clients[client.ID]; ok {
				close(old.Send)
			}
			h.clients[client.ID] = client
			total := len(h.clients)
			h.mu.Unlock()
			logger.Debug("ws client registered", "account_id", client.ID, "total", total)

		case client := <-h.unregister:
			h.mu.Lock()
			if current, ok := h.clients[client.ID]; ok && current == client {
				close(client.Send)
				delete(h.clients, client.ID)
			}
			total := len(h.clients)
			h.mu.Unlock()
			logger.Debug("ws client unregistered", "account_id", client.ID, "total", total)

		case event := <-h.broadcast:
			h.broadcastEvent(event)
		}
	}
}

// Publish broadcasts an event to every connected client. It never blocks:
// when the broadcast queue is full the event is dropped.
func (h *Hub) Publish(event Event) {
	select {
	case h.broadcast <- event:
	default:
		logger.Warn("ws broadcast queue full, event dropped", "kind", event.Kind)
	}
}

// PublishTo delivers an event to one account's connection, if any. A
// disconnected subscriber simply misses the event. The read lock is held
// across the send: Run closes send channels under the write lock, so the
// send can never race a close.
func (h *Hub) PublishTo(accountID string, event Event) {
	h.mu.RLock()
	client, ok := h.clients[accountID]
	if !ok {
		h.mu.RUnlock()
		return
	}

	full := false
	select {
	case client.Send <- event:
	default:
		full = true
	}
	h.mu.RUnlock()

	if full {
		h.drop(client)
	}
}

func (h *Hub) broadcastEvent(event Event) {
	h.mu.RLock()
	stale := make([]*Client, 0)
	for _, client := range h.clients {
		select {
		case client.Send <- event:
		default:
			stale = append(stale, client)
		}
	}
	h.mu.RUnlock()

	for _, client := range stale {
		h.drop(client)
	}
}

// drop schedules an unresponsive client for unregistration without blocking
// the publish path.
func (h *Hub) drop(client *Client) {
	go func() {
		h.unregister <- client
	}()
}

// ClientCount returns the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// IsConnected reports whether the account has a live connection.
func (h *Hub) IsConnected(accountID string) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	_, exists := h.clients[accountID]
	return exists
}
