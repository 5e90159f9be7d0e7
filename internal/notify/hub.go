// Package notify broadcasts collection change events to connected
// WebSocket clients so other open tabs refresh immediately.
package notify

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"
)

// Event is a change notification broadcast to all clients.
type Event struct {
	Type       string `json:"type"`
	Collection string `json:"collection"`
	Action     string `json:"action"`
	ID         string `json:"id,omitempty"`
}

// NewEvent creates an Event with the Type field derived from collection
// and action.
func NewEvent(collection, action, id string) Event {
	return Event{
		Type:       fmt.Sprintf("%s_%s", collection, action),
		Collection: collection,
		Action:     action,
		ID:         id,
	}
}

// Hub maintains the set of active WebSocket clients and broadcasts events.
type Hub struct {
	mu      sync.RWMutex
	clients map[*Client]struct{}
}

func NewHub() *Hub {
	return &Hub{
		clients: make(map[*Client]struct{}),
	}
}

// Register adds a client to the hub.
func (h *Hub) Register(c *Client) {
	h.mu.Lock()
	h.clients[c] = struct{}{}
	h.mu.Unlock()
}

// Unregister removes a client from the hub and closes its send channel.
func (h *Hub) Unregister(c *Client) {
	h.mu.Lock()
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.send)
	}
	h.mu.Unlock()
}

// Broadcast sends an event to all connected clients.
func (h *Hub) Broadcast(event Event) {
	data, err := json.Marshal(event)
	if err != nil {
		log.Printf("notify: failed to encode event: %v", err)
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for c := range h.clients {
		select {
		case c.send <- data:
		default:
			// Client buffer full, drop rather than block the mutation path.
		}
	}
}

// Publish broadcasts a change to one collection.
func (h *Hub) Publish(collection, action, id string) {
	h.Broadcast(NewEvent(collection, action, id))
}

// ClientCount returns the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
