// Package realtime pushes counter updates to connected clients. Every
// connection joins a room keyed by its own user id; publishing targets the
// participant list directly, so updates never reach users outside it.
package realtime

import (
	"encoding/json"
	"log"
	"sync"
	"time"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
)

// Message is the wire envelope for every pushed event.
type Message struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

type Hub struct {
	rooms map[string]map[*Client]bool
	mu    sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{rooms: make(map[string]map[*Client]bool)}
}

func (h *Hub) Join(userID string, c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.rooms[userID] == nil {
		h.rooms[userID] = make(map[*Client]bool)
	}
	h.rooms[userID][c] = true
}

func (h *Hub) Leave(userID string, c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if m := h.rooms[userID]; m != nil {
		delete(m, c)
		if len(m) == 0 {
			delete(h.rooms, userID)
		}
	}
}

// Publish fans event out to every connection in each listed user's room.
// Slow consumers are dropped rather than blocking the publisher.
func (h *Hub) Publish(userIDs []string, event string, payload interface{}) {
	b, err := json.Marshal(Message{Event: event, Data: payload})
	if err != nil {
		log.Printf("[Realtime] Failed to marshal %s event: %v", event, err)
		return
	}

	h.mu.RLock()
	var conns []*Client
	for _, id := range userIDs {
		for c := range h.rooms[id] {
			conns = append(conns, c)
		}
	}
	h.mu.RUnlock()

	for _, c := range conns {
		select {
		case c.send <- b:
		default:
			go c.Close()
		}
	}
}
