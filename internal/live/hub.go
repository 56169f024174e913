// Package live pushes room events to websocket subscribers so clients
// see proposals and vote tallies move without polling. It is purely a
// boundary concern: the HTTP handlers publish events after a mutation
// succeeds, and the domain services know nothing about it.
package live

import (
	"encoding/json"
	"sync"

	"go.uber.org/zap"
)

// Event types published on a room feed.
const (
	EventProposalAdded   = "proposition_ajoutee"
	EventProposalEdited  = "proposition_modifiee"
	EventProposalDeleted = "proposition_supprimee"
	EventVoteCast        = "vote_enregistre"
	EventVoteRemoved     = "vote_supprime"
)

// Event is one message pushed to the subscribers of a room.
type Event struct {
	Type string      `json:"type"`
	Data interface{} `json:"data,omitempty"`
}

// Hub tracks the websocket subscribers of every room and fans events
// out to them.
type Hub struct {
	mu      sync.RWMutex
	clients map[string]map[*client]struct{} // roomID -> subscribers
	log     *zap.Logger
}

// NewHub creates an empty hub
func NewHub(log *zap.Logger) *Hub {
	return &Hub{
		clients: make(map[string]map[*client]struct{}),
		log:     log,
	}
}

// Publish sends an event to every subscriber of a room. Subscribers
// whose send queue is full are dropped rather than blocking the caller.
func (h *Hub) Publish(roomID string, ev Event) {
	payload, err := json.Marshal(ev)
	if err != nil {
		h.log.Error("event encoding failed", zap.Error(err))
		return
	}

	h.mu.RLock()
	subscribers := make([]*client, 0, len(h.clients[roomID]))
	for c := range h.clients[roomID] {
		subscribers = append(subscribers, c)
	}
	h.mu.RUnlock()

	for _, c := range subscribers {
		select {
		case c.send <- payload:
		default:
			h.remove(c)
			c.conn.Close()
		}
	}
}

// Subscribers returns the number of open connections for a room
func (h *Hub) Subscribers(roomID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.clients[roomID])
}

func (h *Hub) add(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.clients[c.roomID] == nil {
		h.clients[c.roomID] = make(map[*client]struct{})
	}
	h.clients[c.roomID][c] = struct{}{}
}

func (h *Hub) remove(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if subscribers, ok := h.clients[c.roomID]; ok {
		delete(subscribers, c)
		if len(subscribers) == 0 {
			delete(h.clients, c.roomID)
		}
	}
}
