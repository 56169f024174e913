package live

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/Synchroneyes/keskonmange/pkg/response"
)

// Directory is the part of the room operations the feed needs: an
// existence check before a connection is accepted.
type Directory interface {
	Exists(ctx context.Context, roomID string) bool
}

// Handler upgrades feed requests to websocket connections
type Handler struct {
	hub      *Hub
	rooms    Directory
	upgrader websocket.Upgrader
	log      *zap.Logger
}

// NewHandler creates a new feed handler
func NewHandler(hub *Hub, rooms Directory, log *zap.Logger) *Handler {
	return &Handler{
		hub:   hub,
		rooms: rooms,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Cross-origin policy is enforced by the CORS middleware
			// on the rest of the API; the feed follows suit.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		log: log,
	}
}

// ServeRoom handles GET /salles/{id}/flux
func (h *Handler) ServeRoom(w http.ResponseWriter, r *http.Request) {
	roomID := chi.URLParam(r, "id")
	if !h.rooms.Exists(r.Context(), roomID) {
		response.NotFound(w, "Salle non trouvée")
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade already wrote the HTTP error.
		h.log.Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	c := &client{
		conn:   conn,
		roomID: roomID,
		send:   make(chan []byte, 64),
	}
	h.hub.add(c)

	h.log.Info("feed subscriber connected", zap.String("roomId", roomID))

	go c.writePump()
	c.readPump(h.hub)
}
