package gateway

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"
)

// WebSocketHandler exposes the gateway over HTTP.
type WebSocketHandler struct {
	connectionManager *ConnectionManager
}

// NewWebSocketHandler creates the HTTP-facing handler.
func NewWebSocketHandler(cm *ConnectionManager) *WebSocketHandler {
	return &WebSocketHandler{connectionManager: cm}
}

// HandleRoomConnection upgrades a client to a websocket. The connection gets
// its session id at upgrade time; room membership comes later via the
// create_room/join_room actions on the socket itself.
func (h *WebSocketHandler) HandleRoomConnection(w http.ResponseWriter, r *http.Request) {
	if err := h.connectionManager.UpgradeConnection(w, r); err != nil {
		log.Error().Err(err).Msg("failed to upgrade websocket connection")
		http.Error(w, "failed to upgrade connection", http.StatusInternalServerError)
	}
}

// HandleConnectionStats returns active connection counts.
func (h *WebSocketHandler) HandleConnectionStats(w http.ResponseWriter, r *http.Request) {
	total, rooms := h.connectionManager.Stats()

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"total_connections": total,
		"active_rooms":      len(rooms),
		"room_connections":  rooms,
	})
}

// RegisterRoutes registers the gateway's routes on a mux.
func (h *WebSocketHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/ws", h.HandleRoomConnection)
	mux.HandleFunc("/ws/stats", h.HandleConnectionStats)
}
