package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

// ConnectionManager owns every websocket connection and the per-room fan-out
// pools. Broadcasts are funneled through a buffered channel so that callers
// (including the room engine, which enqueues while holding its lock) never
// block on a slow socket.
type ConnectionManager struct {
	roomConnections map[string]map[*Connection]bool
	mu              sync.RWMutex

	upgrader websocket.Upgrader
	config   ConnectionConfig

	broadcastCh chan broadcastMessage

	// router receives every parsed client frame.
	router ActionRouter
}

// ActionRouter handles raw inbound frames from a connection.
type ActionRouter interface {
	Route(conn *Connection, raw []byte)
}

// Connection is one websocket client. Its ID doubles as the participant's
// session identity for the lifetime of the socket.
type Connection struct {
	ID      string
	Conn    *websocket.Conn
	Send    chan []byte
	Manager *ConnectionManager

	ConnectedAt time.Time

	mu     sync.Mutex
	roomID string
}

// ConnectionConfig holds websocket tuning knobs.
type ConnectionConfig struct {
	WriteTimeout    time.Duration
	ReadTimeout     time.Duration
	PingInterval    time.Duration
	MaxMessageSize  int64
	ReadBufferSize  int
	WriteBufferSize int
	CheckOrigin     func(r *http.Request) bool
}

type broadcastMessage struct {
	RoomID    string
	SessionID string // if set, deliver only to this session
	Event     *RoomEvent
}

// DefaultConnectionConfig returns the default websocket configuration.
func DefaultConnectionConfig() ConnectionConfig {
	return ConnectionConfig{
		WriteTimeout:    10 * time.Second,
		ReadTimeout:     60 * time.Second,
		PingInterval:    30 * time.Second,
		MaxMessageSize:  1024,
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			// Allow all origins in development - restrict in production
			return true
		},
	}
}

// NewConnectionManager creates a connection manager.
func NewConnectionManager(config ConnectionConfig) *ConnectionManager {
	return &ConnectionManager{
		roomConnections: make(map[string]map[*Connection]bool),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  config.ReadBufferSize,
			WriteBufferSize: config.WriteBufferSize,
			CheckOrigin:     config.CheckOrigin,
		},
		config:      config,
		broadcastCh: make(chan broadcastMessage, 1000),
	}
}

// SetRouter installs the handler for inbound client frames. Must be called
// before the first upgrade.
func (cm *ConnectionManager) SetRouter(router ActionRouter) {
	cm.router = router
}

// Start processes broadcast messages until the context is cancelled.
func (cm *ConnectionManager) Start(ctx context.Context) {
	log.Info().Msg("connection manager started")

	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("connection manager shutting down")
			return
		case message := <-cm.broadcastCh:
			cm.handleBroadcast(message)
		}
	}
}

// UpgradeConnection upgrades an HTTP request to a websocket and assigns the
// connection its session identity.
func (cm *ConnectionManager) UpgradeConnection(w http.ResponseWriter, r *http.Request) error {
	conn, err := cm.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error().Err(err).Msg("failed to upgrade websocket connection")
		return fmt.Errorf("failed to upgrade connection: %w", err)
	}

	connection := &Connection{
		ID:          uuid.New().String(),
		Conn:        conn,
		Send:        make(chan []byte, 256),
		Manager:     cm,
		ConnectedAt: time.Now(),
	}

	go connection.writePump()
	go connection.readPump()

	log.Info().
		Str("session_id", connection.ID).
		Msg("websocket connection established")
	return nil
}

// RoomID returns the room this connection has joined, if any.
func (c *Connection) RoomID() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.roomID
}

// JoinRoom adds a connection to a room's fan-out pool. A connection belongs
// to at most one room; a second join moves it.
func (cm *ConnectionManager) JoinRoom(conn *Connection, roomID string) {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	conn.mu.Lock()
	previous := conn.roomID
	conn.roomID = roomID
	conn.mu.Unlock()

	if previous != "" && previous != roomID {
		cm.removeFromPoolLocked(conn, previous, false)
	}

	if cm.roomConnections[roomID] == nil {
		cm.roomConnections[roomID] = make(map[*Connection]bool)
	}
	cm.roomConnections[roomID][conn] = true

	log.Debug().
		Str("session_id", conn.ID).
		Str("room_id", roomID).
		Int("total_connections", len(cm.roomConnections[roomID])).
		Msg("connection joined room pool")
}

// unregisterConnection detaches a connection from its room pool. The
// participant's ledger entry in the room engine deliberately survives the
// socket.
func (cm *ConnectionManager) unregisterConnection(conn *Connection) {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	conn.mu.Lock()
	roomID := conn.roomID
	conn.roomID = ""
	conn.mu.Unlock()

	if roomID == "" {
		return
	}
	cm.removeFromPoolLocked(conn, roomID, true)
}

func (cm *ConnectionManager) removeFromPoolLocked(conn *Connection, roomID string, closeSend bool) {
	connections, exists := cm.roomConnections[roomID]
	if !exists {
		return
	}
	if _, exists := connections[conn]; !exists {
		return
	}
	delete(connections, conn)
	if closeSend {
		close(conn.Send)
	}

	if len(connections) == 0 {
		delete(cm.roomConnections, roomID)
	}

	log.Info().
		Str("session_id", conn.ID).
		Str("room_id", roomID).
		Msg("connection unregistered")
}

// BroadcastToRoom queues an event for every connection in a room.
func (cm *ConnectionManager) BroadcastToRoom(roomID string, event *RoomEvent) {
	select {
	case cm.broadcastCh <- broadcastMessage{RoomID: roomID, Event: event}:
	default:
		log.Warn().Str("room_id", roomID).Msg("broadcast channel full, dropping message")
	}
}

// BroadcastToSession queues an event for one session in a room.
func (cm *ConnectionManager) BroadcastToSession(roomID, sessionID string, event *RoomEvent) {
	select {
	case cm.broadcastCh <- broadcastMessage{RoomID: roomID, SessionID: sessionID, Event: event}:
	default:
		log.Warn().
			Str("room_id", roomID).
			Str("session_id", sessionID).
			Msg("broadcast channel full, dropping session message")
	}
}

func (cm *ConnectionManager) handleBroadcast(message broadcastMessage) {
	cm.mu.RLock()
	connections, exists := cm.roomConnections[message.RoomID]
	if !exists {
		cm.mu.RUnlock()
		return
	}

	var targets []*Connection
	for conn := range connections {
		if message.SessionID != "" && conn.ID != message.SessionID {
			continue
		}
		targets = append(targets, conn)
	}
	cm.mu.RUnlock()

	eventData, err := json.Marshal(message.Event)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal event for broadcast")
		return
	}

	for _, conn := range targets {
		select {
		case conn.Send <- eventData:
		default:
			// Connection is slow or dead, close it.
			log.Warn().
				Str("session_id", conn.ID).
				Msg("connection send buffer full, closing connection")
			cm.unregisterConnection(conn)
			conn.Conn.Close()
		}
	}

	log.Debug().
		Str("event_type", string(message.Event.Type)).
		Str("room_id", message.RoomID).
		Int("connections", len(targets)).
		Msg("event broadcasted")
}

// Stats reports active connection counts per room.
func (cm *ConnectionManager) Stats() (total int, rooms map[string]int) {
	cm.mu.RLock()
	defer cm.mu.RUnlock()

	rooms = make(map[string]int, len(cm.roomConnections))
	for roomID, connections := range cm.roomConnections {
		rooms[roomID] = len(connections)
		total += len(connections)
	}
	return total, rooms
}

func (c *Connection) writePump() {
	ticker := time.NewTicker(c.Manager.config.PingInterval)
	defer func() {
		ticker.Stop()
		c.Conn.Close()
		c.Manager.unregisterConnection(c)
	}()

	for {
		select {
		case message, ok := <-c.Send:
			c.Conn.SetWriteDeadline(time.Now().Add(c.Manager.config.WriteTimeout))
			if !ok {
				c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
				log.Error().
					Err(err).
					Str("session_id", c.ID).
					Msg("failed to write message to websocket")
				return
			}

		case <-ticker.C:
			c.Conn.SetWriteDeadline(time.Now().Add(c.Manager.config.WriteTimeout))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				log.Error().
					Err(err).
					Str("session_id", c.ID).
					Msg("failed to send ping")
				return
			}
		}
	}
}

func (c *Connection) readPump() {
	defer func() {
		c.Manager.unregisterConnection(c)
		c.Conn.Close()
	}()

	c.Conn.SetReadLimit(c.Manager.config.MaxMessageSize)
	c.Conn.SetReadDeadline(time.Now().Add(c.Manager.config.ReadTimeout))
	c.Conn.SetPongHandler(func(string) error {
		c.Conn.SetReadDeadline(time.Now().Add(c.Manager.config.ReadTimeout))
		return nil
	})

	for {
		_, message, err := c.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Error().
					Err(err).
					Str("session_id", c.ID).
					Msg("unexpected websocket close error")
			}
			break
		}

		if c.Manager.router != nil {
			c.Manager.router.Route(c, message)
		}
		c.Conn.SetReadDeadline(time.Now().Add(c.Manager.config.ReadTimeout))
	}
}
