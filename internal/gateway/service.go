package gateway

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/matchroom/auction/internal/auction"
)

// Service wires the websocket transport to the room engine. It routes
// inbound client actions to the registry's rooms and implements
// auction.Broadcaster so rooms can fan their snapshots back out.
type Service struct {
	registry *auction.Registry
	cm       *ConnectionManager
}

// NewService builds the gateway service and installs it as the connection
// manager's action router.
func NewService(registry *auction.Registry, cm *ConnectionManager) *Service {
	s := &Service{registry: registry, cm: cm}
	cm.SetRouter(s)
	return s
}

// Start runs the connection manager's broadcast loop.
func (s *Service) Start(ctx context.Context) {
	s.cm.Start(ctx)
}

// Route handles one inbound client frame. Validation rejections from the
// engine are local outcomes, logged and dropped; they never affect the room.
func (s *Service) Route(conn *Connection, raw []byte) {
	action, err := parseAction(raw)
	if err != nil {
		log.Warn().Err(err).Str("session_id", conn.ID).Msg("dropping malformed action")
		return
	}

	switch action.Type {
	case ActionCreateRoom:
		s.handleCreateRoom(conn, action)
	case ActionJoinRoom:
		s.handleJoinRoom(conn, action)
	case ActionStartSpin:
		s.handleRoomAction(conn, action, func(room *auction.Room) error {
			return room.StartDraw(conn.ID)
		})
	case ActionBid:
		s.handleRoomAction(conn, action, func(room *auction.Room) error {
			return room.Bid(conn.ID)
		})
	case ActionSkip:
		s.handleRoomAction(conn, action, func(room *auction.Room) error {
			return room.Skip(conn.ID)
		})
	case ActionForceSale:
		s.handleRoomAction(conn, action, func(room *auction.Room) error {
			return room.ForceSale(conn.ID)
		})
	}
}

func (s *Service) handleCreateRoom(conn *Connection, action Action) {
	room := s.registry.CreateRoom(conn.ID, action.Name, s)
	s.cm.JoinRoom(conn, room.ID())
	s.sendRoomJoined(room.ID(), conn.ID)
	room.PublishState()
}

func (s *Service) handleJoinRoom(conn *Connection, action Action) {
	room, ok := s.registry.Get(action.RoomID)
	if !ok {
		log.Warn().
			Str("session_id", conn.ID).
			Str("room_id", action.RoomID).
			Msg("join for unknown room")
		return
	}
	s.cm.JoinRoom(conn, room.ID())
	s.sendRoomJoined(room.ID(), conn.ID)
	room.Join(conn.ID, action.Name)
}

func (s *Service) handleRoomAction(conn *Connection, action Action, apply func(*auction.Room) error) {
	room, ok := s.registry.Get(action.RoomID)
	if !ok {
		log.Warn().
			Str("session_id", conn.ID).
			Str("room_id", action.RoomID).
			Str("action", string(action.Type)).
			Msg("action for unknown room")
		return
	}
	if err := apply(room); err != nil {
		log.Debug().
			Err(err).
			Str("session_id", conn.ID).
			Str("room_id", action.RoomID).
			Str("action", string(action.Type)).
			Msg("action rejected")
	}
}

func (s *Service) sendRoomJoined(roomID, sessionID string) {
	event, err := newRoomJoinedEvent(roomID, sessionID)
	if err != nil {
		log.Error().Err(err).Msg("failed to build RoomJoined event")
		return
	}
	s.cm.BroadcastToSession(roomID, sessionID, event)
}

// RoomState implements auction.Broadcaster. It only enqueues, so it is safe
// to call from inside a room transition.
func (s *Service) RoomState(roomID string, snap *auction.Snapshot) {
	event, err := newRoomStateEvent(roomID, snap)
	if err != nil {
		log.Error().Err(err).Str("room_id", roomID).Msg("failed to build RoomState event")
		return
	}
	s.cm.BroadcastToRoom(roomID, event)
}

// WheelResult implements auction.Broadcaster.
func (s *Service) WheelResult(roomID string, result auction.WheelResult) {
	event, err := newWheelResultEvent(roomID, result)
	if err != nil {
		log.Error().Err(err).Str("room_id", roomID).Msg("failed to build WheelResult event")
		return
	}
	s.cm.BroadcastToRoom(roomID, event)
}
