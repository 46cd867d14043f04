package gateway

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/matchroom/auction/internal/auction"
)

// RoomEvent is the envelope for every message the gateway pushes to clients.
type RoomEvent struct {
	ID        string          `json:"id"`
	RoomID    string          `json:"room_id"`
	Type      EventType       `json:"type"`
	Timestamp time.Time       `json:"timestamp"`
	Data      json.RawMessage `json:"data"`
}

// EventType names an outbound gateway event.
type EventType string

const (
	EventTypeRoomJoined  EventType = "RoomJoined"
	EventTypeRoomState   EventType = "RoomState"
	EventTypeWheelResult EventType = "WheelResult"
)

// RoomJoinedPayload acknowledges that a session entered a room.
type RoomJoinedPayload struct {
	RoomID    string `json:"room_id"`
	SessionID string `json:"session_id"`
}

func newRoomEvent(roomID string, eventType EventType, payload any) (*RoomEvent, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return &RoomEvent{
		ID:        uuid.New().String(),
		RoomID:    roomID,
		Type:      eventType,
		Timestamp: time.Now(),
		Data:      data,
	}, nil
}

func newRoomStateEvent(roomID string, snap *auction.Snapshot) (*RoomEvent, error) {
	return newRoomEvent(roomID, EventTypeRoomState, snap)
}

func newWheelResultEvent(roomID string, result auction.WheelResult) (*RoomEvent, error) {
	return newRoomEvent(roomID, EventTypeWheelResult, result)
}

func newRoomJoinedEvent(roomID, sessionID string) (*RoomEvent, error) {
	return newRoomEvent(roomID, EventTypeRoomJoined, RoomJoinedPayload{
		RoomID:    roomID,
		SessionID: sessionID,
	})
}
