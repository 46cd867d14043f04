package gateway

import (
	"encoding/json"
	"fmt"
)

// ActionType names an inbound participant action.
type ActionType string

const (
	ActionCreateRoom ActionType = "create_room"
	ActionJoinRoom   ActionType = "join_room"
	ActionStartSpin  ActionType = "start_spin"
	ActionBid        ActionType = "bid"
	ActionSkip       ActionType = "skip"
	ActionForceSale  ActionType = "force_sale"
)

// Action is the message clients send over the websocket. The actor identity
// is never part of the payload; it is the session id of the connection the
// action arrived on.
type Action struct {
	Type   ActionType `json:"type"`
	RoomID string     `json:"room_id,omitempty"`
	Name   string     `json:"name,omitempty"`
}

// parseAction decodes and validates an inbound action message.
func parseAction(raw []byte) (Action, error) {
	var action Action
	if err := json.Unmarshal(raw, &action); err != nil {
		return Action{}, fmt.Errorf("failed to parse action: %w", err)
	}

	switch action.Type {
	case ActionCreateRoom:
		if action.Name == "" {
			return Action{}, fmt.Errorf("create_room requires a name")
		}
	case ActionJoinRoom:
		if action.RoomID == "" || action.Name == "" {
			return Action{}, fmt.Errorf("join_room requires room_id and name")
		}
	case ActionStartSpin, ActionBid, ActionSkip, ActionForceSale:
		if action.RoomID == "" {
			return Action{}, fmt.Errorf("%s requires room_id", action.Type)
		}
	default:
		return Action{}, fmt.Errorf("unknown action type %q", action.Type)
	}
	return action, nil
}
