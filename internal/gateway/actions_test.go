package gateway

import "testing"

func TestParseActionAccepts(t *testing.T) {
	tcs := []struct {
		name string
		raw  string
		want ActionType
	}{
		{name: "create room", raw: `{"type": "create_room", "name": "Ana"}`, want: ActionCreateRoom},
		{name: "join room", raw: `{"type": "join_room", "room_id": "ABC123", "name": "Bea"}`, want: ActionJoinRoom},
		{name: "start spin", raw: `{"type": "start_spin", "room_id": "ABC123"}`, want: ActionStartSpin},
		{name: "bid", raw: `{"type": "bid", "room_id": "ABC123"}`, want: ActionBid},
		{name: "skip", raw: `{"type": "skip", "room_id": "ABC123"}`, want: ActionSkip},
		{name: "force sale", raw: `{"type": "force_sale", "room_id": "ABC123"}`, want: ActionForceSale},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			action, err := parseAction([]byte(tc.raw))
			if err != nil {
				t.Fatalf("parseAction returned error: %v", err)
			}
			if action.Type != tc.want {
				t.Fatalf("type = %s, want %s", action.Type, tc.want)
			}
		})
	}
}

func TestParseActionRejects(t *testing.T) {
	tcs := []struct {
		name string
		raw  string
	}{
		{name: "not json", raw: `garbage`},
		{name: "unknown type", raw: `{"type": "teleport", "room_id": "ABC123"}`},
		{name: "create without name", raw: `{"type": "create_room"}`},
		{name: "join without room", raw: `{"type": "join_room", "name": "Bea"}`},
		{name: "bid without room", raw: `{"type": "bid"}`},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := parseAction([]byte(tc.raw)); err == nil {
				t.Fatalf("parseAction(%s) succeeded, want error", tc.raw)
			}
		})
	}
}
