package auction

import (
	"testing"

	"github.com/jonboulle/clockwork"

	"github.com/matchroom/auction/internal/catalog"
	"github.com/matchroom/auction/internal/models"
)

func testRegistry(t *testing.T) *Registry {
	t.Helper()
	cat, err := catalog.Parse([]byte(`[
		{"name": "Keeper One", "position": "GK", "basePrice": 40},
		{"name": "Striker One", "position": "CF", "basePrice": 60}
	]`))
	if err != nil {
		t.Fatalf("failed to parse test catalog: %v", err)
	}
	return NewRegistry(cat, DefaultRules(), clockwork.NewFakeClock())
}

func TestCreateRoomRegistersHost(t *testing.T) {
	registry := testRegistry(t)

	room := registry.CreateRoom("host", "Ana", nil)
	if room.HostID() != "host" {
		t.Fatalf("host id = %s, want host", room.HostID())
	}
	if len(room.ID()) != roomIDLength {
		t.Fatalf("room id %q length = %d, want %d", room.ID(), len(room.ID()), roomIDLength)
	}

	got, ok := registry.Get(room.ID())
	if !ok || got != room {
		t.Fatal("created room not retrievable from registry")
	}
	if registry.Count() != 1 {
		t.Fatalf("count = %d, want 1", registry.Count())
	}

	snap := room.Snapshot()
	if p, ok := snap.Players["host"]; !ok || p.Name != "Ana" || p.Balance != 1000 {
		t.Fatalf("host ledger entry = %+v, want Ana with stake 1000", snap.Players["host"])
	}
}

func TestGetUnknownRoom(t *testing.T) {
	registry := testRegistry(t)
	if _, ok := registry.Get("NOPE99"); ok {
		t.Fatal("Get returned a room for an unknown id")
	}
}

func TestRoomsGetIndependentPools(t *testing.T) {
	registry := testRegistry(t)

	first := registry.CreateRoom("h1", "Ana", nil)
	second := registry.CreateRoom("h2", "Bea", nil)
	if first.ID() == second.ID() {
		t.Fatalf("two rooms share id %s", first.ID())
	}

	if _, ok := first.pool.Draw(models.PositionGK); !ok {
		t.Fatal("draw from first room failed")
	}
	if second.pool.Remaining() != 2 {
		t.Fatalf("second room pool = %d after draw in first, want 2", second.pool.Remaining())
	}
}
