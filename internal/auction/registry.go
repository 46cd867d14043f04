package auction

import (
	"math/rand"
	"sync"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"

	"github.com/matchroom/auction/internal/catalog"
)

const roomIDAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
const roomIDLength = 6

// Registry is the process-wide room store. It is insert-only during normal
// operation: rooms live for the process lifetime. The registry is injected
// into the transport handlers so tests can build isolated instances.
type Registry struct {
	catalog *catalog.Catalog
	rules   Rules
	clock   clockwork.Clock

	mu    sync.RWMutex
	rooms map[string]*Room
}

// NewRegistry builds a registry whose rooms draw from deep copies of the
// given catalog under the given rules.
func NewRegistry(cat *catalog.Catalog, rules Rules, clock clockwork.Clock) *Registry {
	return &Registry{
		catalog: cat,
		rules:   rules,
		clock:   clock,
		rooms:   make(map[string]*Room),
	}
}

// CreateRoom creates a room with a fresh id, hosted by the given session,
// and registers it. Concurrent creations are safe and always produce
// distinct ids.
func (g *Registry) CreateRoom(hostID, hostName string, b Broadcaster) *Room {
	g.mu.Lock()
	defer g.mu.Unlock()

	id := newRoomID()
	for _, taken := g.rooms[id]; taken; _, taken = g.rooms[id] {
		id = newRoomID()
	}

	room := NewRoom(id, hostID, hostName, g.catalog.Candidates(), g.rules, g.clock, b)
	g.rooms[id] = room

	log.Info().
		Str("room_id", id).
		Str("host_id", hostID).
		Int("pool_size", g.catalog.Size()).
		Msg("room created")
	return room
}

// Get returns the room with the given id.
func (g *Registry) Get(id string) (*Room, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	room, ok := g.rooms[id]
	return room, ok
}

// Count returns the number of rooms created so far.
func (g *Registry) Count() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.rooms)
}

func newRoomID() string {
	b := make([]byte, roomIDLength)
	for i := range b {
		b[i] = roomIDAlphabet[rand.Intn(len(roomIDAlphabet))]
	}
	return string(b)
}
