package auction

import (
	"fmt"
	"math/rand"
	"sync"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"

	"github.com/matchroom/auction/internal/models"
)

// State names the phase a room is in. At most one lot is live at a time and
// the state is fully derived from the lot and the draw flag.
type State string

const (
	StateIdle         State = "IDLE"
	StateDrawing      State = "DRAWING"
	StateOpenPhase    State = "OPEN_PHASE"
	StateBiddingPhase State = "BIDDING_PHASE"
)

// ActiveBid is the highest accepted bid on the current lot.
type ActiveBid struct {
	Amount int    `json:"amount"`
	Bidder string `json:"bidder"`
}

// Lot is the auction context for the candidate currently on the block.
// Bid == nil means no bid has been placed yet (the open phase).
type Lot struct {
	Candidate models.Candidate
	Position  models.Position
	Bid       *ActiveBid
}

// WheelResult announces the position drawn for a new lot, sent before the
// suspense delay completes so clients can animate the wheel.
type WheelResult struct {
	Index    int             `json:"index"`
	Position models.Position `json:"position"`
}

// Broadcaster delivers room output to every connected participant.
// Implementations must not block: they are invoked while the room lock is
// held so that snapshots go out in transition order.
type Broadcaster interface {
	RoomState(roomID string, snap *Snapshot)
	WheelResult(roomID string, result WheelResult)
}

// Room is the per-room auction engine. It owns the pool, the ledger, the
// current lot, and both phase timers, and it is the sole writer of all of
// them. Every participant action and every timer callback serializes through
// the room mutex, so transitions are totally ordered within a room.
type Room struct {
	id     string
	hostID string

	rules       Rules
	clock       clockwork.Clock
	broadcaster Broadcaster
	rng         func(n int) int

	mu        sync.Mutex
	ledger    *Ledger
	pool      *Pool
	unsold    []models.Candidate
	skipped   map[string]bool
	lot       *Lot
	drawing   bool
	openTimer *PhaseTimer
	bidTimer  *PhaseTimer
	log       []models.LogEntry
}

// NewRoom creates a room with the given host as its first participant. The
// candidate slice seeds the room's private pool and is owned by it
// afterwards.
func NewRoom(id, hostID, hostName string, candidates []models.Candidate, rules Rules, clock clockwork.Clock, b Broadcaster) *Room {
	r := &Room{
		id:          id,
		hostID:      hostID,
		rules:       rules,
		clock:       clock,
		broadcaster: b,
		rng:         rand.Intn,
		ledger:      NewLedger(),
		pool:        NewPool(candidates),
		unsold:      []models.Candidate{},
		skipped:     make(map[string]bool),
		openTimer:   NewPhaseTimer(clock),
		bidTimer:    NewPhaseTimer(clock),
	}
	r.openTimer.Set(rules.OpenPhaseSec)
	r.bidTimer.Set(rules.BiddingPhaseSec)
	r.ledger.Join(hostID, hostName, rules.StartingBalance)
	return r
}

// ID returns the room's identifier.
func (r *Room) ID() string {
	return r.id
}

// HostID returns the session id of the room host.
func (r *Room) HostID() string {
	return r.hostID
}

func (r *Room) stateLocked() State {
	switch {
	case r.drawing:
		return StateDrawing
	case r.lot == nil:
		return StateIdle
	case r.lot.Bid == nil:
		return StateOpenPhase
	default:
		return StateBiddingPhase
	}
}

// Join adds a participant with the default stake and an empty squad.
// Rejoining with a known session id is a no-op.
func (r *Room) Join(sessionID, name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ledger.Join(sessionID, name, r.rules.StartingBalance)
	r.broadcastLocked()
}

// PublishState pushes a fresh snapshot to all participants, for transport
// use right after a connection joins the room's fan-out group.
func (r *Room) PublishState() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.broadcastLocked()
}

// StartDraw spins the position wheel and schedules the pool lookup after the
// suspense delay. Host only, and only while the room is idle.
func (r *Room) StartDraw(sessionID string) error {
	r.mu.Lock()
	if sessionID != r.hostID {
		r.mu.Unlock()
		return ErrNotHost
	}
	if r.drawing || r.lot != nil {
		r.mu.Unlock()
		return ErrNotIdle
	}

	idx := r.rng(len(models.AllPositions))
	pos := models.AllPositions[idx]
	r.drawing = true

	log.Info().Str("room_id", r.id).Str("position", string(pos)).Msg("draw started")
	if r.broadcaster != nil {
		r.broadcaster.WheelResult(r.id, WheelResult{Index: idx, Position: pos})
	}
	r.broadcastLocked()
	suspense := r.rules.DrawSuspense
	r.mu.Unlock()

	if suspense <= 0 {
		r.completeDraw(pos)
		return nil
	}

	go func() {
		timer := r.clock.NewTimer(suspense)
		defer timer.Stop()
		<-timer.Chan()
		r.completeDraw(pos)
	}()
	return nil
}

// completeDraw performs the pool lookup once the suspense delay elapses.
func (r *Room) completeDraw(pos models.Position) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.drawing {
		return
	}
	r.drawing = false

	candidate, ok := r.pool.Draw(pos)
	if !ok {
		r.appendLogLocked(models.LogTypeInfo, fmt.Sprintf("No candidates left for %s", pos))
		r.broadcastLocked()
		return
	}

	r.lot = &Lot{Candidate: candidate, Position: pos}
	r.skipped = make(map[string]bool)
	r.appendLogLocked(models.LogTypeSpin, fmt.Sprintf("%s → %s (%dM)", pos, candidate.Name, candidate.BasePrice))

	r.openTimer.Start(r.rules.OpenPhaseSec, r.onTick, r.onOpenExpiry)
	r.bidTimer.Set(r.rules.BiddingPhaseSec)

	log.Info().
		Str("room_id", r.id).
		Str("candidate", candidate.Name).
		Str("position", string(pos)).
		Int("base_price", candidate.BasePrice).
		Msg("lot opened")
	r.broadcastLocked()
}

// Bid places a bid for the acting participant at the next required amount.
func (r *Room) Bid(sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.ledger.Get(sessionID)
	if !ok {
		return ErrNotParticipant
	}
	if r.lot == nil {
		return ErrNoAuction
	}
	if r.skipped[sessionID] {
		return ErrAbstained
	}
	if r.lot.Bid != nil && r.lot.Bid.Bidder == sessionID {
		return ErrSelfOutbid
	}
	if len(p.Squad) >= r.rules.RosterCap {
		return ErrRosterFull
	}

	current := 0
	if r.lot.Bid != nil {
		current = r.lot.Bid.Amount
	}
	next := r.rules.NextBid(current, r.lot.Candidate.BasePrice)
	if p.Balance < next {
		return ErrInsufficientBalance
	}

	if r.lot.Bid == nil {
		// First bid: the open phase ends and the bidding window begins.
		r.openTimer.Cancel()
		r.bidTimer.Start(r.rules.BiddingPhaseSec, r.onTick, r.onBidExpiry)
	} else {
		// Bid activity extends the window.
		r.bidTimer.Reset(r.rules.BiddingPhaseSec)
	}

	r.lot.Bid = &ActiveBid{Amount: next, Bidder: sessionID}
	r.appendLogLocked(models.LogTypeInfo, fmt.Sprintf("%s bid %dM", p.Name, next))

	log.Debug().
		Str("room_id", r.id).
		Str("session_id", sessionID).
		Int("amount", next).
		Msg("bid accepted")
	r.broadcastLocked()
	return nil
}

// Skip records that the acting participant abstains from the current lot.
// Skipping is idempotent. When everyone except a standing bidder has
// abstained, or everyone has abstained with no bid at all, the lot settles
// immediately.
func (r *Room) Skip(sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.ledger.Get(sessionID)
	if !ok {
		return ErrNotParticipant
	}
	if r.lot == nil {
		return ErrNoAuction
	}
	if r.lot.Bid != nil && r.lot.Bid.Bidder == sessionID {
		return ErrBidderCannotSkip
	}
	if r.skipped[sessionID] {
		return nil
	}

	r.skipped[sessionID] = true
	r.appendLogLocked(models.LogTypeSkip, fmt.Sprintf("%s skipped", p.Name))

	total := r.ledger.Count()
	abstains := len(r.skipped)
	if (r.lot.Bid != nil && abstains == total-1) || (r.lot.Bid == nil && abstains == total) {
		r.settleLocked()
		return nil
	}

	r.broadcastLocked()
	return nil
}

// ForceSale settles the current lot at the standing bid immediately. Host
// only, and only while a bid exists.
func (r *Room) ForceSale(sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if sessionID != r.hostID {
		return ErrNotHost
	}
	if r.lot == nil {
		return ErrNoAuction
	}
	if r.lot.Bid == nil {
		return ErrNoBid
	}

	r.appendLogLocked(models.LogTypeInfo, "Host forced the sale")
	r.settleLocked()
	return nil
}

// onTick drives the countdown display. Stale ticks are harmless: they only
// trigger a snapshot of whatever the room currently looks like.
func (r *Room) onTick(int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.lot == nil {
		return
	}
	r.broadcastLocked()
}

func (r *Room) onOpenExpiry(gen uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if gen != r.openTimer.Gen() {
		return
	}
	if r.lot == nil || r.lot.Bid != nil {
		return
	}
	r.settleLocked()
}

func (r *Room) onBidExpiry(gen uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if gen != r.bidTimer.Gen() {
		return
	}
	if r.lot == nil || r.lot.Bid == nil {
		return
	}
	r.settleLocked()
}

// settleLocked concludes the current lot exactly once: award to the highest
// bidder, or mark unsold when no bid was placed. Double invocation is a
// no-op because the lot is cleared here and both timers are replaced.
func (r *Room) settleLocked() {
	if r.lot == nil {
		return
	}
	lot := r.lot

	awarded := false
	if lot.Bid != nil {
		winner, _ := r.ledger.Get(lot.Bid.Bidder)
		if err := r.ledger.Award(lot.Bid.Bidder, lot.Candidate, lot.Bid.Amount); err != nil {
			// Validation at bid time makes this unreachable; the candidate
			// falls through to the unsold list so it is never lost.
			log.Error().Err(err).Str("room_id", r.id).Msg("failed to settle lot")
		} else {
			awarded = true
			r.appendLogLocked(models.LogTypeWin,
				fmt.Sprintf("%s won %s for %dM", winner.Name, lot.Candidate.Name, lot.Bid.Amount))
			log.Info().
				Str("room_id", r.id).
				Str("candidate", lot.Candidate.Name).
				Str("winner", lot.Bid.Bidder).
				Int("price", lot.Bid.Amount).
				Msg("lot won")
		}
	}
	if !awarded {
		r.unsold = append([]models.Candidate{lot.Candidate}, r.unsold...)
		r.appendLogLocked(models.LogTypeUnsold, fmt.Sprintf("%s was unsold", lot.Candidate.Name))
		log.Info().
			Str("room_id", r.id).
			Str("candidate", lot.Candidate.Name).
			Msg("lot unsold")
	}

	r.lot = nil
	r.skipped = make(map[string]bool)
	r.openTimer.Set(r.rules.OpenPhaseSec)
	r.bidTimer.Set(r.rules.BiddingPhaseSec)
	r.broadcastLocked()
}

func (r *Room) appendLogLocked(t models.LogType, text string) {
	r.log = append(r.log, models.LogEntry{Type: t, Text: text})
}

func (r *Room) broadcastLocked() {
	if r.broadcaster == nil {
		return
	}
	r.broadcaster.RoomState(r.id, r.snapshotLocked())
}
