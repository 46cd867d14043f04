package auction

import (
	"github.com/matchroom/auction/internal/models"
)

// Snapshot is the immutable view of a room that clients render from. One
// snapshot reflects exactly one completed transition; the fan-out layer
// delivers them in the order they were assembled.
type Snapshot struct {
	RoomID              string                         `json:"roomId"`
	HostID              string                         `json:"hostId"`
	State               State                          `json:"state"`
	Players             map[string]*models.Participant `json:"players"`
	CurrentCandidate    *models.Candidate              `json:"currentCandidate,omitempty"`
	CurrentPosition     models.Position                `json:"currentPosition,omitempty"`
	CurrentBid          int                            `json:"currentBid"`
	CurrentBidder       string                         `json:"currentBidder,omitempty"`
	OpenTimeLeft        int                            `json:"openTimeLeft"`
	BidTimeLeft         int                            `json:"bidTimeLeft"`
	AuctionActive       bool                           `json:"auctionActive"`
	DrawInProgress      bool                           `json:"drawInProgress"`
	Skipped             []string                       `json:"skipped"`
	Log                 []models.LogEntry              `json:"log"`
	RemainingByPosition map[models.Position]int        `json:"remainingByPosition"`
	Unsold              []models.Candidate             `json:"unsold"`
}

// Snapshot assembles the current view under the room lock.
func (r *Room) Snapshot() *Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.snapshotLocked()
}

func (r *Room) snapshotLocked() *Snapshot {
	snap := &Snapshot{
		RoomID:              r.id,
		HostID:              r.hostID,
		State:               r.stateLocked(),
		Players:             r.ledger.Clone(),
		OpenTimeLeft:        r.openTimer.Remaining(),
		BidTimeLeft:         r.bidTimer.Remaining(),
		AuctionActive:       r.lot != nil,
		DrawInProgress:      r.drawing,
		Skipped:             make([]string, 0, len(r.skipped)),
		RemainingByPosition: r.pool.RemainingByPosition(),
		Unsold:              make([]models.Candidate, len(r.unsold)),
	}
	copy(snap.Unsold, r.unsold)

	for id := range r.skipped {
		snap.Skipped = append(snap.Skipped, id)
	}

	if r.lot != nil {
		candidate := r.lot.Candidate
		snap.CurrentCandidate = &candidate
		snap.CurrentPosition = r.lot.Position
		if r.lot.Bid != nil {
			snap.CurrentBid = r.lot.Bid.Amount
			snap.CurrentBidder = r.lot.Bid.Bidder
		}
	}

	// The room keeps its full history; clients only need the tail.
	entries := r.log
	if limit := r.rules.LogViewLimit; limit > 0 && len(entries) > limit {
		entries = entries[len(entries)-limit:]
	}
	snap.Log = make([]models.LogEntry, len(entries))
	copy(snap.Log, entries)

	return snap
}
