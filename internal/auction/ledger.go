package auction

import (
	"fmt"

	"github.com/matchroom/auction/internal/models"
)

// Ledger tracks a room's participants: balances and acquired squads.
// Entries are created on join and never removed. Balances and squads are
// mutated only through Award, which settlement calls. Like Pool, the ledger
// relies on the owning room for serialization.
type Ledger struct {
	participants map[string]*models.Participant
}

// NewLedger returns an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{participants: make(map[string]*models.Participant)}
}

// Join creates a participant entry with the given stake. Joining twice is a
// no-op so a rejoin cannot reset a balance mid-game.
func (l *Ledger) Join(sessionID, name string, balance int) {
	if _, ok := l.participants[sessionID]; ok {
		return
	}
	l.participants[sessionID] = &models.Participant{
		Name:    name,
		Balance: balance,
		Squad:   []models.OwnedCandidate{},
	}
}

// Get returns the participant for a session id.
func (l *Ledger) Get(sessionID string) (*models.Participant, bool) {
	p, ok := l.participants[sessionID]
	return p, ok
}

// Count returns the number of participants in the room.
func (l *Ledger) Count() int {
	return len(l.participants)
}

// Award transfers a won candidate into a participant's squad and debits the
// winning price. The bid validation path guarantees the funds and roster
// space are there; a violation here indicates a bookkeeping bug.
func (l *Ledger) Award(sessionID string, c models.Candidate, price int) error {
	p, ok := l.participants[sessionID]
	if !ok {
		return fmt.Errorf("failed to award %s: %w", c.Name, ErrNotParticipant)
	}
	if price < 0 || p.Balance < price {
		return fmt.Errorf("failed to award %s: balance %d below price %d", c.Name, p.Balance, price)
	}
	p.Balance -= price
	p.Squad = append(p.Squad, models.OwnedCandidate{Name: c.Name, Price: price})
	return nil
}

// Clone returns a deep copy of all participant entries keyed by session id,
// for inclusion in immutable snapshots.
func (l *Ledger) Clone() map[string]*models.Participant {
	out := make(map[string]*models.Participant, len(l.participants))
	for id, p := range l.participants {
		out[id] = p.Clone()
	}
	return out
}
