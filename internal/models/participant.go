package models

// Participant is a room member's ledger entry. Balance only ever decreases
// (debited by winning bids) and Squad only ever grows, both exclusively
// through settlement.
type Participant struct {
	Name    string           `json:"name"`
	Balance int              `json:"balance"`
	Squad   []OwnedCandidate `json:"squad"`
}

// Clone returns a deep copy safe to hand to snapshot consumers.
func (p *Participant) Clone() *Participant {
	squad := make([]OwnedCandidate, len(p.Squad))
	copy(squad, p.Squad)
	return &Participant{
		Name:    p.Name,
		Balance: p.Balance,
		Squad:   squad,
	}
}
