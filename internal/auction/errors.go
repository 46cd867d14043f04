package auction

import "errors"

// Rejection reasons for participant actions. These are local validation
// outcomes, not failures: the room stays consistent and callers typically
// just surface or drop them.
var (
	ErrNotHost             = errors.New("auction: action requires the room host")
	ErrNotIdle             = errors.New("auction: room is not idle")
	ErrNoAuction           = errors.New("auction: no auction in progress")
	ErrNotParticipant      = errors.New("auction: actor is not in this room")
	ErrAbstained           = errors.New("auction: actor has abstained from this lot")
	ErrSelfOutbid          = errors.New("auction: actor already holds the highest bid")
	ErrRosterFull          = errors.New("auction: actor's roster is full")
	ErrInsufficientBalance = errors.New("auction: balance below required bid")
	ErrBidderCannotSkip    = errors.New("auction: highest bidder may not skip")
	ErrNoBid               = errors.New("auction: no bid to settle against")
)
