package auction

import "time"

// Rules holds the tunable auction parameters for a room. The defaults mirror
// the classic ruleset; all of them can be overridden from configuration.
type Rules struct {
	// StartingBalance is the stake every participant joins with.
	StartingBalance int
	// RosterCap is the maximum squad size; a full roster may not bid.
	RosterCap int
	// OpenPhaseSec bounds the no-bid-yet window after a draw.
	OpenPhaseSec int
	// BiddingPhaseSec bounds the window after each accepted bid.
	BiddingPhaseSec int
	// IncrementThreshold is the bid amount at which the step size changes.
	IncrementThreshold int
	// SmallIncrement applies below the threshold, LargeIncrement at or above.
	SmallIncrement int
	LargeIncrement int
	// DrawSuspense is the delay between the wheel result and the pool lookup,
	// giving clients time to animate. Zero means the draw completes inline.
	DrawSuspense time.Duration
	// LogViewLimit caps how many log entries a snapshot carries. The room
	// retains the full log regardless.
	LogViewLimit int
}

// DefaultRules returns the standard ruleset.
func DefaultRules() Rules {
	return Rules{
		StartingBalance:    1000,
		RosterCap:          11,
		OpenPhaseSec:       100,
		BiddingPhaseSec:    60,
		IncrementThreshold: 200,
		SmallIncrement:     5,
		LargeIncrement:     10,
		DrawSuspense:       2500 * time.Millisecond,
		LogViewLimit:       50,
	}
}

// NextBid returns the amount the next accepted bid must be: the base price
// when no bid has been placed, otherwise the current bid plus the step for
// its bracket.
func (r Rules) NextBid(current, basePrice int) int {
	if current == 0 {
		return basePrice
	}
	if current < r.IncrementThreshold {
		return current + r.SmallIncrement
	}
	return current + r.LargeIncrement
}
