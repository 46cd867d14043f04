package models

// Position is one of the fixed role categories a candidate can be auctioned
// under. The set is closed; every candidate belongs to exactly one.
type Position string

const (
	PositionGK Position = "GK"
	PositionCB Position = "CB"
	PositionRB Position = "RB"
	PositionLB Position = "LB"
	PositionRW Position = "RW"
	PositionCF Position = "CF"
	PositionAM Position = "AM"
	PositionLW Position = "LW"
	PositionCM Position = "CM"
	PositionDM Position = "DM"
)

// AllPositions lists every position in wheel order. The draw wheel reports
// the chosen index into this slice so clients can animate against it.
var AllPositions = []Position{
	PositionGK,
	PositionCB,
	PositionRB,
	PositionLB,
	PositionRW,
	PositionCF,
	PositionAM,
	PositionLW,
	PositionCM,
	PositionDM,
}

// Valid reports whether p is a member of the closed position set.
func (p Position) Valid() bool {
	for _, known := range AllPositions {
		if p == known {
			return true
		}
	}
	return false
}
