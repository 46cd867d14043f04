package models

// Candidate is an auctionable entry from the catalog. Candidates are
// immutable once loaded; rooms draw them from a per-room pool and each one is
// auctioned at most once.
type Candidate struct {
	Name      string   `json:"name"`
	Position  Position `json:"position"`
	BasePrice int      `json:"basePrice"`
}

// OwnedCandidate records a candidate won at auction and the price paid.
type OwnedCandidate struct {
	Name  string `json:"name"`
	Price int    `json:"price"`
}
