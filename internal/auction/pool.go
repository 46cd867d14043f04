package auction

import (
	"math/rand"

	"github.com/matchroom/auction/internal/models"
)

// Pool is a room's remaining candidate collection. Candidates are drawn
// without replacement; the pool only ever shrinks. Pool is not safe for
// concurrent use on its own — the owning room serializes access.
type Pool struct {
	candidates []models.Candidate
	rng        func(n int) int
}

// NewPool builds a pool over the given candidates. The slice is owned by the
// pool afterwards; callers seed it with a deep copy of the catalog.
func NewPool(candidates []models.Candidate) *Pool {
	return &Pool{
		candidates: candidates,
		rng:        rand.Intn,
	}
}

// Draw removes and returns a uniformly random candidate with the given
// position. It reports false, without mutating the pool, when no candidate
// with that position remains.
func (p *Pool) Draw(pos models.Position) (models.Candidate, bool) {
	var eligible []int
	for i, c := range p.candidates {
		if c.Position == pos {
			eligible = append(eligible, i)
		}
	}
	if len(eligible) == 0 {
		return models.Candidate{}, false
	}

	idx := eligible[p.rng(len(eligible))]
	chosen := p.candidates[idx]
	p.candidates = append(p.candidates[:idx], p.candidates[idx+1:]...)
	return chosen, true
}

// Remaining returns how many candidates are left in the pool.
func (p *Pool) Remaining() int {
	return len(p.candidates)
}

// RemainingByPosition counts remaining candidates per position, including
// zero entries for exhausted positions so clients always see the full set.
func (p *Pool) RemainingByPosition() map[models.Position]int {
	counts := make(map[models.Position]int, len(models.AllPositions))
	for _, pos := range models.AllPositions {
		counts[pos] = 0
	}
	for _, c := range p.candidates {
		counts[c.Position]++
	}
	return counts
}
