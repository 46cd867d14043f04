package auction

import (
	"testing"

	"github.com/matchroom/auction/internal/models"
)

func testCandidates() []models.Candidate {
	return []models.Candidate{
		{Name: "Keeper One", Position: models.PositionGK, BasePrice: 40},
		{Name: "Keeper Two", Position: models.PositionGK, BasePrice: 50},
		{Name: "Striker One", Position: models.PositionCF, BasePrice: 60},
	}
}

func TestDrawRemovesCandidate(t *testing.T) {
	pool := NewPool(testCandidates())
	pool.rng = func(n int) int { return 0 }

	c, ok := pool.Draw(models.PositionGK)
	if !ok {
		t.Fatal("Draw returned no candidate for a stocked position")
	}
	if c.Position != models.PositionGK {
		t.Fatalf("drawn position = %s, want GK", c.Position)
	}
	if pool.Remaining() != 2 {
		t.Fatalf("remaining = %d, want 2", pool.Remaining())
	}

	// The same candidate must never be drawable twice.
	second, ok := pool.Draw(models.PositionGK)
	if !ok {
		t.Fatal("second GK draw failed")
	}
	if second.Name == c.Name {
		t.Fatalf("candidate %q drawn twice", c.Name)
	}
}

func TestDrawEmptyPositionDoesNotMutate(t *testing.T) {
	pool := NewPool(testCandidates())

	if _, ok := pool.Draw(models.PositionDM); ok {
		t.Fatal("Draw returned a candidate for an empty position")
	}
	if pool.Remaining() != 3 {
		t.Fatalf("remaining = %d after failed draw, want 3", pool.Remaining())
	}
}

func TestDrawExhaustsPosition(t *testing.T) {
	pool := NewPool(testCandidates())

	for i := 0; i < 2; i++ {
		if _, ok := pool.Draw(models.PositionGK); !ok {
			t.Fatalf("GK draw %d failed", i+1)
		}
	}
	if _, ok := pool.Draw(models.PositionGK); ok {
		t.Fatal("Draw returned a candidate from an exhausted position")
	}
}

func TestRemainingByPositionIncludesZeroEntries(t *testing.T) {
	pool := NewPool(testCandidates())

	counts := pool.RemainingByPosition()
	if len(counts) != len(models.AllPositions) {
		t.Fatalf("counts cover %d positions, want %d", len(counts), len(models.AllPositions))
	}
	if counts[models.PositionGK] != 2 {
		t.Fatalf("GK count = %d, want 2", counts[models.PositionGK])
	}
	if counts[models.PositionDM] != 0 {
		t.Fatalf("DM count = %d, want 0", counts[models.PositionDM])
	}
}
