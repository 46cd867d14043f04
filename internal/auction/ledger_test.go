package auction

import (
	"testing"

	"github.com/matchroom/auction/internal/models"
)

func TestJoinIsIdempotent(t *testing.T) {
	ledger := NewLedger()
	ledger.Join("s1", "Ana", 1000)

	p, _ := ledger.Get("s1")
	p.Balance = 600

	// A rejoin must not reset the balance mid-game.
	ledger.Join("s1", "Ana", 1000)
	p, _ = ledger.Get("s1")
	if p.Balance != 600 {
		t.Fatalf("balance after rejoin = %d, want 600", p.Balance)
	}
	if ledger.Count() != 1 {
		t.Fatalf("count = %d, want 1", ledger.Count())
	}
}

func TestAwardDebitsAndTransfers(t *testing.T) {
	ledger := NewLedger()
	ledger.Join("s1", "Ana", 1000)

	c := models.Candidate{Name: "Striker One", Position: models.PositionCF, BasePrice: 50}
	if err := ledger.Award("s1", c, 55); err != nil {
		t.Fatalf("Award returned error: %v", err)
	}

	p, _ := ledger.Get("s1")
	if p.Balance != 945 {
		t.Fatalf("balance = %d, want 945", p.Balance)
	}
	if len(p.Squad) != 1 || p.Squad[0].Name != "Striker One" || p.Squad[0].Price != 55 {
		t.Fatalf("squad = %+v, want one entry {Striker One 55}", p.Squad)
	}
}

func TestAwardRejectsOverdraft(t *testing.T) {
	ledger := NewLedger()
	ledger.Join("s1", "Ana", 40)

	c := models.Candidate{Name: "Striker One", Position: models.PositionCF, BasePrice: 50}
	if err := ledger.Award("s1", c, 50); err == nil {
		t.Fatal("Award allowed a negative balance")
	}
	p, _ := ledger.Get("s1")
	if p.Balance != 40 || len(p.Squad) != 0 {
		t.Fatalf("ledger mutated by rejected award: %+v", p)
	}
}

func TestAwardUnknownParticipant(t *testing.T) {
	ledger := NewLedger()
	if err := ledger.Award("ghost", models.Candidate{Name: "X"}, 10); err == nil {
		t.Fatal("Award for unknown participant succeeded")
	}
}

func TestCloneIsDeep(t *testing.T) {
	ledger := NewLedger()
	ledger.Join("s1", "Ana", 1000)
	ledger.Award("s1", models.Candidate{Name: "Striker One"}, 100)

	clone := ledger.Clone()
	clone["s1"].Balance = 0
	clone["s1"].Squad[0].Price = 999

	p, _ := ledger.Get("s1")
	if p.Balance != 900 {
		t.Fatalf("clone mutation leaked into ledger balance: %d", p.Balance)
	}
	if p.Squad[0].Price != 100 {
		t.Fatalf("clone mutation leaked into ledger squad: %+v", p.Squad)
	}
}
