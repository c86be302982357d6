package engine

import (
	"testing"

	"github.com/ZebLawrence/monopoly-web-game-sub000/app/models"
)

func TestRollDice_bounds(t *testing.T) {
	for v := 0; v < 6; v++ {
		v := v
		dice := rollDice(func(n int) int {
			if n != 6 {
				t.Fatalf("rng asked for n=%d", n)
			}
			return v
		})
		if dice.Die1 < 1 || dice.Die1 > 6 || dice.Die2 < 1 || dice.Die2 > 6 {
			t.Errorf("dice out of range: %+v", dice)
		}
		if dice.Total != dice.Die1+dice.Die2 {
			t.Errorf("bad total: %+v", dice)
		}
		if !dice.IsDoubles {
			t.Errorf("equal draws must be doubles: %+v", dice)
		}
	}
}

func TestRollDice_notDoubles(t *testing.T) {
	vals := []int{2, 4}
	i := 0
	dice := rollDice(func(n int) int { v := vals[i]; i++; return v })
	if dice.IsDoubles {
		t.Errorf("3 and 5 is not doubles")
	}
	if dice.Total != 8 {
		t.Errorf("want total 8, got %d", dice.Total)
	}
}

func TestCalculateNewPosition(t *testing.T) {
	for pos := 0; pos < 40; pos++ {
		for total := 2; total <= 12; total++ {
			got := calculateNewPosition(pos, total)
			if got != (pos+total)%40 {
				t.Fatalf("pos %d total %d: got %d", pos, total, got)
			}
		}
	}
}

func TestDidPassGo(t *testing.T) {
	if !didPassGo(35, 0) {
		t.Errorf("35 -> 0 wraps")
	}
	if !didPassGo(38, 2) {
		t.Errorf("38 -> 2 wraps")
	}
	if didPassGo(5, 11) {
		t.Errorf("5 -> 11 does not wrap")
	}
	if didPassGo(0, 0) {
		t.Errorf("staying put is not a wrap")
	}
}

func TestApplyMovement_passGoPaysOnce(t *testing.T) {
	g := newTestState("p1", "p2")
	p := g.PlayerByID("p1")
	p.Position = 35

	dice := models.DiceResult{Die1: 2, Die2: 3, Total: 5}
	applyMovement(g, p, dice)

	if p.Position != 0 {
		t.Errorf("want position 0, got %d", p.Position)
	}
	if p.Cash != 1700 {
		t.Errorf("want cash 1700, got %d", p.Cash)
	}
}

func TestApplyMovement_tripleDoublesJails(t *testing.T) {
	g := newTestState("p1", "p2")
	p := g.PlayerByID("p1")
	p.Position = 38 // would wrap past Go if moved
	p.DoublesCount = 2

	dice := models.DiceResult{Die1: 4, Die2: 4, Total: 8, IsDoubles: true}
	moved := applyMovement(g, p, dice)

	if moved {
		t.Errorf("third doubles must not resolve movement")
	}
	if p.Position != models.PosJail || !p.InJail || p.TurnsInJail != 0 {
		t.Errorf("player should sit in jail: %+v", p)
	}
	if p.DoublesCount != 0 {
		t.Errorf("doubles counter should reset, got %d", p.DoublesCount)
	}
	if p.Cash != 1500 {
		t.Errorf("no Go salary on a jail send, got %d", p.Cash)
	}
	if g.RolledDoubles {
		t.Errorf("jailed player does not roll again")
	}
}

func TestApplyMovement_doublesTracked(t *testing.T) {
	g := newTestState("p1", "p2")
	p := g.PlayerByID("p1")

	applyMovement(g, p, models.DiceResult{Die1: 2, Die2: 2, Total: 4, IsDoubles: true})
	if p.DoublesCount != 1 || !g.RolledDoubles {
		t.Errorf("first doubles not tracked")
	}
	applyMovement(g, p, models.DiceResult{Die1: 1, Die2: 3, Total: 4})
	if p.DoublesCount != 0 || g.RolledDoubles {
		t.Errorf("non-doubles should reset the run")
	}
}
