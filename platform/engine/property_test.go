package engine

import (
	"testing"

	"github.com/ZebLawrence/monopoly-web-game-sub000/app/models"
)

func TestBuyProperty(t *testing.T) {
	g := newTestState("p1", "p2")
	p := g.PlayerByID("p1")
	p.Position = 3

	if gerr := buyProperty(g, p, 3); gerr != nil {
		t.Fatal(gerr)
	}
	if p.Cash != 1440 {
		t.Errorf("Baltic costs 60: cash %d", p.Cash)
	}
	if !p.OwnsProperty(3) {
		t.Errorf("ownership not recorded")
	}
	if g.PropertyState(3).Houses != 0 || g.PropertyState(3).Mortgaged {
		t.Errorf("property state should be zeroed")
	}
}

func TestBuyProperty_rejections(t *testing.T) {
	g := newTestState("p1", "p2")
	p := g.PlayerByID("p1")

	p.Position = 4
	if gerr := buyProperty(g, p, 4); gerr == nil || gerr.Code != CodeOwnershipViolation {
		t.Errorf("tax space is not purchasable: %v", gerr)
	}

	p.Position = 5
	giveProperty(g, "p2", 5)
	if gerr := buyProperty(g, p, 5); gerr == nil || gerr.Code != CodeOwnershipViolation {
		t.Errorf("owned space: %v", gerr)
	}

	p.Position = 2
	if gerr := buyProperty(g, p, 39); gerr == nil || gerr.Code != CodeInvalidState {
		t.Errorf("must stand on the space: %v", gerr)
	}

	p.Position = 39
	p.Cash = 100
	if gerr := buyProperty(g, p, 39); gerr == nil || gerr.Code != CodeInsufficientFunds {
		t.Errorf("cannot afford Boardwalk: %v", gerr)
	}
}

func TestBuildHouse_requiresMonopoly(t *testing.T) {
	g := newTestState("p1", "p2")
	giveProperty(g, "p1", 1)
	p := g.PlayerByID("p1")

	if gerr := buildHouse(g, p, 1); gerr == nil || gerr.Code != CodeBuildRuleViolation {
		t.Errorf("no monopoly: %v", gerr)
	}
}

func TestBuildHouse_evenBuildRule(t *testing.T) {
	g := newTestState("p1", "p2")
	giveProperty(g, "p1", 1, 3)
	p := g.PlayerByID("p1")

	if gerr := buildHouse(g, p, 1); gerr != nil {
		t.Fatal(gerr)
	}
	// second house on the same street would outrun Baltic
	if gerr := buildHouse(g, p, 1); gerr == nil || gerr.Code != CodeBuildRuleViolation {
		t.Errorf("uneven build must fail: %v", gerr)
	}
	if gerr := buildHouse(g, p, 3); gerr != nil {
		t.Fatal(gerr)
	}

	// max-min never exceeds 1 across any sequence
	max, min := 0, 9
	for _, id := range []int{1, 3} {
		h := g.PropertyState(id).Houses
		if h > max {
			max = h
		}
		if h < min {
			min = h
		}
	}
	if max-min > 1 {
		t.Errorf("even-build invariant broken: max %d min %d", max, min)
	}
	if g.Supply.Houses != models.TotalHouses-2 {
		t.Errorf("supply should drop by 2: %d", g.Supply.Houses)
	}
	if p.Cash != 1500-100 {
		t.Errorf("two houses at $50: cash %d", p.Cash)
	}
}

func TestBuildHotel(t *testing.T) {
	g := newTestState("p1", "p2")
	giveProperty(g, "p1", 1, 3)
	g.PropertyState(1).Houses = 4
	g.PropertyState(3).Houses = 4
	g.Supply.Houses = models.TotalHouses - 8
	p := g.PlayerByID("p1")

	if gerr := buildHotel(g, p, 1); gerr != nil {
		t.Fatal(gerr)
	}
	if g.PropertyState(1).Houses != 5 {
		t.Errorf("hotel not recorded")
	}
	if g.Supply.Houses != models.TotalHouses-4 {
		t.Errorf("hotel returns 4 houses to supply: %d", g.Supply.Houses)
	}
	if g.Supply.Hotels != models.TotalHotels-1 {
		t.Errorf("hotel pool should drop: %d", g.Supply.Hotels)
	}

	// under four houses no hotel
	if gerr := buildHotel(g, p, 3); gerr != nil {
		t.Fatal(gerr)
	}
	g.PropertyState(3).Houses = 2
	if gerr := buildHotel(g, p, 3); gerr == nil || gerr.Code != CodeBuildRuleViolation {
		t.Errorf("hotel needs four houses: %v", gerr)
	}
}

func TestSupplyInvariant(t *testing.T) {
	g := newTestState("p1", "p2")
	giveProperty(g, "p1", 1, 3)
	p := g.PlayerByID("p1")
	p.Cash = 5000

	check := func(step string) {
		houses, hotels := totalHousesInPlay(g)
		if houses+g.Supply.Houses != models.TotalHouses {
			t.Errorf("%s: house conservation broken (%d in play, %d in pool)", step, houses, g.Supply.Houses)
		}
		if hotels+g.Supply.Hotels != models.TotalHotels {
			t.Errorf("%s: hotel conservation broken", step)
		}
	}

	for i := 0; i < 4; i++ {
		if gerr := buildHouse(g, p, 1); gerr != nil {
			t.Fatal(gerr)
		}
		if gerr := buildHouse(g, p, 3); gerr != nil {
			t.Fatal(gerr)
		}
		check("build")
	}
	if gerr := buildHotel(g, p, 1); gerr != nil {
		t.Fatal(gerr)
	}
	check("hotel")
	if gerr := sellBuilding(g, p, 1); gerr != nil {
		t.Fatal(gerr)
	}
	check("hotel downgrade")
	if gerr := sellBuilding(g, p, 1); gerr != nil {
		t.Fatal(gerr)
	}
	check("sell")
}

func TestSellBuilding(t *testing.T) {
	g := newTestState("p1", "p2")
	giveProperty(g, "p1", 1, 3)
	g.PropertyState(1).Houses = 1
	g.PropertyState(3).Houses = 1
	g.Supply.Houses = models.TotalHouses - 2
	p := g.PlayerByID("p1")

	if gerr := sellBuilding(g, p, 1); gerr != nil {
		t.Fatal(gerr)
	}
	if p.Cash != 1525 {
		t.Errorf("half of $50 back: cash %d", p.Cash)
	}
	// the street is bare now
	if gerr := sellBuilding(g, p, 1); gerr == nil || gerr.Code != CodeBuildRuleViolation {
		t.Errorf("nothing left to sell: %v", gerr)
	}
	// and Baltic still holds one, so it must come off next
	if gerr := sellBuilding(g, p, 3); gerr != nil {
		t.Fatal(gerr)
	}
}

func TestSellHotel_needsHousesInSupply(t *testing.T) {
	g := newTestState("p1", "p2")
	giveProperty(g, "p1", 1, 3)
	g.PropertyState(1).Houses = 5
	g.PropertyState(3).Houses = 5
	g.Supply.Houses = 2
	g.Supply.Hotels = models.TotalHotels - 2
	p := g.PlayerByID("p1")

	if gerr := sellBuilding(g, p, 1); gerr == nil || gerr.Code != CodeBuildRuleViolation {
		t.Errorf("hotel break-up needs 4 houses in the pool: %v", gerr)
	}
	g.Supply.Houses = 4
	if gerr := sellBuilding(g, p, 1); gerr != nil {
		t.Fatal(gerr)
	}
	if g.PropertyState(1).Houses != 4 || g.Supply.Houses != 0 || g.Supply.Hotels != models.TotalHotels-1 {
		t.Errorf("downgrade accounting wrong: %+v supply %+v", g.PropertyState(1), g.Supply)
	}
}

func TestMortgage(t *testing.T) {
	g := newTestState("p1", "p2")
	giveProperty(g, "p1", 1, 3)
	p := g.PlayerByID("p1")

	if gerr := mortgageProperty(g, p, 3); gerr != nil {
		t.Fatal(gerr)
	}
	if p.Cash != 1530 {
		t.Errorf("mortgage pays 30: cash %d", p.Cash)
	}
	if gerr := mortgageProperty(g, p, 3); gerr == nil || gerr.Code != CodeOwnershipViolation {
		t.Errorf("double mortgage: %v", gerr)
	}

	g.PropertyState(1).Houses = 1
	if gerr := mortgageProperty(g, p, 1); gerr == nil || gerr.Code != CodeBuildRuleViolation {
		t.Errorf("buildings in group block mortgaging: %v", gerr)
	}
}

func TestUnmortgage_interestRoundsUp(t *testing.T) {
	g := newTestState("p1", "p2")
	giveProperty(g, "p1", 12) // Electric Company, mortgage 75
	g.PropertyState(12).Mortgaged = true
	p := g.PlayerByID("p1")

	if gerr := unmortgageProperty(g, p, 12); gerr != nil {
		t.Fatal(gerr)
	}
	// 75 + ceil(7.5) = 83
	if p.Cash != 1500-83 {
		t.Errorf("want 1417 after interest, got %d", p.Cash)
	}

	g.PropertyState(12).Mortgaged = true
	p.Cash = 50
	if gerr := unmortgageProperty(g, p, 12); gerr == nil || gerr.Code != CodeInsufficientFunds {
		t.Errorf("unaffordable unmortgage: %v", gerr)
	}
}
