package engine

import (
	"testing"

	"github.com/ZebLawrence/monopoly-web-game-sub000/app/models"
)

func TestSendToJail(t *testing.T) {
	g := newTestState("p1", "p2")
	p := g.PlayerByID("p1")
	p.Position = 25
	p.DoublesCount = 2

	sendToJail(g, p)
	if p.Position != models.PosJail || !p.InJail || p.TurnsInJail != 0 {
		t.Errorf("jail entry wrong: %+v", p)
	}
	if p.DoublesCount != 0 {
		t.Errorf("doubles run should reset")
	}
	if p.Cash != 1500 {
		t.Errorf("no salary on the way in")
	}
}

func TestPayJailFine(t *testing.T) {
	g := newTestState("p1", "p2")
	p := g.PlayerByID("p1")
	sendToJail(g, p)

	if gerr := payJailFine(g, p); gerr != nil {
		t.Fatal(gerr)
	}
	if p.InJail || p.Cash != 1450 {
		t.Errorf("fine should free for $50: %+v", p)
	}

	// not in jail anymore
	if gerr := payJailFine(g, p); gerr == nil || gerr.Code != CodeInvalidState {
		t.Errorf("free player cannot pay the fine: %v", gerr)
	}

	sendToJail(g, p)
	p.Cash = 20
	if gerr := payJailFine(g, p); gerr == nil || gerr.Code != CodeInsufficientFunds {
		t.Errorf("broke player cannot pay: %v", gerr)
	}
}

func TestUseJailCard(t *testing.T) {
	g := newTestState("p1", "p2")
	p := g.PlayerByID("p1")
	sendToJail(g, p)

	if gerr := useJailCard(g, p); gerr == nil || gerr.Code != CodeNotFound {
		t.Errorf("no card to use: %v", gerr)
	}
	p.GetOutOfJailCards = 1
	if gerr := useJailCard(g, p); gerr != nil {
		t.Fatal(gerr)
	}
	if p.InJail || p.GetOutOfJailCards != 0 {
		t.Errorf("card should free and be consumed: %+v", p)
	}
}

func TestRollInJail_doublesFree(t *testing.T) {
	g := newTestState("p1", "p2")
	p := g.PlayerByID("p1")
	sendToJail(g, p)

	freed := rollInJail(g, p, models.DiceResult{Die1: 3, Die2: 3, Total: 6, IsDoubles: true})
	if !freed || p.InJail {
		t.Errorf("doubles must free")
	}
	if p.DoublesCount != 0 {
		t.Errorf("a jail-break roll earns no extra turn")
	}
}

func TestRollInJail_thirdAttemptForcesFine(t *testing.T) {
	g := newTestState("p1", "p2")
	p := g.PlayerByID("p1")
	sendToJail(g, p)
	miss := models.DiceResult{Die1: 2, Die2: 5, Total: 7}

	if rollInJail(g, p, miss) {
		t.Fatalf("first miss stays in")
	}
	if p.TurnsInJail != 1 {
		t.Errorf("want 1 turn served, got %d", p.TurnsInJail)
	}
	if rollInJail(g, p, miss) {
		t.Fatalf("second miss stays in")
	}
	freed := rollInJail(g, p, miss)
	if !freed || p.InJail {
		t.Errorf("third miss must free")
	}
	if p.Cash != 1450 {
		t.Errorf("forced fine of $50: cash %d", p.Cash)
	}
}
