package engine

import (
	"testing"

	"github.com/ZebLawrence/monopoly-web-game-sub000/app/models"
)

func TestCheckPhase(t *testing.T) {
	g := newTestState("p1", "p2")

	cases := []struct {
		phase  string
		action ActionType
		ok     bool
	}{
		{models.PhaseWaitingForRoll, ActionRollDice, true},
		{models.PhaseWaitingForRoll, ActionRollForDoubles, true},
		{models.PhaseWaitingForRoll, ActionPayJailFine, true},
		{models.PhaseWaitingForRoll, ActionUseJailCard, true},
		{models.PhaseWaitingForRoll, ActionBuyProperty, false},
		{models.PhaseWaitingForRoll, ActionEndTurn, false},
		{models.PhaseAwaitingBuyDecision, ActionBuyProperty, true},
		{models.PhaseAwaitingBuyDecision, ActionDeclineProperty, true},
		{models.PhaseAwaitingBuyDecision, ActionRollDice, false},
		{models.PhaseAwaitingBuyDecision, ActionEndTurn, false},
		{models.PhaseAuction, ActionAuctionBid, true},
		{models.PhaseAuction, ActionAuctionPass, true},
		{models.PhaseAuction, ActionBuildHouse, false},
		{models.PhasePlayerAction, ActionBuildHouse, true},
		{models.PhasePlayerAction, ActionProposeTrade, true},
		{models.PhasePlayerAction, ActionDeclareBankruptcy, true},
		{models.PhasePlayerAction, ActionEndTurn, true},
		{models.PhasePlayerAction, ActionRollDice, false},
		{models.PhaseTradeNegotiation, ActionProposeTrade, false},
	}
	for _, c := range cases {
		g.Phase = c.phase
		gerr := checkPhase(g, c.action)
		if c.ok && gerr != nil {
			t.Errorf("%s should accept %s: %v", c.phase, c.action, gerr)
		}
		if !c.ok && (gerr == nil || gerr.Code != CodeInvalidState) {
			t.Errorf("%s should reject %s with InvalidState", c.phase, c.action)
		}
	}
}

func TestEndTurn_doublesRollAgain(t *testing.T) {
	g := newTestState("p0", "p1")
	g.Phase = models.PhasePlayerAction
	g.RolledDoubles = true
	g.CurrentPlayerIndex = 0

	if gerr := handleEndTurn(g, g.CurrentPlayer()); gerr != nil {
		t.Fatal(gerr)
	}
	if g.Phase != models.PhaseWaitingForRoll {
		t.Errorf("want waitingForRoll, got %s", g.Phase)
	}
	if g.CurrentPlayerIndex != 0 {
		t.Errorf("doubles keep the turn, got index %d", g.CurrentPlayerIndex)
	}
	if g.RolledDoubles {
		t.Errorf("flag must clear")
	}
}

func TestEndTurn_advancesAndClearsTransients(t *testing.T) {
	g := newTestState("p0", "p1")
	g.Phase = models.PhasePlayerAction
	g.LastDiceResult = &models.DiceResult{Die1: 1, Die2: 2, Total: 3}
	g.LastResolution = &models.Resolution{Type: models.ResolveNoAction}
	g.CurrentPlayer().DoublesCount = 1

	if gerr := handleEndTurn(g, g.CurrentPlayer()); gerr != nil {
		t.Fatal(gerr)
	}
	if g.CurrentPlayerIndex != 1 {
		t.Errorf("turn should pass to p1")
	}
	if g.Phase != models.PhaseWaitingForRoll {
		t.Errorf("want waitingForRoll, got %s", g.Phase)
	}
	if g.LastDiceResult != nil || g.LastResolution != nil {
		t.Errorf("transients should clear")
	}
	if g.PlayerByID("p0").DoublesCount != 0 {
		t.Errorf("doubles counter should clear at end of turn")
	}
}

func TestEndTurn_skipsBankruptSeats(t *testing.T) {
	g := newTestState("p0", "p1", "p2")
	g.Phase = models.PhasePlayerAction
	g.PlayerByID("p1").IsBankrupt = true
	g.PlayerByID("p1").IsActive = false

	if gerr := handleEndTurn(g, g.CurrentPlayer()); gerr != nil {
		t.Fatal(gerr)
	}
	if g.CurrentPlayer().ID != "p2" {
		t.Errorf("bankrupt seat must be skipped, got %s", g.CurrentPlayer().ID)
	}
}
