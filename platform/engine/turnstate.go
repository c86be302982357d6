package engine

import "github.com/ZebLawrence/monopoly-web-game-sub000/app/models"

// phaseActions lists the actions each persisted phase accepts. Rolling,
// Resolving and EndTurn never appear here: they are passed through
// inside a single ProcessAction call, so no action can arrive while the
// machine sits in them.
var phaseActions = map[string]map[ActionType]bool{
	models.PhaseWaitingForRoll: {
		ActionRollDice:       true,
		ActionRollForDoubles: true,
		ActionPayJailFine:    true,
		ActionUseJailCard:    true,
	},
	models.PhaseAwaitingBuyDecision: {
		ActionBuyProperty:     true,
		ActionDeclineProperty: true,
	},
	models.PhaseAuction: {
		ActionAuctionBid:  true,
		ActionAuctionPass: true,
	},
	models.PhasePlayerAction: {
		ActionBuildHouse:        true,
		ActionBuildHotel:        true,
		ActionSellBuilding:      true,
		ActionMortgage:          true,
		ActionUnmortgage:        true,
		ActionProposeTrade:      true,
		ActionAcceptTrade:       true,
		ActionRejectTrade:       true,
		ActionCounterTrade:      true,
		ActionDeclareBankruptcy: true,
		ActionEndTurn:           true,
	},
	// PhaseTradeNegotiation accepts nothing: the phase is declared for
	// wire compatibility but no transition enters it.
	models.PhaseTradeNegotiation: {},
}

// checkPhase rejects actions that are illegal in the current phase.
func checkPhase(g *models.GameState, t ActionType) *GameError {
	allowed, ok := phaseActions[g.Phase]
	if !ok || !allowed[t] {
		return errInvalidState("action %s is not allowed during %s", t, g.Phase)
	}
	return nil
}

// afterRoll moves the machine past Rolling/Resolving based on what the
// landing produced. A pending buy prompt parks the machine in
// AwaitingBuyDecision, everything else falls through to PlayerAction.
func afterRoll(g *models.GameState) {
	if g.PendingBuyDecision != nil {
		g.Phase = models.PhaseAwaitingBuyDecision
		return
	}
	g.Phase = models.PhasePlayerAction
}
