package engine

import (
	"github.com/ZebLawrence/monopoly-web-game-sub000/app/models"
)

// ProcessAction loads the game, validates and applies one intent, and
// persists the result. Any rule violation aborts before the save, so a
// failed action leaves no trace. The per-game lock makes the
// read-modify-write safe against concurrent submissions.
func (e *Engine) ProcessAction(gameID, playerID string, action Action) ActionResult {
	lock := e.lockFor(gameID)
	lock.Lock()
	defer lock.Unlock()

	blob, err := e.store.LoadGameState(gameID)
	if err != nil || blob == "" {
		return fail(errNotFound("game %s not found", gameID))
	}
	g, err := Deserialize(blob)
	if err != nil {
		return fail(errNotFound("game %s state is unreadable", gameID))
	}
	if g.Status != models.StatusPlaying {
		return fail(errInvalidState("game %s is not in progress", gameID))
	}
	p, gerr := findPlayer(g, playerID)
	if gerr != nil {
		return fail(gerr)
	}
	if p.IsBankrupt || !p.IsActive {
		return fail(errInvalidTurn("player %s is no longer in the game", playerID))
	}
	if turnExclusive[action.Type] && g.CurrentPlayer().ID != playerID {
		return fail(errInvalidTurn("it is not %s's turn", playerID))
	}
	if gerr := checkPhase(g, action.Type); gerr != nil {
		return fail(gerr)
	}

	evMark := len(g.Events)
	if gerr := e.dispatch(g, p, action); gerr != nil {
		return fail(gerr)
	}

	out, err := Serialize(g)
	if err != nil {
		return fail(errInvalidState("game %s state failed to serialize", gameID))
	}
	if err := e.store.SaveGameState(gameID, out); err != nil {
		return fail(errInvalidState("game %s could not be saved", gameID))
	}
	for _, ev := range g.Events[evMark:] {
		e.bus.Publish(ev)
	}
	return ActionResult{OK: true, State: g}
}

func fail(gerr *GameError) ActionResult {
	return ActionResult{OK: false, Err: gerr}
}

func (e *Engine) dispatch(g *models.GameState, p *models.Player, action Action) *GameError {
	switch action.Type {
	case ActionRollDice:
		return e.handleRoll(g, p, false)
	case ActionRollForDoubles:
		return e.handleRoll(g, p, true)
	case ActionBuyProperty:
		return handleBuy(g, p)
	case ActionDeclineProperty:
		return handleDecline(g, p)
	case ActionAuctionBid:
		return handleAuctionMove(g, p, action.Amount, false)
	case ActionAuctionPass:
		return handleAuctionMove(g, p, 0, true)
	case ActionBuildHouse:
		return buildHouse(g, p, action.SpaceID)
	case ActionBuildHotel:
		return buildHotel(g, p, action.SpaceID)
	case ActionSellBuilding:
		return sellBuilding(g, p, action.SpaceID)
	case ActionMortgage:
		return mortgageProperty(g, p, action.SpaceID)
	case ActionUnmortgage:
		return unmortgageProperty(g, p, action.SpaceID)
	case ActionProposeTrade:
		if action.Trade == nil {
			return errTradeRule("missing trade terms")
		}
		_, gerr := createTradeOffer(g, p.ID, action.Trade)
		return gerr
	case ActionAcceptTrade:
		return acceptTrade(g, p.ID, action.TradeID)
	case ActionRejectTrade:
		return rejectTrade(g, p.ID, action.TradeID)
	case ActionCounterTrade:
		if action.Trade == nil {
			return errTradeRule("missing counter terms")
		}
		_, gerr := counterTrade(g, p.ID, action.TradeID, action.Trade)
		return gerr
	case ActionPayJailFine:
		return payJailFine(g, p)
	case ActionUseJailCard:
		return useJailCard(g, p)
	case ActionDeclareBankruptcy:
		return handleBankruptcy(g, p, action.CreditorID)
	case ActionEndTurn:
		return handleEndTurn(g, p)
	}
	return errInvalidState("unknown action %s", action.Type)
}

// handleRoll covers both RollDice and the jail-only RollForDoubles. A
// freed or free player moves and the landing resolves, possibly
// chaining through a card draw into a second resolution.
func (e *Engine) handleRoll(g *models.GameState, p *models.Player, jailOnly bool) *GameError {
	if jailOnly && !p.InJail {
		return errInvalidState("player %s is not in jail", p.ID)
	}
	dice := rollDice(e.rng)
	g.LastDiceResult = &dice
	appendEvent(g, models.EvDiceRolled, map[string]interface{}{
		"playerId":  p.ID,
		"die1":      dice.Die1,
		"die2":      dice.Die2,
		"isDoubles": dice.IsDoubles,
	})

	if p.InJail {
		if !rollInJail(g, p, dice) {
			g.Phase = models.PhasePlayerAction
			return nil
		}
		// released: move by the roll, then resolve the landing
		oldPos := p.Position
		p.Position = calculateNewPosition(oldPos, dice.Total)
		appendEvent(g, models.EvPlayerMoved, map[string]interface{}{
			"playerId": p.ID,
			"from":     oldPos,
			"to":       p.Position,
		})
		if didPassGo(oldPos, p.Position) {
			payGoSalary(g, p)
		}
		return e.resolveLanding(g, p, dice.Total)
	}

	if !applyMovement(g, p, dice) {
		// third consecutive doubles sent the player to jail
		g.Phase = models.PhasePlayerAction
		return nil
	}
	return e.resolveLanding(g, p, dice.Total)
}

func (e *Engine) resolveLanding(g *models.GameState, p *models.Player, diceTotal int) *GameError {
	res, gerr := resolveSpace(g, p, diceTotal)
	if gerr != nil {
		return gerr
	}
	if gerr := applyResolution(g, p, res, diceTotal); gerr != nil {
		return gerr
	}
	afterRoll(g)
	return nil
}

func handleBuy(g *models.GameState, p *models.Player) *GameError {
	if g.PendingBuyDecision == nil {
		return errInvalidState("nothing to buy")
	}
	if gerr := buyProperty(g, p, g.PendingBuyDecision.SpaceID); gerr != nil {
		return gerr
	}
	g.PendingBuyDecision = nil
	g.Phase = models.PhasePlayerAction
	return nil
}

func handleDecline(g *models.GameState, p *models.Player) *GameError {
	if g.PendingBuyDecision == nil {
		return errInvalidState("nothing to decline")
	}
	spaceID := g.PendingBuyDecision.SpaceID
	g.PendingBuyDecision = nil
	if gerr := startAuction(g, spaceID); gerr != nil {
		return gerr
	}
	g.Phase = models.PhaseAuction
	return nil
}

func handleAuctionMove(g *models.GameState, p *models.Player, amount int, pass bool) *GameError {
	var gerr *GameError
	if pass {
		gerr = passBid(g, p)
	} else {
		gerr = placeBid(g, p, amount)
	}
	if gerr != nil {
		return gerr
	}
	if g.Auction != nil && auctionComplete(g.Auction) {
		if gerr := resolveAuction(g); gerr != nil {
			return gerr
		}
		g.Phase = models.PhasePlayerAction
		// the seat holding the turn may have forfeited mid-auction
		ensureLiveTurn(g)
	}
	return nil
}

func handleBankruptcy(g *models.GameState, p *models.Player, creditorID string) *GameError {
	wasCurrent := g.CurrentPlayer().ID == p.ID
	if gerr := declareBankruptcy(g, p, creditorID); gerr != nil {
		return gerr
	}
	if g.Status == models.StatusPlaying && wasCurrent {
		clearTurnTransients(g)
		advanceToNextPlayer(g)
		g.Phase = models.PhaseWaitingForRoll
	}
	return nil
}

func handleEndTurn(g *models.GameState, p *models.Player) *GameError {
	clearTurnTransients(g)
	if g.RolledDoubles {
		// doubles earn the same player another roll
		g.RolledDoubles = false
		g.Phase = models.PhaseWaitingForRoll
		return nil
	}
	p.DoublesCount = 0
	advanceToNextPlayer(g)
	g.Phase = models.PhaseWaitingForRoll
	appendEvent(g, models.EvTurnEnded, map[string]interface{}{
		"playerId": p.ID,
		"nextId":   g.CurrentPlayer().ID,
	})
	return nil
}

func clearTurnTransients(g *models.GameState) {
	g.LastDiceResult = nil
	g.LastResolution = nil
	g.PendingBuyDecision = nil
}

// Forfeit settles a departing player against the bank outside the
// normal turn flow, for connection-lifecycle callers. The player is
// also dropped from any open auction.
func (e *Engine) Forfeit(gameID, playerID string) ActionResult {
	lock := e.lockFor(gameID)
	lock.Lock()
	defer lock.Unlock()

	blob, err := e.store.LoadGameState(gameID)
	if err != nil || blob == "" {
		return fail(errNotFound("game %s not found", gameID))
	}
	g, err := Deserialize(blob)
	if err != nil {
		return fail(errNotFound("game %s state is unreadable", gameID))
	}
	p, gerr := findPlayer(g, playerID)
	if gerr != nil {
		return fail(gerr)
	}
	if p.IsBankrupt || !p.IsActive {
		return ActionResult{OK: true, State: g}
	}

	evMark := len(g.Events)
	if gerr := declareBankruptcy(g, p, ""); gerr != nil {
		return fail(gerr)
	}
	if a := g.Auction; a != nil && g.Status == models.StatusPlaying {
		dropFromAuction(a, p.ID)
		if auctionComplete(a) {
			if gerr := resolveAuction(g); gerr != nil {
				return fail(gerr)
			}
			g.Phase = models.PhasePlayerAction
		}
	}
	// with the auction still open the turn stays parked until it
	// resolves; handleAuctionMove reclaims it then
	if g.Status == models.StatusPlaying && g.Phase != models.PhaseAuction {
		ensureLiveTurn(g)
	}

	out, err := Serialize(g)
	if err != nil {
		return fail(errInvalidState("game %s state failed to serialize", gameID))
	}
	if err := e.store.SaveGameState(gameID, out); err != nil {
		return fail(errInvalidState("game %s could not be saved", gameID))
	}
	for _, ev := range g.Events[evMark:] {
		e.bus.Publish(ev)
	}
	return ActionResult{OK: true, State: g}
}

// ensureLiveTurn moves the turn off a seat that went bankrupt or left
// while the machine was parked elsewhere, so the remaining players are
// never stuck waiting on a dead seat.
func ensureLiveTurn(g *models.GameState) {
	cur := g.CurrentPlayer()
	if cur.IsActive && !cur.IsBankrupt {
		return
	}
	clearTurnTransients(g)
	advanceToNextPlayer(g)
	g.Phase = models.PhaseWaitingForRoll
}

// advanceToNextPlayer rotates to the next active, non-bankrupt seat.
func advanceToNextPlayer(g *models.GameState) {
	n := len(g.Players)
	for i := 1; i <= n; i++ {
		idx := (g.CurrentPlayerIndex + i) % n
		pl := &g.Players[idx]
		if pl.IsActive && !pl.IsBankrupt {
			g.CurrentPlayerIndex = idx
			return
		}
	}
}
