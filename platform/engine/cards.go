package engine

import (
	"github.com/ZebLawrence/monopoly-web-game-sub000/app/models"
	"github.com/ZebLawrence/monopoly-web-game-sub000/platform/board"
)

// newShuffledDeck builds a per-game draw order over the static deck
// using Fisher-Yates on the engine RNG.
func (e *Engine) newShuffledDeck(deck string) *models.Deck {
	cards := board.DeckCards(deck)
	order := make([]string, len(cards))
	for i, c := range cards {
		order[i] = c.ID
	}
	for i := len(order) - 1; i > 0; i-- {
		j := e.rng(i + 1)
		order[i], order[j] = order[j], order[i]
	}
	return &models.Deck{Name: deck, Order: order}
}

// drawCard takes the top card. A Get Out of Jail Free card leaves the
// deck and is credited to the drawer; any other card goes to the
// bottom once returned.
func drawCard(g *models.GameState, p *models.Player, deckName string) (models.Card, *GameError) {
	deck, ok := g.Decks[deckName]
	if !ok || len(deck.Order) == 0 {
		return models.Card{}, errNotFound("deck %s is empty", deckName)
	}
	top := deck.Order[0]
	card, err := board.CardByID(top)
	if err != nil {
		return models.Card{}, errNotFound("unknown card %s", top)
	}
	if card.Effect.Type == models.EffectGetOutOfJail {
		deck.Order = deck.Order[1:]
		p.GetOutOfJailCards++
	} else {
		deck.Order = append(deck.Order[1:], top)
	}
	return card, nil
}

// drawAndApplyCard draws from the named deck and runs the effect
// interpreter, chaining into space resolution when the card moves the
// player.
func drawAndApplyCard(g *models.GameState, p *models.Player, deckName string, diceTotal int) *GameError {
	card, gerr := drawCard(g, p, deckName)
	if gerr != nil {
		return gerr
	}
	appendEvent(g, models.EvCardDrawn, map[string]interface{}{
		"playerId": p.ID,
		"deck":     deckName,
		"cardId":   card.ID,
		"text":     card.Text,
	})
	return applyCardEffect(g, p, card, diceTotal)
}

func applyCardEffect(g *models.GameState, p *models.Player, card models.Card, diceTotal int) *GameError {
	eff := card.Effect
	switch eff.Type {
	case models.EffectCash:
		p.Cash += eff.Amount
		appendEvent(g, models.EvCashAdjusted, map[string]interface{}{
			"playerId": p.ID,
			"amount":   eff.Amount,
			"cardId":   card.ID,
		})
		return nil

	case models.EffectMove:
		oldPos := p.Position
		p.Position = eff.Position
		if didPassGo(oldPos, p.Position) {
			payGoSalary(g, p)
		}
		return chainResolve(g, p, diceTotal)

	case models.EffectMoveBack:
		p.Position = (p.Position - eff.Spaces + models.BoardSize) % models.BoardSize
		// moving backwards never collects the Go salary
		return chainResolve(g, p, diceTotal)

	case models.EffectJail:
		sendToJail(g, p)
		g.RolledDoubles = false
		return nil

	case models.EffectCollectFromAll:
		for i := range g.Players {
			other := &g.Players[i]
			if other.ID == p.ID || !other.IsActive || other.IsBankrupt {
				continue
			}
			other.Cash -= eff.Amount
			p.Cash += eff.Amount
		}
		appendEvent(g, models.EvCashAdjusted, map[string]interface{}{
			"playerId": p.ID,
			"cardId":   card.ID,
			"perHead":  eff.Amount,
		})
		return nil

	case models.EffectPayEachPlayer:
		for i := range g.Players {
			other := &g.Players[i]
			if other.ID == p.ID || !other.IsActive || other.IsBankrupt {
				continue
			}
			p.Cash -= eff.Amount
			other.Cash += eff.Amount
		}
		appendEvent(g, models.EvCashAdjusted, map[string]interface{}{
			"playerId": p.ID,
			"cardId":   card.ID,
			"perHead":  -eff.Amount,
		})
		return nil

	case models.EffectRepairs:
		bill := 0
		for _, id := range p.Properties {
			houses := g.PropertyState(id).Houses
			if houses == 5 {
				bill += eff.PerHotel
			} else {
				bill += houses * eff.PerHouse
			}
		}
		p.Cash -= bill
		appendEvent(g, models.EvCashAdjusted, map[string]interface{}{
			"playerId": p.ID,
			"amount":   -bill,
			"cardId":   card.ID,
		})
		return nil

	case models.EffectNearestRailroad:
		moveToNearest(g, p, board.RailroadPositions())
		return chainAdvanceResolve(g, p, diceTotal, true)

	case models.EffectNearestUtility:
		moveToNearest(g, p, board.UtilityPositions())
		return chainAdvanceResolve(g, p, diceTotal, false)

	case models.EffectGetOutOfJail:
		// already credited during the draw
		return nil
	}
	return nil
}

// moveToNearest advances clockwise to the next of the given positions,
// paying the Go salary on a wrap.
func moveToNearest(g *models.GameState, p *models.Player, positions []int) {
	oldPos := p.Position
	target := -1
	for _, pos := range positions {
		if pos > oldPos {
			target = pos
			break
		}
	}
	if target == -1 {
		target = positions[0] // wrap
	}
	p.Position = target
	if didPassGo(oldPos, target) {
		payGoSalary(g, p)
	}
}

// chainResolve resolves the destination of a card move like a normal
// landing.
func chainResolve(g *models.GameState, p *models.Player, diceTotal int) *GameError {
	res, gerr := resolveSpace(g, p, diceTotal)
	if gerr != nil {
		return gerr
	}
	return applyResolution(g, p, res, diceTotal)
}

// chainAdvanceResolve handles the advance-to-nearest cards, whose rent
// rules differ from a plain landing: railroads charge double rent and
// utilities always charge ten times the roll.
func chainAdvanceResolve(g *models.GameState, p *models.Player, diceTotal int, railroad bool) *GameError {
	res, gerr := resolveSpace(g, p, diceTotal)
	if gerr != nil {
		return gerr
	}
	if res.Type == models.ResolveRentPayment {
		if railroad {
			res.Amount *= 2
		} else {
			// ten times the dice; zero when the effect carried no roll
			res.Amount = diceTotal * 10
		}
	}
	return applyResolution(g, p, res, diceTotal)
}
