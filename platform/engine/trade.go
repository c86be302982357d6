package engine

import (
	uuid "github.com/satori/go.uuid"

	"github.com/ZebLawrence/monopoly-web-game-sub000/app/models"
)

// createTradeOffer validates and registers a pending offer.
func createTradeOffer(g *models.GameState, proposerID string, prop *TradeProposal) (*models.TradeOffer, *GameError) {
	offer := &models.TradeOffer{
		ID:                  uuid.NewV4().String(),
		ProposerID:          proposerID,
		RecipientID:         prop.RecipientID,
		OfferedProperties:   prop.OfferedProperties,
		RequestedProperties: prop.RequestedProperties,
		OfferedCash:         prop.OfferedCash,
		RequestedCash:       prop.RequestedCash,
		OfferedJailCards:    prop.OfferedJailCards,
		RequestedJailCards:  prop.RequestedJailCards,
		Status:              models.TradePending,
	}
	if gerr := validateTrade(g, offer); gerr != nil {
		return nil, gerr
	}
	g.Trades[offer.ID] = offer
	appendEvent(g, models.EvTradeProposed, map[string]interface{}{
		"tradeId":     offer.ID,
		"proposerId":  offer.ProposerID,
		"recipientId": offer.RecipientID,
	})
	return offer, nil
}

// validateTrade checks both sides can deliver: ownership of every
// listed property, no buildings in any touched color group, cash and
// jail cards on hand.
func validateTrade(g *models.GameState, offer *models.TradeOffer) *GameError {
	proposer, gerr := findPlayer(g, offer.ProposerID)
	if gerr != nil {
		return gerr
	}
	recipient, gerr := findPlayer(g, offer.RecipientID)
	if gerr != nil {
		return gerr
	}
	if proposer.ID == recipient.ID {
		return errTradeRule("cannot trade with yourself")
	}
	for _, id := range offer.OfferedProperties {
		if gerr := tradableProperty(g, proposer, id); gerr != nil {
			return gerr
		}
	}
	for _, id := range offer.RequestedProperties {
		if gerr := tradableProperty(g, recipient, id); gerr != nil {
			return gerr
		}
	}
	if offer.OfferedCash < 0 || offer.RequestedCash < 0 {
		return errTradeRule("cash amounts cannot be negative")
	}
	if proposer.Cash < offer.OfferedCash {
		return errInsufficientFunds("proposer cannot cover the offered $%d", offer.OfferedCash)
	}
	if recipient.Cash < offer.RequestedCash {
		return errInsufficientFunds("recipient cannot cover the requested $%d", offer.RequestedCash)
	}
	if proposer.GetOutOfJailCards < offer.OfferedJailCards {
		return errTradeRule("proposer has only %d jail card(s)", proposer.GetOutOfJailCards)
	}
	if recipient.GetOutOfJailCards < offer.RequestedJailCards {
		return errTradeRule("recipient has only %d jail card(s)", recipient.GetOutOfJailCards)
	}
	return nil
}

func tradableProperty(g *models.GameState, owner *models.Player, spaceID int) *GameError {
	space, gerr := boardSpace(spaceID)
	if gerr != nil {
		return gerr
	}
	if !owner.OwnsProperty(spaceID) {
		return errOwnership("player %s does not own %s", owner.ID, space.Name)
	}
	if groupHasBuildings(g, space) {
		return errTradeRule("%s has buildings in its color group", space.Name)
	}
	return nil
}

// acceptTrade performs the atomic multi-asset swap. The offer is
// re-validated first so a stale offer cannot break ownership
// exclusivity.
func acceptTrade(g *models.GameState, playerID, tradeID string) *GameError {
	offer, gerr := pendingTrade(g, playerID, tradeID)
	if gerr != nil {
		return gerr
	}
	if gerr := validateTrade(g, offer); gerr != nil {
		return gerr
	}
	proposer := g.PlayerByID(offer.ProposerID)
	recipient := g.PlayerByID(offer.RecipientID)

	for _, id := range offer.OfferedProperties {
		removeProperty(proposer, id)
		recipient.Properties = append(recipient.Properties, id)
	}
	for _, id := range offer.RequestedProperties {
		removeProperty(recipient, id)
		proposer.Properties = append(proposer.Properties, id)
	}
	proposer.Cash += offer.RequestedCash - offer.OfferedCash
	recipient.Cash += offer.OfferedCash - offer.RequestedCash
	proposer.GetOutOfJailCards += offer.RequestedJailCards - offer.OfferedJailCards
	recipient.GetOutOfJailCards += offer.OfferedJailCards - offer.RequestedJailCards

	offer.Status = models.TradeAccepted
	appendEvent(g, models.EvTradeResolved, map[string]interface{}{
		"tradeId": offer.ID,
		"status":  offer.Status,
	})
	return nil
}

// rejectTrade only flips the status.
func rejectTrade(g *models.GameState, playerID, tradeID string) *GameError {
	offer, gerr := pendingTrade(g, playerID, tradeID)
	if gerr != nil {
		return gerr
	}
	offer.Status = models.TradeRejected
	appendEvent(g, models.EvTradeResolved, map[string]interface{}{
		"tradeId": offer.ID,
		"status":  offer.Status,
	})
	return nil
}

// counterTrade retires the original offer and opens a new pending one
// with proposer and recipient swapped.
func counterTrade(g *models.GameState, playerID, tradeID string, prop *TradeProposal) (*models.TradeOffer, *GameError) {
	offer, gerr := pendingTrade(g, playerID, tradeID)
	if gerr != nil {
		return nil, gerr
	}
	offer.Status = models.TradeCountered
	counter := &TradeProposal{
		RecipientID:         offer.ProposerID,
		OfferedProperties:   prop.OfferedProperties,
		RequestedProperties: prop.RequestedProperties,
		OfferedCash:         prop.OfferedCash,
		RequestedCash:       prop.RequestedCash,
		OfferedJailCards:    prop.OfferedJailCards,
		RequestedJailCards:  prop.RequestedJailCards,
	}
	return createTradeOffer(g, playerID, counter)
}

// pendingTrade resolves a trade the given player may act on.
func pendingTrade(g *models.GameState, playerID, tradeID string) (*models.TradeOffer, *GameError) {
	offer, ok := g.Trades[tradeID]
	if !ok {
		return nil, errNotFound("no trade %s", tradeID)
	}
	if offer.Status != models.TradePending {
		return nil, errTradeRule("trade %s is already %s", tradeID, offer.Status)
	}
	if offer.RecipientID != playerID {
		return nil, errTradeRule("only the recipient may answer this trade")
	}
	return offer, nil
}
