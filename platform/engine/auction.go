package engine

import (
	"github.com/ZebLawrence/monopoly-web-game-sub000/app/models"
)

// startAuction opens an open-outcry auction for a declined property.
// Every active, non-bankrupt player at this moment is eligible.
func startAuction(g *models.GameState, spaceID int) *GameError {
	if g.Auction != nil {
		return errAuctionRule("an auction is already running")
	}
	space, gerr := boardSpace(spaceID)
	if gerr != nil {
		return gerr
	}
	if !space.Purchasable() {
		return errAuctionRule("%s cannot be auctioned", space.Name)
	}
	g.Auction = &models.AuctionState{
		PropertyID: spaceID,
		Eligible:   g.ActivePlayers(),
	}
	appendEvent(g, models.EvAuctionStarted, map[string]interface{}{
		"spaceId": spaceID,
	})
	return nil
}

// placeBid records a strictly higher, affordable bid.
func placeBid(g *models.GameState, p *models.Player, amount int) *GameError {
	a := g.Auction
	if a == nil {
		return errNotFound("no auction is running")
	}
	if !a.IsEligible(p.ID) {
		return errAuctionRule("player %s is not part of this auction", p.ID)
	}
	if a.HasPassed(p.ID) {
		return errAuctionRule("player %s already passed", p.ID)
	}
	if amount <= a.HighBid {
		return errAuctionRule("bid must beat $%d", a.HighBid)
	}
	if amount > p.Cash {
		return errInsufficientFunds("player %s cannot cover a $%d bid", p.ID, amount)
	}
	a.HighBid = amount
	a.HighBidderID = p.ID
	appendEvent(g, models.EvAuctionBid, map[string]interface{}{
		"playerId": p.ID,
		"amount":   amount,
	})
	return nil
}

// passBid withdraws a player. Passing twice is a no-op.
func passBid(g *models.GameState, p *models.Player) *GameError {
	a := g.Auction
	if a == nil {
		return errNotFound("no auction is running")
	}
	if !a.IsEligible(p.ID) {
		return errAuctionRule("player %s is not part of this auction", p.ID)
	}
	if a.HasPassed(p.ID) {
		return nil
	}
	a.Passed = append(a.Passed, p.ID)
	appendEvent(g, models.EvAuctionPassed, map[string]interface{}{
		"playerId": p.ID,
	})
	return nil
}

// auctionComplete reports whether bidding is over: nobody left, or a
// sole remaining player who already holds the high bid.
func auctionComplete(a *models.AuctionState) bool {
	remaining := a.Remaining()
	if len(remaining) == 0 {
		return true
	}
	return len(remaining) == 1 && remaining[0] == a.HighBidderID
}

// dropFromAuction removes a departed player from the eligible list.
func dropFromAuction(a *models.AuctionState, playerID string) {
	for i, id := range a.Eligible {
		if id == playerID {
			a.Eligible = append(a.Eligible[:i], a.Eligible[i+1:]...)
			break
		}
	}
	if a.HighBidderID == playerID {
		a.HighBidderID = ""
		a.HighBid = 0
	}
}

// resolveAuction transfers the property to the high bidder at their
// bid, or leaves it unowned if nobody bid, then tears the auction
// down.
func resolveAuction(g *models.GameState) *GameError {
	a := g.Auction
	if a == nil {
		return errNotFound("no auction is running")
	}
	if a.HighBidderID != "" {
		winner, gerr := findPlayer(g, a.HighBidderID)
		if gerr != nil {
			return gerr
		}
		winner.Cash -= a.HighBid
		winner.Properties = append(winner.Properties, a.PropertyID)
		g.PropertyStates[a.PropertyID] = &models.PropertyState{}
	}
	appendEvent(g, models.EvAuctionResolved, map[string]interface{}{
		"spaceId":  a.PropertyID,
		"winnerId": a.HighBidderID,
		"amount":   a.HighBid,
	})
	g.Auction = nil
	return nil
}
