package engine

import (
	"github.com/ZebLawrence/monopoly-web-game-sub000/app/models"
)

// resolveSpace maps the space under the player to its effect given
// current ownership. diceTotal feeds utility rent; pass 0 when no roll
// is in play (card-driven movement without a stored roll).
func resolveSpace(g *models.GameState, p *models.Player, diceTotal int) (models.Resolution, *GameError) {
	space, gerr := spaceAt(p.Position)
	if gerr != nil {
		return models.Resolution{}, gerr
	}

	switch space.Type {
	case models.SpaceStreet, models.SpaceRailroad, models.SpaceUtility:
		owner := g.OwnerOf(space.ID)
		if owner == nil {
			return models.Resolution{
				Type:    models.ResolveUnownedProperty,
				SpaceID: space.ID,
				Name:    space.Name,
				Cost:    space.Price,
			}, nil
		}
		if owner.ID == p.ID {
			return models.Resolution{Type: models.ResolveOwnProperty, SpaceID: space.ID}, nil
		}
		if g.PropertyState(space.ID).Mortgaged {
			return models.Resolution{Type: models.ResolveNoAction, SpaceID: space.ID}, nil
		}
		rent := rentFor(g, owner, space, diceTotal)
		return models.Resolution{
			Type:    models.ResolveRentPayment,
			SpaceID: space.ID,
			Amount:  rent,
			OwnerID: owner.ID,
		}, nil

	case models.SpaceTax:
		return models.Resolution{
			Type:    models.ResolveTax,
			SpaceID: space.ID,
			Amount:  space.Tax,
		}, nil

	case models.SpaceChance:
		return models.Resolution{Type: models.ResolveDrawCard, SpaceID: space.ID, Deck: models.DeckChance}, nil

	case models.SpaceCommunityChest:
		return models.Resolution{Type: models.ResolveDrawCard, SpaceID: space.ID, Deck: models.DeckCommunityChest}, nil

	case models.SpaceCorner:
		if space.Position == models.PosGoToJail {
			return models.Resolution{Type: models.ResolveGoToJail, SpaceID: space.ID}, nil
		}
		// Go salary is paid by movement, not by landing.
		return models.Resolution{Type: models.ResolveNoAction, SpaceID: space.ID}, nil
	}
	return models.Resolution{Type: models.ResolveNoAction, SpaceID: space.ID}, nil
}

// rentFor computes rent owed to the owner for a landing on space.
func rentFor(g *models.GameState, owner *models.Player, space models.Space, diceTotal int) int {
	switch space.Type {
	case models.SpaceStreet:
		return streetRent(g, owner, space)
	case models.SpaceRailroad:
		return railroadRent(countOwnedOfType(g, owner, models.SpaceRailroad))
	case models.SpaceUtility:
		return utilityRent(countOwnedOfType(g, owner, models.SpaceUtility), diceTotal)
	}
	return 0
}

// streetRent applies the rent tiers: tier by house count when built,
// base rent doubled on an unbuilt full color group.
func streetRent(g *models.GameState, owner *models.Player, space models.Space) int {
	houses := g.PropertyState(space.ID).Houses
	if houses > 0 {
		if houses >= len(space.Rent) {
			houses = len(space.Rent) - 1
		}
		return space.Rent[houses]
	}
	rent := space.Rent[0]
	if ownsFullGroup(owner, space.Group) {
		rent *= 2
	}
	return rent
}

// railroadRent is 25 doubling per railroad owned: 25, 50, 100, 200.
func railroadRent(owned int) int {
	if owned < 1 {
		return 0
	}
	return 25 << (owned - 1)
}

// utilityRent is 4x the roll with one utility, 10x with both.
func utilityRent(owned, diceTotal int) int {
	switch owned {
	case 1:
		return diceTotal * 4
	case 2:
		return diceTotal * 10
	}
	return 0
}

// applyResolution mutates state per the resolution. Rent and tax are
// charged even if they push the payer negative; bankruptcy settles the
// balance later. Card draws chain into the card engine, which can move
// the player and trigger a second resolution.
func applyResolution(g *models.GameState, p *models.Player, res models.Resolution, diceTotal int) *GameError {
	g.LastResolution = &res

	switch res.Type {
	case models.ResolveUnownedProperty:
		g.PendingBuyDecision = &models.BuyPrompt{
			SpaceID: res.SpaceID,
			Name:    res.Name,
			Cost:    res.Cost,
		}

	case models.ResolveRentPayment:
		owner, gerr := findPlayer(g, res.OwnerID)
		if gerr != nil {
			return gerr
		}
		p.Cash -= res.Amount
		owner.Cash += res.Amount
		appendEvent(g, models.EvRentPaid, map[string]interface{}{
			"playerId": p.ID,
			"ownerId":  owner.ID,
			"spaceId":  res.SpaceID,
			"amount":   res.Amount,
		})

	case models.ResolveTax:
		p.Cash -= res.Amount
		appendEvent(g, models.EvTaxPaid, map[string]interface{}{
			"playerId": p.ID,
			"spaceId":  res.SpaceID,
			"amount":   res.Amount,
		})

	case models.ResolveDrawCard:
		return drawAndApplyCard(g, p, res.Deck, diceTotal)

	case models.ResolveGoToJail:
		sendToJail(g, p)
		g.RolledDoubles = false
	}
	return nil
}
