package engine

import (
	"github.com/ZebLawrence/monopoly-web-game-sub000/app/models"
	"github.com/ZebLawrence/monopoly-web-game-sub000/platform/board"
)

// buyProperty purchases the space the player is standing on.
func buyProperty(g *models.GameState, p *models.Player, spaceID int) *GameError {
	space, gerr := boardSpace(spaceID)
	if gerr != nil {
		return gerr
	}
	if !space.Purchasable() {
		return errOwnership("%s cannot be bought", space.Name)
	}
	if owner := g.OwnerOf(spaceID); owner != nil {
		return errOwnership("%s is already owned", space.Name)
	}
	if p.Position != space.Position {
		return errInvalidState("player %s is not on %s", p.ID, space.Name)
	}
	if p.Cash < space.Price {
		return errInsufficientFunds("%s costs $%d", space.Name, space.Price)
	}
	p.Cash -= space.Price
	p.Properties = append(p.Properties, spaceID)
	g.PropertyStates[spaceID] = &models.PropertyState{}
	appendEvent(g, models.EvPropertyPurchased, map[string]interface{}{
		"playerId": p.ID,
		"spaceId":  spaceID,
		"price":    space.Price,
	})
	return nil
}

// buildHouse adds one house to a street the player holds a monopoly
// over, respecting the even-build rule and the shared supply.
func buildHouse(g *models.GameState, p *models.Player, spaceID int) *GameError {
	space, gerr := buildTarget(g, p, spaceID)
	if gerr != nil {
		return gerr
	}
	ps := g.PropertyState(spaceID)
	if ps.Houses >= 5 {
		return errBuildRule("%s already has a hotel", space.Name)
	}
	if ps.Houses >= 4 {
		return errBuildRule("%s is ready for a hotel, not another house", space.Name)
	}
	if gerr := checkEvenBuild(g, space, ps.Houses); gerr != nil {
		return gerr
	}
	if g.Supply.Houses < 1 {
		return errBuildRule("no houses left in the bank")
	}
	if p.Cash < space.HouseCost {
		return errInsufficientFunds("a house on %s costs $%d", space.Name, space.HouseCost)
	}
	p.Cash -= space.HouseCost
	g.Supply.Houses--
	ps.Houses++
	appendEvent(g, models.EvBuildingChanged, map[string]interface{}{
		"playerId": p.ID,
		"spaceId":  spaceID,
		"houses":   ps.Houses,
	})
	return nil
}

// buildHotel upgrades a four-house street to a hotel, returning the
// four houses to the supply.
func buildHotel(g *models.GameState, p *models.Player, spaceID int) *GameError {
	space, gerr := buildTarget(g, p, spaceID)
	if gerr != nil {
		return gerr
	}
	ps := g.PropertyState(spaceID)
	if ps.Houses >= 5 {
		return errBuildRule("%s already has a hotel", space.Name)
	}
	if ps.Houses < 4 {
		return errBuildRule("%s needs four houses before a hotel", space.Name)
	}
	if gerr := checkEvenBuild(g, space, ps.Houses); gerr != nil {
		return gerr
	}
	if g.Supply.Hotels < 1 {
		return errBuildRule("no hotels left in the bank")
	}
	if p.Cash < space.HouseCost {
		return errInsufficientFunds("a hotel on %s costs $%d", space.Name, space.HouseCost)
	}
	p.Cash -= space.HouseCost
	g.Supply.Hotels--
	g.Supply.Houses += 4
	ps.Houses = 5
	appendEvent(g, models.EvBuildingChanged, map[string]interface{}{
		"playerId": p.ID,
		"spaceId":  spaceID,
		"houses":   5,
	})
	return nil
}

// sellBuilding removes one building for half its cost. A hotel
// downgrade needs four houses back from the supply.
func sellBuilding(g *models.GameState, p *models.Player, spaceID int) *GameError {
	space, gerr := boardSpace(spaceID)
	if gerr != nil {
		return gerr
	}
	if !p.OwnsProperty(spaceID) {
		return errOwnership("player %s does not own %s", p.ID, space.Name)
	}
	ps := g.PropertyState(spaceID)
	if ps.Houses == 0 {
		return errBuildRule("%s has no buildings to sell", space.Name)
	}
	if gerr := checkEvenSell(g, space, ps.Houses); gerr != nil {
		return gerr
	}
	if ps.Houses == 5 {
		if g.Supply.Houses < 4 {
			return errBuildRule("not enough houses in the bank to break up the hotel")
		}
		g.Supply.Hotels++
		g.Supply.Houses -= 4
		ps.Houses = 4
	} else {
		ps.Houses--
		g.Supply.Houses++
	}
	p.Cash += space.HouseCost / 2
	appendEvent(g, models.EvBuildingChanged, map[string]interface{}{
		"playerId": p.ID,
		"spaceId":  spaceID,
		"houses":   ps.Houses,
	})
	return nil
}

// mortgageProperty pays out the mortgage value. The whole color group
// must be free of buildings.
func mortgageProperty(g *models.GameState, p *models.Player, spaceID int) *GameError {
	space, gerr := boardSpace(spaceID)
	if gerr != nil {
		return gerr
	}
	if !p.OwnsProperty(spaceID) {
		return errOwnership("player %s does not own %s", p.ID, space.Name)
	}
	ps := g.PropertyState(spaceID)
	if ps.Mortgaged {
		return errOwnership("%s is already mortgaged", space.Name)
	}
	if groupHasBuildings(g, space) {
		return errBuildRule("sell the buildings in the %s group first", space.Group)
	}
	ps.Mortgaged = true
	p.Cash += space.Mortgage
	appendEvent(g, models.EvPropertyMortgaged, map[string]interface{}{
		"playerId": p.ID,
		"spaceId":  spaceID,
		"amount":   space.Mortgage,
	})
	return nil
}

// unmortgageProperty lifts a mortgage for its value plus 10% interest,
// rounded up.
func unmortgageProperty(g *models.GameState, p *models.Player, spaceID int) *GameError {
	space, gerr := boardSpace(spaceID)
	if gerr != nil {
		return gerr
	}
	if !p.OwnsProperty(spaceID) {
		return errOwnership("player %s does not own %s", p.ID, space.Name)
	}
	ps := g.PropertyState(spaceID)
	if !ps.Mortgaged {
		return errOwnership("%s is not mortgaged", space.Name)
	}
	cost := space.Mortgage + (space.Mortgage+9)/10
	if p.Cash < cost {
		return errInsufficientFunds("lifting the mortgage on %s costs $%d", space.Name, cost)
	}
	ps.Mortgaged = false
	p.Cash -= cost
	appendEvent(g, models.EvPropertyUnmortgaged, map[string]interface{}{
		"playerId": p.ID,
		"spaceId":  spaceID,
		"amount":   cost,
	})
	return nil
}

// buildTarget validates the common build preconditions: a street the
// player owns with a full color group, not mortgaged anywhere in the
// group.
func buildTarget(g *models.GameState, p *models.Player, spaceID int) (models.Space, *GameError) {
	space, gerr := boardSpace(spaceID)
	if gerr != nil {
		return models.Space{}, gerr
	}
	if space.Type != models.SpaceStreet {
		return models.Space{}, errBuildRule("buildings only go on streets")
	}
	if !p.OwnsProperty(spaceID) {
		return models.Space{}, errOwnership("player %s does not own %s", p.ID, space.Name)
	}
	if !ownsFullGroup(p, space.Group) {
		return models.Space{}, errBuildRule("player %s does not hold the full %s group", p.ID, space.Group)
	}
	for _, s := range board.GroupSpaces(space.Group) {
		if g.PropertyState(s.ID).Mortgaged {
			return models.Space{}, errBuildRule("%s is mortgaged", s.Name)
		}
	}
	return space, nil
}

// checkEvenBuild enforces building on the least-developed member of
// the group.
func checkEvenBuild(g *models.GameState, space models.Space, houses int) *GameError {
	for _, s := range board.GroupSpaces(space.Group) {
		if g.PropertyState(s.ID).Houses < houses {
			return errBuildRule("build evenly: %s is behind", s.Name)
		}
	}
	return nil
}

// checkEvenSell enforces selling from the most-developed member.
func checkEvenSell(g *models.GameState, space models.Space, houses int) *GameError {
	for _, s := range board.GroupSpaces(space.Group) {
		if g.PropertyState(s.ID).Houses > houses {
			return errBuildRule("sell evenly: %s has more buildings", s.Name)
		}
	}
	return nil
}

// groupHasBuildings reports buildings anywhere in the space's color
// group. Railroads and utilities have no group and no buildings.
func groupHasBuildings(g *models.GameState, space models.Space) bool {
	if space.Group == "" {
		return false
	}
	for _, s := range board.GroupSpaces(space.Group) {
		if g.PropertyState(s.ID).Houses > 0 {
			return true
		}
	}
	return false
}

func boardSpace(spaceID int) (models.Space, *GameError) {
	s, err := board.GetByID(spaceID)
	if err != nil {
		return models.Space{}, errNotFound("no space with id %d", spaceID)
	}
	return s, nil
}
