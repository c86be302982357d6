package engine

import (
	"github.com/ZebLawrence/monopoly-web-game-sub000/app/models"
	"github.com/ZebLawrence/monopoly-web-game-sub000/platform/board"
)

// calculateLiquidationValue is the cash a player could still raise:
// half the house cost per building unit (a hotel counts as five) plus
// the full mortgage value of every unmortgaged holding.
func calculateLiquidationValue(g *models.GameState, p *models.Player) int {
	total := 0
	for _, id := range p.Properties {
		space, err := board.GetByID(id)
		if err != nil {
			continue
		}
		ps := g.PropertyState(id)
		total += ps.Houses * space.HouseCost / 2
		if !ps.Mortgaged {
			total += space.Mortgage
		}
	}
	return total
}

// canPlayerAfford reports whether cash plus liquidation covers the
// amount.
func canPlayerAfford(g *models.GameState, p *models.Player, amount int) bool {
	return p.Cash+calculateLiquidationValue(g, p) >= amount
}

// declareBankruptcy settles the player's estate. With a creditor the
// whole estate (cash, properties, jail cards) transfers to them, with
// buildings sold back to the supply and mortgage flags kept. Against
// the bank the properties become unowned and fully reset. Either way
// the player leaves the game.
func declareBankruptcy(g *models.GameState, p *models.Player, creditorID string) *GameError {
	if p.IsBankrupt {
		return errInvalidState("player %s is already bankrupt", p.ID)
	}
	var creditor *models.Player
	if creditorID != "" {
		var gerr *GameError
		creditor, gerr = findPlayer(g, creditorID)
		if gerr != nil {
			return gerr
		}
		if creditor.ID == p.ID {
			return errInvalidState("cannot go bankrupt to yourself")
		}
	}

	// buildings back to the shared supply
	for _, id := range p.Properties {
		ps := g.PropertyState(id)
		if ps.Houses == 5 {
			g.Supply.Hotels++
		} else {
			g.Supply.Houses += ps.Houses
		}
		ps.Houses = 0
		if creditor == nil {
			ps.Mortgaged = false
		}
	}

	if creditor != nil {
		creditor.Cash += p.Cash
		creditor.Properties = append(creditor.Properties, p.Properties...)
		creditor.GetOutOfJailCards += p.GetOutOfJailCards
	}

	p.Cash = 0
	p.Properties = nil
	p.GetOutOfJailCards = 0
	p.IsActive = false
	p.IsBankrupt = true

	appendEvent(g, models.EvBankruptcy, map[string]interface{}{
		"playerId":   p.ID,
		"creditorId": creditorID,
	})
	checkGameOver(g)
	return nil
}

// checkGameOver finishes the match once at most one active,
// non-bankrupt player remains.
func checkGameOver(g *models.GameState) {
	if g.Status != models.StatusPlaying {
		return
	}
	remaining := g.ActivePlayers()
	if len(remaining) > 1 {
		return
	}
	g.Status = models.StatusFinished
	winner := ""
	if len(remaining) == 1 {
		winner = remaining[0]
	}
	appendEvent(g, models.EvGameFinished, map[string]interface{}{
		"winnerId": winner,
	})
}

// GetWinner returns the sole surviving player's id, or empty while the
// game is still running or undecided.
func GetWinner(g *models.GameState) string {
	if g.Status != models.StatusFinished {
		return ""
	}
	remaining := g.ActivePlayers()
	if len(remaining) != 1 {
		return ""
	}
	return remaining[0]
}

// DetermineTimedGameWinner ranks active players by net worth: cash,
// unmortgaged holdings at face value, and buildings at cost (a hotel
// counts as five house units). Returns the richest player's id.
func DetermineTimedGameWinner(g *models.GameState) string {
	best := ""
	bestWorth := 0
	for i := range g.Players {
		p := &g.Players[i]
		if !p.IsActive || p.IsBankrupt {
			continue
		}
		worth := NetWorth(g, p)
		if best == "" || worth > bestWorth {
			best = p.ID
			bestWorth = worth
		}
	}
	return best
}

// NetWorth values a player's full position.
func NetWorth(g *models.GameState, p *models.Player) int {
	worth := p.Cash
	for _, id := range p.Properties {
		space, err := board.GetByID(id)
		if err != nil {
			continue
		}
		ps := g.PropertyState(id)
		if !ps.Mortgaged {
			worth += space.Price
		}
		worth += ps.Houses * space.HouseCost
	}
	return worth
}
