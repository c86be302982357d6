package engine

import (
	"github.com/ZebLawrence/monopoly-web-game-sub000/app/models"
)

// sendToJail forces the player onto the jail cell. No movement, no Go
// salary, doubles run reset.
func sendToJail(g *models.GameState, p *models.Player) {
	p.Position = models.PosJail
	p.InJail = true
	p.TurnsInJail = 0
	p.DoublesCount = 0
	appendEvent(g, models.EvSentToJail, map[string]interface{}{
		"playerId": p.ID,
	})
}

// payJailFine buys the player out before rolling.
func payJailFine(g *models.GameState, p *models.Player) *GameError {
	if !p.InJail {
		return errInvalidState("player %s is not in jail", p.ID)
	}
	if p.Cash < g.Settings.JailFine {
		return errInsufficientFunds("need $%d to pay the jail fine", g.Settings.JailFine)
	}
	p.Cash -= g.Settings.JailFine
	releaseFromJail(g, p, "fine")
	return nil
}

// useJailCard consumes one Get Out of Jail Free card.
func useJailCard(g *models.GameState, p *models.Player) *GameError {
	if !p.InJail {
		return errInvalidState("player %s is not in jail", p.ID)
	}
	if p.GetOutOfJailCards < 1 {
		return errNotFound("player %s has no Get Out of Jail Free card", p.ID)
	}
	p.GetOutOfJailCards--
	releaseFromJail(g, p, "card")
	return nil
}

func releaseFromJail(g *models.GameState, p *models.Player, how string) {
	p.InJail = false
	p.TurnsInJail = 0
	appendEvent(g, models.EvJailReleased, map[string]interface{}{
		"playerId": p.ID,
		"via":      how,
	})
}

// rollInJail applies one in-jail roll attempt. Doubles free the player
// immediately; the third failed attempt charges the fine and frees
// them anyway. Returns true when the player is out and still owes the
// movement for the rolled total.
func rollInJail(g *models.GameState, p *models.Player, dice models.DiceResult) bool {
	if dice.IsDoubles {
		releaseFromJail(g, p, "doubles")
		// a jail-break roll does not earn another turn
		p.DoublesCount = 0
		return true
	}
	if p.TurnsInJail >= 2 {
		// third failed attempt: forced fine, may go negative
		p.Cash -= g.Settings.JailFine
		releaseFromJail(g, p, "forcedFine")
		return true
	}
	p.TurnsInJail++
	return false
}
