package engine

import (
	"github.com/ZebLawrence/monopoly-web-game-sub000/app/models"
)

// RNG returns a uniform value in [0, n). Both dice rolls and deck
// shuffles draw through this seam so tests can fix the sequence.
type RNG func(n int) int

// rollDice draws two independent dice.
func rollDice(rng RNG) models.DiceResult {
	d1 := rng(6) + 1
	d2 := rng(6) + 1
	return models.DiceResult{
		Die1:      d1,
		Die2:      d2,
		Total:     d1 + d2,
		IsDoubles: d1 == d2,
	}
}

// calculateNewPosition advances a position clockwise around the board.
func calculateNewPosition(pos, total int) int {
	return (pos + total) % models.BoardSize
}

// didPassGo reports whether a clockwise move from old to new crossed
// Go. Position 0 itself counts as crossing.
func didPassGo(oldPos, newPos int) bool {
	return newPos < oldPos && oldPos != newPos
}

// applyMovement moves the current player by the rolled total, tracking
// consecutive doubles. The third doubles in a row sends the player
// straight to jail with no movement and no Go salary. Returns true if
// the player actually moved and the landing still needs resolving.
func applyMovement(g *models.GameState, p *models.Player, dice models.DiceResult) bool {
	if dice.IsDoubles {
		p.DoublesCount++
		if p.DoublesCount >= 3 {
			sendToJail(g, p)
			g.RolledDoubles = false
			return false
		}
		g.RolledDoubles = true
	} else {
		p.DoublesCount = 0
		g.RolledDoubles = false
	}

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
	return true
}

// payGoSalary credits the Go salary exactly once.
func payGoSalary(g *models.GameState, p *models.Player) {
	p.Cash += g.Settings.GoSalary
	appendEvent(g, models.EvPassedGo, map[string]interface{}{
		"playerId": p.ID,
		"salary":   g.Settings.GoSalary,
	})
}
