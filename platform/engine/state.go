package engine

import (
	"encoding/json"

	"github.com/ZebLawrence/monopoly-web-game-sub000/app/models"
	"github.com/ZebLawrence/monopoly-web-game-sub000/platform/board"
)

// PlayerSeat is one roster entry handed to InitializeGame.
type PlayerSeat struct {
	ID    string
	Name  string
	Token string
}

// InitializeGame builds the starting aggregate for a match: every seat
// at Go with the starting cash, full building supply, both decks
// shuffled with the engine's RNG.
func (e *Engine) InitializeGame(gameID string, roster []PlayerSeat) *models.GameState {
	g := &models.GameState{
		GameID:             gameID,
		Status:             models.StatusPlaying,
		CurrentPlayerIndex: 0,
		Phase:              models.PhaseWaitingForRoll,
		PropertyStates:     map[int]*models.PropertyState{},
		Supply:             models.BuildingSupply{Houses: models.TotalHouses, Hotels: models.TotalHotels},
		Decks:              map[string]*models.Deck{},
		Trades:             map[string]*models.TradeOffer{},
		Settings:           models.DefaultSettings(),
	}
	for _, seat := range roster {
		g.Players = append(g.Players, models.Player{
			ID:       seat.ID,
			Name:     seat.Name,
			Token:    seat.Token,
			Cash:     g.Settings.StartingCash,
			Position: models.PosGo,
			IsActive: true,
		})
	}
	for _, deck := range []string{models.DeckChance, models.DeckCommunityChest} {
		g.Decks[deck] = e.newShuffledDeck(deck)
	}
	appendEvent(g, models.EvGameStarted, map[string]interface{}{
		"players": len(g.Players),
	})
	return g
}

// Serialize renders the aggregate as its storage blob.
func Serialize(g *models.GameState) (string, error) {
	b, err := json.Marshal(g)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Deserialize is the inverse of Serialize.
func Deserialize(blob string) (*models.GameState, error) {
	g := &models.GameState{}
	if err := json.Unmarshal([]byte(blob), g); err != nil {
		return nil, err
	}
	if g.PropertyStates == nil {
		g.PropertyStates = map[int]*models.PropertyState{}
	}
	if g.Trades == nil {
		g.Trades = map[string]*models.TradeOffer{}
	}
	return g, nil
}

// findPlayer resolves a player id or fails with NotFound.
func findPlayer(g *models.GameState, id string) (*models.Player, *GameError) {
	p := g.PlayerByID(id)
	if p == nil {
		return nil, errNotFound("player %s is not in game %s", id, g.GameID)
	}
	return p, nil
}

// spaceAt resolves a board position or fails with NotFound.
func spaceAt(pos int) (models.Space, *GameError) {
	s, err := board.GetByPos(pos)
	if err != nil {
		return models.Space{}, errNotFound("no space at position %d", pos)
	}
	return s, nil
}

// removeProperty drops a space id from a player's list.
func removeProperty(p *models.Player, spaceID int) {
	for i, id := range p.Properties {
		if id == spaceID {
			p.Properties = append(p.Properties[:i], p.Properties[i+1:]...)
			return
		}
	}
}

// countOwnedOfType counts the player's railroads or utilities.
func countOwnedOfType(g *models.GameState, p *models.Player, spaceType string) int {
	n := 0
	for _, id := range p.Properties {
		if s, err := board.GetByID(id); err == nil && s.Type == spaceType {
			n++
		}
	}
	return n
}

// ownsFullGroup reports whether the player holds every street in the
// color group.
func ownsFullGroup(p *models.Player, group string) bool {
	for _, s := range board.GroupSpaces(group) {
		if !p.OwnsProperty(s.ID) {
			return false
		}
	}
	return true
}
