package engine

import (
	"github.com/ZebLawrence/monopoly-web-game-sub000/app/models"
	"github.com/ZebLawrence/monopoly-web-game-sub000/platform/board"
)

// memStore is an in-memory Storage for tests.
type memStore struct {
	blobs map[string]string
}

func newMemStore() *memStore {
	return &memStore{blobs: map[string]string{}}
}

func (m *memStore) LoadGameState(id string) (string, error) {
	return m.blobs[id], nil
}

func (m *memStore) SaveGameState(id string, blob string) error {
	m.blobs[id] = blob
	return nil
}

func (m *memStore) DeleteGameState(id string) error {
	delete(m.blobs, id)
	return nil
}

// newTestState builds a playing two-or-more player state with decks in
// file order, skipping the engine so pure functions can be exercised
// directly.
func newTestState(playerIDs ...string) *models.GameState {
	g := &models.GameState{
		GameID:         "g1",
		Status:         models.StatusPlaying,
		Phase:          models.PhaseWaitingForRoll,
		PropertyStates: map[int]*models.PropertyState{},
		Supply:         models.BuildingSupply{Houses: models.TotalHouses, Hotels: models.TotalHotels},
		Decks:          map[string]*models.Deck{},
		Trades:         map[string]*models.TradeOffer{},
		Settings:       models.DefaultSettings(),
	}
	for _, id := range playerIDs {
		g.Players = append(g.Players, models.Player{
			ID:       id,
			Name:     id,
			Cash:     g.Settings.StartingCash,
			IsActive: true,
		})
	}
	for _, deck := range []string{models.DeckChance, models.DeckCommunityChest} {
		var order []string
		for _, c := range board.DeckCards(deck) {
			order = append(order, c.ID)
		}
		g.Decks[deck] = &models.Deck{Name: deck, Order: order}
	}
	return g
}

// giveProperty hands a space to a player with a zeroed state.
func giveProperty(g *models.GameState, playerID string, spaceIDs ...int) {
	p := g.PlayerByID(playerID)
	for _, id := range spaceIDs {
		p.Properties = append(p.Properties, id)
		g.PropertyStates[id] = &models.PropertyState{}
	}
}

// scriptDice replaces the engine RNG so upcoming rolls land the given
// faces in order, then 1s forever.
func scriptDice(e *Engine, faces ...int) {
	i := 0
	e.rng = func(n int) int {
		if i < len(faces) {
			v := faces[i] - 1
			i++
			return v
		}
		return 0
	}
}

// startEngineGame wires an engine plus store around a hand-built state.
func startEngineGame(g *models.GameState) (*Engine, *memStore) {
	store := newMemStore()
	e := New(store, WithRNG(func(n int) int { return 0 }))
	blob, err := Serialize(g)
	if err != nil {
		panic(err)
	}
	store.blobs[g.GameID] = blob
	return e, store
}

func totalHousesInPlay(g *models.GameState) (houses, hotels int) {
	for _, ps := range g.PropertyStates {
		if ps.Houses == 5 {
			hotels++
		} else {
			houses += ps.Houses
		}
	}
	return
}
