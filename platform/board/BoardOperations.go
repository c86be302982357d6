package board

import (
	_ "embed"
	"encoding/json"
	"errors"
	"sync"

	"github.com/ZebLawrence/monopoly-web-game-sub000/app/models"
)

//go:embed properties.json
var propertiesJSON []byte

//go:embed cards.json
var cardsJSON []byte

var (
	loadOnce sync.Once
	spaces   []models.Space
	byPos    map[int]models.Space
	cards    []models.Card
	byCardID map[string]models.Card
)

func load() {
	loadOnce.Do(func() {
		if err := json.Unmarshal(propertiesJSON, &spaces); err != nil {
			panic(err)
		}
		if err := json.Unmarshal(cardsJSON, &cards); err != nil {
			panic(err)
		}
		byPos = make(map[int]models.Space, len(spaces))
		for _, s := range spaces {
			byPos[s.Position] = s
		}
		byCardID = make(map[string]models.Card, len(cards))
		for _, c := range cards {
			byCardID[c.ID] = c
		}
	})
}

// Spaces returns all 40 board spaces in position order.
func Spaces() []models.Space {
	load()
	return spaces
}

// GetByPos returns the space at a board position.
func GetByPos(pos int) (models.Space, error) {
	load()
	s, ok := byPos[pos]
	if !ok {
		return models.Space{}, errors.New("not found")
	}
	return s, nil
}

// GetByID returns the space with the given id. Ids equal positions on
// this board but callers should not rely on that.
func GetByID(id int) (models.Space, error) {
	load()
	for _, s := range spaces {
		if s.ID == id {
			return s, nil
		}
	}
	return models.Space{}, errors.New("not found")
}

// DeckCards returns the static cards belonging to one deck, in file
// order. Shuffling happens per game on the state's Deck order.
func DeckCards(deck string) []models.Card {
	load()
	var out []models.Card
	for _, c := range cards {
		if c.Deck == deck {
			out = append(out, c)
		}
	}
	return out
}

// CardByID returns the static card with the given id.
func CardByID(id string) (models.Card, error) {
	load()
	c, ok := byCardID[id]
	if !ok {
		return models.Card{}, errors.New("not found")
	}
	return c, nil
}

// GroupSpaces returns every street space sharing a color group.
func GroupSpaces(group string) []models.Space {
	load()
	var out []models.Space
	for _, s := range spaces {
		if s.Group != "" && s.Group == group {
			out = append(out, s)
		}
	}
	return out
}

// RailroadPositions and UtilityPositions are in clockwise board order.
func RailroadPositions() []int { return []int{5, 15, 25, 35} }
func UtilityPositions() []int  { return []int{12, 28} }
