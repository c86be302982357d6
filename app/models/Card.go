package models

// Deck names.
const (
	DeckChance         = "chance"
	DeckCommunityChest = "communityChest"
)

// Card effect variants.
const (
	EffectCash            = "cash"
	EffectMove            = "move"
	EffectMoveBack        = "moveBack"
	EffectJail            = "jail"
	EffectCollectFromAll  = "collectFromAll"
	EffectPayEachPlayer   = "payEachPlayer"
	EffectRepairs         = "repairs"
	EffectNearestRailroad = "advanceNearestRailroad"
	EffectNearestUtility  = "advanceNearestUtility"
	EffectGetOutOfJail    = "getOutOfJailFree"
)

type CardEffect struct {
	Type     string `json:"type"`
	Amount   int    `json:"amount,omitempty"`   // cash, collectFromAll, payEachPlayer
	Position int    `json:"position,omitempty"` // move
	Spaces   int    `json:"spaces,omitempty"`   // moveBack
	PerHouse int    `json:"perHouse,omitempty"` // repairs
	PerHotel int    `json:"perHotel,omitempty"` // repairs
}

type Card struct {
	ID     string     `json:"id"`
	Deck   string     `json:"deck"`
	Text   string     `json:"text"`
	Effect CardEffect `json:"effect"`
}

// Deck keeps only the draw order; card content is static board data.
// The front of Order is the top of the pile.
type Deck struct {
	Name  string   `json:"name"`
	Order []string `json:"order"`
}
