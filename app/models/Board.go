package models

// Space types as they appear in properties.json.
const (
	SpaceStreet         = "street"
	SpaceRailroad       = "railroad"
	SpaceUtility        = "utility"
	SpaceTax            = "tax"
	SpaceChance         = "chance"
	SpaceCommunityChest = "communityChest"
	SpaceCorner         = "corner"
)

// Board corner positions.
const (
	PosGo          = 0
	PosJail        = 10
	PosFreeParking = 20
	PosGoToJail    = 30
	BoardSize      = 40
)

type Space struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Type      string `json:"type"`
	Group     string `json:"group,omitempty"`
	Position  int    `json:"position"`
	Price     int    `json:"price,omitempty"`
	Rent      []int  `json:"rent,omitempty"` // base, 1-4 houses, hotel
	Mortgage  int    `json:"mortgage,omitempty"`
	HouseCost int    `json:"housecost,omitempty"`
	Tax       int    `json:"tax,omitempty"`
}

// Purchasable reports whether the space can be owned by a player.
func (s Space) Purchasable() bool {
	return s.Type == SpaceStreet || s.Type == SpaceRailroad || s.Type == SpaceUtility
}

// PropertyState is the mutable per-space record kept on the game aggregate.
// Houses runs 0-5 where 5 means a hotel.
type PropertyState struct {
	Houses    int  `json:"houses"`
	Mortgaged bool `json:"mortgaged"`
}

// BuildingSupply is the shared bank stock of buildings for one game.
// Houses on the board plus houses in the pool always sum to 32; same
// for the 12 hotels.
type BuildingSupply struct {
	Houses int `json:"houses"`
	Hotels int `json:"hotels"`
}

const (
	TotalHouses = 32
	TotalHotels = 12
)
