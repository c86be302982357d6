package models

type Player struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Token       string `json:"token"`
	Cash        int    `json:"cash"`
	Position    int    `json:"position"`
	Properties  []int  `json:"properties"`
	InJail      bool   `json:"inJail"`
	TurnsInJail int    `json:"turnsInJail"`
	// DoublesCount is the consecutive-doubles counter for the current
	// run of rolls; three in a row sends the player to jail.
	DoublesCount      int  `json:"doublesCount"`
	IsActive          bool `json:"isActive"`
	IsBankrupt        bool `json:"isBankrupt"`
	GetOutOfJailCards int  `json:"getOutOfJailFreeCards"`
}

// OwnsProperty reports whether the space id is in the player's list.
func (p *Player) OwnsProperty(spaceID int) bool {
	for _, id := range p.Properties {
		if id == spaceID {
			return true
		}
	}
	return false
}

// SeatRecord is a postgres row tying a user to a game seat, written by
// the lobby before the match starts.
type SeatRecord struct {
	tableName struct{} `pg:"players"`

	UserID   string `pg:"user_id"`
	GameID   string `pg:"game_id"`
	Username string `pg:"username"`
	Token    string `pg:"token"`
}

type PlayerDto struct {
	Username   string `json:"username"`
	Balance    int    `json:"balance"`
	Pos        int    `json:"pos"`
	Color      string `json:"color"`
	Properties []int  `json:"properties"`
	Jail       bool   `json:"jail"`
}
