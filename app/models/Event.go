package models

// Event types emitted by the engine.
const (
	EvGameStarted         = "gameStarted"
	EvDiceRolled          = "diceRolled"
	EvPlayerMoved         = "playerMoved"
	EvPassedGo            = "passedGo"
	EvPropertyPurchased   = "propertyPurchased"
	EvAuctionStarted      = "auctionStarted"
	EvAuctionBid          = "auctionBid"
	EvAuctionPassed       = "auctionPassed"
	EvAuctionResolved     = "auctionResolved"
	EvRentPaid            = "rentPaid"
	EvTaxPaid             = "taxPaid"
	EvCardDrawn           = "cardDrawn"
	EvCashAdjusted        = "cashAdjusted"
	EvBuildingChanged     = "buildingChanged"
	EvPropertyMortgaged   = "propertyMortgaged"
	EvPropertyUnmortgaged = "propertyUnmortgaged"
	EvTradeProposed       = "tradeProposed"
	EvTradeResolved       = "tradeResolved"
	EvSentToJail          = "sentToJail"
	EvJailReleased        = "jailReleased"
	EvBankruptcy          = "bankruptcy"
	EvTurnEnded           = "turnEnded"
	EvGameFinished        = "gameFinished"
)

// GameEvent is an append-only record of a domain occurrence. Consumers
// replay it for UI and audio cues; it is never an input to rule
// enforcement.
type GameEvent struct {
	ID        string                 `json:"id"`
	GameID    string                 `json:"gameId"`
	Type      string                 `json:"type"`
	Payload   map[string]interface{} `json:"payload,omitempty"`
	Timestamp int64                  `json:"timestamp"` // unix millis
}

// EventRecord is the postgres archive row for a finished game's log.
type EventRecord struct {
	tableName struct{} `pg:"game_events"`

	ID        string `pg:"id,pk"`
	GameID    string `pg:"game_id"`
	Type      string `pg:"type"`
	Payload   string `pg:"payload"`
	Timestamp int64  `pg:"timestamp"`
}
