package engine

// ActionType names a player intent.
type ActionType string

const (
	ActionRollDice          ActionType = "rollDice"
	ActionRollForDoubles    ActionType = "rollForDoubles"
	ActionBuyProperty       ActionType = "buyProperty"
	ActionDeclineProperty   ActionType = "declineProperty"
	ActionAuctionBid        ActionType = "auctionBid"
	ActionAuctionPass       ActionType = "auctionPass"
	ActionBuildHouse        ActionType = "buildHouse"
	ActionBuildHotel        ActionType = "buildHotel"
	ActionSellBuilding      ActionType = "sellBuilding"
	ActionMortgage          ActionType = "mortgageProperty"
	ActionUnmortgage        ActionType = "unmortgageProperty"
	ActionProposeTrade      ActionType = "proposeTrade"
	ActionAcceptTrade       ActionType = "acceptTrade"
	ActionRejectTrade       ActionType = "rejectTrade"
	ActionCounterTrade      ActionType = "counterTrade"
	ActionPayJailFine       ActionType = "payJailFine"
	ActionUseJailCard       ActionType = "useJailCard"
	ActionDeclareBankruptcy ActionType = "declareBankruptcy"
	ActionEndTurn           ActionType = "endTurn"
)

// TradeProposal carries the terms of a proposed or counter trade.
type TradeProposal struct {
	RecipientID         string `json:"recipientId"`
	OfferedProperties   []int  `json:"offeredProperties"`
	RequestedProperties []int  `json:"requestedProperties"`
	OfferedCash         int    `json:"offeredCash"`
	RequestedCash       int    `json:"requestedCash"`
	OfferedJailCards    int    `json:"offeredJailCards"`
	RequestedJailCards  int    `json:"requestedJailCards"`
}

// Action is one intent from one player. Only the fields relevant to
// the Type are read.
type Action struct {
	Type       ActionType     `json:"type"`
	SpaceID    int            `json:"spaceId,omitempty"`
	Amount     int            `json:"amount,omitempty"`
	TradeID    string         `json:"tradeId,omitempty"`
	Trade      *TradeProposal `json:"trade,omitempty"`
	CreditorID string         `json:"creditorId,omitempty"` // empty means the bank
}

// turnExclusive actions may only come from the current player. Auction
// bids and trade responses legitimately come from other seats.
var turnExclusive = map[ActionType]bool{
	ActionRollDice:          true,
	ActionRollForDoubles:    true,
	ActionBuyProperty:       true,
	ActionDeclineProperty:   true,
	ActionEndTurn:           true,
	ActionPayJailFine:       true,
	ActionUseJailCard:       true,
	ActionDeclareBankruptcy: true,
}
