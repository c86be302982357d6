package models

// Trade statuses. Accepted and rejected are terminal; countered marks
// an offer that was superseded by a swapped counter-offer.
const (
	TradePending   = "pending"
	TradeAccepted  = "accepted"
	TradeRejected  = "rejected"
	TradeCountered = "countered"
)

type TradeOffer struct {
	ID                  string `json:"id"`
	ProposerID          string `json:"proposerId"`
	RecipientID         string `json:"recipientId"`
	OfferedProperties   []int  `json:"offeredProperties"`
	RequestedProperties []int  `json:"requestedProperties"`
	OfferedCash         int    `json:"offeredCash"`
	RequestedCash       int    `json:"requestedCash"`
	OfferedJailCards    int    `json:"offeredJailCards"`
	RequestedJailCards  int    `json:"requestedJailCards"`
	Status              string `json:"status"`
}
