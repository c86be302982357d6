package models

// AuctionState exists only while an open-outcry auction is running.
// Eligible is fixed when the auction opens; Passed grows until the
// auction resolves.
type AuctionState struct {
	PropertyID   int      `json:"propertyId"`
	HighBid      int      `json:"highBid"`
	HighBidderID string   `json:"highBidderId"`
	Eligible     []string `json:"eligiblePlayers"`
	Passed       []string `json:"passedPlayers"`
}

// HasPassed reports whether the player already passed.
func (a *AuctionState) HasPassed(playerID string) bool {
	for _, id := range a.Passed {
		if id == playerID {
			return true
		}
	}
	return false
}

// IsEligible reports whether the player was in the game when the
// auction opened.
func (a *AuctionState) IsEligible(playerID string) bool {
	for _, id := range a.Eligible {
		if id == playerID {
			return true
		}
	}
	return false
}

// Remaining returns the eligible players who have not passed.
func (a *AuctionState) Remaining() []string {
	var out []string
	for _, id := range a.Eligible {
		if !a.HasPassed(id) {
			out = append(out, id)
		}
	}
	return out
}
