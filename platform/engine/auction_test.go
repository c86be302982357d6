package engine

import (
	"testing"
)

func TestAuction_soleBidderWinsBelowFaceValue(t *testing.T) {
	g := newTestState("p0", "p1", "p2")
	if gerr := startAuction(g, 3); gerr != nil {
		t.Fatal(gerr)
	}
	if len(g.Auction.Eligible) != 3 {
		t.Fatalf("all active players eligible, got %v", g.Auction.Eligible)
	}

	if gerr := placeBid(g, g.PlayerByID("p0"), 30); gerr != nil {
		t.Fatal(gerr)
	}
	if gerr := passBid(g, g.PlayerByID("p1")); gerr != nil {
		t.Fatal(gerr)
	}
	if auctionComplete(g.Auction) {
		t.Fatalf("two still in, not complete")
	}
	if gerr := passBid(g, g.PlayerByID("p2")); gerr != nil {
		t.Fatal(gerr)
	}
	if !auctionComplete(g.Auction) {
		t.Fatalf("sole remaining high bidder ends the auction")
	}
	if gerr := resolveAuction(g); gerr != nil {
		t.Fatal(gerr)
	}

	p0 := g.PlayerByID("p0")
	if !p0.OwnsProperty(3) {
		t.Errorf("winner should own Baltic")
	}
	if p0.Cash != 1470 {
		t.Errorf("winner pays their bid, not face value: cash %d", p0.Cash)
	}
	if g.Auction != nil {
		t.Errorf("auction should be torn down")
	}
}

func TestAuction_allPassLeavesUnowned(t *testing.T) {
	g := newTestState("p0", "p1")
	if gerr := startAuction(g, 39); gerr != nil {
		t.Fatal(gerr)
	}
	passBid(g, g.PlayerByID("p0"))
	passBid(g, g.PlayerByID("p1"))
	if !auctionComplete(g.Auction) {
		t.Fatalf("everyone passed")
	}
	if gerr := resolveAuction(g); gerr != nil {
		t.Fatal(gerr)
	}
	if g.OwnerOf(39) != nil {
		t.Errorf("no-bid auction leaves the property unowned")
	}
	if g.PlayerByID("p0").Cash != 1500 || g.PlayerByID("p1").Cash != 1500 {
		t.Errorf("nobody pays")
	}
}

func TestAuction_bidRules(t *testing.T) {
	g := newTestState("p0", "p1")
	startAuction(g, 3)

	if gerr := placeBid(g, g.PlayerByID("p0"), 0); gerr == nil || gerr.Code != CodeAuctionRuleViolation {
		t.Errorf("zero bid must fail: %v", gerr)
	}
	placeBid(g, g.PlayerByID("p0"), 40)
	if gerr := placeBid(g, g.PlayerByID("p1"), 40); gerr == nil || gerr.Code != CodeAuctionRuleViolation {
		t.Errorf("equal bid must fail: %v", gerr)
	}
	g.PlayerByID("p1").Cash = 30
	if gerr := placeBid(g, g.PlayerByID("p1"), 50); gerr == nil || gerr.Code != CodeInsufficientFunds {
		t.Errorf("unaffordable bid: %v", gerr)
	}

	passBid(g, g.PlayerByID("p1"))
	if gerr := passBid(g, g.PlayerByID("p1")); gerr != nil {
		t.Errorf("passing twice is a no-op: %v", gerr)
	}
	if gerr := placeBid(g, g.PlayerByID("p1"), 60); gerr == nil || gerr.Code != CodeAuctionRuleViolation {
		t.Errorf("passed players cannot bid: %v", gerr)
	}
}

func TestAuction_bankruptPlayersNotEligible(t *testing.T) {
	g := newTestState("p0", "p1", "p2")
	g.PlayerByID("p2").IsBankrupt = true
	g.PlayerByID("p2").IsActive = false

	startAuction(g, 3)
	if len(g.Auction.Eligible) != 2 {
		t.Errorf("bankrupt seats sit out: %v", g.Auction.Eligible)
	}
	if gerr := placeBid(g, g.PlayerByID("p2"), 10); gerr == nil || gerr.Code != CodeAuctionRuleViolation {
		t.Errorf("ineligible bid: %v", gerr)
	}
}
