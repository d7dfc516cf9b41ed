package calculator

import (
	"math"
	"testing"
)

func TestSuggestTransfers(t *testing.T) {
	balances := []MemberBalance{
		{MemberID: "a", MemberName: "Alice", Balance: 60},
		{MemberID: "b", MemberName: "Bob", Balance: -20},
		{MemberID: "c", MemberName: "Charlie", Balance: -40},
	}

	transfers := SuggestTransfers(balances)
	if len(transfers) != 2 {
		t.Fatalf("got %d transfers, want 2: %+v", len(transfers), transfers)
	}

	// Largest debtor settles first
	if transfers[0].FromID != "c" || transfers[0].ToID != "a" || math.Abs(transfers[0].Amount-40) > 0.01 {
		t.Errorf("transfers[0] = %+v, want Charlie -> Alice 40", transfers[0])
	}
	if transfers[1].FromID != "b" || transfers[1].ToID != "a" || math.Abs(transfers[1].Amount-20) > 0.01 {
		t.Errorf("transfers[1] = %+v, want Bob -> Alice 20", transfers[1])
	}
}

func TestSuggestTransfers_SettlesEveryone(t *testing.T) {
	balances := []MemberBalance{
		{MemberID: "a", Balance: 33.34},
		{MemberID: "b", Balance: 16.66},
		{MemberID: "c", Balance: -25},
		{MemberID: "d", Balance: -25},
	}

	net := map[string]float64{}
	for _, b := range balances {
		net[b.MemberID] = b.Balance
	}
	for _, tr := range SuggestTransfers(balances) {
		net[tr.FromID] += tr.Amount
		net[tr.ToID] -= tr.Amount
	}
	for id, v := range net {
		if math.Abs(v) > 0.01 {
			t.Errorf("%s left with %v after transfers", id, v)
		}
	}
}

func TestSuggestTransfers_IgnoresNoise(t *testing.T) {
	balances := []MemberBalance{
		{MemberID: "a", Balance: 0.004},
		{MemberID: "b", Balance: -0.004},
	}
	if got := SuggestTransfers(balances); len(got) != 0 {
		t.Errorf("expected no transfers, got %+v", got)
	}
}

func TestEqualShare(t *testing.T) {
	if got := EqualShare(100, 3); math.Abs(got-33.333333) > 0.0001 {
		t.Errorf("EqualShare(100, 3) = %v", got)
	}
	if got := EqualShare(100, 0); got != 0 {
		t.Errorf("EqualShare(100, 0) = %v, want 0", got)
	}
}
