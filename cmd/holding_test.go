package cmd

import (
	"testing"

	"github.com/etnz/cryptofolio"
)

func TestResolveSymbol(t *testing.T) {
	catalog := cryptofolio.FallbackCatalog()

	tests := []struct {
		in   string
		want string
	}{
		{"BTC_THB", "BTC_THB"},
		{"btc_thb", "BTC_THB"}, // case folded onto the catalog entry
		{"ShytCoin", "ShytCoin"},
	}
	for _, tt := range tests {
		if got := resolveSymbol(catalog, tt.in); got != tt.want {
			t.Errorf("resolveSymbol(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestUpdateRequestFromFlags(t *testing.T) {
	catalog := cryptofolio.FallbackCatalog()

	c := &updateCmd{id: 7, amount: "0.75", symbol: "eth_thb"}
	req, err := c.request(catalog)
	if err != nil {
		t.Fatalf("request() failed: %v", err)
	}
	if req.IsEmpty() {
		t.Fatal("request() returned an empty update")
	}
	if req.Symbol == nil || *req.Symbol != "ETH_THB" {
		t.Errorf("Symbol = %v, want ETH_THB", req.Symbol)
	}
	if req.Amount == nil || !req.Amount.Equal(cryptofolio.Q(0.75)) {
		t.Errorf("Amount = %v, want 0.75", req.Amount)
	}
	if req.PurchasePrice != nil || req.PurchaseDate != nil {
		t.Error("unset flags must stay nil in the update request")
	}

	c = &updateCmd{id: 7, amount: "a lot"}
	if _, err := c.request(catalog); err == nil {
		t.Error("request() accepted an unparsable amount")
	}

	c = &updateCmd{id: 7}
	req, err = c.request(catalog)
	if err != nil {
		t.Fatalf("request() failed: %v", err)
	}
	if !req.IsEmpty() {
		t.Error("request() without flags must be empty")
	}
}
