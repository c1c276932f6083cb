package cryptofolio

import "strings"

// Cryptocurrency is one catalog entry: a supported symbol and its latest
// market metadata. The catalog only feeds the symbol picker, valuation
// uses live snapshots instead.
type Cryptocurrency struct {
	ID            int64    `json:"id"`
	Symbol        string   `json:"symbol"`
	Name          string   `json:"name"`
	Price         Quantity `json:"price"`
	Change        Quantity `json:"change"`
	ChangePercent Quantity `json:"changePercent"`
	High          Quantity `json:"high"`
	Low           Quantity `json:"low"`
	Volume        Quantity `json:"volume"`
	LastUpdated   string   `json:"lastUpdated,omitempty"`
}

// Catalog is the list of cryptocurrencies the backend supports.
type Catalog []Cryptocurrency

// FindBySymbol returns the catalog entry matching the symbol exactly
// (case-insensitive), or false when the catalog has no such entry.
func (c Catalog) FindBySymbol(symbol string) (Cryptocurrency, bool) {
	for _, entry := range c {
		if strings.EqualFold(entry.Symbol, symbol) {
			return entry, true
		}
	}
	return Cryptocurrency{}, false
}

// Search returns the entries whose symbol or name contains the query,
// case-insensitive. An empty query returns the whole catalog.
func (c Catalog) Search(query string) Catalog {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return c
	}
	var out Catalog
	for _, entry := range c {
		if strings.Contains(strings.ToLower(entry.Symbol), query) ||
			strings.Contains(strings.ToLower(entry.Name), query) {
			out = append(out, entry)
		}
	}
	return out
}

// FallbackCatalog returns a fixed list of ten well-known symbols with
// zeroed market statistics. It stands in for the real catalog when the
// backend cannot serve one, so that recording a position never blocks on
// the picker.
func FallbackCatalog() Catalog {
	names := []struct{ symbol, name string }{
		{"BTC_THB", "Bitcoin (BTC)"},
		{"ETH_THB", "Ethereum (ETH)"},
		{"BNB_THB", "Binance Coin (BNB)"},
		{"ADA_THB", "Cardano (ADA)"},
		{"SOL_THB", "Solana (SOL)"},
		{"DOT_THB", "Polkadot (DOT)"},
		{"DOGE_THB", "Dogecoin (DOGE)"},
		{"AVAX_THB", "Avalanche (AVAX)"},
		{"MATIC_THB", "Polygon (MATIC)"},
		{"LINK_THB", "Chainlink (LINK)"},
	}
	catalog := make(Catalog, 0, len(names))
	for _, n := range names {
		catalog = append(catalog, Cryptocurrency{Symbol: n.symbol, Name: n.name})
	}
	return catalog
}
