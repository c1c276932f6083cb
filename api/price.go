package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/etnz/cryptofolio"
)

// CurrentPrices fetches the latest quote for every symbol the backend
// tracks. The result replaces any previous snapshot wholesale.
func (c *Client) CurrentPrices(ctx context.Context) (cryptofolio.Snapshot, error) {
	snap := make(cryptofolio.Snapshot)
	err := c.do(ctx, http.MethodGet, "/price/current", nil, nil, &snap)
	return snap, err
}

// AvailableSymbols fetches the list of symbols the backend supports.
func (c *Client) AvailableSymbols(ctx context.Context) ([]string, error) {
	var symbols []string
	err := c.do(ctx, http.MethodGet, "/price/symbols", nil, nil, &symbols)
	return symbols, err
}

// Cryptocurrencies fetches the full catalog with metadata.
func (c *Client) Cryptocurrencies(ctx context.Context) (cryptofolio.Catalog, error) {
	var catalog cryptofolio.Catalog
	err := c.do(ctx, http.MethodGet, "/price/cryptocurrencies", nil, nil, &catalog)
	return catalog, err
}

// SymbolPrice is the single-symbol price payload.
type SymbolPrice struct {
	Symbol string               `json:"symbol"`
	Price  cryptofolio.Quantity `json:"price"`
}

// Price fetches the current price of a single symbol.
func (c *Client) Price(ctx context.Context, symbol string) (SymbolPrice, error) {
	var p SymbolPrice
	err := c.do(ctx, http.MethodGet, "/price/"+url.PathEscape(symbol), nil, nil, &p)
	return p, err
}

// ClearPriceCache asks the backend to drop its price cache.
// Administrative.
func (c *Client) ClearPriceCache(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/price/clear-cache", nil, nil, nil)
}

// SeedCryptocurrencies asks the backend to seed its catalog.
// Administrative.
func (c *Client) SeedCryptocurrencies(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/price/seed", nil, nil, nil)
}
