package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/cryptofolio"
	"github.com/etnz/cryptofolio/api"
	"github.com/etnz/cryptofolio/dashboard"
	"github.com/google/subcommands"
)

// resolveSymbol maps a user-typed symbol onto its canonical catalog entry
// ("btc_thb" becomes "BTC_THB"). Unknown symbols pass through unchanged, the
// backend is the authority on what trades.
func resolveSymbol(catalog cryptofolio.Catalog, symbol string) string {
	if entry, ok := catalog.FindBySymbol(symbol); ok {
		return entry.Symbol
	}
	return symbol
}

// fetchCatalog returns the backend catalog, or the built-in fallback when the
// backend cannot serve one.
func fetchCatalog(ctx context.Context, client *api.Client) cryptofolio.Catalog {
	catalog, err := client.Cryptocurrencies(ctx)
	if err != nil || len(catalog) == 0 {
		return cryptofolio.FallbackCatalog()
	}
	return catalog
}

type addCmd struct {
	symbol string
	amount string
	date   string
	price  string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "record a new holding in the portfolio" }
func (*addCmd) Usage() string {
	return `cfo add -s <symbol> -a <amount> -p <purchase_price> [-d <purchase_date>]

  Records a new holding. The purchase date defaults to today and accepts the
  same relative forms as everywhere else (-1d, -2w, 2025-07-01).

Usage Examples:
# Bought 0.5 BTC at 45000 a week ago.
$ cfo add -s BTC_THB -a 0.5 -p 45000 -d -1w
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.symbol, "s", "", "Symbol of the cryptocurrency (e.g. BTC_THB)")
	f.StringVar(&c.amount, "a", "", "Amount purchased")
	f.StringVar(&c.price, "p", "", "Purchase price per unit")
	f.StringVar(&c.date, "d", "0d", "Purchase date (defaults to today)")
}

func (c *addCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	_, client, err := RequireSession()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	amount, err := cryptofolio.ParseQuantity(c.amount)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid amount %q: %v\n", c.amount, err)
		return subcommands.ExitUsageError
	}
	price, err := cryptofolio.ParseQuantity(c.price)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid price %q: %v\n", c.price, err)
		return subcommands.ExitUsageError
	}
	date, err := cryptofolio.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid date %q: %v\n", c.date, err)
		return subcommands.ExitUsageError
	}

	req := cryptofolio.CreateHoldingRequest{
		Symbol:        resolveSymbol(fetchCatalog(ctx, client), c.symbol),
		Amount:        amount,
		PurchasePrice: price,
		PurchaseDate:  date,
	}
	store := dashboard.NewHoldingsStore(client)
	holding, err := store.Create(ctx, req)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Recorded holding %d: %s %s at %s on %s\n",
		holding.ID, holding.Amount, holding.Symbol, holding.PurchasePrice, holding.PurchaseDate)
	return subcommands.ExitSuccess
}

type updateCmd struct {
	id     int64
	symbol string
	amount string
	date   string
	price  string
}

func (*updateCmd) Name() string     { return "update" }
func (*updateCmd) Synopsis() string { return "change fields of an existing holding" }
func (*updateCmd) Usage() string {
	return `cfo update -id <id> [-s <symbol>] [-a <amount>] [-p <price>] [-d <date>]

  Updates only the fields given on the command line, the others keep their
  current value.

Usage Examples:
# Fix the amount of holding 7.
$ cfo update -id 7 -a 0.75
`
}

func (c *updateCmd) SetFlags(f *flag.FlagSet) {
	f.Int64Var(&c.id, "id", 0, "Identifier of the holding to update")
	f.StringVar(&c.symbol, "s", "", "New symbol")
	f.StringVar(&c.amount, "a", "", "New amount")
	f.StringVar(&c.price, "p", "", "New purchase price per unit")
	f.StringVar(&c.date, "d", "", "New purchase date")
}

// request assembles the partial update from the flags that were set.
func (c *updateCmd) request(catalog cryptofolio.Catalog) (cryptofolio.UpdateHoldingRequest, error) {
	var req cryptofolio.UpdateHoldingRequest
	if c.symbol != "" {
		symbol := resolveSymbol(catalog, c.symbol)
		req.Symbol = &symbol
	}
	if c.amount != "" {
		amount, err := cryptofolio.ParseQuantity(c.amount)
		if err != nil {
			return req, fmt.Errorf("invalid amount %q: %w", c.amount, err)
		}
		req.Amount = &amount
	}
	if c.price != "" {
		price, err := cryptofolio.ParseQuantity(c.price)
		if err != nil {
			return req, fmt.Errorf("invalid price %q: %w", c.price, err)
		}
		req.PurchasePrice = &price
	}
	if c.date != "" {
		date, err := cryptofolio.ParseDate(c.date)
		if err != nil {
			return req, fmt.Errorf("invalid date %q: %w", c.date, err)
		}
		req.PurchaseDate = &date
	}
	return req, nil
}

func (c *updateCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == 0 {
		fmt.Fprintln(os.Stderr, "Error: -id is required")
		return subcommands.ExitUsageError
	}
	_, client, err := RequireSession()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	req, err := c.request(fetchCatalog(ctx, client))
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	if req.IsEmpty() {
		fmt.Fprintln(os.Stderr, "Error: nothing to update, give at least one of -s -a -p -d")
		return subcommands.ExitUsageError
	}

	store := dashboard.NewHoldingsStore(client)
	holding, err := store.Update(ctx, c.id, req)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Updated holding %d: %s %s at %s on %s\n",
		holding.ID, holding.Amount, holding.Symbol, holding.PurchasePrice, holding.PurchaseDate)
	return subcommands.ExitSuccess
}

type deleteCmd struct {
	id  int64
	yes bool
}

func (*deleteCmd) Name() string     { return "delete" }
func (*deleteCmd) Synopsis() string { return "remove a holding from the portfolio" }
func (*deleteCmd) Usage() string {
	return `cfo delete -id <id> [-y]

  Removes a holding. Asks for confirmation unless -y is given.
`
}

func (c *deleteCmd) SetFlags(f *flag.FlagSet) {
	f.Int64Var(&c.id, "id", 0, "Identifier of the holding to delete")
	f.BoolVar(&c.yes, "y", false, "Do not ask for confirmation")
}

func (c *deleteCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == 0 {
		fmt.Fprintln(os.Stderr, "Error: -id is required")
		return subcommands.ExitUsageError
	}
	_, client, err := RequireSession()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	store := dashboard.NewHoldingsStore(client)
	if !c.yes {
		prompt := fmt.Sprintf("Delete holding %d?", c.id)
		if err := store.Fetch(ctx, dashboard.DefaultPage, dashboard.DefaultLimit); err == nil {
			if h, ok := store.Find(c.id); ok {
				prompt = fmt.Sprintf("Delete holding %d (%s %s)?", h.ID, h.Amount, h.Symbol)
			}
		}
		if !confirm(prompt) {
			fmt.Println("Aborted.")
			return subcommands.ExitSuccess
		}
	}

	if err := store.Delete(ctx, c.id); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Deleted holding %d.\n", c.id)
	return subcommands.ExitSuccess
}
