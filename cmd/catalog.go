package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/cryptofolio/renderer"
	"github.com/google/subcommands"
)

type catalogCmd struct {
	query string
}

func (*catalogCmd) Name() string     { return "catalog" }
func (*catalogCmd) Synopsis() string { return "browse the cryptocurrency catalog" }
func (*catalogCmd) Usage() string {
	return `cfo catalog [-q <query>]

  Displays the cryptocurrencies the backend knows about, with market stats
  where available. When the backend cannot serve the catalog, a built-in
  list of common symbols is shown instead.

Usage Examples:
$ cfo catalog -q bitcoin
`
}

func (c *catalogCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.query, "q", "", "Filter entries by symbol or name")
}

func (c *catalogCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	_, client, err := RequireSession()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	catalog := fetchCatalog(ctx, client)
	if c.query != "" {
		catalog = catalog.Search(c.query)
	}
	printMarkdown(renderer.CatalogMarkdown(catalog))
	return subcommands.ExitSuccess
}

type seedCmd struct{}

func (*seedCmd) Name() string     { return "seed" }
func (*seedCmd) Synopsis() string { return "ask the backend to seed its cryptocurrency catalog" }
func (*seedCmd) Usage() string {
	return `cfo seed

  Asks the backend to populate its cryptocurrency catalog from its market
  data source. Useful on a fresh backend whose catalog is empty.
`
}
func (c *seedCmd) SetFlags(f *flag.FlagSet) {}

func (c *seedCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	_, client, err := RequireSession()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	if err := client.SeedCryptocurrencies(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	fmt.Println("Catalog seeded.")
	return subcommands.ExitSuccess
}

type clearCacheCmd struct{}

func (*clearCacheCmd) Name() string     { return "clear-cache" }
func (*clearCacheCmd) Synopsis() string { return "clear the backend price cache" }
func (*clearCacheCmd) Usage() string {
	return `cfo clear-cache

  Clears the backend's cached market prices, forcing the next fetch to hit
  the upstream market data source.
`
}
func (c *clearCacheCmd) SetFlags(f *flag.FlagSet) {}

func (c *clearCacheCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	_, client, err := RequireSession()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	if err := client.ClearPriceCache(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	fmt.Println("Price cache cleared.")
	return subcommands.ExitSuccess
}
