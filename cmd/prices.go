package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/etnz/cryptofolio/renderer"
	"github.com/google/subcommands"
)

type pricesCmd struct{}

func (*pricesCmd) Name() string     { return "prices" }
func (*pricesCmd) Synopsis() string { return "display the current price of every tracked symbol" }
func (*pricesCmd) Usage() string {
	return `cfo prices

  Fetches and displays the current market snapshot: price, daily change,
  high, low and volume per symbol.
`
}
func (c *pricesCmd) SetFlags(f *flag.FlagSet) {}

func (c *pricesCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	_, client, err := RequireSession()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	snap, err := client.CurrentPrices(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.PricesMarkdown(snap, time.Now(), ""))
	return subcommands.ExitSuccess
}

type priceCmd struct{}

func (*priceCmd) Name() string     { return "price" }
func (*priceCmd) Synopsis() string { return "display the current price of one symbol" }
func (*priceCmd) Usage() string {
	return `cfo price <symbol>

Usage Examples:
$ cfo price BTC_THB
`
}
func (c *priceCmd) SetFlags(f *flag.FlagSet) {}

func (c *priceCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one symbol expected")
		return subcommands.ExitUsageError
	}
	_, client, err := RequireSession()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	price, err := client.Price(ctx, f.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("%s: %s\n", price.Symbol, price.Price)
	return subcommands.ExitSuccess
}

type symbolsCmd struct{}

func (*symbolsCmd) Name() string     { return "symbols" }
func (*symbolsCmd) Synopsis() string { return "list the symbols the price service tracks" }
func (*symbolsCmd) Usage() string    { return "cfo symbols\n" }

func (*symbolsCmd) SetFlags(f *flag.FlagSet) {}

func (c *symbolsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	_, client, err := RequireSession()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	symbols, err := client.AvailableSymbols(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.SymbolsMarkdown(symbols))
	return subcommands.ExitSuccess
}
