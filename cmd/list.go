package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/etnz/cryptofolio"
	"github.com/etnz/cryptofolio/dashboard"
	"github.com/etnz/cryptofolio/renderer"
	"github.com/google/subcommands"
)

type listCmd struct {
	page     int
	limit    int
	currency string
}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "display the portfolio valued at current prices" }
func (*listCmd) Usage() string {
	return `cfo list [-page <n>] [-limit <n>] [-c <currency>]

  Fetches your holdings and the latest prices, and displays the portfolio
  with current value and profit and loss per position. Holdings without a
  live quote are valued at their purchase price.

Usage Examples:
$ cfo list
$ cfo list -page 2 -limit 25
`
}

func (c *listCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.page, "page", dashboard.DefaultPage, "Page of holdings to display")
	f.IntVar(&c.limit, "limit", dashboard.DefaultLimit, "Number of holdings per page")
	f.StringVar(&c.currency, "c", "USD", "Currency used to display values")
}

func (c *listCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	_, client, err := RequireSession()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	store := dashboard.NewHoldingsStore(client)
	if err := store.Fetch(ctx, c.page, c.limit); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	// Prices are best effort: a dead price service must not hide the holdings.
	var warning string
	var lastUpdated time.Time
	snap, err := client.CurrentPrices(ctx)
	if err != nil {
		warning = "price service unavailable"
		snap = cryptofolio.Snapshot{}
	} else {
		lastUpdated = time.Now()
	}

	report := cryptofolio.NewValuationReport(store.Holdings(), snap, c.currency)

	var b strings.Builder
	b.WriteString(renderer.SummaryMarkdown(report, lastUpdated, warning))
	b.WriteString("\n")
	b.WriteString(renderer.HoldingsMarkdown(report, store.Pagination()))
	printMarkdown(b.String())
	return subcommands.ExitSuccess
}
