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

type watchCmd struct {
	interval time.Duration
	page     int
	limit    int
	currency string
}

func (*watchCmd) Name() string     { return "watch" }
func (*watchCmd) Synopsis() string { return "live dashboard, redrawn on every price refresh" }
func (*watchCmd) Usage() string {
	return `cfo watch [-i <interval>] [-page <n>] [-limit <n>] [-c <currency>]

  Displays the portfolio and redraws it every time the price feed refreshes.
  Prices keep their last known value when a refresh fails, with a warning.
  Stop with Ctrl-C.

Usage Examples:
$ cfo watch -i 10s
`
}

func (c *watchCmd) SetFlags(f *flag.FlagSet) {
	f.DurationVar(&c.interval, "i", dashboard.DefaultInterval, "Price refresh interval")
	f.IntVar(&c.page, "page", dashboard.DefaultPage, "Page of holdings to display")
	f.IntVar(&c.limit, "limit", dashboard.DefaultLimit, "Number of holdings per page")
	f.StringVar(&c.currency, "c", "USD", "Currency used to display values")
}

func (c *watchCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	feed := dashboard.NewPriceFeed(client, c.interval)
	stop := feed.Start(ctx)
	defer stop()

	for {
		select {
		case <-ctx.Done():
			return subcommands.ExitSuccess
		case <-feed.Updates():
			c.draw(store, feed)
		}
	}
}

func (c *watchCmd) draw(store *dashboard.HoldingsStore, feed *dashboard.PriceFeed) {
	report := cryptofolio.NewValuationReport(store.Holdings(), feed.Snapshot(), c.currency)
	lastUpdated, _ := feed.LastUpdated()

	var b strings.Builder
	b.WriteString(renderer.SummaryMarkdown(report, lastUpdated, feed.Warning()))
	b.WriteString("\n")
	b.WriteString(renderer.HoldingsMarkdown(report, store.Pagination()))

	// Clear the terminal and redraw in place.
	fmt.Print("\x1b[2J\x1b[H")
	printMarkdown(b.String())
}
