package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/cryptofolio"
	"github.com/etnz/cryptofolio/dashboard"
	"github.com/etnz/cryptofolio/renderer"
	"github.com/google/subcommands"
	"google.golang.org/genai"
)

type assistCmd struct {
	model    string
	currency string
}

func (*assistCmd) Name() string     { return "assist" }
func (*assistCmd) Synopsis() string { return "ask Gemini to comment on the portfolio" }
func (*assistCmd) Usage() string {
	return `cfo assist [question]

  Sends the current portfolio valuation to Gemini and prints its commentary.
  An optional question focuses the answer. Requires a GEMINI_API_KEY in the
  environment.

Usage Examples:
$ cfo assist which position drags my performance down?
`
}

func (c *assistCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.model, "model", "gemini-2.5-flash", "Gemini model to use")
	f.StringVar(&c.currency, "c", "USD", "Currency used to display values")
}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	_, client, err := RequireSession()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	store := dashboard.NewHoldingsStore(client)
	if err := store.Fetch(ctx, dashboard.DefaultPage, dashboard.DefaultLimit); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	snap, err := client.CurrentPrices(ctx)
	if err != nil {
		snap = cryptofolio.Snapshot{}
	}
	report := cryptofolio.NewValuationReport(store.Holdings(), snap, c.currency)

	var prompt strings.Builder
	prompt.WriteString("You are a sober portfolio analyst. Comment briefly on this crypto portfolio: ")
	prompt.WriteString("concentration, positions at a loss, anything notable. No investment advice.\n\n")
	prompt.WriteString(renderer.HoldingsMarkdown(report, cryptofolio.Pagination{}))
	if f.NArg() > 0 {
		prompt.WriteString("\nQuestion: ")
		prompt.WriteString(strings.Join(f.Args(), " "))
	}

	ai, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}
	resp, err := ai.Models.GenerateContent(ctx, c.model, genai.Text(prompt.String()), nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error from Gemini:", err)
		return subcommands.ExitFailure
	}
	printMarkdown(resp.Text())
	return subcommands.ExitSuccess
}
