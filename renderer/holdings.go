package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/cryptofolio"
)

// HoldingsMarkdown renders the holdings table of a valuation report. A
// malformed record renders as an inline error row; the others are not
// affected.
func HoldingsMarkdown(report *cryptofolio.ValuationReport, pagination cryptofolio.Pagination) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Holdings\n\n")

	if len(report.Rows) == 0 {
		fmt.Fprintln(&b, "No holdings yet. Record one with `cfo add`.")
		return b.String()
	}

	fmt.Fprintln(&b, "| ID | Asset | Amount | Purchase Date | Purchase Price | Current Price | Value | P&L | P&L % |")
	fmt.Fprintln(&b, "|---:|:---|---:|:---|---:|---:|---:|---:|---:|")
	for _, row := range report.Rows {
		if row.Err != nil {
			fmt.Fprintf(&b, "| %d | ⚠ %v | %s | %s | %s | %s | %s | %s | %s |\n",
				row.Holding.ID, row.Err,
				placeholder, placeholder, placeholder, placeholder, placeholder, placeholder, placeholder)
			continue
		}
		h := row.Holding
		live := ""
		if !row.Live {
			live = " *" // valued at purchase price, no live quote
		}
		fmt.Fprintf(&b, "| %d | %s | %s | %s | %s | %s%s | %s | %s | %s |\n",
			h.ID,
			h.Symbol,
			h.Amount,
			h.PurchaseDate,
			row.UnitCost,
			row.UnitPrice, live,
			row.Value,
			row.PnL.SignedString(),
			row.PnLPct.SignedString(),
		)
	}

	if pagination.TotalPages > 1 {
		fmt.Fprintf(&b, "\nPage %d of %d (%d holdings in total)\n",
			pagination.Page, pagination.TotalPages, pagination.Total)
	}
	for _, row := range report.Rows {
		if row.Err == nil && !row.Live {
			fmt.Fprintln(&b, "\n\\* no live quote, valued at purchase price")
			break
		}
	}
	return b.String()
}
