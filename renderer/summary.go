package renderer

import (
	"fmt"
	"strings"
	"time"

	"github.com/etnz/cryptofolio"
)

// SummaryMarkdown renders the aggregate cards of the dashboard: total
// market value, total investment, and total profit and loss.
func SummaryMarkdown(report *cryptofolio.ValuationReport, lastUpdated time.Time, warning string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Portfolio Overview\n\n")

	if warning != "" {
		fmt.Fprintf(&b, "> ⚠ %s — showing the last known prices.\n\n", warning)
	}

	n := report.Holdings()
	plural := "holdings"
	if n == 1 {
		plural = "holding"
	}

	fmt.Fprintln(&b, "| Total Value | Total Investment | Total P&L | P&L % |")
	fmt.Fprintln(&b, "|---:|---:|---:|---:|")
	fmt.Fprintf(&b, "| %s | %s | %s | %s |\n",
		report.TotalValue,
		report.TotalCost,
		report.TotalPnL.SignedString(),
		report.TotalPct.SignedString(),
	)
	fmt.Fprintf(&b, "\n%d %s", n, plural)
	if !lastUpdated.IsZero() {
		fmt.Fprintf(&b, " · prices as of %s", lastUpdated.Format("15:04:05"))
	}
	fmt.Fprintln(&b)
	return b.String()
}
