package renderer

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/etnz/cryptofolio"
)

// PricesMarkdown renders the latest snapshot as a table, sorted by
// symbol for a stable display across refreshes.
func PricesMarkdown(snap cryptofolio.Snapshot, lastUpdated time.Time, warning string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Live Prices\n\n")

	if warning != "" {
		fmt.Fprintf(&b, "> ⚠ %s — showing the last known prices.\n\n", warning)
	}
	if snap.Symbols() == 0 {
		fmt.Fprintln(&b, "No prices received yet.")
		return b.String()
	}

	symbols := make([]string, 0, snap.Symbols())
	for symbol := range snap {
		symbols = append(symbols, symbol)
	}
	sort.Strings(symbols)

	fmt.Fprintln(&b, "| Symbol | Price | Change | Change % | High | Low | Volume |")
	fmt.Fprintln(&b, "|:---|---:|---:|---:|---:|---:|---:|")
	for _, symbol := range symbols {
		q := snap[symbol]
		fmt.Fprintf(&b, "| %s | %s | %s | %s%% | %s | %s | %s |\n",
			symbol, q.Price, q.Change, q.ChangePercent, q.High, q.Low, q.Volume)
	}

	if !lastUpdated.IsZero() {
		fmt.Fprintf(&b, "\nas of %s\n", lastUpdated.Format("15:04:05"))
	}
	return b.String()
}
