package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/cryptofolio"
)

// CatalogMarkdown renders the list of supported cryptocurrencies. Entries
// from the offline fallback list carry zeroed market statistics, those
// render as placeholders rather than zero prices.
func CatalogMarkdown(catalog cryptofolio.Catalog) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Cryptocurrencies\n\n")

	if len(catalog) == 0 {
		fmt.Fprintln(&b, "The catalog is empty. Seed it with `cfo seed`.")
		return b.String()
	}

	fmt.Fprintln(&b, "| Symbol | Name | Price | Change % | High | Low |")
	fmt.Fprintln(&b, "|:---|:---|---:|---:|---:|---:|")
	for _, entry := range catalog {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s |\n",
			entry.Symbol,
			entry.Name,
			orPlaceholder(entry.Price.String(), entry.Price.IsZero()),
			orPlaceholder(entry.ChangePercent.String()+"%", entry.Price.IsZero() && entry.ChangePercent.IsZero()),
			orPlaceholder(entry.High.String(), entry.High.IsZero()),
			orPlaceholder(entry.Low.String(), entry.Low.IsZero()),
		)
	}
	return b.String()
}

// SymbolsMarkdown renders the plain list of supported symbols.
func SymbolsMarkdown(symbols []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Supported Symbols\n\n")
	for _, s := range symbols {
		fmt.Fprintf(&b, "- %s\n", s)
	}
	if len(symbols) == 0 {
		fmt.Fprintln(&b, "none")
	}
	return b.String()
}
