// Package cryptofolio provides the domain model for a cryptocurrency
// portfolio dashboard backed by a remote REST service. The service owns
// persistence, authentication and price aggregation; this package owns the
// client-side representation of that data and the arithmetic derived from
// it.
//
// The core functionalities include:
//   - Holdings: recorded positions (symbol, quantity, purchase date and
//     price) as served by the backend, with the validation applied before a
//     position is submitted.
//   - Price Snapshots: the latest polled set of live quotes, keyed by
//     symbol, replaced wholesale on every refresh.
//   - Valuation: pure computation combining holdings and a snapshot into
//     per-holding and aggregate figures (market value, cost basis, profit
//     and loss).
//   - Catalog: the list of cryptocurrencies the backend supports, used to
//     pick and normalize symbols when recording a position.
//
// This package serves as the foundational logic for the `cfo` command-line
// tool; the api, session and dashboard subpackages build the wire and
// state layers on top of it.
package cryptofolio
