package cryptofolio

// This file is the pure derivation layer: it combines a holdings list and
// a price snapshot into per-holding and aggregate figures. No side
// effects, no network, so the dashboard can recompute it on every tick.

// CurrentUnitPrice returns the live unit price for the holding's symbol,
// falling back to the purchase price when the snapshot has no usable
// quote. A missing or zeroed quote means "assume no change", stale data is
// preferred over no data.
func CurrentUnitPrice(h Holding, snap Snapshot) Quantity {
	if q, ok := snap.Lookup(h.Symbol); ok && !q.Price.IsZero() {
		return q.Price
	}
	return h.PurchasePrice
}

// CurrentValue returns the holding's market value in the reporting
// currency: amount times the current unit price.
func CurrentValue(h Holding, snap Snapshot, currency string) Money {
	return M(CurrentUnitPrice(h, snap).value, currency).Mul(h.Amount)
}

// CostBasis returns amount times the purchase-time unit price.
func CostBasis(h Holding, currency string) Money {
	return M(h.PurchasePrice.value, currency).Mul(h.Amount)
}

// ProfitAndLoss returns current value minus cost basis.
func ProfitAndLoss(h Holding, snap Snapshot, currency string) Money {
	return CurrentValue(h, snap, currency).Sub(CostBasis(h, currency))
}

// HoldingValuation is one row of the valuation report.
type HoldingValuation struct {
	Holding   Holding
	UnitCost  Money // purchase-time unit price
	UnitPrice Money
	Value     Money
	Cost      Money
	PnL       Money
	PnLPct    Percent
	Live      bool  // true when the unit price comes from the snapshot
	Err       error // non-nil for a malformed record, excluded from totals
}

// ValuationReport aggregates a holdings list against one snapshot.
type ValuationReport struct {
	Currency   string
	Rows       []HoldingValuation
	TotalValue Money
	TotalCost  Money
	TotalPnL   Money
	TotalPct   Percent
}

// NewValuationReport values every holding against the snapshot and sums
// the well-formed ones. Malformed records are kept as faulty rows so the
// caller can render them in place, but they never contribute to totals.
// The aggregate P&L percentage is 0 when the total cost basis is 0.
func NewValuationReport(holdings []Holding, snap Snapshot, currency string) *ValuationReport {
	report := &ValuationReport{
		Currency:   currency,
		TotalValue: M(0, currency),
		TotalCost:  M(0, currency),
	}
	for _, h := range holdings {
		if err := h.Check(); err != nil {
			report.Rows = append(report.Rows, HoldingValuation{Holding: h, Err: err})
			continue
		}
		_, live := snap.Lookup(h.Symbol)
		row := HoldingValuation{
			Holding:   h,
			UnitCost:  M(h.PurchasePrice.value, currency),
			UnitPrice: M(CurrentUnitPrice(h, snap).value, currency),
			Value:     CurrentValue(h, snap, currency),
			Cost:      CostBasis(h, currency),
			PnL:       ProfitAndLoss(h, snap, currency),
			Live:      live,
		}
		row.PnLPct = row.PnL.Percent(row.Cost)
		report.Rows = append(report.Rows, row)
		report.TotalValue = report.TotalValue.Add(row.Value)
		report.TotalCost = report.TotalCost.Add(row.Cost)
	}
	report.TotalPnL = report.TotalValue.Sub(report.TotalCost)
	report.TotalPct = report.TotalPnL.Percent(report.TotalCost)
	return report
}

// Holdings returns the number of well-formed rows in the report.
func (r *ValuationReport) Holdings() int {
	n := 0
	for _, row := range r.Rows {
		if row.Err == nil {
			n++
		}
	}
	return n
}
