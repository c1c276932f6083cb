package cryptofolio

// Quote is the live market statistics for one symbol.
type Quote struct {
	Price         Quantity `json:"price"`
	Change        Quantity `json:"change"`
	ChangePercent Quantity `json:"changePercent"`
	High          Quantity `json:"high"`
	Low           Quantity `json:"low"`
	Volume        Quantity `json:"volume"`
}

// Snapshot is the most recently polled set of live quotes, keyed by
// symbol. It is replaced wholesale on every refresh, never merged, so a
// symbol the backend stopped quoting is simply absent.
type Snapshot map[string]Quote

// Lookup returns the quote for a symbol and whether the snapshot has one.
func (s Snapshot) Lookup(symbol string) (Quote, bool) {
	q, ok := s[symbol]
	return q, ok
}

// Symbols returns the number of quoted symbols.
func (s Snapshot) Symbols() int { return len(s) }
