package cryptofolio

import (
	"errors"
	"fmt"
	"strings"
)

// Holding is one recorded cryptocurrency position, exactly as the backend
// serves it. The backend owns the record; this side only mirrors it.
type Holding struct {
	ID            int64    `json:"id"`
	Symbol        string   `json:"cryptocurrencyType"`
	Amount        Quantity `json:"amount"`
	PurchaseDate  Date     `json:"purchaseDate"`
	PurchasePrice Quantity `json:"purchasePrice"`
	CreatedAt     string   `json:"createdAt,omitempty"`
	UpdatedAt     string   `json:"updatedAt,omitempty"`

	// Fault is set by the api layer when the record could not be decoded
	// from the backend response. A faulty record keeps its place in the
	// list but is excluded from valuation.
	Fault string `json:"-"`
}

// Check reports whether the record is well formed enough to be valued and
// rendered. A record that fails the check is shown as a faulty row, it
// must not take the rest of the table down with it.
func (h Holding) Check() error {
	if h.Fault != "" {
		return errors.New(h.Fault)
	}
	if strings.TrimSpace(h.Symbol) == "" {
		return errors.New("missing cryptocurrency symbol")
	}
	if h.Amount.IsNegative() {
		return fmt.Errorf("negative amount %s", h.Amount)
	}
	if h.PurchasePrice.IsNegative() {
		return fmt.Errorf("negative purchase price %s", h.PurchasePrice)
	}
	return nil
}

// CreateHoldingRequest is the payload to record a new position.
type CreateHoldingRequest struct {
	Symbol        string   `json:"cryptocurrencyType"`
	Amount        Quantity `json:"amount"`
	PurchaseDate  Date     `json:"purchaseDate"`
	PurchasePrice Quantity `json:"purchasePrice"`
}

// Validate applies the client-side rules before the request is submitted:
// non-empty symbol, positive amount and price, and a purchase date that is
// not in the future.
func (r CreateHoldingRequest) Validate() error {
	if strings.TrimSpace(r.Symbol) == "" {
		return errors.New("select a cryptocurrency")
	}
	if !r.Amount.IsPositive() {
		return fmt.Errorf("amount must be a positive number, got %s", r.Amount)
	}
	if !r.PurchasePrice.IsPositive() {
		return fmt.Errorf("purchase price must be a positive number, got %s", r.PurchasePrice)
	}
	if r.PurchaseDate.IsZero() {
		return errors.New("select a purchase date")
	}
	if r.PurchaseDate.After(Today()) {
		return fmt.Errorf("purchase date %s is in the future", r.PurchaseDate)
	}
	return nil
}

// UpdateHoldingRequest is a partial update: nil fields are left untouched
// by the backend.
type UpdateHoldingRequest struct {
	Symbol        *string   `json:"cryptocurrencyType,omitempty"`
	Amount        *Quantity `json:"amount,omitempty"`
	PurchaseDate  *Date     `json:"purchaseDate,omitempty"`
	PurchasePrice *Quantity `json:"purchasePrice,omitempty"`
}

// IsEmpty reports whether the update carries no field at all.
func (r UpdateHoldingRequest) IsEmpty() bool {
	return r.Symbol == nil && r.Amount == nil && r.PurchaseDate == nil && r.PurchasePrice == nil
}

// Validate applies the same rules as CreateHoldingRequest, but only on the
// fields the update actually carries.
func (r UpdateHoldingRequest) Validate() error {
	if r.IsEmpty() {
		return errors.New("nothing to update")
	}
	if r.Symbol != nil && strings.TrimSpace(*r.Symbol) == "" {
		return errors.New("cryptocurrency symbol cannot be blank")
	}
	if r.Amount != nil && !r.Amount.IsPositive() {
		return fmt.Errorf("amount must be a positive number, got %s", r.Amount)
	}
	if r.PurchasePrice != nil && !r.PurchasePrice.IsPositive() {
		return fmt.Errorf("purchase price must be a positive number, got %s", r.PurchasePrice)
	}
	if r.PurchaseDate != nil && r.PurchaseDate.After(Today()) {
		return fmt.Errorf("purchase date %s is in the future", r.PurchaseDate)
	}
	return nil
}

// Pagination mirrors the paging information the backend returns alongside
// a holdings page.
type Pagination struct {
	Total      int `json:"total"`
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalPages int `json:"totalPages"`
}
