package api

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"

	"github.com/etnz/cryptofolio"
)

// HoldingsPage is one page of the holdings list together with the paging
// information the backend returned with it.
type HoldingsPage struct {
	Holdings   []cryptofolio.Holding
	Pagination cryptofolio.Pagination
}

// Holdings fetches one page of the holdings list. A record that fails to
// decode keeps its position in the page with its Fault set, so that one
// malformed row never takes the whole page down.
func (c *Client) Holdings(ctx context.Context, page, limit int) (*HoldingsPage, error) {
	query := url.Values{
		"page":  {strconv.Itoa(page)},
		"limit": {strconv.Itoa(limit)},
	}

	// rows are decoded one by one, tolerating malformed records
	var raw struct {
		Portfolios []json.RawMessage `json:"portfolios"`
		Total      int               `json:"total"`
		Page       int               `json:"page"`
		Limit      int               `json:"limit"`
		TotalPages int               `json:"totalPages"`
	}
	if err := c.do(ctx, http.MethodGet, "/portfolio", query, nil, &raw); err != nil {
		return nil, err
	}

	result := &HoldingsPage{
		Holdings: make([]cryptofolio.Holding, 0, len(raw.Portfolios)),
		Pagination: cryptofolio.Pagination{
			Total:      raw.Total,
			Page:       raw.Page,
			Limit:      raw.Limit,
			TotalPages: raw.TotalPages,
		},
	}
	for i, row := range raw.Portfolios {
		var h cryptofolio.Holding
		if err := json.Unmarshal(row, &h); err != nil {
			log.Printf("skipping malformed holding record %d: %v", i, err)
			h = cryptofolio.Holding{Fault: fmt.Sprintf("malformed record: %v", err)}
			// keep the id when it is readable, for display
			var ident struct {
				ID int64 `json:"id"`
			}
			if json.Unmarshal(row, &ident) == nil {
				h.ID = ident.ID
			}
		}
		result.Holdings = append(result.Holdings, h)
	}
	return result, nil
}

// CreateHolding records a new position and returns it as the backend
// stored it, with the server-assigned id and timestamps.
func (c *Client) CreateHolding(ctx context.Context, req cryptofolio.CreateHoldingRequest) (cryptofolio.Holding, error) {
	var h cryptofolio.Holding
	err := c.do(ctx, http.MethodPost, "/portfolio", nil, req, &h)
	return h, err
}

// UpdateHolding applies a partial update and returns the updated record.
func (c *Client) UpdateHolding(ctx context.Context, id int64, req cryptofolio.UpdateHoldingRequest) (cryptofolio.Holding, error) {
	var h cryptofolio.Holding
	err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/portfolio/%d", id), nil, req, &h)
	return h, err
}

// DeleteHolding removes a position.
func (c *Client) DeleteHolding(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/portfolio/%d", id), nil, nil, nil)
}
