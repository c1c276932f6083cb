// Package dashboard is the client-side state layer between the api client
// and the views: the mirrored holdings list and the periodic price feed.
// All reads are served from memory; every mutation waits for the backend's
// confirmation before the local state is touched.
package dashboard

import (
	"context"
	"errors"
	"log"

	"github.com/etnz/cryptofolio"
	"github.com/etnz/cryptofolio/api"
)

// paging defaults, the backend uses the same ones
const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// HoldingsStore mirrors one page of the server's holdings list. It is the
// only owner of that list: views read from it and route every mutation
// through it.
type HoldingsStore struct {
	client     *api.Client
	holdings   []cryptofolio.Holding
	pagination cryptofolio.Pagination
}

// NewHoldingsStore creates an empty store over the given client.
func NewHoldingsStore(client *api.Client) *HoldingsStore {
	return &HoldingsStore{client: client}
}

// Fetch replaces the whole local list and pagination state with the
// server's response. Non-positive page or limit fall back to the
// defaults. On failure the local state is left untouched.
func (s *HoldingsStore) Fetch(ctx context.Context, page, limit int) error {
	if page <= 0 {
		page = DefaultPage
	}
	if limit <= 0 {
		limit = DefaultLimit
	}
	result, err := s.client.Holdings(ctx, page, limit)
	if err != nil {
		return normalize(err, "failed to fetch holdings")
	}
	s.holdings = result.Holdings
	s.pagination = result.Pagination
	return nil
}

// Holdings returns the mirrored list in server order.
func (s *HoldingsStore) Holdings() []cryptofolio.Holding { return s.holdings }

// Pagination returns the paging state of the last fetch.
func (s *HoldingsStore) Pagination() cryptofolio.Pagination { return s.pagination }

// Find returns the mirrored holding with the given id.
func (s *HoldingsStore) Find(id int64) (cryptofolio.Holding, bool) {
	for _, h := range s.holdings {
		if h.ID == id {
			return h, true
		}
	}
	return cryptofolio.Holding{}, false
}

// Create submits a new position and, once the backend confirms it,
// prepends the stored record to the local list. There is no optimistic
// apply: a rejected create leaves the list untouched.
func (s *HoldingsStore) Create(ctx context.Context, req cryptofolio.CreateHoldingRequest) (cryptofolio.Holding, error) {
	if err := req.Validate(); err != nil {
		return cryptofolio.Holding{}, err
	}
	created, err := s.client.CreateHolding(ctx, req)
	if err != nil {
		return cryptofolio.Holding{}, normalize(err, "failed to create holding")
	}
	s.holdings = append([]cryptofolio.Holding{created}, s.holdings...)
	return created, nil
}

// Update submits a partial update and, once confirmed, replaces the
// matching local record by identity.
func (s *HoldingsStore) Update(ctx context.Context, id int64, req cryptofolio.UpdateHoldingRequest) (cryptofolio.Holding, error) {
	if err := req.Validate(); err != nil {
		return cryptofolio.Holding{}, err
	}
	updated, err := s.client.UpdateHolding(ctx, id, req)
	if err != nil {
		return cryptofolio.Holding{}, normalize(err, "failed to update holding")
	}
	for i := range s.holdings {
		if s.holdings[i].ID == id {
			s.holdings[i] = updated
			break
		}
	}
	return updated, nil
}

// Delete removes a position and, once confirmed, drops the matching local
// record, preserving the order of the others.
func (s *HoldingsStore) Delete(ctx context.Context, id int64) error {
	if err := s.client.DeleteHolding(ctx, id); err != nil {
		return normalize(err, "failed to delete holding")
	}
	kept := s.holdings[:0]
	for _, h := range s.holdings {
		if h.ID != id {
			kept = append(kept, h)
		}
	}
	s.holdings = kept
	return nil
}

// normalize keeps the backend's human-readable message when there is one
// and falls back to a generic message otherwise. The raw error is logged,
// never surfaced.
func normalize(err error, fallback string) error {
	var apiErr *api.Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr
	}
	log.Printf("%s: %v", fallback, err)
	return errors.New(fallback)
}
