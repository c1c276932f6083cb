package dashboard

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path"
	"strconv"
	"testing"
	"time"

	"github.com/etnz/cryptofolio"
	"github.com/etnz/cryptofolio/api"
)

// fakeBackend is an in-memory rendition of the /portfolio endpoints.
type fakeBackend struct {
	holdings []cryptofolio.Holding
	nextID   int64
	failWith string // when set, every call answers 400 with this message
}

func (f *fakeBackend) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/portfolio", func(w http.ResponseWriter, r *http.Request) {
		if f.reject(w) {
			return
		}
		switch r.Method {
		case http.MethodGet:
			json.NewEncoder(w).Encode(map[string]any{
				"portfolios": f.holdings,
				"total":      len(f.holdings),
				"page":       1,
				"limit":      10,
				"totalPages": 1,
			})
		case http.MethodPost:
			var req cryptofolio.CreateHoldingRequest
			json.NewDecoder(r.Body).Decode(&req)
			f.nextID++
			h := cryptofolio.Holding{
				ID:            f.nextID,
				Symbol:        req.Symbol,
				Amount:        req.Amount,
				PurchaseDate:  req.PurchaseDate,
				PurchasePrice: req.PurchasePrice,
			}
			f.holdings = append(f.holdings, h)
			json.NewEncoder(w).Encode(h)
		}
	})
	mux.HandleFunc("/portfolio/", func(w http.ResponseWriter, r *http.Request) {
		if f.reject(w) {
			return
		}
		id, err := strconv.ParseInt(path.Base(r.URL.Path), 10, 64)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		for i, h := range f.holdings {
			if h.ID != id {
				continue
			}
			switch r.Method {
			case http.MethodPatch:
				var req cryptofolio.UpdateHoldingRequest
				json.NewDecoder(r.Body).Decode(&req)
				if req.Amount != nil {
					h.Amount = *req.Amount
				}
				if req.Symbol != nil {
					h.Symbol = *req.Symbol
				}
				if req.PurchaseDate != nil {
					h.PurchaseDate = *req.PurchaseDate
				}
				if req.PurchasePrice != nil {
					h.PurchasePrice = *req.PurchasePrice
				}
				f.holdings[i] = h
				json.NewEncoder(w).Encode(h)
			case http.MethodDelete:
				f.holdings = append(f.holdings[:i], f.holdings[i+1:]...)
				w.WriteHeader(http.StatusNoContent)
			}
			return
		}
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]any{"message": "Portfolio not found", "statusCode": 404})
	})
	return mux
}

func (f *fakeBackend) reject(w http.ResponseWriter) bool {
	if f.failWith == "" {
		return false
	}
	w.WriteHeader(http.StatusBadRequest)
	json.NewEncoder(w).Encode(map[string]any{"message": f.failWith, "statusCode": 400})
	return true
}

func newStore(t *testing.T, backend *fakeBackend) *HoldingsStore {
	t.Helper()
	srv := httptest.NewServer(backend.handler())
	t.Cleanup(srv.Close)
	client, err := api.New(srv.URL)
	if err != nil {
		t.Fatalf("api.New() error = %v", err)
	}
	return NewHoldingsStore(client)
}

func TestHoldingsStore_CreateThenFetchRoundTrip(t *testing.T) {
	store := newStore(t, &fakeBackend{})
	ctx := context.Background()

	req := cryptofolio.CreateHoldingRequest{
		Symbol:        "BTC_THB",
		Amount:        cryptofolio.Q(0.5),
		PurchaseDate:  cryptofolio.NewDate(2024, time.January, 1),
		PurchasePrice: cryptofolio.Q(40000),
	}
	created, err := store.Create(ctx, req)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if created.ID == 0 {
		t.Error("Create() returned no server-assigned id")
	}

	if err := store.Fetch(ctx, 0, 0); err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	holdings := store.Holdings()
	if len(holdings) != 1 {
		t.Fatalf("len(Holdings()) = %d, want 1", len(holdings))
	}
	h := holdings[0]
	if h.Symbol != "BTC_THB" || !h.Amount.Equal(cryptofolio.Q(0.5)) ||
		h.PurchaseDate != cryptofolio.NewDate(2024, time.January, 1) ||
		!h.PurchasePrice.Equal(cryptofolio.Q(40000)) {
		t.Errorf("round-tripped holding = %+v", h)
	}
}

func TestHoldingsStore_CreatePrepends(t *testing.T) {
	store := newStore(t, &fakeBackend{})
	ctx := context.Background()

	mk := func(symbol string) cryptofolio.CreateHoldingRequest {
		return cryptofolio.CreateHoldingRequest{
			Symbol:        symbol,
			Amount:        cryptofolio.Q(1),
			PurchaseDate:  cryptofolio.NewDate(2024, time.January, 1),
			PurchasePrice: cryptofolio.Q(100),
		}
	}
	if _, err := store.Create(ctx, mk("BTC_THB")); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if _, err := store.Create(ctx, mk("ETH_THB")); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	holdings := store.Holdings()
	if len(holdings) != 2 || holdings[0].Symbol != "ETH_THB" || holdings[1].Symbol != "BTC_THB" {
		t.Errorf("Holdings() order = %v, want newest first", symbols(holdings))
	}
}

func TestHoldingsStore_UpdateReplacesOnlyMatchingRecord(t *testing.T) {
	backend := &fakeBackend{}
	store := newStore(t, backend)
	ctx := context.Background()

	seed(t, store, "BTC_THB", "ETH_THB", "ADA_THB")

	amount := cryptofolio.Q(7)
	target := store.Holdings()[1]
	updated, err := store.Update(ctx, target.ID, cryptofolio.UpdateHoldingRequest{Amount: &amount})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if !updated.Amount.Equal(amount) {
		t.Errorf("Update() amount = %v, want 7", updated.Amount)
	}

	holdings := store.Holdings()
	if holdings[1].ID != target.ID || holdings[1].Symbol != target.Symbol ||
		holdings[1].PurchaseDate != target.PurchaseDate {
		t.Errorf("Update() changed identity fields: %+v", holdings[1])
	}
	if !holdings[1].Amount.Equal(amount) {
		t.Errorf("local record amount = %v, want 7", holdings[1].Amount)
	}
	for _, i := range []int{0, 2} {
		if !holdings[i].Amount.Equal(cryptofolio.Q(1)) {
			t.Errorf("unrelated record %d was touched: %+v", i, holdings[i])
		}
	}
}

func TestHoldingsStore_DeleteRemovesExactlyOne(t *testing.T) {
	store := newStore(t, &fakeBackend{})
	ctx := context.Background()

	seed(t, store, "BTC_THB", "ETH_THB", "ADA_THB")
	target := store.Holdings()[1]

	if err := store.Delete(ctx, target.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	got := symbols(store.Holdings())
	want := []string{"ADA_THB", "BTC_THB"}
	if len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("Holdings() after delete = %v, want %v", got, want)
	}
}

func TestHoldingsStore_MutationFailureLeavesStateUntouched(t *testing.T) {
	backend := &fakeBackend{}
	store := newStore(t, backend)
	ctx := context.Background()

	seed(t, store, "BTC_THB", "ETH_THB")
	before := symbols(store.Holdings())

	backend.failWith = "Amount exceeds exchange limit"

	_, err := store.Create(ctx, cryptofolio.CreateHoldingRequest{
		Symbol:        "SOL_THB",
		Amount:        cryptofolio.Q(1),
		PurchaseDate:  cryptofolio.NewDate(2024, time.January, 1),
		PurchasePrice: cryptofolio.Q(100),
	})
	if err == nil || err.Error() != "Amount exceeds exchange limit" {
		t.Errorf("Create() error = %v, want the backend message", err)
	}
	if err := store.Delete(ctx, store.Holdings()[0].ID); err == nil {
		t.Error("Delete() succeeded against a failing backend")
	}

	after := symbols(store.Holdings())
	if len(after) != len(before) || after[0] != before[0] || after[1] != before[1] {
		t.Errorf("local state changed on failure: %v -> %v", before, after)
	}
}

func TestHoldingsStore_NormalizesTransportErrors(t *testing.T) {
	client, err := api.New("http://127.0.0.1:1") // nothing listens there
	if err != nil {
		t.Fatalf("api.New() error = %v", err)
	}
	store := NewHoldingsStore(client)

	fetchErr := store.Fetch(context.Background(), 1, 10)
	if fetchErr == nil {
		t.Fatal("Fetch() succeeded against a dead backend")
	}
	if fetchErr.Error() != "failed to fetch holdings" {
		t.Errorf("Fetch() error = %q, want the generic fallback", fetchErr)
	}
}

func seed(t *testing.T, store *HoldingsStore, symbols ...string) {
	t.Helper()
	ctx := context.Background()
	for _, s := range symbols {
		_, err := store.Create(ctx, cryptofolio.CreateHoldingRequest{
			Symbol:        s,
			Amount:        cryptofolio.Q(1),
			PurchaseDate:  cryptofolio.NewDate(2024, time.January, 1),
			PurchasePrice: cryptofolio.Q(100),
		})
		if err != nil {
			t.Fatalf("seeding %s: %v", s, err)
		}
	}
}

func symbols(holdings []cryptofolio.Holding) []string {
	out := make([]string, 0, len(holdings))
	for _, h := range holdings {
		out = append(out, h.Symbol)
	}
	return out
}
