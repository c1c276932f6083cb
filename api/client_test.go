package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/etnz/cryptofolio"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	c, err := New(srv.URL)
	if err != nil {
		t.Fatalf("New(%q) error = %v", srv.URL, err)
	}
	return c
}

func TestClient_AttachesBearerToken(t *testing.T) {
	var got string
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}))
	c.SetToken("tok-123")

	if _, err := c.CurrentPrices(context.Background()); err != nil {
		t.Fatalf("CurrentPrices() error = %v", err)
	}
	if got != "Bearer tok-123" {
		t.Errorf("Authorization = %q, want %q", got, "Bearer tok-123")
	}
}

func TestClient_NoAuthorizationHeaderWhenLoggedOut(t *testing.T) {
	var got string
	var present bool
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, present = r.Header.Get("Authorization"), r.Header.Get("Authorization") != ""
		w.Write([]byte(`{}`))
	}))

	if _, err := c.CurrentPrices(context.Background()); err != nil {
		t.Fatalf("CurrentPrices() error = %v", err)
	}
	if present {
		t.Errorf("Authorization = %q, want no header", got)
	}
}

func TestClient_UnauthorizedInvokesHookAndClearsToken(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"Unauthorized","statusCode":401}`))
	}))
	c.SetToken("stale")

	hooked := false
	c.OnUnauthorized(func() { hooked = true })

	_, err := c.Holdings(context.Background(), 1, 10)
	if err == nil {
		t.Fatal("Holdings() succeeded on a 401")
	}
	if !IsUnauthorized(err) {
		t.Errorf("IsUnauthorized(%v) = false, want true", err)
	}
	if !hooked {
		t.Error("OnUnauthorized hook was not invoked")
	}
	if c.Token() != "" {
		t.Errorf("Token() = %q, want cleared", c.Token())
	}
}

func TestClient_ErrorPayloads(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		message string
	}{
		{"plain message", http.StatusBadRequest, `{"message":"amount must be positive","statusCode":400}`, "amount must be positive"},
		{"validation array", http.StatusBadRequest, `{"message":["amount must be positive","purchaseDate required"],"statusCode":400}`, "amount must be positive; purchaseDate required"},
		{"no payload", http.StatusInternalServerError, `boom`, "Internal Server Error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			_, err := c.CreateHolding(context.Background(), cryptofolio.CreateHoldingRequest{})
			if err == nil {
				t.Fatal("CreateHolding() succeeded on an error response")
			}
			apiErr, ok := err.(*Error)
			if !ok {
				t.Fatalf("error type = %T, want *Error", err)
			}
			if apiErr.Message != tt.message {
				t.Errorf("Message = %q, want %q", apiErr.Message, tt.message)
			}
			if apiErr.StatusCode != tt.status {
				t.Errorf("StatusCode = %d, want %d", apiErr.StatusCode, tt.status)
			}
		})
	}
}

func TestClient_HoldingsToleratesMalformedRow(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/portfolio" {
			t.Errorf("path = %q, want /portfolio", r.URL.Path)
		}
		if r.URL.Query().Get("page") != "2" || r.URL.Query().Get("limit") != "5" {
			t.Errorf("query = %q, want page=2&limit=5", r.URL.RawQuery)
		}
		w.Write([]byte(`{
			"portfolios": [
				{"id":1,"cryptocurrencyType":"BTC_THB","amount":"0.5","purchaseDate":"2024-01-01","purchasePrice":40000},
				{"id":2,"cryptocurrencyType":"ETH_THB","amount":"not a number","purchaseDate":"2024-01-01","purchasePrice":1},
				{"id":3,"cryptocurrencyType":"ADA_THB","amount":10,"purchaseDate":"2024-02-01","purchasePrice":12}
			],
			"total": 3, "page": 2, "limit": 5, "totalPages": 1
		}`))
	}))

	page, err := c.Holdings(context.Background(), 2, 5)
	if err != nil {
		t.Fatalf("Holdings() error = %v", err)
	}
	if len(page.Holdings) != 3 {
		t.Fatalf("len(Holdings) = %d, want 3", len(page.Holdings))
	}
	if err := page.Holdings[0].Check(); err != nil {
		t.Errorf("row 0 Check() = %v, want nil", err)
	}
	if err := page.Holdings[1].Check(); err == nil {
		t.Error("row 1 Check() = nil, want the decode fault")
	}
	if page.Holdings[1].ID != 2 {
		t.Errorf("faulty row keeps its id = %d, want 2", page.Holdings[1].ID)
	}
	if err := page.Holdings[2].Check(); err != nil {
		t.Errorf("row 2 Check() = %v, want nil", err)
	}
	want := cryptofolio.Pagination{Total: 3, Page: 2, Limit: 5, TotalPages: 1}
	if page.Pagination != want {
		t.Errorf("Pagination = %+v, want %+v", page.Pagination, want)
	}
}

func TestClient_Login(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/auth/login" {
			t.Errorf("call = %s %s, want POST /auth/login", r.Method, r.URL.Path)
		}
		w.Write([]byte(`{"access_token":"tok","user":{"id":1,"email":"a@b.c","firstName":"Ada","lastName":"L"}}`))
	}))
	resp, err := c.Login(context.Background(), LoginRequest{Email: "a@b.c", Password: "pw"})
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if resp.AccessToken != "tok" || resp.User.Email != "a@b.c" {
		t.Errorf("Login() = %+v", resp)
	}
}
