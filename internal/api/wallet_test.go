package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestWalletTopUp_DisplaysServerBalance(t *testing.T) {
	t.Parallel()

	// The server applies fees and rounding; the returned balance is
	// authoritative and deliberately not amount + old balance.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req map[string]float64
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("failed to decode body: %v", err)
		}
		if req["amount"] != 500 {
			t.Errorf("expected amount 500, got %v", req["amount"])
		}
		w.Write([]byte(`{"success":true,"data":{"balance":1490.50,"currency":"INR"}}`))
	}))
	defer srv.Close()

	client := NewClient(Options{BaseURL: srv.URL})
	wallet, err := NewWalletClient(client).TopUp(context.Background(), 500)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if wallet.Balance != 1490.50 {
		t.Errorf("expected the server-computed balance 1490.50, got %v", wallet.Balance)
	}
	if wallet.Currency != "INR" {
		t.Errorf("expected currency INR, got %q", wallet.Currency)
	}
}

func TestWalletPay_InsufficientBalance(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":false,"message":"Insufficient balance"}`))
	}))
	defer srv.Close()

	client := NewClient(Options{BaseURL: srv.URL})
	_, err := NewWalletClient(client).Pay(context.Background(), "bk-1", 9999)
	if err == nil || err.Error() != "Insufficient balance" {
		t.Fatalf("expected the server's message, got %v", err)
	}
}

func TestWalletTransactions_PagingParams(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("page") != "2" || q.Get("limit") != "10" {
			t.Errorf("expected page=2 limit=10, got %s", r.URL.RawQuery)
		}
		w.Write([]byte(`{"success":true,"data":{"transactions":[{"id":"t1","type":"CREDIT","amount":100}],"total":21,"page":2}}`))
	}))
	defer srv.Close()

	client := NewClient(Options{BaseURL: srv.URL})
	page, err := NewWalletClient(client).Transactions(context.Background(), 2, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(page.Transactions) != 1 || page.Transactions[0].Amount != 100 {
		t.Errorf("unexpected page payload: %+v", page)
	}
}
