package api

import (
	"context"
	"net/url"
	"strconv"

	"parcel/internal/model"
)

// WalletClient wraps the wallet endpoints. The balance is always the
// server-returned value; the client never computes it locally.
type WalletClient struct {
	c *Client
}

// NewWalletClient creates a WalletClient.
func NewWalletClient(c *Client) *WalletClient {
	return &WalletClient{c: c}
}

// Get fetches the wallet balance.
func (w *WalletClient) Get(ctx context.Context) (model.Wallet, error) {
	raw, err := w.c.get(ctx, "/wallet", nil)
	if err != nil {
		return model.Wallet{}, err
	}
	return unwrap[model.Wallet](raw, EmptyOnNull, "Failed to load wallet")
}

// TopUp credits the wallet and returns the new server-computed balance.
func (w *WalletClient) TopUp(ctx context.Context, amount float64) (model.Wallet, error) {
	raw, err := w.c.post(ctx, "/wallet/topup", map[string]float64{"amount": amount})
	if err != nil {
		return model.Wallet{}, err
	}
	return unwrap[model.Wallet](raw, ErrorOnNull, "Top-up failed")
}

// Pay debits the wallet for a booking and returns the new balance.
func (w *WalletClient) Pay(ctx context.Context, bookingID string, amount float64) (model.Wallet, error) {
	raw, err := w.c.post(ctx, "/wallet/pay", map[string]any{
		"bookingId": bookingID,
		"amount":    amount,
	})
	if err != nil {
		return model.Wallet{}, err
	}
	return unwrap[model.Wallet](raw, ErrorOnNull, "Payment failed")
}

// Transactions fetches one page of the wallet ledger.
func (w *WalletClient) Transactions(ctx context.Context, page, limit int) (model.TransactionPage, error) {
	raw, err := w.c.get(ctx, "/wallet/transactions", url.Values{
		"page":  {strconv.Itoa(page)},
		"limit": {strconv.Itoa(limit)},
	})
	if err != nil {
		return model.TransactionPage{}, err
	}
	return unwrap[model.TransactionPage](raw, EmptyOnNull, "Failed to load transactions")
}
