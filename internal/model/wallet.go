package model

import "time"

// WalletTransactionType classifies a ledger entry.
type WalletTransactionType string

const (
	WalletTransactionCredit WalletTransactionType = "CREDIT"
	WalletTransactionDebit  WalletTransactionType = "DEBIT"
)

// Wallet is the user's balance. The balance is always server-computed;
// the client never derives it from the transaction list.
type Wallet struct {
	Balance  float64 `json:"balance"`
	Currency string  `json:"currency"`
}

// WalletTransaction is one entry in the append-only wallet ledger.
type WalletTransaction struct {
	ID          string                `json:"id"`
	Type        WalletTransactionType `json:"type"`
	Amount      float64               `json:"amount"`
	Description string                `json:"description"`
	BookingID   string                `json:"bookingId,omitempty"`
	CreatedAt   time.Time             `json:"createdAt"`
}

// TransactionPage is one page of the wallet ledger.
type TransactionPage struct {
	Transactions []WalletTransaction `json:"transactions"`
	Page         int                 `json:"page"`
	Total        int                 `json:"total"`
}
