package screen

import (
	"context"

	"go.uber.org/zap"

	"parcel/internal/api"
	"parcel/internal/i18n"
	"parcel/internal/model"
	"parcel/internal/nav"
)

// WalletController drives the wallet screen. The displayed balance is
// always the server-returned value; it is re-fetched on every entry to
// the screen and replaced wholesale after top-up and payment.
type WalletController struct {
	wallet  *api.WalletClient
	nav     *nav.Navigator
	strings *i18n.Registry
	logger  *zap.Logger

	Wallet       model.Wallet
	Transactions []model.WalletTransaction
	Page         int
	ErrText      string
	Loading      bool
}

// NewWalletController creates a WalletController.
func NewWalletController(wallet *api.WalletClient, n *nav.Navigator, reg *i18n.Registry, logger *zap.Logger) *WalletController {
	return &WalletController{wallet: wallet, nav: n, strings: reg, logger: logger}
}

// Refresh re-fetches the balance. Called on every screen entry.
func (c *WalletController) Refresh(ctx context.Context) error {
	c.ErrText = ""
	c.Loading = true
	defer func() { c.Loading = false }()

	wallet, err := c.wallet.Get(ctx)
	if err != nil {
		c.ErrText = errorText(c.strings.Current(), err)
		return err
	}
	c.Wallet = wallet
	return nil
}

// TopUp credits the wallet. The displayed balance becomes the server's
// value, never a locally computed old+amount.
func (c *WalletController) TopUp(ctx context.Context, amount float64) error {
	if amount <= 0 {
		c.ErrText = c.strings.Current().UnexpectedError
		return ErrInvalidAmount
	}

	c.ErrText = ""
	c.Loading = true
	defer func() { c.Loading = false }()

	wallet, err := c.wallet.TopUp(ctx, amount)
	if err != nil {
		c.ErrText = errorText(c.strings.Current(), err)
		return err
	}
	c.Wallet = wallet
	return nil
}

// Pay debits the wallet for a booking and moves to the payment success
// screen.
func (c *WalletController) Pay(ctx context.Context, bookingID string, amount float64) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}

	c.ErrText = ""
	c.Loading = true
	defer func() { c.Loading = false }()

	wallet, err := c.wallet.Pay(ctx, bookingID, amount)
	if err != nil {
		c.ErrText = errorText(c.strings.Current(), err)
		return err
	}
	c.Wallet = wallet
	c.nav.Navigate(nav.PaymentSuccess{BookingID: bookingID})
	return nil
}

// ViewShipment moves from payment success to live tracking, popping the
// in-between screens so back from tracking lands on Home.
func (c *WalletController) ViewShipment(bookingID string) {
	c.nav.Navigate(nav.TrackingLive{BookingID: bookingID}, nav.Options{PopUpTo: nav.NameHome})
}

// LoadTransactions fetches one page of the ledger.
func (c *WalletController) LoadTransactions(ctx context.Context, page, limit int) error {
	c.ErrText = ""
	res, err := c.wallet.Transactions(ctx, page, limit)
	if err != nil {
		c.ErrText = errorText(c.strings.Current(), err)
		return err
	}
	c.Transactions = res.Transactions
	c.Page = res.Page
	return nil
}
