package screen

import (
	"context"

	"go.uber.org/zap"

	"parcel/internal/api"
	"parcel/internal/i18n"
	"parcel/internal/model"
)

// InvoiceController drives the invoice screens.
type InvoiceController struct {
	invoices *api.InvoiceClient
	strings  *i18n.Registry
	logger   *zap.Logger

	Invoice  model.Invoice
	Invoices []model.Invoice
	ErrText  string
	Loading  bool
}

// NewInvoiceController creates an InvoiceController.
func NewInvoiceController(invoices *api.InvoiceClient, reg *i18n.Registry, logger *zap.Logger) *InvoiceController {
	return &InvoiceController{invoices: invoices, strings: reg, logger: logger}
}

// Load generates (idempotently) and fetches the invoice for a booking
// with its full breakdown.
func (c *InvoiceController) Load(ctx context.Context, bookingID string) error {
	c.ErrText = ""
	c.Loading = true
	defer func() { c.Loading = false }()

	if _, err := c.invoices.Generate(ctx, bookingID); err != nil {
		c.ErrText = errorText(c.strings.Current(), err)
		return err
	}
	invoice, err := c.invoices.Detail(ctx, bookingID)
	if err != nil {
		c.ErrText = errorText(c.strings.Current(), err)
		return err
	}
	c.Invoice = invoice
	return nil
}

// LoadAll fetches the invoice list.
func (c *InvoiceController) LoadAll(ctx context.Context) error {
	c.ErrText = ""
	c.Loading = true
	defer func() { c.Loading = false }()

	invoices, err := c.invoices.List(ctx)
	if err != nil {
		c.ErrText = errorText(c.strings.Current(), err)
		return err
	}
	c.Invoices = invoices
	return nil
}
