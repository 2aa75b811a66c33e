package api

import (
	"context"

	"parcel/internal/model"
)

// InvoiceClient wraps the invoice endpoints.
type InvoiceClient struct {
	c *Client
}

// NewInvoiceClient creates an InvoiceClient.
func NewInvoiceClient(c *Client) *InvoiceClient {
	return &InvoiceClient{c: c}
}

// Generate creates the invoice for a completed booking. Invoices are
// immutable; generating twice returns the same invoice.
func (i *InvoiceClient) Generate(ctx context.Context, bookingID string) (model.Invoice, error) {
	raw, err := i.c.post(ctx, "/invoices/"+bookingID, nil)
	if err != nil {
		return model.Invoice{}, err
	}
	return unwrap[model.Invoice](raw, ErrorOnNull, "Failed to generate invoice")
}

// Get fetches the invoice for a booking.
func (i *InvoiceClient) Get(ctx context.Context, bookingID string) (model.Invoice, error) {
	raw, err := i.c.get(ctx, "/invoices/"+bookingID, nil)
	if err != nil {
		return model.Invoice{}, err
	}
	return unwrap[model.Invoice](raw, ErrorOnNull, "Invoice not found")
}

// List fetches all of the user's invoices.
func (i *InvoiceClient) List(ctx context.Context) ([]model.Invoice, error) {
	raw, err := i.c.get(ctx, "/invoices", nil)
	if err != nil {
		return nil, err
	}
	return unwrap[[]model.Invoice](raw, EmptyOnNull, "Failed to load invoices")
}

// Detail fetches the invoice with its full line-item breakdown.
func (i *InvoiceClient) Detail(ctx context.Context, bookingID string) (model.Invoice, error) {
	raw, err := i.c.get(ctx, "/invoices/"+bookingID+"/detail", nil)
	if err != nil {
		return model.Invoice{}, err
	}
	return unwrap[model.Invoice](raw, ErrorOnNull, "Invoice not found")
}
