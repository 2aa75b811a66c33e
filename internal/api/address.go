package api

import (
	"context"

	"parcel/internal/model"
)

// AddressClient wraps the saved-address endpoints.
type AddressClient struct {
	c *Client
}

// NewAddressClient creates an AddressClient.
func NewAddressClient(c *Client) *AddressClient {
	return &AddressClient{c: c}
}

// List fetches all saved addresses.
func (a *AddressClient) List(ctx context.Context) ([]model.Address, error) {
	raw, err := a.c.get(ctx, "/addresses", nil)
	if err != nil {
		return nil, err
	}
	return unwrap[[]model.Address](raw, EmptyOnNull, "Failed to load addresses")
}

// Create saves a new address and returns the stored copy.
func (a *AddressClient) Create(ctx context.Context, addr model.Address) (model.Address, error) {
	raw, err := a.c.post(ctx, "/addresses", addr)
	if err != nil {
		return model.Address{}, err
	}
	return unwrap[model.Address](raw, ErrorOnNull, "Failed to create address")
}

// Update replaces a saved address and returns the stored copy.
func (a *AddressClient) Update(ctx context.Context, addr model.Address) (model.Address, error) {
	raw, err := a.c.put(ctx, "/addresses/"+addr.ID, addr)
	if err != nil {
		return model.Address{}, err
	}
	return unwrap[model.Address](raw, ErrorOnNull, "Failed to update address")
}

// Delete removes a saved address.
func (a *AddressClient) Delete(ctx context.Context, id string) error {
	raw, err := a.c.delete(ctx, "/addresses/"+id)
	if err != nil {
		return err
	}
	return unwrapNone(raw, "Failed to delete address")
}
