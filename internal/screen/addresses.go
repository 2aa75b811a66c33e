package screen

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"parcel/internal/api"
	"parcel/internal/i18n"
	"parcel/internal/model"
	"parcel/internal/nav"
)

// AddressesController drives the saved places screens. Mutations re-fetch
// the list instead of patching it locally.
type AddressesController struct {
	addresses *api.AddressClient
	nav       *nav.Navigator
	strings   *i18n.Registry
	logger    *zap.Logger

	Addresses []model.Address
	ErrText   string
	Loading   bool
}

// NewAddressesController creates an AddressesController.
func NewAddressesController(addresses *api.AddressClient, n *nav.Navigator, reg *i18n.Registry, logger *zap.Logger) *AddressesController {
	return &AddressesController{addresses: addresses, nav: n, strings: reg, logger: logger}
}

// Load fetches the saved addresses.
func (c *AddressesController) Load(ctx context.Context) error {
	c.ErrText = ""
	c.Loading = true
	defer func() { c.Loading = false }()

	addresses, err := c.addresses.List(ctx)
	if err != nil {
		c.ErrText = errorText(c.strings.Current(), err)
		return err
	}
	c.Addresses = addresses
	return nil
}

// Save creates or updates an address, then re-fetches the list.
func (c *AddressesController) Save(ctx context.Context, addr model.Address) error {
	if strings.TrimSpace(addr.Label) == "" || strings.TrimSpace(addr.AddressLine) == "" {
		c.ErrText = c.strings.Current().UnexpectedError
		return ErrBlankField
	}

	c.ErrText = ""
	c.Loading = true
	defer func() { c.Loading = false }()

	var err error
	if addr.ID == "" {
		_, err = c.addresses.Create(ctx, addr)
	} else {
		_, err = c.addresses.Update(ctx, addr)
	}
	if err != nil {
		c.ErrText = errorText(c.strings.Current(), err)
		return err
	}
	return c.Load(ctx)
}

// Delete removes an address, then re-fetches the list.
func (c *AddressesController) Delete(ctx context.Context, id string) error {
	c.ErrText = ""
	c.Loading = true
	defer func() { c.Loading = false }()

	if err := c.addresses.Delete(ctx, id); err != nil {
		c.ErrText = errorText(c.strings.Current(), err)
		return err
	}
	return c.Load(ctx)
}

// Edit opens the edit screen for one address ("" for a new one).
func (c *AddressesController) Edit(id string) {
	c.nav.Navigate(nav.AddressEdit{AddressID: id})
}
