package screen

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"parcel/internal/api"
	"parcel/internal/i18n"
	"parcel/internal/model"
)

// PromoController drives the coupons and referral screen.
type PromoController struct {
	promos  *api.PromoClient
	strings *i18n.Registry
	logger  *zap.Logger

	Coupons  []model.Coupon
	Referral model.ReferralInfo
	ErrText  string
	Loading  bool
}

// NewPromoController creates a PromoController.
func NewPromoController(promos *api.PromoClient, reg *i18n.Registry, logger *zap.Logger) *PromoController {
	return &PromoController{promos: promos, strings: reg, logger: logger}
}

// Load fetches the available coupons and the referral state.
func (c *PromoController) Load(ctx context.Context) error {
	c.ErrText = ""
	c.Loading = true
	defer func() { c.Loading = false }()

	coupons, err := c.promos.Coupons(ctx)
	if err != nil {
		c.ErrText = errorText(c.strings.Current(), err)
		return err
	}
	c.Coupons = coupons

	referral, err := c.promos.Referral(ctx)
	if err != nil {
		c.ErrText = errorText(c.strings.Current(), err)
		return err
	}
	c.Referral = referral
	return nil
}

// RedeemReferral applies another user's referral code.
func (c *PromoController) RedeemReferral(ctx context.Context, code string) error {
	code = strings.TrimSpace(code)
	if code == "" {
		return ErrBlankField
	}

	c.ErrText = ""
	if err := c.promos.ApplyReferral(ctx, code); err != nil {
		c.ErrText = errorText(c.strings.Current(), err)
		return err
	}
	return nil
}
