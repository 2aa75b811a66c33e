package api

import (
	"context"

	"parcel/internal/model"
)

// PromoClient wraps the promo and referral endpoints.
type PromoClient struct {
	c *Client
}

// NewPromoClient creates a PromoClient.
func NewPromoClient(c *Client) *PromoClient {
	return &PromoClient{c: c}
}

// Validate checks a promo code against an order amount without applying it.
func (p *PromoClient) Validate(ctx context.Context, code string, amount float64) (model.PromoResult, error) {
	raw, err := p.c.post(ctx, "/promo/validate", map[string]any{
		"code":   code,
		"amount": amount,
	})
	if err != nil {
		return model.PromoResult{}, err
	}
	return unwrap[model.PromoResult](raw, ErrorOnNull, "Invalid promo code")
}

// Apply applies a promo code to a booking.
func (p *PromoClient) Apply(ctx context.Context, code, bookingID string) (model.PromoResult, error) {
	raw, err := p.c.post(ctx, "/promo/apply", map[string]string{
		"code":      code,
		"bookingId": bookingID,
	})
	if err != nil {
		return model.PromoResult{}, err
	}
	return unwrap[model.PromoResult](raw, ErrorOnNull, "Failed to apply promo code")
}

// Coupons fetches the coupons available to the user.
func (p *PromoClient) Coupons(ctx context.Context) ([]model.Coupon, error) {
	raw, err := p.c.get(ctx, "/promo/coupons", nil)
	if err != nil {
		return nil, err
	}
	return unwrap[[]model.Coupon](raw, EmptyOnNull, "Failed to load coupons")
}

// Referral fetches the user's referral code and reward state.
func (p *PromoClient) Referral(ctx context.Context) (model.ReferralInfo, error) {
	raw, err := p.c.get(ctx, "/promo/referral", nil)
	if err != nil {
		return model.ReferralInfo{}, err
	}
	return unwrap[model.ReferralInfo](raw, EmptyOnNull, "Failed to load referral info")
}

// ApplyReferral redeems another user's referral code.
func (p *PromoClient) ApplyReferral(ctx context.Context, code string) error {
	raw, err := p.c.post(ctx, "/promo/referral/apply", map[string]string{"code": code})
	if err != nil {
		return err
	}
	return unwrapNone(raw, "Invalid referral code")
}
