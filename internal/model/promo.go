package model

import "time"

// Coupon is a promo code visible to the user.
type Coupon struct {
	Code        string    `json:"code"`
	Description string    `json:"description"`
	DiscountPct float64   `json:"discountPct"`
	MaxDiscount float64   `json:"maxDiscount"`
	ExpiresAt   time.Time `json:"expiresAt"`
}

// PromoResult is the payload of a promo validate/apply call.
type PromoResult struct {
	Code     string  `json:"code"`
	Discount float64 `json:"discount"`
	NewTotal float64 `json:"newTotal"`
}

// ReferralInfo is the user's referral code and accrued reward.
type ReferralInfo struct {
	Code         string  `json:"code"`
	Referred     int     `json:"referred"`
	RewardEarned float64 `json:"rewardEarned"`
}
