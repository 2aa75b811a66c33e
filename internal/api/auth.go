package api

import (
	"context"

	"parcel/internal/model"
)

// SessionWriter persists session state. VerifyOTP writes through it on
// success; this is the one place an API client mutates local state,
// because the token must be stored before the next request goes out.
type SessionWriter interface {
	SetToken(token string) error
	SetLanguage(code string) error
}

// AuthClient wraps the auth endpoints.
type AuthClient struct {
	c       *Client
	session SessionWriter
}

// NewAuthClient creates an AuthClient writing session state through w.
func NewAuthClient(c *Client, w SessionWriter) *AuthClient {
	return &AuthClient{c: c, session: w}
}

// SendOTP requests a one-time code for the given email. Mode is "login"
// or "signup".
func (a *AuthClient) SendOTP(ctx context.Context, email, mode string) (model.OTPResult, error) {
	raw, err := a.c.post(ctx, "/auth/send-otp", map[string]string{
		"email": email,
		"mode":  mode,
	})
	if err != nil {
		return model.OTPResult{}, err
	}
	return unwrap[model.OTPResult](raw, EmptyOnNull, "Failed to send OTP")
}

// VerifyOTP exchanges the one-time code for a session token. On success
// the token and the user's language preference are persisted before
// returning.
func (a *AuthClient) VerifyOTP(ctx context.Context, email, otp, mode, name string) (model.AuthResult, error) {
	raw, err := a.c.post(ctx, "/auth/verify-otp", map[string]string{
		"email": email,
		"otp":   otp,
		"mode":  mode,
		"name":  name,
	})
	if err != nil {
		return model.AuthResult{}, err
	}

	res, err := unwrap[model.AuthResult](raw, ErrorOnNull, "Verification failed")
	if err != nil {
		return model.AuthResult{}, err
	}

	if err := a.session.SetToken(res.Token); err != nil {
		return model.AuthResult{}, err
	}
	if res.User.Language != "" {
		if err := a.session.SetLanguage(res.User.Language); err != nil {
			return model.AuthResult{}, err
		}
	}
	return res, nil
}
