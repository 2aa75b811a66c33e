package screen

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"parcel/internal/api"
	"parcel/internal/i18n"
	"parcel/internal/nav"
)

// AuthController drives the login and register screens: validate the
// form, request an OTP, and move to the code entry screen.
type AuthController struct {
	auth    *api.AuthClient
	nav     *nav.Navigator
	strings *i18n.Registry
	logger  *zap.Logger

	// Inline error text, cleared on each submit.
	ErrText string
	Loading bool
}

// NewAuthController creates an AuthController.
func NewAuthController(auth *api.AuthClient, n *nav.Navigator, reg *i18n.Registry, logger *zap.Logger) *AuthController {
	return &AuthController{auth: auth, nav: n, strings: reg, logger: logger}
}

// SubmitLogin validates the email and requests a login OTP. On success
// navigation moves forward to the OTP screen in login mode.
func (c *AuthController) SubmitLogin(ctx context.Context, email string) error {
	return c.submit(ctx, email, "login", "")
}

// SubmitRegister validates the signup form and requests a signup OTP. The
// name travels to the OTP screen so verification can create the account.
func (c *AuthController) SubmitRegister(ctx context.Context, name, email string) error {
	if strings.TrimSpace(name) == "" {
		c.ErrText = c.strings.Current().NameRequired
		return ErrNameRequired
	}
	return c.submit(ctx, email, "signup", strings.TrimSpace(name))
}

func (c *AuthController) submit(ctx context.Context, email, mode, name string) error {
	s := c.strings.Current()
	email = strings.TrimSpace(email)
	if !validEmail(email) {
		c.ErrText = s.InvalidEmail
		return ErrInvalidEmail
	}

	c.ErrText = ""
	c.Loading = true
	defer func() { c.Loading = false }()

	if _, err := c.auth.SendOTP(ctx, email, mode); err != nil {
		c.ErrText = errorText(s, err)
		return err
	}

	c.nav.Navigate(nav.OTP{Email: email, Mode: mode, SignupName: name})
	return nil
}

// OTPController drives the code entry screen.
type OTPController struct {
	auth    *api.AuthClient
	nav     *nav.Navigator
	strings *i18n.Registry
	logger  *zap.Logger

	Route   nav.OTP
	ErrText string
	Loading bool
}

// NewOTPController creates an OTPController for the given route.
func NewOTPController(auth *api.AuthClient, n *nav.Navigator, reg *i18n.Registry, logger *zap.Logger, route nav.OTP) *OTPController {
	return &OTPController{auth: auth, nav: n, strings: reg, logger: logger, Route: route}
}

// Verify checks the code shape, exchanges it for a session, and lands on
// Home (signup mode passes through the onboarding screen first). The
// back stack is replaced wholesale: whatever auth route the flow started
// from (Splash on a cold start, Login after a logout), back can never
// return to it.
func (c *OTPController) Verify(ctx context.Context, code string) error {
	s := c.strings.Current()
	if !validOTP(code) {
		c.ErrText = s.InvalidOTP
		return ErrInvalidOTP
	}

	c.ErrText = ""
	c.Loading = true
	defer func() { c.Loading = false }()

	res, err := c.auth.VerifyOTP(ctx, c.Route.Email, code, c.Route.Mode, c.Route.SignupName)
	if err != nil {
		c.ErrText = errorText(s, err)
		return err
	}

	c.logger.Info("session established", zap.String("user", res.User.ID))

	if c.Route.Mode == "signup" {
		c.nav.Reset(nav.ReadyToBook{})
	} else {
		c.nav.Reset(nav.Home{})
	}
	return nil
}

// Resend requests a fresh code for the same email and mode.
func (c *OTPController) Resend(ctx context.Context) error {
	s := c.strings.Current()
	if _, err := c.auth.SendOTP(ctx, c.Route.Email, c.Route.Mode); err != nil {
		c.ErrText = errorText(s, err)
		return err
	}
	return nil
}
