package screen

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"parcel/internal/api"
	"parcel/internal/i18n"
	"parcel/internal/model"
	"parcel/internal/nav"
	"parcel/internal/storage"
)

// ProfileController drives the account screen: profile edit, language
// selection and logout.
type ProfileController struct {
	users   *api.UserClient
	store   *storage.Store
	nav     *nav.Navigator
	strings *i18n.Registry
	logger  *zap.Logger

	User    model.User
	ErrText string
	Loading bool
}

// NewProfileController creates a ProfileController.
func NewProfileController(users *api.UserClient, store *storage.Store, n *nav.Navigator, reg *i18n.Registry, logger *zap.Logger) *ProfileController {
	return &ProfileController{users: users, store: store, nav: n, strings: reg, logger: logger}
}

// Load fetches the profile.
func (c *ProfileController) Load(ctx context.Context) error {
	c.ErrText = ""
	c.Loading = true
	defer func() { c.Loading = false }()

	user, err := c.users.Profile(ctx)
	if err != nil {
		c.ErrText = errorText(c.strings.Current(), err)
		return err
	}
	c.User = user
	return nil
}

// Save updates the profile fields.
func (c *ProfileController) Save(ctx context.Context, name, email, phone string) error {
	if strings.TrimSpace(name) == "" {
		c.ErrText = c.strings.Current().NameRequired
		return ErrNameRequired
	}
	if !validEmail(strings.TrimSpace(email)) {
		c.ErrText = c.strings.Current().InvalidEmail
		return ErrInvalidEmail
	}

	c.ErrText = ""
	c.Loading = true
	defer func() { c.Loading = false }()

	user, err := c.users.UpdateProfile(ctx, strings.TrimSpace(name), strings.TrimSpace(email), strings.TrimSpace(phone))
	if err != nil {
		c.ErrText = errorText(c.strings.Current(), err)
		return err
	}
	c.User = user
	return nil
}

// ChangeLanguage updates the preference on the server, persists the code
// locally, and swaps the process-wide string catalog so every mounted
// screen re-renders in the new language.
func (c *ProfileController) ChangeLanguage(ctx context.Context, code string) error {
	c.ErrText = ""
	if err := c.users.UpdateLanguage(ctx, code); err != nil {
		c.ErrText = errorText(c.strings.Current(), err)
		return err
	}
	if err := c.store.SetLanguage(code); err != nil {
		return err
	}
	c.strings.SetLanguage(code)
	return nil
}

// Logout clears the session and restarts navigation at the login screen;
// the whole back stack is discarded so back cannot re-enter the app.
func (c *ProfileController) Logout() error {
	if err := c.store.ClearToken(); err != nil {
		return err
	}
	c.logger.Info("logged out")
	c.nav.Reset(nav.Login{})
	return nil
}

// OpenAddresses opens the saved places screen.
func (c *ProfileController) OpenAddresses() {
	c.nav.Navigate(nav.Addresses{})
}
