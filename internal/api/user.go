package api

import (
	"context"

	"parcel/internal/model"
)

// UserClient wraps the profile endpoints.
type UserClient struct {
	c *Client
}

// NewUserClient creates a UserClient.
func NewUserClient(c *Client) *UserClient {
	return &UserClient{c: c}
}

// Profile fetches the authenticated user's profile.
func (u *UserClient) Profile(ctx context.Context) (model.User, error) {
	raw, err := u.c.get(ctx, "/users/me", nil)
	if err != nil {
		return model.User{}, err
	}
	return unwrap[model.User](raw, ErrorOnNull, "User not found")
}

// UpdateProfile updates the user's name, email and phone.
func (u *UserClient) UpdateProfile(ctx context.Context, name, email, phone string) (model.User, error) {
	raw, err := u.c.put(ctx, "/users/me", map[string]string{
		"name":  name,
		"email": email,
		"phone": phone,
	})
	if err != nil {
		return model.User{}, err
	}
	return unwrap[model.User](raw, ErrorOnNull, "Update failed")
}

// UpdateLanguage updates the user's language preference on the server.
// Local persistence of the code is the caller's concern.
func (u *UserClient) UpdateLanguage(ctx context.Context, code string) error {
	raw, err := u.c.put(ctx, "/users/me", map[string]string{"language": code})
	if err != nil {
		return err
	}
	return unwrapNone(raw, "Update failed")
}
