package model

// User is the authenticated customer's profile as returned by the backend.
type User struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Language string `json:"language"`
}

// OTPResult is the payload of a send-otp call.
type OTPResult struct {
	Email     string `json:"email"`
	ExpiresIn int    `json:"expiresIn"`
}

// AuthResult is the payload of a verify-otp call. Token is opaque to the
// client; it is persisted and attached as a bearer credential until logout.
type AuthResult struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
