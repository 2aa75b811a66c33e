// Package screen holds the per-screen controllers: ephemeral UI state,
// input validation and the calls into the API clients. Controllers hold
// no entity caches beyond what the visible screen needs; the server stays
// the source of truth.
package screen

import (
	"errors"
	"strings"

	"parcel/internal/api"
	"parcel/internal/i18n"
)

var (
	// ErrInvalidEmail is returned when the email field fails the
	// client-side shape check.
	ErrInvalidEmail = errors.New("invalid email")

	// ErrInvalidOTP is returned when the code is not exactly six digits.
	ErrInvalidOTP = errors.New("invalid otp")

	// ErrNameRequired is returned when the signup name is blank.
	ErrNameRequired = errors.New("name required")

	// ErrBlankMessage is returned when a chat or ticket message is blank.
	ErrBlankMessage = errors.New("blank message")

	// ErrInvalidAmount is returned when a top-up or payment amount is
	// not positive.
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrBlankField is returned when a required form field is blank.
	ErrBlankField = errors.New("required field is blank")
)

// errorText maps a failure to the inline red text a screen displays:
// the server's message when one exists, the localized fallback otherwise.
func errorText(s *i18n.Strings, err error) string {
	var apiErr *api.Error
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return s.UnexpectedError
}

// validEmail is the minimal shape check applied before any network call.
func validEmail(email string) bool {
	at := strings.IndexByte(email, '@')
	if at <= 0 || at == len(email)-1 {
		return false
	}
	return strings.IndexByte(email[at+1:], '.') > 0
}

// validOTP requires exactly six digits.
func validOTP(code string) bool {
	if len(code) != 6 {
		return false
	}
	for i := 0; i < len(code); i++ {
		if code[i] < '0' || code[i] > '9' {
			return false
		}
	}
	return true
}
