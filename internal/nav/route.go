// Package nav is the navigation graph: a closed set of typed routes, a
// string encoding that round-trips arbitrary parameter text, and a back
// stack with pop-up-to transition rules.
package nav

import (
	"fmt"
	"strings"
)

// Route names. Decode switches on these; PopUpTo targets them.
const (
	NameSplash         = "splash"
	NameLogin          = "login"
	NameRegister       = "register"
	NameOTP            = "otp"
	NameReadyToBook    = "ready-to-book"
	NameHome           = "home"
	NameBookingDetail  = "booking"
	NameTrackingLive   = "tracking"
	NameOrders         = "orders"
	NameProfile        = "profile"
	NameWallet         = "wallet"
	NameChat           = "chat"
	NameInvoice        = "invoice"
	NameRating         = "rating"
	NameAddresses      = "addresses"
	NameAddressEdit    = "address-edit"
	NameCoupons        = "coupons"
	NameSupport        = "support"
	NameSupportTicket  = "ticket"
	NamePaymentSuccess = "payment-success"
)

// Route is a destination in the navigation graph. Encode and Decode
// round-trip: Decode(r.Encode()) yields an equal Route for every route
// value, whatever its parameter text contains.
type Route interface {
	Name() string
	Encode() string
}

// Splash is the startup screen shown while the session is checked.
type Splash struct{}

func (Splash) Name() string   { return NameSplash }
func (Splash) Encode() string { return NameSplash }

// Login is the email entry screen for existing users.
type Login struct{}

func (Login) Name() string   { return NameLogin }
func (Login) Encode() string { return NameLogin }

// Register is the signup screen.
type Register struct{}

func (Register) Name() string   { return NameRegister }
func (Register) Encode() string { return NameRegister }

// OTP is the code entry screen. Mode is "login" or "signup"; SignupName
// carries the signup name through the flow and is empty for logins.
type OTP struct {
	Email      string
	Mode       string
	SignupName string
}

func (OTP) Name() string { return NameOTP }

func (r OTP) Encode() string {
	s := NameOTP + "/" + encodeParam(r.Email)
	query := make([]string, 0, 2)
	if r.Mode != "" {
		query = append(query, "mode="+encodeParam(r.Mode))
	}
	if r.SignupName != "" {
		query = append(query, "name="+encodeParam(r.SignupName))
	}
	if len(query) > 0 {
		s += "?" + strings.Join(query, "&")
	}
	return s
}

// ReadyToBook is the post-signup onboarding screen.
type ReadyToBook struct{}

func (ReadyToBook) Name() string   { return NameReadyToBook }
func (ReadyToBook) Encode() string { return NameReadyToBook }

// Home is the main screen with search and booking entry points.
type Home struct{}

func (Home) Name() string   { return NameHome }
func (Home) Encode() string { return NameHome }

// BookingDetail shows one booking's status timeline.
type BookingDetail struct {
	BookingID string
}

func (BookingDetail) Name() string { return NameBookingDetail }
func (r BookingDetail) Encode() string {
	return NameBookingDetail + "/" + encodeParam(r.BookingID)
}

// TrackingLive is the live map tracking screen for an active booking.
type TrackingLive struct {
	BookingID string
}

func (TrackingLive) Name() string { return NameTrackingLive }
func (r TrackingLive) Encode() string {
	return NameTrackingLive + "/" + encodeParam(r.BookingID)
}

// Orders lists past and active bookings.
type Orders struct{}

func (Orders) Name() string   { return NameOrders }
func (Orders) Encode() string { return NameOrders }

// Profile is the account and language settings screen.
type Profile struct{}

func (Profile) Name() string   { return NameProfile }
func (Profile) Encode() string { return NameProfile }

// Wallet shows the balance, top-up and the transaction ledger.
type Wallet struct{}

func (Wallet) Name() string   { return NameWallet }
func (Wallet) Encode() string { return NameWallet }

// Chat is the driver chat thread for a booking.
type Chat struct {
	BookingID string
}

func (Chat) Name() string { return NameChat }
func (r Chat) Encode() string {
	return NameChat + "/" + encodeParam(r.BookingID)
}

// Invoice shows the price breakdown of a completed booking.
type Invoice struct {
	BookingID string
}

func (Invoice) Name() string { return NameInvoice }
func (r Invoice) Encode() string {
	return NameInvoice + "/" + encodeParam(r.BookingID)
}

// Rating is the post-delivery rating screen.
type Rating struct {
	BookingID string
}

func (Rating) Name() string { return NameRating }
func (r Rating) Encode() string {
	return NameRating + "/" + encodeParam(r.BookingID)
}

// Addresses lists the user's saved places.
type Addresses struct{}

func (Addresses) Name() string   { return NameAddresses }
func (Addresses) Encode() string { return NameAddresses }

// AddressEdit edits one saved place; an empty ID creates a new one.
type AddressEdit struct {
	AddressID string
}

func (AddressEdit) Name() string { return NameAddressEdit }
func (r AddressEdit) Encode() string {
	if r.AddressID == "" {
		return NameAddressEdit
	}
	return NameAddressEdit + "/" + encodeParam(r.AddressID)
}

// Coupons lists the user's available promo codes.
type Coupons struct{}

func (Coupons) Name() string   { return NameCoupons }
func (Coupons) Encode() string { return NameCoupons }

// Support lists the user's support tickets.
type Support struct{}

func (Support) Name() string   { return NameSupport }
func (Support) Encode() string { return NameSupport }

// SupportTicket shows one ticket's message thread.
type SupportTicket struct {
	TicketID string
}

func (SupportTicket) Name() string { return NameSupportTicket }
func (r SupportTicket) Encode() string {
	return NameSupportTicket + "/" + encodeParam(r.TicketID)
}

// PaymentSuccess is the confirmation screen after a wallet payment.
type PaymentSuccess struct {
	BookingID string
}

func (PaymentSuccess) Name() string { return NamePaymentSuccess }
func (r PaymentSuccess) Encode() string {
	return NamePaymentSuccess + "/" + encodeParam(r.BookingID)
}

// Decode parses an encoded route string back into a typed Route. Missing
// optional parameters take their documented defaults (OTP mode "login",
// name ""). Unknown route names and malformed parameters are errors.
func Decode(s string) (Route, error) {
	path := s
	rawQuery := ""
	if i := strings.IndexByte(s, '?'); i >= 0 {
		path, rawQuery = s[:i], s[i+1:]
	}

	segments := strings.Split(path, "/")
	name := segments[0]

	segment := func(i int) (string, error) {
		if i >= len(segments) {
			return "", nil
		}
		return decodeParam(segments[i])
	}

	switch name {
	case NameSplash:
		return Splash{}, nil
	case NameLogin:
		return Login{}, nil
	case NameRegister:
		return Register{}, nil
	case NameOTP:
		email, err := segment(1)
		if err != nil {
			return nil, err
		}
		query, err := parseQuery(rawQuery)
		if err != nil {
			return nil, err
		}
		r := OTP{Email: email, Mode: "login"}
		if mode, ok := query["mode"]; ok && mode != "" {
			r.Mode = mode
		}
		if n, ok := query["name"]; ok {
			r.SignupName = n
		}
		return r, nil
	case NameReadyToBook:
		return ReadyToBook{}, nil
	case NameHome:
		return Home{}, nil
	case NameBookingDetail:
		id, err := segment(1)
		if err != nil {
			return nil, err
		}
		return BookingDetail{BookingID: id}, nil
	case NameTrackingLive:
		id, err := segment(1)
		if err != nil {
			return nil, err
		}
		return TrackingLive{BookingID: id}, nil
	case NameOrders:
		return Orders{}, nil
	case NameProfile:
		return Profile{}, nil
	case NameWallet:
		return Wallet{}, nil
	case NameChat:
		id, err := segment(1)
		if err != nil {
			return nil, err
		}
		return Chat{BookingID: id}, nil
	case NameInvoice:
		id, err := segment(1)
		if err != nil {
			return nil, err
		}
		return Invoice{BookingID: id}, nil
	case NameRating:
		id, err := segment(1)
		if err != nil {
			return nil, err
		}
		return Rating{BookingID: id}, nil
	case NameAddresses:
		return Addresses{}, nil
	case NameAddressEdit:
		id, err := segment(1)
		if err != nil {
			return nil, err
		}
		return AddressEdit{AddressID: id}, nil
	case NameCoupons:
		return Coupons{}, nil
	case NameSupport:
		return Support{}, nil
	case NameSupportTicket:
		id, err := segment(1)
		if err != nil {
			return nil, err
		}
		return SupportTicket{TicketID: id}, nil
	case NamePaymentSuccess:
		id, err := segment(1)
		if err != nil {
			return nil, err
		}
		return PaymentSuccess{BookingID: id}, nil
	default:
		return nil, fmt.Errorf("unknown route %q", name)
	}
}

func parseQuery(raw string) (map[string]string, error) {
	query := make(map[string]string)
	if raw == "" {
		return query, nil
	}
	for _, pair := range strings.Split(raw, "&") {
		k, v, _ := strings.Cut(pair, "=")
		decoded, err := decodeParam(v)
		if err != nil {
			return nil, err
		}
		query[k] = decoded
	}
	return query, nil
}
