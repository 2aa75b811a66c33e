// Package i18n holds the user-facing string catalog. Every supported
// language implements the same Strings value; lookup by language code
// falls back to English for any unrecognized code.
package i18n

// DefaultLanguage is the base language used when a code is unrecognized.
const DefaultLanguage = "en"

// Strings is the fixed contract of user-facing text. Parameterized
// messages are function fields so each language controls its own word
// order.
type Strings struct {
	Code string

	AppName string

	// Auth flow.
	LoginTitle    string
	RegisterTitle string
	EmailLabel    string
	NameLabel     string
	SendOTP       string
	OTPTitle      string
	VerifyOTP     string
	InvalidOTP    string
	InvalidEmail  string
	NameRequired  string
	Logout        string

	// Home / booking.
	WhereTo         string
	PickupLabel     string
	DeliveryLabel   string
	BookNow         string
	ConfirmBooking  string
	CancelBooking   string
	SearchingDriver string
	DriverAssigned  string
	DriverArrived   string
	PickedUp        string
	InTransit       string
	Delivered       string
	Cancelled       string
	TrackShipment   string
	VerifyDelivery  string

	// Wallet / payment.
	WalletTitle    string
	TopUp          string
	PayWithWallet  string
	Transactions   string
	PaymentSuccess string

	// Support / chat.
	SupportTitle string
	NewTicket    string
	ReplyHint    string
	CloseTicket  string
	ChatHint     string

	// Generic.
	Loading         string
	Retry           string
	Save            string
	Delete          string
	UnexpectedError string

	// Parameterized.
	ResendInSeconds func(sec int) string
	UpToKg          func(kg int) string
	EtaMinutes      func(min int) string
	WalletBalance   func(amount float64, currency string) string
}

var languages = map[string]*Strings{
	"en": &english,
	"hi": &hindi,
	"es": &spanish,
	"ar": &arabic,
}

// ForLanguage returns the string catalog for the given language code.
// Unrecognized codes silently fall back to English.
func ForLanguage(code string) *Strings {
	if s, ok := languages[code]; ok {
		return s
	}
	return &english
}

// SupportedLanguages lists the language codes with a catalog.
func SupportedLanguages() []string {
	return []string{"en", "hi", "es", "ar"}
}
