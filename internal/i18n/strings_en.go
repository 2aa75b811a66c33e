package i18n

import "fmt"

var english = Strings{
	Code: "en",

	AppName: "SwiftParcel",

	LoginTitle:    "Welcome back",
	RegisterTitle: "Create your account",
	EmailLabel:    "Email",
	NameLabel:     "Full name",
	SendOTP:       "Send OTP",
	OTPTitle:      "Enter the code we sent you",
	VerifyOTP:     "Verify",
	InvalidOTP:    "Enter the 6-digit code",
	InvalidEmail:  "Enter a valid email",
	NameRequired:  "Name is required",
	Logout:        "Log out",

	WhereTo:         "Where should we deliver?",
	PickupLabel:     "Pickup",
	DeliveryLabel:   "Delivery",
	BookNow:         "Book now",
	ConfirmBooking:  "Confirm booking",
	CancelBooking:   "Cancel booking",
	SearchingDriver: "Finding a driver...",
	DriverAssigned:  "Driver assigned",
	DriverArrived:   "Driver has arrived",
	PickedUp:        "Package picked up",
	InTransit:       "On the way",
	Delivered:       "Delivered",
	Cancelled:       "Cancelled",
	TrackShipment:   "Track shipment",
	VerifyDelivery:  "Verify delivery",

	WalletTitle:    "Wallet",
	TopUp:          "Top up",
	PayWithWallet:  "Pay with wallet",
	Transactions:   "Transactions",
	PaymentSuccess: "Payment successful",

	SupportTitle: "Help & support",
	NewTicket:    "New ticket",
	ReplyHint:    "Write a reply...",
	CloseTicket:  "Close ticket",
	ChatHint:     "Message your driver...",

	Loading:         "Loading...",
	Retry:           "Retry",
	Save:            "Save",
	Delete:          "Delete",
	UnexpectedError: "Unexpected error",

	ResendInSeconds: func(sec int) string { return fmt.Sprintf("Resend in %ds", sec) },
	UpToKg:          func(kg int) string { return fmt.Sprintf("Up to %d kg", kg) },
	EtaMinutes:      func(min int) string { return fmt.Sprintf("Arriving in %d min", min) },
	WalletBalance: func(amount float64, currency string) string {
		return fmt.Sprintf("%s %.2f", currency, amount)
	},
}
