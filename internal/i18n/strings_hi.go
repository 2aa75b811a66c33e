package i18n

import "fmt"

var hindi = Strings{
	Code: "hi",

	AppName: "SwiftParcel",

	LoginTitle:    "वापसी पर स्वागत है",
	RegisterTitle: "अपना खाता बनाएं",
	EmailLabel:    "ईमेल",
	NameLabel:     "पूरा नाम",
	SendOTP:       "OTP भेजें",
	OTPTitle:      "भेजा गया कोड दर्ज करें",
	VerifyOTP:     "सत्यापित करें",
	InvalidOTP:    "6 अंकों का कोड दर्ज करें",
	InvalidEmail:  "मान्य ईमेल दर्ज करें",
	NameRequired:  "नाम आवश्यक है",
	Logout:        "लॉग आउट",

	WhereTo:         "कहां डिलीवर करें?",
	PickupLabel:     "पिकअप",
	DeliveryLabel:   "डिलीवरी",
	BookNow:         "अभी बुक करें",
	ConfirmBooking:  "बुकिंग की पुष्टि करें",
	CancelBooking:   "बुकिंग रद्द करें",
	SearchingDriver: "ड्राइवर खोजा जा रहा है...",
	DriverAssigned:  "ड्राइवर नियुक्त",
	DriverArrived:   "ड्राइवर पहुंच गया है",
	PickedUp:        "पैकेज उठा लिया गया",
	InTransit:       "रास्ते में",
	Delivered:       "डिलीवर हो गया",
	Cancelled:       "रद्द",
	TrackShipment:   "शिपमेंट ट्रैक करें",
	VerifyDelivery:  "डिलीवरी सत्यापित करें",

	WalletTitle:    "वॉलेट",
	TopUp:          "टॉप अप",
	PayWithWallet:  "वॉलेट से भुगतान करें",
	Transactions:   "लेन-देन",
	PaymentSuccess: "भुगतान सफल",

	SupportTitle: "सहायता",
	NewTicket:    "नया टिकट",
	ReplyHint:    "जवाब लिखें...",
	CloseTicket:  "टिकट बंद करें",
	ChatHint:     "अपने ड्राइवर को संदेश भेजें...",

	Loading:         "लोड हो रहा है...",
	Retry:           "पुनः प्रयास करें",
	Save:            "सहेजें",
	Delete:          "हटाएं",
	UnexpectedError: "अनपेक्षित त्रुटि",

	ResendInSeconds: func(sec int) string {
		return fmt.Sprintf("%d सेकंड में पुनः भेजें", sec)
	},
	UpToKg:     func(kg int) string { return fmt.Sprintf("%d किग्रा तक", kg) },
	EtaMinutes: func(min int) string { return fmt.Sprintf("%d मिनट में पहुंचेगा", min) },
	WalletBalance: func(amount float64, currency string) string {
		return fmt.Sprintf("%s %.2f", currency, amount)
	},
}
