package i18n

import "fmt"

var arabic = Strings{
	Code: "ar",

	AppName: "SwiftParcel",

	LoginTitle:    "مرحبا بعودتك",
	RegisterTitle: "أنشئ حسابك",
	EmailLabel:    "البريد الإلكتروني",
	NameLabel:     "الاسم الكامل",
	SendOTP:       "إرسال الرمز",
	OTPTitle:      "أدخل الرمز الذي أرسلناه",
	VerifyOTP:     "تحقق",
	InvalidOTP:    "أدخل الرمز المكون من 6 أرقام",
	InvalidEmail:  "أدخل بريدا إلكترونيا صالحا",
	NameRequired:  "الاسم مطلوب",
	Logout:        "تسجيل الخروج",

	WhereTo:         "أين نوصل الشحنة؟",
	PickupLabel:     "الاستلام",
	DeliveryLabel:   "التوصيل",
	BookNow:         "احجز الآن",
	ConfirmBooking:  "تأكيد الحجز",
	CancelBooking:   "إلغاء الحجز",
	SearchingDriver: "جاري البحث عن سائق...",
	DriverAssigned:  "تم تعيين سائق",
	DriverArrived:   "وصل السائق",
	PickedUp:        "تم استلام الطرد",
	InTransit:       "في الطريق",
	Delivered:       "تم التوصيل",
	Cancelled:       "ملغى",
	TrackShipment:   "تتبع الشحنة",
	VerifyDelivery:  "تأكيد التسليم",

	WalletTitle:    "المحفظة",
	TopUp:          "شحن الرصيد",
	PayWithWallet:  "الدفع من المحفظة",
	Transactions:   "العمليات",
	PaymentSuccess: "تم الدفع بنجاح",

	SupportTitle: "المساعدة والدعم",
	NewTicket:    "تذكرة جديدة",
	ReplyHint:    "اكتب ردا...",
	CloseTicket:  "إغلاق التذكرة",
	ChatHint:     "راسل السائق...",

	Loading:         "جار التحميل...",
	Retry:           "إعادة المحاولة",
	Save:            "حفظ",
	Delete:          "حذف",
	UnexpectedError: "خطأ غير متوقع",

	ResendInSeconds: func(sec int) string { return fmt.Sprintf("أعد الإرسال خلال %d ث", sec) },
	UpToKg:          func(kg int) string { return fmt.Sprintf("حتى %d كجم", kg) },
	EtaMinutes:      func(min int) string { return fmt.Sprintf("يصل خلال %d دقيقة", min) },
	WalletBalance: func(amount float64, currency string) string {
		return fmt.Sprintf("%.2f %s", amount, currency)
	},
}
