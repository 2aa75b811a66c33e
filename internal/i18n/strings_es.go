package i18n

import "fmt"

var spanish = Strings{
	Code: "es",

	AppName: "SwiftParcel",

	LoginTitle:    "Bienvenido de nuevo",
	RegisterTitle: "Crea tu cuenta",
	EmailLabel:    "Correo electrónico",
	NameLabel:     "Nombre completo",
	SendOTP:       "Enviar OTP",
	OTPTitle:      "Introduce el código que te enviamos",
	VerifyOTP:     "Verificar",
	InvalidOTP:    "Introduce el código de 6 dígitos",
	InvalidEmail:  "Introduce un correo válido",
	NameRequired:  "El nombre es obligatorio",
	Logout:        "Cerrar sesión",

	WhereTo:         "¿Dónde entregamos?",
	PickupLabel:     "Recogida",
	DeliveryLabel:   "Entrega",
	BookNow:         "Reservar ahora",
	ConfirmBooking:  "Confirmar reserva",
	CancelBooking:   "Cancelar reserva",
	SearchingDriver: "Buscando conductor...",
	DriverAssigned:  "Conductor asignado",
	DriverArrived:   "El conductor ha llegado",
	PickedUp:        "Paquete recogido",
	InTransit:       "En camino",
	Delivered:       "Entregado",
	Cancelled:       "Cancelado",
	TrackShipment:   "Rastrear envío",
	VerifyDelivery:  "Verificar entrega",

	WalletTitle:    "Monedero",
	TopUp:          "Recargar",
	PayWithWallet:  "Pagar con monedero",
	Transactions:   "Movimientos",
	PaymentSuccess: "Pago realizado",

	SupportTitle: "Ayuda y soporte",
	NewTicket:    "Nuevo ticket",
	ReplyHint:    "Escribe una respuesta...",
	CloseTicket:  "Cerrar ticket",
	ChatHint:     "Escribe a tu conductor...",

	Loading:         "Cargando...",
	Retry:           "Reintentar",
	Save:            "Guardar",
	Delete:          "Eliminar",
	UnexpectedError: "Error inesperado",

	ResendInSeconds: func(sec int) string { return fmt.Sprintf("Reenviar en %ds", sec) },
	UpToKg:          func(kg int) string { return fmt.Sprintf("Hasta %d kg", kg) },
	EtaMinutes:      func(min int) string { return fmt.Sprintf("Llega en %d min", min) },
	WalletBalance: func(amount float64, currency string) string {
		return fmt.Sprintf("%s %.2f", currency, amount)
	},
}
