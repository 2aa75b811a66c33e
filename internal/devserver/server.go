package devserver

import (
	"time"

	"github.com/gin-gonic/gin"
)

// Server is the stub backend.
type Server struct {
	store *Store
}

// Options configures the stub.
type Options struct {
	// StatusStepEvery is how long a booking sits in each lifecycle
	// stage before the scripted progression advances it.
	StatusStepEvery time.Duration
}

// New creates a stub server.
func New(opts Options) *Server {
	return &Server{store: NewStore(opts.StatusStepEvery)}
}

// Router builds the Gin engine with the full REST surface under /api.
func (s *Server) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(idempotencyMiddleware())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := router.Group("/api")

	// Auth routes need no token.
	auth := api.Group("/auth")
	{
		auth.POST("/send-otp", s.sendOTP)
		auth.POST("/verify-otp", s.verifyOTP)
	}

	// Everything else sits behind the bearer gate.
	private := api.Group("")
	private.Use(authMiddleware(s.store))
	{
		users := private.Group("/users")
		{
			users.GET("/me", s.getProfile)
			users.PUT("/me", s.updateProfile)
		}

		addresses := private.Group("/addresses")
		{
			addresses.GET("", s.listAddresses)
			addresses.POST("", s.createAddress)
			addresses.PUT("/:id", s.updateAddress)
			addresses.DELETE("/:id", s.deleteAddress)
		}

		bookings := private.Group("/bookings")
		{
			bookings.POST("", s.createBooking)
			bookings.GET("", s.listBookings)
			bookings.GET("/:id", s.getBooking)
			bookings.POST("/:id/verify-delivery", s.verifyDelivery)
			bookings.POST("/:id/cancel", s.cancelBooking)
			bookings.GET("/:id/eta", s.bookingETA)
		}

		chat := private.Group("/chat")
		{
			chat.GET("/:bookingId", s.chatThread)
			chat.POST("/:bookingId", s.sendChat)
			chat.GET("/:bookingId/unread", s.chatUnread)
		}

		invoices := private.Group("/invoices")
		{
			invoices.GET("", s.listInvoices)
			invoices.POST("/:bookingId", s.generateInvoice)
			invoices.GET("/:bookingId", s.getInvoice)
			invoices.GET("/:bookingId/detail", s.getInvoice)
		}

		location := private.Group("/location")
		{
			location.GET("/search-places", s.searchPlaces)
			location.GET("/autocomplete", s.autocomplete)
			location.GET("/reverse-geocode", s.reverseGeocode)
			location.GET("/nearby", s.nearby)
			location.GET("/static-map", s.staticMap)
			location.GET("/get-position/:deviceId", s.getPosition)
			location.POST("/geocode", s.geocode)
			location.POST("/calculate-route", s.calculateRoute)
			location.POST("/snap-to-roads", s.snapToRoads)
			location.POST("/isoline", s.isoline)
			location.POST("/update-position", s.updatePosition)
		}
		private.GET("/map-config", s.mapConfig)

		promo := private.Group("/promo")
		{
			promo.POST("/validate", s.validatePromo)
			promo.POST("/apply", s.applyPromo)
			promo.GET("/coupons", s.listCoupons)
			promo.GET("/referral", s.referralInfo)
			promo.POST("/referral/apply", s.applyReferral)
		}

		ratings := private.Group("/ratings")
		{
			ratings.POST("/:bookingId", s.submitRating)
			ratings.GET("/:bookingId", s.getRating)
		}

		support := private.Group("/support/tickets")
		{
			support.POST("", s.createTicket)
			support.GET("", s.listTickets)
			support.GET("/:id", s.getTicket)
			support.POST("/:id/reply", s.replyTicket)
			support.POST("/:id/close", s.closeTicket)
		}

		wallet := private.Group("/wallet")
		{
			wallet.GET("", s.getWallet)
			wallet.POST("/topup", s.walletTopUp)
			wallet.POST("/pay", s.walletPay)
			wallet.GET("/transactions", s.walletTransactions)
		}

		private.POST("/upload/package-image", s.uploadPackageImage)
	}

	return router
}
