// Package devserver is an in-memory stub of the backend REST surface.
// It exists for local development and integration tests; nothing in it is
// shipped to users. State lives in maps guarded by one mutex and resets
// on restart.
package devserver

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"parcel/internal/model"
)

// statusScript is the scripted booking progression: a booking advances
// one stage per stepEvery elapsed since creation, so live tracking has
// something to follow.
var statusScript = []model.BookingStatus{
	model.BookingStatusPending,
	model.BookingStatusSearchingDriver,
	model.BookingStatusDriverAssigned,
	model.BookingStatusDriverArrived,
	model.BookingStatusPickupDone,
	model.BookingStatusInTransit,
	model.BookingStatusDelivered,
}

type account struct {
	user    model.User
	token   string
	otp     string
	wallet  model.Wallet
	ledger  []model.WalletTransaction
	coupons []model.Coupon
}

// Store holds all stub state.
type Store struct {
	mu sync.Mutex

	stepEvery time.Duration

	accounts  map[string]*account // by email
	tokens    map[string]string   // token -> email
	addresses map[string]model.Address
	bookings  map[string]*storedBooking
	chats     map[string][]model.ChatMessage
	tickets   map[string]*model.SupportTicket
	invoices  map[string]model.Invoice // by booking ID
	ratings   map[string]model.Rating  // by booking ID
	positions map[string]model.DevicePosition
}

type storedBooking struct {
	booking   model.Booking
	createdAt time.Time
	cancelled bool
	delivered bool
}

// NewStore creates an empty stub store whose bookings advance one status
// stage per stepEvery.
func NewStore(stepEvery time.Duration) *Store {
	if stepEvery <= 0 {
		stepEvery = 10 * time.Second
	}
	return &Store{
		stepEvery: stepEvery,
		accounts:  make(map[string]*account),
		tokens:    make(map[string]string),
		addresses: make(map[string]model.Address),
		bookings:  make(map[string]*storedBooking),
		chats:     make(map[string][]model.ChatMessage),
		tickets:   make(map[string]*model.SupportTicket),
		invoices:  make(map[string]model.Invoice),
		ratings:   make(map[string]model.Rating),
		positions: make(map[string]model.DevicePosition),
	}
}

// fixedOTP is the code every devserver account accepts.
const fixedOTP = "123456"

func (s *Store) ensureAccount(email string) *account {
	if acc, ok := s.accounts[email]; ok {
		return acc
	}
	acc := &account{
		user: model.User{
			ID:       uuid.New().String(),
			Email:    email,
			Language: "en",
		},
		wallet: model.Wallet{Balance: 0, Currency: "INR"},
		coupons: []model.Coupon{
			{
				Code:        "WELCOME10",
				Description: "10% off your first delivery",
				DiscountPct: 10,
				MaxDiscount: 50,
				ExpiresAt:   time.Now().Add(30 * 24 * time.Hour),
			},
		},
	}
	s.accounts[email] = acc
	return acc
}

// authenticate resolves a bearer token to an account.
func (s *Store) authenticate(token string) (*account, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	email, ok := s.tokens[token]
	if !ok {
		return nil, false
	}
	return s.accounts[email], true
}

// currentStatus applies the scripted progression to a booking.
func (b *storedBooking) currentStatus(stepEvery time.Duration) model.BookingStatus {
	if b.cancelled {
		return model.BookingStatusCancelled
	}
	if b.delivered {
		return model.BookingStatusDelivered
	}
	stage := int(time.Since(b.createdAt) / stepEvery)
	if stage >= len(statusScript) {
		stage = len(statusScript) - 1
	}
	return statusScript[stage]
}

// snapshot returns the booking with its current scripted status and a
// driver once one is assigned.
func (s *Store) snapshot(b *storedBooking) model.Booking {
	booking := b.booking
	booking.Status = b.currentStatus(s.stepEvery)
	if booking.Status.TimelineStep() >= 1 && booking.Status != model.BookingStatusCancelled {
		booking.Driver = &model.Driver{
			ID:          "drv-1",
			Name:        "Ravi Kumar",
			Phone:       "+919800000001",
			VehicleType: booking.VehicleType,
			VehicleNo:   "KA 01 AB 1234",
			Rating:      4.8,
			DeviceID:    "device-drv-1",
		}
		booking.EtaMinutes = 18 - 3*booking.Status.TimelineStep()
	}
	return booking
}
