package model

import "time"

// BookingStatus is the server-assigned lifecycle state of a booking.
// The client never computes transitions; it only reads the current value.
type BookingStatus string

const (
	BookingStatusPending         BookingStatus = "PENDING"
	BookingStatusSearchingDriver BookingStatus = "SEARCHING_DRIVER"
	BookingStatusDriverAssigned  BookingStatus = "DRIVER_ASSIGNED"
	BookingStatusDriverArrived   BookingStatus = "DRIVER_ARRIVED"
	BookingStatusPickupDone      BookingStatus = "PICKUP_DONE"
	BookingStatusInTransit       BookingStatus = "IN_TRANSIT"
	BookingStatusDelivered       BookingStatus = "DELIVERED"
	BookingStatusCancelled       BookingStatus = "CANCELLED"
)

// PaymentMethod is the payment method chosen for a booking.
type PaymentMethod string

const (
	PaymentMethodCash   PaymentMethod = "CASH"
	PaymentMethodCard   PaymentMethod = "CARD"
	PaymentMethodWallet PaymentMethod = "WALLET"
	PaymentMethodUPI    PaymentMethod = "UPI"
)

// Driver is the courier assigned to a booking, when one has been matched.
type Driver struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Phone       string  `json:"phone"`
	VehicleType string  `json:"vehicleType"`
	VehicleNo   string  `json:"vehicleNo"`
	Rating      float64 `json:"rating"`
	DeviceID    string  `json:"deviceId"`
}

// Booking is the central transactional entity: one parcel delivery from
// pickup to drop.
type Booking struct {
	ID              string        `json:"id"`
	Pickup          Address       `json:"pickup"`
	Delivery        Address       `json:"delivery"`
	VehicleType     string        `json:"vehicleType"`
	PaymentMethod   PaymentMethod `json:"paymentMethod"`
	Price           float64       `json:"price"`
	Status          BookingStatus `json:"status"`
	Driver          *Driver       `json:"driver,omitempty"`
	EtaMinutes      int           `json:"etaMinutes"`
	PackageImageURL string        `json:"packageImageUrl"`
	CreatedAt       time.Time     `json:"createdAt"`
}

// ETAResult is the payload of a booking ETA call.
type ETAResult struct {
	EtaMinutes int     `json:"etaMinutes"`
	DistanceKm float64 `json:"distanceKm"`
}

// timelineSteps is the number of display steps on the booking timeline:
// placed, driver assigned, picked up, in transit, delivered.
const timelineSteps = 5

// TimelineStep maps a status to its display step index on the five-step
// booking timeline. Cancelled bookings have no timeline position and
// return -1.
func (s BookingStatus) TimelineStep() int {
	switch s {
	case BookingStatusPending, BookingStatusSearchingDriver:
		return 0
	case BookingStatusDriverAssigned, BookingStatusDriverArrived:
		return 1
	case BookingStatusPickupDone:
		return 2
	case BookingStatusInTransit:
		return 3
	case BookingStatusDelivered:
		return 4
	default:
		return -1
	}
}

// ProgressFraction maps a status to the fill fraction of the timeline
// progress bar. Each step advances by 0.2 with the bar anchored mid-step,
// so IN_TRANSIT shows 0.7; DELIVERED fills the bar.
func (s BookingStatus) ProgressFraction() float64 {
	if s == BookingStatusDelivered {
		return 1.0
	}
	step := s.TimelineStep()
	if step < 0 {
		return 0
	}
	return float64(step)*0.2 + 0.1
}

// Terminal reports whether the status is an end state.
func (s BookingStatus) Terminal() bool {
	return s == BookingStatusDelivered || s == BookingStatusCancelled
}

// Cancellable reports whether a booking in this status may still be
// cancelled by the customer. The server enforces this; the client uses it
// only to decide whether to show the cancel action.
func (s BookingStatus) Cancellable() bool {
	switch s {
	case BookingStatusPending, BookingStatusSearchingDriver, BookingStatusDriverAssigned:
		return true
	default:
		return false
	}
}
