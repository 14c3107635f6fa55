package models

import "time"

// BookingStatus enumerates the booking lifecycle states.
type BookingStatus string

const (
	BookingPending   BookingStatus = "Pending"
	BookingConfirmed BookingStatus = "Confirmed"
	BookingCancelled BookingStatus = "Cancelled"
)

// Valid reports whether s is one of the known lifecycle states.
func (s BookingStatus) Valid() bool {
	switch s {
	case BookingPending, BookingConfirmed, BookingCancelled:
		return true
	}
	return false
}

// StayWindow is the half-open date interval [CheckIn, CheckOut) a room is occupied.
// Dates are date-granular and stored in UTC.
type StayWindow struct {
	CheckIn  time.Time `bson:"checkInDate" json:"checkInDate"`
	CheckOut time.Time `bson:"checkOutDate" json:"checkOutDate"`
}

// Nights returns the number of occupied nights.
func (w StayWindow) Nights() int {
	return int(w.CheckOut.Sub(w.CheckIn).Hours() / 24)
}

// Overlaps reports whether two stay windows share at least one occupied night.
// Half-open semantics: a checkout on another booking's check-in day is not an
// overlap, so same-day turnover is allowed.
func (w StayWindow) Overlaps(other StayWindow) bool {
	return w.CheckIn.Before(other.CheckOut) && other.CheckIn.Before(w.CheckOut)
}

// Booking represents a reservation of a room over a stay window.
type Booking struct {
	ID           string        `bson:"id" json:"bookingId"`
	UserID       string        `bson:"userId" json:"userId"`
	RoomID       string        `bson:"roomId" json:"roomId"`
	CheckInDate  time.Time     `bson:"checkInDate" json:"checkInDate"`
	CheckOutDate time.Time     `bson:"checkOutDate" json:"checkOutDate"`
	TotalAmount  float64       `bson:"totalAmount" json:"totalAmount"`
	Status       BookingStatus `bson:"bookingStatus" json:"bookingStatus"`
	CreatedAt    time.Time     `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time     `bson:"updatedAt" json:"updatedAt"`
}

// Window returns the booking's stay window.
func (b *Booking) Window() StayWindow {
	return StayWindow{CheckIn: b.CheckInDate, CheckOut: b.CheckOutDate}
}

// Blocking reports whether the booking blocks other bookings of the same room.
// Cancelled bookings never block re-booking of their window.
func (b *Booking) Blocking() bool {
	return b.Status == BookingPending || b.Status == BookingConfirmed
}

// BookingDetail is a booking joined with guest and room context, as consumed
// by the dashboards.
type BookingDetail struct {
	Booking
	User *UserSummary `json:"user,omitempty"`
	Room *RoomDetail  `json:"room,omitempty"`
}

// HotelBookingStats aggregates the bookings of a hotel's rooms.
type HotelBookingStats struct {
	HotelID       string  `json:"hotelId"`
	TotalBookings int64   `json:"totalBookings"`
	Pending       int64   `json:"pending"`
	Confirmed     int64   `json:"confirmed"`
	Cancelled     int64   `json:"cancelled"`
	Revenue       float64 `json:"revenue"` // sum of confirmed booking totals
}
