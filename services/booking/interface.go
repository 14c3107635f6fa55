package booking

import (
	"context"
	"time"

	"roomify/models"
)

// CreateBookingInput carries the fields needed to create a booking.
type CreateBookingInput struct {
	UserID string
	RoomID string
	Window models.StayWindow
}

// Actor identifies who is performing a lifecycle operation.
type Actor struct {
	UserID string
	Admin  bool
}

// ReminderScheduler schedules guest check-in reminders. Implemented by the
// asynq-backed task scheduler.
type ReminderScheduler interface {
	ScheduleCheckinReminder(b models.Booking, email, hotelName string, fireAt time.Time) error
}

// BookingService governs booking creation, availability resolution and the
// booking lifecycle.
type BookingService interface {
	// CreateBooking validates the stay window, checks the room is open and
	// free over the window, computes the total and persists a Pending booking.
	CreateBooking(ctx context.Context, in CreateBookingInput) (*models.Booking, error)

	// ConfirmBooking transitions a Pending booking to Confirmed, re-validating
	// the overlap invariant transactionally. Confirming an already-Confirmed
	// booking is a no-op success.
	ConfirmBooking(ctx context.Context, bookingID string) (*models.Booking, error)

	// CancelBooking transitions a booking to Cancelled. Owners may cancel
	// their Pending bookings; Confirmed bookings require an administrator.
	// Cancelling a Cancelled booking is a no-op success.
	CancelBooking(ctx context.Context, bookingID string, actor Actor) error

	// SetStatus applies an administrator's manual status edit, routed through
	// the same lifecycle rules as payment- and self-service transitions.
	SetStatus(ctx context.Context, bookingID string, status models.BookingStatus) error

	// UpdateBookingWindow moves a Pending booking to a new stay window,
	// re-validating the window and the overlap invariant and recomputing the
	// total from the room's current rate.
	UpdateBookingWindow(ctx context.Context, bookingID string, w models.StayWindow) (*models.Booking, error)

	// DeleteBooking hard-deletes a booking, bypassing the lifecycle.
	DeleteBooking(ctx context.Context, bookingID string) error

	// GetBooking retrieves a booking by ID.
	GetBooking(bookingID string) (*models.Booking, error)
	// GetBookingDetail retrieves a booking joined with guest and room context.
	GetBookingDetail(bookingID string) (*models.BookingDetail, error)
	// ListBookings retrieves all bookings with guest and room context.
	ListBookings() ([]models.BookingDetail, error)
	// ListBookingsByUser retrieves a user's bookings with room context.
	ListBookingsByUser(userID string) ([]models.BookingDetail, error)
	// ListBookingsByStatus retrieves bookings in the given lifecycle state.
	ListBookingsByStatus(status models.BookingStatus) ([]models.BookingDetail, error)
	// ListBookingsByDateRange retrieves bookings whose window intersects [start, end).
	ListBookingsByDateRange(start, end time.Time) ([]models.BookingDetail, error)

	// CheckRoomAvailability reports whether a single room is free over the window.
	CheckRoomAvailability(ctx context.Context, roomID string, w models.StayWindow) (bool, error)
	// AvailableRooms resolves which of a hotel's rooms (all rooms when hotelID
	// is empty) are free over the window.
	AvailableRooms(ctx context.Context, hotelID string, w models.StayWindow) ([]models.Room, error)

	// HotelStats aggregates booking counts and confirmed revenue for a hotel.
	HotelStats(hotelID string) (*models.HotelBookingStats, error)
	// UpcomingCheckIns lists confirmed bookings checking in within the horizon.
	UpcomingCheckIns(horizon time.Duration) ([]models.BookingDetail, error)
	// UpcomingCheckOuts lists confirmed bookings checking out within the horizon.
	UpcomingCheckOuts(horizon time.Duration) ([]models.BookingDetail, error)

	// ExpireStalePending cancels Pending bookings older than ttl and returns
	// how many were cancelled.
	ExpireStalePending(ctx context.Context, ttl time.Duration) (int, error)
}
