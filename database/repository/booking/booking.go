package bookingRepo

import (
	"context"
	"errors"
	"time"

	"roomify/models"
)

// Sentinel errors surfaced by the repository. The booking service maps these
// onto its client-facing error taxonomy.
var (
	// ErrNotFound indicates the booking does not exist.
	ErrNotFound = errors.New("booking not found")
	// ErrConflict indicates a competing confirmed booking already claimed an
	// overlapping window for the same room.
	ErrConflict = errors.New("overlapping confirmed booking exists")
	// ErrTerminal indicates a transition out of the Cancelled state was attempted.
	ErrTerminal = errors.New("booking is cancelled")
)

// BookingRepository defines methods for booking data access.
type BookingRepository interface {
	// Create inserts a new booking record.
	Create(b *models.Booking) error
	// GetByID retrieves a booking by its unique ID.
	GetByID(id string) (*models.Booking, error)
	// GetAll retrieves all bookings.
	GetAll() ([]models.Booking, error)
	// GetByUser retrieves the bookings owned by a user, newest first.
	GetByUser(userID string) ([]models.Booking, error)
	// GetByRoom retrieves the bookings of a room.
	GetByRoom(roomID string) ([]models.Booking, error)
	// GetByStatus retrieves all bookings in the given lifecycle state.
	GetByStatus(status models.BookingStatus) ([]models.Booking, error)
	// GetByDateRange retrieves bookings whose stay window intersects [start, end).
	GetByDateRange(start, end time.Time) ([]models.Booking, error)
	// Update replaces an existing booking record.
	Update(b *models.Booking) error
	// UpdateStatus sets the lifecycle state of a booking.
	UpdateStatus(id string, status models.BookingStatus) error
	// Delete hard-deletes a booking, bypassing the lifecycle.
	Delete(id string) error

	// FindOverlapping returns bookings on any of the given rooms whose window
	// overlaps w (half-open) and whose status is one of statuses. This is the
	// single indexed range query the availability resolver runs per room set.
	FindOverlapping(roomIDs []string, w models.StayWindow, statuses []models.BookingStatus) ([]models.Booking, error)

	// ConfirmTransactionally transitions a Pending booking to Confirmed inside
	// a transaction, re-checking that no other Confirmed booking overlaps the
	// same room/window at commit time. Returns the confirmed booking, or
	// ErrConflict when a competing booking won the race (the losing booking is
	// left Pending), ErrTerminal when the booking is Cancelled, ErrNotFound
	// when it does not exist. Confirming an already-Confirmed booking is a
	// no-op success.
	ConfirmTransactionally(ctx context.Context, bookingID string) (*models.Booking, error)

	// StatsForRooms aggregates booking counts per status and confirmed revenue
	// over the given rooms.
	StatsForRooms(roomIDs []string) (*models.HotelBookingStats, error)
	// UpcomingCheckIns retrieves confirmed bookings checking in within [from, to).
	UpcomingCheckIns(from, to time.Time) ([]models.Booking, error)
	// UpcomingCheckOuts retrieves confirmed bookings checking out within [from, to).
	UpcomingCheckOuts(from, to time.Time) ([]models.Booking, error)
	// FindStalePending retrieves Pending bookings created before the cutoff.
	FindStalePending(cutoff time.Time) ([]models.Booking, error)
}
